package noop

import (
	"context"
	"log"

	"taxdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs reminders to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDeadlineReminder(_ context.Context, toEmail string, deadlines []port.ReminderDeadline) error {
	for _, d := range deadlines {
		log.Printf("[NOOP EMAIL] Reminder for %s: %s due %s (%d day(s) left)",
			toEmail, d.Title, d.DueDate.Format("2006-01-02"), d.DaysLeft)
	}
	return nil
}
