package port

import (
	"context"
	"time"
)

// ReminderDeadline is one upcoming obligation included in a reminder email.
type ReminderDeadline struct {
	Title    string
	DueDate  time.Time
	DaysLeft int
}

// EmailSender defines the contract for sending compliance reminders.
type EmailSender interface {
	SendDeadlineReminder(ctx context.Context, toEmail string, deadlines []ReminderDeadline) error
}
