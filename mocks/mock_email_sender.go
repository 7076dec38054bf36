package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxdesk/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDeadlineReminder(ctx context.Context, toEmail string, deadlines []port.ReminderDeadline) error {
	args := m.Called(ctx, toEmail, deadlines)
	return args.Error(0)
}
