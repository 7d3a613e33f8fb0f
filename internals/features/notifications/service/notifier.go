package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fitstudio_backend/internals/metrics"
)

var (
	ErrMissingRecipient = errors.New("recipient is required")
	ErrEmptyMessage     = errors.New("message is required")
)

// Notifier delivers email and SMS. Delivery is log-only: each message is
// written to the log and given a mock id.
type Notifier struct {
	staffEmail string
	log        *zap.Logger
	now        func() time.Time
}

func New(staffEmail string, log *zap.Logger) *Notifier {
	return &Notifier{
		staffEmail: staffEmail,
		log:        log.Named("notifications"),
		now:        time.Now,
	}
}

// SendEmail returns the id "mock_email_<unix-nanos>".
func (n *Notifier) SendEmail(_ context.Context, to, subject, content string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrMissingRecipient
	}
	if strings.TrimSpace(subject) == "" && strings.TrimSpace(content) == "" {
		return "", ErrEmptyMessage
	}

	id := fmt.Sprintf("mock_email_%d", n.now().UnixNano())
	n.log.Info("email sent",
		zap.String("email_id", id),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("content", content))
	metrics.RecordNotification("email")
	return id, nil
}

// SendSMS returns the id "mock_sms_<unix-nanos>".
func (n *Notifier) SendSMS(_ context.Context, to, message string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrMissingRecipient
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	id := fmt.Sprintf("mock_sms_%d", n.now().UnixNano())
	n.log.Info("sms sent",
		zap.String("sms_id", id),
		zap.String("to", to),
		zap.String("message", message))
	metrics.RecordNotification("sms")
	return id, nil
}

// NotifyStaff emails the studio staff inbox.
func (n *Notifier) NotifyStaff(ctx context.Context, subject, content string) (string, error) {
	return n.SendEmail(ctx, n.staffEmail, subject, content)
}
