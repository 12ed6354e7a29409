package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submission is an accepted contact form.
type Submission struct {
	ID        string    `json:"id"`
	Form      Form      `json:"form"`
	CreatedAt time.Time `json:"created_at"`
}

// Outbox receives accepted submissions. None of the implementations send
// anything off the host.
type Outbox interface {
	Deliver(ctx context.Context, s Submission) error
}

// LogOutbox records submissions in the log only.
type LogOutbox struct {
	logger *zap.Logger
}

// NewLogOutbox returns an outbox that logs each submission.
func NewLogOutbox(logger *zap.Logger) *LogOutbox {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogOutbox{logger: logger}
}

func (o *LogOutbox) Deliver(_ context.Context, s Submission) error {
	o.logger.Info("contact form submitted",
		zap.String("id", s.ID),
		zap.String("name", s.Form.Name),
		zap.String("email", s.Form.Email),
		zap.Int("message_len", len(s.Form.Message)),
	)
	return nil
}

// Submit sanitizes and validates f, then hands it to out. The returned
// submission carries the cleaned form.
func Submit(ctx context.Context, out Outbox, f Form) (*Submission, error) {
	f = f.Sanitized()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	s := Submission{
		ID:        uuid.NewString(),
		Form:      f,
		CreatedAt: time.Now().UTC(),
	}
	if err := out.Deliver(ctx, s); err != nil {
		return nil, fmt.Errorf("delivering submission: %w", err)
	}
	return &s, nil
}
