package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Forhemit/StarterClub-sub002/core/config"
)

// Mailer sends plain-text transactional mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes mail to the log instead of sending it. Used in development.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, body string) error {
	slog.InfoContext(ctx, "mail (log only)", "to", to, "subject", subject, "body", body)
	return nil
}

// New picks the implementation from MAILER_TYPE.
func New(ctx context.Context, cfg config.MailerConfig) (Mailer, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "log":
		return LogMailer{}, nil
	case "ses":
		return NewSESMailer(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown mailer type %q", cfg.Type)
	}
}
