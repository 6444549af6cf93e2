package logger

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers enrich the context once (user, business, module) and every log line written
// further down the call chain carries them.
type LogFields struct {
	UserID        *int64     // Authenticated user
	BusinessID    *int64     // Tenant the request acts on
	ModuleID      *uuid.UUID // Module being installed, seeded, ...
	WebhookSource *string    // "workos", "stripe_members", "stripe_partners"
	EventType     *string    // Provider event type (e.g., "user.created")
	Component     string     // Component name (e.g., "starterclub.service.lifecycle")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.UserID != nil {
		result.UserID = new.UserID
	}
	if new.BusinessID != nil {
		result.BusinessID = new.BusinessID
	}
	if new.ModuleID != nil {
		result.ModuleID = new.ModuleID
	}
	if new.WebhookSource != nil {
		result.WebhookSource = new.WebhookSource
	}
	if new.EventType != nil {
		result.EventType = new.EventType
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
