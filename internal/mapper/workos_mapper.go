package mapper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type WorkOSEventMapper struct{}

func NewWorkOSEventMapper() *WorkOSEventMapper {
	return &WorkOSEventMapper{}
}

func (m *WorkOSEventMapper) Map(ctx context.Context, body map[string]any, headers map[string]string) (CanonicalEventType, error) {
	event, _ := body["event"].(string)
	switch event {
	case "user.created", "user.updated":
		return EventUserUpserted, nil
	case "user.deleted":
		return EventUserDeleted, nil
	case "":
		return "", fmt.Errorf("workos payload has no event field")
	}
	return "", fmt.Errorf("%w: %s", ErrIgnoredEvent, event)
}

// WorkOSUser is the "data" object of WorkOS user.* events.
type WorkOSUser struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	ProfilePictureURL string `json:"profile_picture_url"`
	EmailVerified     bool   `json:"email_verified"`
}

func (u WorkOSUser) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

type workosEnvelope struct {
	ID    string          `json:"id"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// IdentityChange is a WorkOS event reduced to what the identity service writes.
type IdentityChange struct {
	Type    CanonicalEventType
	EventID string
	User    WorkOSUser
}

// TranslateWorkOS decodes a verified WorkOS webhook body.
func TranslateWorkOS(ctx context.Context, payload []byte) (*IdentityChange, error) {
	var env workosEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("decoding workos event: %w", err)
	}

	eventType, err := NewWorkOSEventMapper().Map(ctx, map[string]any{"event": env.Event}, nil)
	if err != nil {
		return nil, err
	}

	var user WorkOSUser
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("decoding workos user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("workos %s event has no user id", env.Event)
	}
	if eventType == EventUserUpserted && user.Email == "" {
		return nil, fmt.Errorf("workos %s event has no email", env.Event)
	}

	return &IdentityChange{
		Type:    eventType,
		EventID: env.ID,
		User:    user,
	}, nil
}
