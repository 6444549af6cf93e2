package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"github.com/Forhemit/StarterClub-sub002/internal/mapper"
)

// IdentityDirectory looks users up in the identity provider's admin API.
type IdentityDirectory interface {
	// FindUserByEmail returns nil, nil when no user has that email.
	FindUserByEmail(ctx context.Context, email string) (*mapper.WorkOSUser, error)
}

type workOSDirectory struct{}

// NewWorkOSDirectory relies on the API key set by NewAuthService.
func NewWorkOSDirectory() IdentityDirectory {
	return workOSDirectory{}
}

func (workOSDirectory) FindUserByEmail(ctx context.Context, email string) (*mapper.WorkOSUser, error) {
	resp, err := usermanagement.ListUsers(ctx, usermanagement.ListUsersOpts{
		Email: strings.ToLower(strings.TrimSpace(email)),
		Limit: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("listing workos users: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}

	u := resp.Data[0]
	return &mapper.WorkOSUser{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
		EmailVerified:     u.EmailVerified,
	}, nil
}
