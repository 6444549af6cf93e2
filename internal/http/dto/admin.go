package dto

import (
	"time"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type APIKeyResponse struct {
	ID         int64      `json:"id,string"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToAPIKeyResponse(k *model.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:         k.ID,
		Name:       k.Name,
		Prefix:     k.Prefix,
		LastUsedAt: k.LastUsedAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
	}
}

// CreateAPIKeyResponse carries the full token. It is never returned again.
type CreateAPIKeyResponse struct {
	APIKeyResponse
	Token string `json:"token"`
}

type PageQuery struct {
	Limit  int32 `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int32 `form:"offset" binding:"omitempty,min=0"`
}

func (q PageQuery) LimitOr(fallback int32) int32 {
	if q.Limit == 0 {
		return fallback
	}
	return q.Limit
}

type MemberResponse struct {
	ID               int64     `json:"id,string"`
	UserID           *int64    `json:"user_id,omitempty,string"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	StripeCustomerID *string   `json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToMemberResponse(m *model.Member) MemberResponse {
	return MemberResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		Email:            m.Email,
		Role:             string(m.Role),
		StripeCustomerID: m.StripeCustomerID,
		CreatedAt:        m.CreatedAt,
	}
}

type ResetResponse struct {
	Deleted int64 `json:"deleted"`
}
