package model

import "time"

type Role string

const (
	RoleMember        Role = "member"
	RoleMemberPro     Role = "member_pro"
	RoleFounder       Role = "founder"
	RolePartner       Role = "partner"
	RolePartnerPlus   Role = "partner_plus"
	RoleSponsor       Role = "sponsor"
	RolePartnerLapsed Role = "partner_lapsed"
)

type Member struct {
	ID               int64     `json:"id"`
	UserID           *int64    `json:"user_id,omitempty"`
	WorkOSUserID     *string   `json:"workos_user_id,omitempty"`
	Email            string    `json:"email"`
	Role             Role      `json:"role"`
	StripeCustomerID *string   `json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Audience selects which billing role table a subscription is mapped through.
type Audience string

const (
	AudienceMember  Audience = "member"
	AudiencePartner Audience = "partner"
)

type Subscription struct {
	ID               string     `json:"id"`
	StripeCustomerID string     `json:"stripe_customer_id"`
	MemberID         *int64     `json:"member_id,omitempty"`
	Audience         Audience   `json:"audience"`
	Status           string     `json:"status"`
	PlanSlug         string     `json:"plan_slug"`
	Role             Role       `json:"role"`
	Addons           []string   `json:"addons"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	CanceledAt       *time.Time `json:"canceled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
