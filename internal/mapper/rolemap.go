package mapper

import (
	"strings"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

// PlanItem is one billed price on a subscription.
type PlanItem struct {
	Slug     string
	Metadata map[string]string
}

// RoleTable maps billed product slugs to a role. Member and partner billing
// use different tables with different add-on rules.
type RoleTable struct {
	Audience model.Audience
	Default  model.Role
	Roles    map[string]model.Role
	// Ranked highest first. A role absent from Rank loses to every ranked role.
	Rank    []model.Role
	IsAddon func(item PlanItem) bool
}

// MemberPlans flags add-ons through price metadata addon=true.
var MemberPlans = RoleTable{
	Audience: model.AudienceMember,
	Default:  model.RoleMember,
	Roles: map[string]model.Role{
		"member-monthly": model.RoleMember,
		"member-annual":  model.RoleMember,
		"member-pro":     model.RoleMemberPro,
		"founder":        model.RoleFounder,
		"founder-annual": model.RoleFounder,
	},
	Rank: []model.Role{model.RoleFounder, model.RoleMemberPro, model.RoleMember},
	IsAddon: func(item PlanItem) bool {
		return strings.EqualFold(item.Metadata["addon"], "true")
	},
}

// PartnerPlans flags add-ons by a "-addon" slug suffix.
var PartnerPlans = RoleTable{
	Audience: model.AudiencePartner,
	Default:  model.RolePartnerLapsed,
	Roles: map[string]model.Role{
		"partner":        model.RolePartner,
		"partner-plus":   model.RolePartnerPlus,
		"sponsor":        model.RoleSponsor,
		"sponsor-annual": model.RoleSponsor,
	},
	Rank: []model.Role{model.RoleSponsor, model.RolePartnerPlus, model.RolePartner},
	IsAddon: func(item PlanItem) bool {
		return strings.HasSuffix(item.Slug, "-addon")
	},
}

// Resolve picks the highest-ranked role among non add-on items. Add-on slugs
// are returned separately. With no recognised plan the table default applies.
func (t RoleTable) Resolve(items []PlanItem) (role model.Role, planSlug string, addons []string) {
	role = t.Default
	best := -1

	for _, item := range items {
		if item.Slug == "" {
			continue
		}
		if t.IsAddon != nil && t.IsAddon(item) {
			addons = append(addons, item.Slug)
			continue
		}
		if planSlug == "" {
			planSlug = item.Slug
		}
		r, ok := t.Roles[item.Slug]
		if !ok {
			continue
		}
		if rank := t.rank(r); best == -1 || rank < best {
			best = rank
			role = r
			planSlug = item.Slug
		}
	}

	return role, planSlug, addons
}

func (t RoleTable) rank(r model.Role) int {
	for i, ranked := range t.Rank {
		if ranked == r {
			return i
		}
	}
	return len(t.Rank)
}

// MemberRole derives the role of a member from all of their subscriptions.
// Only subscriptions whose status grants a role count. A live member plan
// outranks any partner plan, and within a table its Rank decides. With
// nothing live the default of the fallback audience's table applies.
func MemberRole(subs []model.Subscription, fallback model.Audience) model.Role {
	for _, table := range []RoleTable{MemberPlans, PartnerPlans} {
		best := -1
		var role model.Role
		for _, sub := range subs {
			if sub.Audience != table.Audience || !GrantsRole(sub.Status) {
				continue
			}
			if rank := table.rank(sub.Role); best == -1 || rank < best {
				best = rank
				role = sub.Role
			}
		}
		if best != -1 {
			return role
		}
	}
	return RoleTableFor(fallback).Default
}

// RoleTableFor returns the table for an audience.
func RoleTableFor(audience model.Audience) RoleTable {
	if audience == model.AudiencePartner {
		return PartnerPlans
	}
	return MemberPlans
}
