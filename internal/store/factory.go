package store

import (
	"github.com/Forhemit/StarterClub-sub002/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Businesses() BusinessStore {
	return newBusinessStore(s.queries)
}

func (s *Stores) Modules() ModuleStore {
	return newModuleStore(s.queries)
}

func (s *Stores) Installs() InstallStore {
	return newInstallStore(s.queries)
}

func (s *Stores) Checklists() ChecklistStore {
	return newChecklistStore(s.queries)
}

func (s *Stores) Members() MemberStore {
	return newMemberStore(s.queries)
}

func (s *Stores) Subscriptions() SubscriptionStore {
	return newSubscriptionStore(s.queries)
}

func (s *Stores) Leads() LeadStore {
	return newLeadStore(s.queries)
}

func (s *Stores) APIKeys() APIKeyStore {
	return newAPIKeyStore(s.queries)
}
