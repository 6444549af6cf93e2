package service

import (
	"github.com/Forhemit/StarterClub-sub002/core/config"
	"github.com/Forhemit/StarterClub-sub002/internal/mailer"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

type Services struct {
	stores       *store.Stores
	txRunner     TxRunner
	publisher    queue.Publisher
	mailer       mailer.Mailer
	directory    IdentityDirectory
	workOSCfg    config.WorkOSConfig
	dashboardURL string
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	publisher queue.Publisher,
	m mailer.Mailer,
	directory IdentityDirectory,
	workOSCfg config.WorkOSConfig,
	dashboardURL string,
) *Services {
	return &Services{
		stores:       stores,
		txRunner:     txRunner,
		publisher:    publisher,
		mailer:       m,
		directory:    directory,
		workOSCfg:    workOSCfg,
		dashboardURL: dashboardURL,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.Tenants(),
		s.workOSCfg,
		s.dashboardURL,
	)
}

func (s *Services) Tenants() TenantService {
	return NewTenantService(s.stores.Businesses())
}

func (s *Services) Catalog() CatalogService {
	return NewCatalogService(s.stores.Modules(), s.txRunner)
}

func (s *Services) Lifecycle() LifecycleService {
	return NewLifecycleService(
		s.Tenants(),
		s.Catalog(),
		s.stores.Modules(),
		s.stores.Installs(),
		s.txRunner,
		s.publisher,
	)
}

func (s *Services) Checklists() ChecklistService {
	return NewChecklistService(
		s.Tenants(),
		s.stores.Installs(),
		s.stores.Checklists(),
		s.txRunner,
		s.publisher,
	)
}

func (s *Services) Onboarding() OnboardingService {
	return NewOnboardingService(s.txRunner, s.stores.Businesses(), s.publisher)
}

func (s *Services) Dashboard() DashboardService {
	return NewDashboardService(s.Tenants(), s.stores.Checklists())
}

func (s *Services) Identity() IdentityService {
	return NewIdentityService(s.txRunner, s.stores.Members())
}

func (s *Services) Billing() BillingService {
	return NewBillingService(
		s.txRunner,
		s.stores.Members(),
		s.stores.Subscriptions(),
		s.directory,
	)
}

func (s *Services) Leads() LeadService {
	return NewLeadService(s.stores.Leads(), s.mailer)
}

func (s *Services) APIKeys() APIKeyService {
	return NewAPIKeyService(s.stores.APIKeys())
}
