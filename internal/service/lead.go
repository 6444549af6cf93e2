package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/internal/mailer"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

type LeadService interface {
	// Submit records a lead keyed by (email, source) and mails a confirmation.
	// A failed confirmation mail does not fail the submission.
	Submit(ctx context.Context, lead *model.Lead) error
	List(ctx context.Context, source *model.LeadSource, limit, offset int32) ([]model.Lead, error)
}

type leadService struct {
	leadStore store.LeadStore
	mailer    mailer.Mailer
}

func NewLeadService(leadStore store.LeadStore, m mailer.Mailer) LeadService {
	return &leadService{
		leadStore: leadStore,
		mailer:    m,
	}
}

func (s *leadService) Submit(ctx context.Context, lead *model.Lead) error {
	if !lead.Source.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLeadSource, lead.Source)
	}
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	lead.Name = strings.TrimSpace(lead.Name)
	lead.ID = id.New()

	if err := s.leadStore.Upsert(ctx, lead); err != nil {
		return fmt.Errorf("saving lead: %w", err)
	}

	slog.InfoContext(ctx, "lead captured", "lead_id", lead.ID, "source", lead.Source)

	if s.mailer == nil {
		return nil
	}
	subject, body := confirmationMail(lead)
	if err := s.mailer.Send(ctx, lead.Email, subject, body); err != nil {
		slog.ErrorContext(ctx, "failed to send lead confirmation",
			"error", err,
			"lead_id", lead.ID,
			"source", lead.Source,
		)
	}
	return nil
}

func (s *leadService) List(ctx context.Context, source *model.LeadSource, limit, offset int32) ([]model.Lead, error) {
	leads, err := s.leadStore.List(ctx, source, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return leads, nil
}

func confirmationMail(lead *model.Lead) (subject, body string) {
	greeting := "Hi"
	if lead.Name != "" {
		greeting = "Hi " + lead.Name
	}

	switch lead.Source {
	case model.LeadSourcePartner:
		return "Thanks for your interest in partnering with Starter Club",
			greeting + ",\n\nWe received your partner inquiry and will reach out within two business days.\n\nStarter Club"
	case model.LeadSourceContact:
		return "We got your message",
			greeting + ",\n\nThanks for contacting Starter Club. Someone from the team will reply shortly.\n\nStarter Club"
	default:
		return "You're on the Starter Club waitlist",
			greeting + ",\n\nYou're on the list. We'll email you as soon as your spot opens up.\n\nStarter Club"
	}
}
