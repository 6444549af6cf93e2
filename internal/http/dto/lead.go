package dto

import (
	"time"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type CreateLeadRequest struct {
	Email   string  `json:"email" binding:"required,email,max=255"`
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Company *string `json:"company,omitempty" binding:"omitempty,max=255"`
	Source  string  `json:"source" binding:"required,lead_source"`
	Message *string `json:"message,omitempty" binding:"omitempty,max=5000"`
}

func (r CreateLeadRequest) ToModel() *model.Lead {
	return &model.Lead{
		Email:   r.Email,
		Name:    r.Name,
		Company: r.Company,
		Source:  model.LeadSource(r.Source),
		Message: r.Message,
	}
}

type ListLeadsQuery struct {
	PageQuery
	Source string `form:"source" binding:"omitempty,lead_source"`
}

type LeadResponse struct {
	ID        int64     `json:"id,string"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Company   *string   `json:"company,omitempty"`
	Source    string    `json:"source"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToLeadResponse(l *model.Lead) LeadResponse {
	return LeadResponse{
		ID:        l.ID,
		Email:     l.Email,
		Name:      l.Name,
		Company:   l.Company,
		Source:    string(l.Source),
		Message:   l.Message,
		CreatedAt: l.CreatedAt,
	}
}
