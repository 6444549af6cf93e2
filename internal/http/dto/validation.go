package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

// RegisterValidators installs the custom binding tags used by request DTOs:
// checklist_status and lead_source.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	if err := v.RegisterValidation("checklist_status", func(fl validator.FieldLevel) bool {
		return model.ChecklistStatus(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	return v.RegisterValidation("lead_source", func(fl validator.FieldLevel) bool {
		return model.LeadSource(fl.Field().String()).Valid()
	})
}
