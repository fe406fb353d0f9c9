package service

import (
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct converts validator failures into *entities.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return entities.NewValidationError(utils.ValidationFields(err))
	}
	return fmt.Errorf("failed to validate: %w", err)
}
