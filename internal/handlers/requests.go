package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// PreviewRequest defines the query of the frame preview and image endpoints.
type PreviewRequest struct {
	FID     string `query:"userfid" validate:"required,number"`
	Variant string `query:"variant" validate:"omitempty,max=64"`
}

// FarscoreRequest defines the query of the profile proxy endpoint.
type FarscoreRequest struct {
	UserID string `query:"userId" validate:"required"`
}
