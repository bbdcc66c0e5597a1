package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "egid/pkg/domain-errors"
)

// validate is shared; validator caches struct metadata per instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeRequest is the HTTP request body for POST /national-id/decode.
type DecodeRequest struct {
	NationalID string `json:"national_id" validate:"required,max=64"`
}

// Validate trims the ID and checks request-level constraints. The 14-digit
// format is left to the decoder so its error kind reaches the caller.
func (r *DecodeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.NationalID = strings.TrimSpace(r.NationalID)

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
			return dErrors.New(dErrors.CodeValidation, "national_id must be at most 64 characters")
		}
		return dErrors.New(dErrors.CodeValidation, "national_id is required")
	}
	return nil
}
