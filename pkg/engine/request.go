package engine

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/germanamz/minutes/pkg/apierror"
)

// User-facing validation reasons.
const (
	MsgMissingNotes      = "Please enter some meeting notes to summarize."
	MsgMissingCredential = "Please enter your API key in the settings."
)

// RequestContext is the input of one summarization cycle.
type RequestContext struct {
	Notes      string `validate:"notblank"`
	ProviderID string
	Credential string `validate:"notblank"` //nolint:gosec // caller-supplied secret, never logged
}

var fieldMessages = map[string]string{
	"Notes":      MsgMissingNotes,
	"Credential": MsgMissingCredential,
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank is a fixed, well-formed registration.
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return v
}

// validateRequest returns a KindValidation error for the first invalid field
// of rc, notes before credential.
func validateRequest(v *validator.Validate, rc RequestContext) error {
	err := v.Struct(rc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].Field()]; ok {
			return apierror.Validation(msg)
		}
	}

	return apierror.Validation(err.Error())
}
