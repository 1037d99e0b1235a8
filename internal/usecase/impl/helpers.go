package impl

import (
	"strings"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

var fieldValidator = validator.New(validator.WithRequiredStructEnabled())

// notFoundOr maps a repository sentinel to a 404 carrying message and wraps anything else.
func notFoundOr(err, sentinel error, message string) error {
	if errors.Is(err, sentinel) {
		return errors.Wrap(domainerrors.NotFound(message), err.Error())
	}

	return errors.WithStack(err)
}

// requireCapability rejects principals without capability c.
func requireCapability(principal *entity.Principal, c entity.Capability, message string) error {
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}
	if !principal.Can(c) {
		return domainerrors.Forbidden(message)
	}

	return nil
}

// optionalText normalises an optional text field: blank input clears it.
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// validEmail reports whether email is a bare address.
func validEmail(email string) bool {
	return fieldValidator.Var(email, "required,email") == nil
}
