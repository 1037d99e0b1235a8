package validator

import (
	"testing"

	domainerrors "eventhub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Token  string  `json:"refresh_token" validate:"required"`
	Email  string  `json:"email" validate:"omitempty,email"`
	Status *string `json:"status" validate:"omitnil,oneof=pending confirmed"`
	UserID *uint   `json:"user_id" validate:"omitnil,gt=0"`
	Name   string  `json:"name" validate:"max=5"`
}

func strPtr(s string) *string { return &s }

func TestValidate(t *testing.T) {
	zero := uint(0)

	tests := []struct {
		name    string
		input   sample
		message string
	}{
		{name: "valid", input: sample{Token: "t", Email: "a@b.co", Status: strPtr("pending")}},
		{name: "required uses json name", input: sample{}, message: "refresh_token is required."},
		{name: "email", input: sample{Token: "t", Email: "nope"}, message: "Invalid email address."},
		{name: "oneof", input: sample{Token: "t", Status: strPtr("maybe")}, message: "status must be one of: pending, confirmed."},
		{name: "gt", input: sample{Token: "t", UserID: &zero}, message: "user_id must be greater than 0."},
		{name: "max", input: sample{Token: "t", Name: "toolong"}, message: "name must be at most 5."},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}
