package validator

import (
	"testing"

	domainerrors "apparel/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"omitempty,phone"`
	Password        string   `json:"password" validate:"required,min=8"`
	ConfirmPassword string   `json:"confirm_password" validate:"eqfield=Password"`
	Sizes           []string `json:"sizes" validate:"dive,apparel_size"`
	Kind            string   `json:"kind" validate:"omitempty,oneof=billing shipping"`
	Quantity        int      `validate:"max=10"`
	Ignored         string   `json:"-"`
}

func validRequest() signupRequest {
	return signupRequest{
		Email:           "ada@example.com",
		Phone:           "+44 20 7946 0958",
		Password:        "analytical",
		ConfirmPassword: "analytical",
		Sizes:           []string{"S", "XXL"},
		Kind:            "shipping",
		Quantity:        3,
	}
}

func details(t *testing.T, err error) string {
	t.Helper()

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)

	return baseErr.Details()
}

func TestValidator_Valid(t *testing.T) {
	req := validRequest()

	assert.NoError(t, New().Validate(&req))
}

func TestValidator_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*signupRequest)
		want   string
	}{
		{"required", func(r *signupRequest) { r.Email = "" }, "email is required"},
		{"email", func(r *signupRequest) { r.Email = "ada" }, "email must be a valid e-mail address"},
		{"phone", func(r *signupRequest) { r.Phone = "call me" }, "phone must be a valid phone number"},
		{"min", func(r *signupRequest) { r.Password = "short"; r.ConfirmPassword = "short" }, "password must be at least 8"},
		{"eqfield", func(r *signupRequest) { r.ConfirmPassword = "different" }, "confirm_password must match password"},
		{"size", func(r *signupRequest) { r.Sizes = []string{"M", "XXXL"} }, "sizes[1] must be one of S, M, L, XL or XXL"},
		{"oneof", func(r *signupRequest) { r.Kind = "gift" }, "kind must be one of [billing shipping]"},
		{"untagged field", func(r *signupRequest) { r.Quantity = 11 }, "quantity must be at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			assert.Equal(t, tt.want, details(t, New().Validate(&req)))
		})
	}
}

func TestValidator_JoinsEveryFailure(t *testing.T) {
	req := validRequest()
	req.Email = ""
	req.Kind = "gift"

	assert.Equal(t, "email is required; kind must be one of [billing shipping]", details(t, New().Validate(&req)))
}

func TestValidator_Phone(t *testing.T) {
	v := New()

	for _, phone := range []string{"+1 (555) 010-9999", "0912345678", "+886912345678"} {
		req := validRequest()
		req.Phone = phone
		assert.NoError(t, v.Validate(&req), phone)
	}

	for _, phone := range []string{"12345", "+", "555-CALL-NOW", "+1 555 010 9999 9999 9999"} {
		req := validRequest()
		req.Phone = phone
		assert.Error(t, v.Validate(&req), phone)
	}
}
