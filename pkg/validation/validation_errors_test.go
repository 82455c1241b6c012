package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestFormatValidationErrors(t *testing.T) {
	t.Run("Field errors become labeled messages", func(t *testing.T) {
		v := validator.New()
		type signup struct {
			Email    string `validate:"required,email"`
			Password string `validate:"required,min=6"`
		}
		err := v.Struct(signup{Email: "not-an-email", Password: "abc"})

		messages := FormatValidationErrors(err)
		assert.Len(t, messages, 2)
		assert.Contains(t, messages[0], "Email must be a valid email address")
		assert.Contains(t, messages[1], "Password must be at least 6 characters")
	})

	t.Run("Non-field errors stay generic", func(t *testing.T) {
		// malformed JSON and type mismatches surface as plain errors; the
		// decoder's text must not leak into the envelope
		decodeErr := errors.New("json: cannot unmarshal string into Go struct field JobRequest.pay of type float64")

		messages := FormatValidationErrors(decodeErr)
		assert.Equal(t, []string{"Invalid request body"}, messages)
	})
}
