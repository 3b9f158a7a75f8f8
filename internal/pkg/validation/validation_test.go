package validation_test

import (
	"testing"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	SKU      string  `json:"sku" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

type input struct {
	Name  string `json:"customer_name" validate:"required"`
	Lines []line `json:"items" validate:"required,min=1,dive"`
}

func TestStruct(t *testing.T) {
	v := validation.New()

	t.Run("should pass valid input", func(t *testing.T) {
		err := validation.Struct(v, input{Name: "Neha", Lines: []line{{SKU: "chai", Quantity: 2}}})

		require.NoError(t, err)
	})

	t.Run("should report required fields by json name", func(t *testing.T) {
		err := validation.Struct(v, input{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer_name")
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should report nested rule failures as invalid", func(t *testing.T) {
		err := validation.Struct(v, input{Name: "Neha", Lines: []line{{SKU: "chai", Quantity: -1}}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "items[0].quantity")
		assert.Contains(t, err.Error(), "gt=0")
	})

	t.Run("should wrap non-struct input", func(t *testing.T) {
		err := validation.Struct(v, 42)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
