package order_test

import (
	"math"
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should trim fields", func(t *testing.T) {
		c, err := order.NewCustomer(" Arjun ", " 919876500002")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Arjun", c.Name())
		assert.Equal(t, "919876500002", c.Phone())
	})

	t.Run("should require name and phone", func(t *testing.T) {
		_, err := order.NewCustomer("", "  ")

		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
		assert.ErrorIs(t, err, order.ErrCustomerPhoneIsRequired)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		assert.Equal(t, order.ErrCustomerIsNotConstructed, order.Customer{}.Validate())
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should accept fractional quantity", func(t *testing.T) {
		item, err := order.NewItem("surmai", 1.5)

		require.NoError(t, err)
		assert.Equal(t, "surmai", item.SKU())
		assert.InDelta(t, 1.5, item.Quantity(), 0.0001)
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		for _, q := range []float64{0, -2, math.NaN(), math.Inf(1)} {
			_, err := order.NewItem("chai", q)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should require sku", func(t *testing.T) {
		_, err := order.NewItem(" ", 1)

		assert.ErrorIs(t, err, order.ErrSKUIsRequired)
	})
}

func TestNewPaymentRequest(t *testing.T) {
	t.Run("should normalise currency", func(t *testing.T) {
		pr, err := order.NewPaymentRequest(250, "inr")

		require.NoError(t, err)
		assert.Equal(t, "INR", pr.Currency())
		assert.Equal(t, "INR 250.00", pr.String())
	})

	t.Run("should reject unknown currency", func(t *testing.T) {
		_, err := order.NewPaymentRequest(250, "XYZ1")

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "currency", invalid.ParamName)
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		_, err := order.NewPaymentRequest(0, "INR")

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "amount", invalid.ParamName)
	})
}
