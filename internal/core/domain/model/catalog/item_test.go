package catalog_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should default unit to piece", func(t *testing.T) {
		item, err := catalog.NewItem("samosa", "Samosa", 15, "", true)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "piece", item.Unit())
		assert.True(t, item.Available())
		assert.InDelta(t, 90.0, item.LineTotal(6), 0.0001)
	})

	t.Run("should reject missing fields and negative price", func(t *testing.T) {
		_, err := catalog.NewItem("", "", -1, "kg", true)

		assert.ErrorIs(t, err, catalog.ErrSKUIsRequired)
		assert.ErrorIs(t, err, catalog.ErrNameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		assert.Equal(t, catalog.ErrItemIsNotConstructed, catalog.Item{}.Validate())
	})
}

func TestItem_Matches(t *testing.T) {
	item, err := catalog.NewItem("surmai", "Surmai (King Fish)", 1200, "kg", true)
	require.NoError(t, err)

	assert.True(t, item.Matches("SURMAI"))
	assert.True(t, item.Matches("king"))
	assert.True(t, item.Matches(" fish "))
	assert.False(t, item.Matches("prawn"))
	assert.False(t, item.Matches(""))
}
