package refdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"orderdesk/internal/adapters/out/refdata"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	ctx := t.Context()
	d, err := refdata.LoadDefault()
	require.NoError(t, err)

	t.Run("should expose business profile", func(t *testing.T) {
		p, err := d.Profile(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Manglore FishMonger", p.Name)
		assert.Equal(t, "INR", p.CurrencyCode())
	})

	t.Run("should keep menu order", func(t *testing.T) {
		items, err := d.ListAll(ctx)

		require.NoError(t, err)
		require.NotEmpty(t, items)
		assert.Equal(t, "surmai", items[0].SKU())

		skus := make([]string, 0, len(items))
		for _, item := range items {
			skus = append(skus, item.SKU())
		}
		assert.Contains(t, skus, "chai")
		assert.Contains(t, skus, "samosa")
	})

	t.Run("should resolve the three agents", func(t *testing.T) {
		agents, err := d.List(ctx)
		require.NoError(t, err)
		require.Len(t, agents, 3)

		raj, err := d.Get(ctx, "agent_3")
		require.NoError(t, err)
		assert.Equal(t, "Raj", raj.Name())
		assert.Equal(t, "917771112223", raj.Contact())
	})

	t.Run("should report unknown agent", func(t *testing.T) {
		_, err := d.Get(ctx, "agent_9")

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestParse(t *testing.T) {
	t.Run("should reject duplicate skus", func(t *testing.T) {
		_, err := refdata.Parse([]byte(`
business: {name: Cafe, contact: "1"}
menu:
  - {sku: chai, name: Chai, price: 20}
  - {sku: chai, name: Cutting Chai, price: 10}
`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate sku")
	})

	t.Run("should require a menu", func(t *testing.T) {
		_, err := refdata.Parse([]byte(`business: {name: Cafe, contact: "1"}`))

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed yaml", func(t *testing.T) {
		_, err := refdata.Parse([]byte("menu: [unclosed"))

		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
business: {name: Corner Cafe, contact: "+911234", currency: usd}
menu:
  - {sku: latte, name: Latte, price: 4.5, unit: cup, available: true}
agents:
  - {id: rider_1, name: Kim, contact: "555"}
`), 0o600))

	d, err := refdata.LoadFile(path)

	require.NoError(t, err)
	p, _ := d.Profile(t.Context())
	assert.Equal(t, "USD", p.CurrencyCode())
	items, _ := d.ListAll(t.Context())
	require.Len(t, items, 1)
	assert.Equal(t, "cup", items[0].Unit())

	_, err = refdata.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
