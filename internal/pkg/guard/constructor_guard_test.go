package guard_test

import (
	"errors"
	"sync"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardEmbedded shows the guard inside a value object.
func TestConstructorGuardEmbedded(t *testing.T) {
	type phone struct {
		number string
		guard  guard.ConstructorGuard
	}

	errPhoneNotConstructed := errors.New("phone must be created via newPhone")
	newPhone := func(number string) (phone, error) {
		if number == "" {
			return phone{}, errors.New("number is required")
		}
		return phone{number: number, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		p, err := newPhone("919876500001")
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPhoneNotConstructed))
	})

	t.Run("literal_value_fails", func(t *testing.T) {
		p := phone{number: "919876500001"}
		require.ErrorIs(t, p.guard.Validate(errPhoneNotConstructed), errPhoneNotConstructed)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		p, err := newPhone("")
		require.Error(t, err)
		require.ErrorIs(t, p.guard.Validate(errPhoneNotConstructed), errPhoneNotConstructed)
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
