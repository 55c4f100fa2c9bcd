package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type proofSlot struct {
		name  string
		guard guard.ConstructorGuard
	}

	var errSlotNotConstructed = errors.New("proofSlot must be created via newProofSlot")

	newProofSlot := func(name string) (proofSlot, error) {
		if name == "" {
			return proofSlot{}, errors.New("name is required")
		}
		return proofSlot{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		slot, err := newProofSlot("entrance-photo")
		require.NoError(t, err)
		require.NoError(t, slot.guard.Validate(errSlotNotConstructed))
		assert.Equal(t, "entrance-photo", slot.name)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var slot proofSlot
		err := slot.guard.Validate(errSlotNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errSlotNotConstructed, err)
	})
}
