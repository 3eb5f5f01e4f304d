package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tms/pkg/domain-errors"
)

func TestMinistryList(t *testing.T) {
	list := MustMinistryList("Finance", "Forests", "Health")

	t.Run("positional access", func(t *testing.T) {
		assert.Equal(t, 3, list.Len())
		assert.Equal(t, Ministry("Finance"), list.At(0))
		assert.Equal(t, 2, list.Index("Health"))
		assert.Equal(t, -1, list.Index("Labour"))
		assert.True(t, list.Contains("Forests"))
		assert.False(t, list.Contains("forests"))
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		all := list.All()
		all[0] = "Treasury"
		strs := list.Strings()
		strs[1] = "Treasury"

		assert.Equal(t, []Ministry{"Finance", "Forests", "Health"}, list.All())
	})

	t.Run("marshals as ordered strings", func(t *testing.T) {
		b, err := json.Marshal(list)
		require.NoError(t, err)
		assert.JSONEq(t, `["Finance","Forests","Health"]`, string(b))
	})

	t.Run("at panics out of range", func(t *testing.T) {
		assert.Panics(t, func() { list.At(3) })
	})
}

func TestNewMinistryList_Invariants(t *testing.T) {
	_, err := NewMinistryList("Finance", "Finance")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	assert.EqualError(t, err, `invariant_violation: duplicate ministry "Finance"`)

	_, err = NewMinistryList("Finance", "")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	assert.ErrorContains(t, err, "ministry 1: name is required")

	assert.Panics(t, func() { MustMinistryList("") })
}
