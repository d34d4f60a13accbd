package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habibieebhy/fieldforce-backend/internal/query"
)

func TestRegistryIsWellFormed(t *testing.T) {
	assert.Len(t, All, 11)

	seen := make(map[string]bool)
	for _, d := range All {
		require.NotEmpty(t, d.Name)
		assert.False(t, seen[d.Name], "duplicate collection %q", d.Name)
		seen[d.Name] = true

		require.NotNil(t, d.Model, d.Name)
		require.NotNil(t, d.Slice, d.Name)
		assert.NotEmpty(t, d.DefaultSort, d.Name)

		// Every sort key must resolve to a real column string.
		for key, col := range d.SortKeys {
			assert.NotEmpty(t, col, "%s sort key %q", d.Name, key)
		}
	}
}

func TestByName(t *testing.T) {
	d := ByName("sales-orders")
	require.NotNil(t, d)
	assert.Equal(t, query.IDString, d.IDKind)

	assert.Nil(t, ByName("no-such-collection"))
	assert.Same(t, Dealers, ByName(DealersName))
}

func TestDealersDescriptor(t *testing.T) {
	require.NotNil(t, Dealers.Parent)
	assert.Equal(t, "parent_dealer_id", Dealers.Parent.Column)
	require.Len(t, Dealers.Arrays, 1)
	assert.Equal(t, "brand_selling", Dealers.Arrays[0].Column)

	// Dealer writes bypass the generic patch path entirely.
	assert.Empty(t, Dealers.Patchable)
}

// uuid- and date-backed params must carry their typed kind so malformed
// values are dropped before they reach the column.
func TestUUIDAndDateParamsAreTyped(t *testing.T) {
	uuidColumns := map[string]bool{
		"user_id": true, "dealer_id": true, "created_by_id": true, "salesman_id": true,
	}
	for _, d := range All {
		for _, sf := range d.Scalars {
			if uuidColumns[sf.Column] {
				assert.Equal(t, query.UUID, sf.Kind, "%s %s", d.Name, sf.Param)
			}
		}
	}

	att := ByName("salesman-attendance")
	require.NotNil(t, att)
	for _, sf := range att.Scalars {
		if sf.Param == "attendanceDate" {
			assert.Equal(t, query.Date, sf.Kind)
		}
	}
}
