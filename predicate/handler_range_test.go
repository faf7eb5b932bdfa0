package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryfilter-go/queryfilter/filter"
)

func TestRangeHandler_ExclusiveBounds(t *testing.T) {
	between, err := CompileCriterion[Entity](
		filter.NewCriterion("Id", "ID", filter.OpBetween, filter.Int(10), filter.Int(20)))
	require.NoError(t, err)
	notBetween, err := CompileCriterion[Entity](
		filter.NewCriterion("Id", "ID", filter.OpNotBetween, filter.Int(10), filter.Int(20)))
	require.NoError(t, err)

	tests := []struct {
		id         int
		inBetween  bool
		outBetween bool
	}{
		{id: 15, inBetween: true, outBetween: false},
		{id: 10, inBetween: false, outBetween: false}, // boundary satisfies neither
		{id: 20, inBetween: false, outBetween: false},
		{id: 9, inBetween: false, outBetween: true},
		{id: 21, inBetween: false, outBetween: true},
	}
	for _, tt := range tests {
		e := Entity{ID: tt.id}
		assert.Equal(t, tt.inBetween, between(e), "between for %d", tt.id)
		assert.Equal(t, tt.outBetween, notBetween(e), "notbetween for %d", tt.id)
	}
}

func TestRangeHandler_FloatAndTimeBounds(t *testing.T) {
	pred, err := CompileCriterion[Entity](
		filter.NewCriterion("Price", "Price", filter.OpBetween, filter.Float(10.5), filter.Float(30)))
	require.NoError(t, err)
	assert.True(t, pred(Entity{Price: 24.5}))
	assert.False(t, pred(Entity{Price: 30}))

	created, err := CompileCriterion[Entity](
		filter.NewCriterion("Created", "Created", filter.OpBetween,
			filter.String("2026-01-01T00:00:00Z"), filter.String("2026-02-01T00:00:00Z")))
	require.NoError(t, err)
	assert.True(t, created(sampleEntity()))
	assert.False(t, created(Entity{}))
}

// Equal bounds collapse in the deduplicated value set, leaving fewer
// than two literals; both range operators then compile to
// always-false instead of erroring.
func TestRangeHandler_CollapsedBounds(t *testing.T) {
	for _, op := range []filter.Operator{filter.OpBetween, filter.OpNotBetween} {
		pred, err := CompileCriterion[Entity](
			filter.NewCriterion("Id", "ID", op, filter.Int(10), filter.Int(10)))
		require.NoError(t, err)
		assert.False(t, pred(Entity{ID: 10}), "%s with collapsed bounds", op)
		assert.False(t, pred(Entity{ID: 999}), "%s with collapsed bounds", op)
	}
}

func TestRangeHandler_SingleValue(t *testing.T) {
	pred, err := CompileCriterion[Entity](
		filter.NewCriterion("Id", "ID", filter.OpBetween, filter.Int(10)))
	require.NoError(t, err)
	assert.False(t, pred(Entity{ID: 15}))
}

// Reversed bounds are not swapped: the literal formula makes Between
// constantly false and NotBetween constantly true.
func TestRangeHandler_ReversedBounds(t *testing.T) {
	between, err := CompileCriterion[Entity](
		filter.NewCriterion("Id", "ID", filter.OpBetween, filter.Int(20), filter.Int(10)))
	require.NoError(t, err)
	notBetween, err := CompileCriterion[Entity](
		filter.NewCriterion("Id", "ID", filter.OpNotBetween, filter.Int(20), filter.Int(10)))
	require.NoError(t, err)

	for _, id := range []int{5, 10, 15, 20, 25} {
		assert.False(t, between(Entity{ID: id}), "between reversed for %d", id)
		assert.True(t, notBetween(Entity{ID: id}), "notbetween reversed for %d", id)
	}
}

func TestRangeHandler_NullBoundIsFatal(t *testing.T) {
	_, err := CompileCriterion[Entity](
		filter.NewCriterion("Id", "ID", filter.OpBetween, filter.Int(10), filter.Null()))
	var be *BoundError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, filter.OpBetween, be.Operator)
	assert.Contains(t, err.Error(), "between")
}

func TestRangeHandler_UncoercibleBoundIsFatal(t *testing.T) {
	_, err := CompileCriterion[Entity](
		filter.NewCriterion("Id", "ID", filter.OpNotBetween, filter.String("abc"), filter.Int(10)))
	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, filter.OpNotBetween, ce.Operator)
}

func TestRangeHandler_MissingIntermediateUsesTypeDefault(t *testing.T) {
	pred, err := CompileCriterion[Entity](
		filter.NewCriterion("Supplier.Rank", "Supplier.Rank", filter.OpBetween,
			filter.Int(-5), filter.Int(5)))
	require.NoError(t, err)
	assert.True(t, pred(Entity{}), "default 0 lies inside (-5,5)")
}
