package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/artoc/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndSeen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("c56ffa1b2e3d4a90"))

	f.Add("c56ffa1b2e3d4a90")

	assert.True(t, f.Seen("c56ffa1b2e3d4a90"))
	assert.False(t, f.Seen("0000000000000000"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("hash-1")
	f.Add("hash-2")
	f.Add("hash-3")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("hash-1")
	countAfterFirst := f.EstimatedCount()

	f.Add("hash-1")
	f.Add("hash-1")

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Seen("hash-1"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	for i := range 1000 {
		f.Add(fmt.Sprintf("hash-%d", i))
	}
	for i := range 1000 {
		assert.True(t, f.Seen(fmt.Sprintf("hash-%d", i)))
	}
}
