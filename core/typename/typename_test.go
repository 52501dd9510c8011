package typename

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct{ V int }

func TestOf(t *testing.T) {
	name := Of(sample{})
	require.Equal(t, "github.com/codewandler/troupe-go/core/typename.sample", name)
}

func TestOf_pointer(t *testing.T) {
	require.Equal(t, Of(sample{}), Of(&sample{}))
}

func TestFor(t *testing.T) {
	require.Equal(t, Of(sample{}), For[sample]())
	require.Equal(t, Of(sample{}), For[*sample]())
}

func TestForType_nil(t *testing.T) {
	require.Equal(t, "", ForType(nil))
}

func TestOf_cached(t *testing.T) {
	// Two lookups must agree; the second is served from the cache.
	first := Of(sample{})
	second := Of(sample{})
	require.Equal(t, first, second)
}
