package debugmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueHasNoNames(t *testing.T) {
	d := New()
	assert.False(t, d.HasFileName())
	assert.False(t, d.HasSourceName())
	assert.Equal(t, "line 0", d.String())
}

func TestFromMetadataPopulatesFields(t *testing.T) {
	d := FromMetadata(10, 12, "intro.ink", "intro")
	assert.True(t, d.HasFileName())
	assert.True(t, d.HasSourceName())
	assert.Equal(t, "line 10 of intro.ink", d.String())
}
