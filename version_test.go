package definite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0.0", Version())
	assert.Equal(t, "1.0.0-alpha", FullVersion())
}
