package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	// Same content = same hash
	assert.Equal(t, Hash([]byte("# Note")), Hash([]byte("# Note")))
	// Different contents = different hashes
	assert.NotEqual(t, Hash([]byte("# Note")), Hash([]byte("# Note\n")))
	// MD5 of the empty string
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Hash(nil))
}
