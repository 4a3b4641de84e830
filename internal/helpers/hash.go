package helpers

import (
	"crypto/md5"
	"fmt"
)

// Hash is an utility to determine a MD5 hash (acceptable as not used for security reasons).
func Hash(bytes []byte) string {
	return fmt.Sprintf("%x", md5.Sum(bytes))
}
