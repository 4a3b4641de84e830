package preview_test

import (
	"bytes"
	"testing"

	"github.com/b-hayes/notes/internal/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePage(t *testing.T) {
	var buf bytes.Buffer
	err := preview.WritePage(&buf, "<Shopping>", "<h1>Shopping</h1>")
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "<title>&lt;Shopping&gt;</title>")
	assert.Contains(t, html, "<h1>Shopping</h1>")
}
