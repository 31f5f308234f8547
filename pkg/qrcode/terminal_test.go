package qrcode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authqr/pkg/qrcode"
)

func TestRenderTerminal(t *testing.T) {
	t.Parallel()

	t.Run("writes block art", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, qrcode.RenderTerminal(&buf, `{"url":"http://localhost:8080/","secret_key":"abc123"}`))
		assert.Greater(t, strings.Count(buf.String(), "\n"), 10)
	})

	t.Run("rejects oversized content", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := qrcode.RenderTerminal(&buf, strings.Repeat("a", 3000))
		assert.True(t, errors.Is(err, qrcode.ErrCapacityExceeded))
		assert.Zero(t, buf.Len())
	})

	t.Run("rejects nil writer", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, qrcode.RenderTerminal(nil, "abc"))
	})
}
