//go:build integration

package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	// Use a real model name that the tokenizer supports
	tc, err := gemini.NewTokenCounter("gemini-2.0-flash")
	require.NoError(t, err)

	// Verify it implements the interface
	var _ coursecheck.TokenCounter = tc

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		count, err := tc.CountTokens(ctx, "Blockchain in Finance (FT201, Prof. X, Fall, 6 ECTS)")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		count, err := tc.CountTokens(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("longer text returns more tokens", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		shortCount, err := tc.CountTokens(ctx, "Finance")
		require.NoError(t, err)

		longCount, err := tc.CountTokens(ctx, "<course><name>Blockchain in Finance</name><details>Blockchain in Finance (FT201, Prof. X, Fall, 6 ECTS)</details></course>")
		require.NoError(t, err)

		assert.Greater(t, longCount, shortCount)
	})
}
