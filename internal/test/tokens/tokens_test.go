package tokens_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"photostudio-backend/internal/tokens"
)

func TestNew_URLSafe(t *testing.T) {
	token := tokens.NewShareToken()
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
	// 32 source bytes base64 encode to 43 characters unpadded
	assert.Len(t, token, 43)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := tokens.NewInviteToken()
		assert.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}

func TestNew_LengthScalesWithInput(t *testing.T) {
	assert.True(t, len(tokens.NewShareToken()) > len(tokens.NewInviteToken()))
	assert.Equal(t, len(tokens.NewInviteToken()), len(tokens.NewInvoiceToken()))
}

func TestNew_NoWhitespace(t *testing.T) {
	token := tokens.New(64)
	assert.Equal(t, token, strings.TrimSpace(token))
}
