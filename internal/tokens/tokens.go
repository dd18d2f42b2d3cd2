// Package tokens generates the unguessable identifiers used for share links,
// client invites and invoice access.
package tokens

import (
	"crypto/rand"
	"encoding/base64"
)

// New returns a URL-safe random token of n source bytes. Share links use 32,
// invites and invoice tokens use 24 (mirrors the token lengths the email and
// gallery links were designed around).
func New(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// NewShareToken returns a token suitable for unauthenticated gallery access.
func NewShareToken() string {
	return New(32)
}

// NewInviteToken returns a token for client account setup links.
func NewInviteToken() string {
	return New(24)
}

// NewInvoiceToken returns a token for unauthenticated invoice links.
func NewInvoiceToken() string {
	return New(24)
}
