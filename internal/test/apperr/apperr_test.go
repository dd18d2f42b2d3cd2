package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"photostudio-backend/internal/apperr"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperr.NotFound("gallery not found"), http.StatusNotFound},
		{apperr.Gone("link expired"), http.StatusGone},
		{apperr.PaymentRequired("pay up"), http.StatusPaymentRequired},
		{apperr.Validation("bad input"), http.StatusBadRequest},
		{apperr.Upstream("storage", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, apperr.Status(tc.err), tc.err.Error())
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer context: %w", apperr.Gone("expired"))
	assert.Equal(t, apperr.KindGone, apperr.KindOf(wrapped))
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(errors.New("whatever")))
}

func TestUpstream_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Upstream("fetch object", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "fetch object")
	assert.Contains(t, err.Error(), "connection refused")
}
