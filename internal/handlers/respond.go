package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photostudio-backend/internal/apperr"
	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/models"
)

// presigned URLs stay valid long enough for a browsing session
const presignExpiry = 4 * time.Hour

// respondError maps classified errors onto their HTTP status and shape.
// Unclassified errors are logged and surface as a plain 500 so internals
// never leak.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(apperr.Status(err), models.ErrorResponse{
			Error:   string(appErr.Kind),
			Message: appErr.Message,
		})
		return
	}
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   string(apperr.KindNotFound),
			Message: "resource not found",
		})
		return
	}
	logging.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "something went wrong",
	})
}

// respondLocked is the payment-gate refusal, carrying the invoice token so
// the client can surface the payment link.
func respondLocked(c *gin.Context, invoiceToken string) {
	c.JSON(http.StatusPaymentRequired, models.ErrorResponse{
		Error:        string(apperr.KindPaymentRequired),
		Message:      "payment required to download originals",
		InvoiceToken: invoiceToken,
	})
}
