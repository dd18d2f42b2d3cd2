package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"photostudio-backend/internal/config"
	"photostudio-backend/internal/middleware"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/store"
)

type AuthHandler struct {
	cfg   *config.Config
	store *store.Client
}

func NewAuthHandler(cfg *config.Config, st *store.Client) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: st}
}

// Login exchanges credentials for an access token. The response is the same
// for a wrong password and an unknown email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
			return
		}
		respondError(c, err)
		return
	}

	// invited but not yet activated
	if user.PasswordHash == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token, err := middleware.IssueToken(h.cfg, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{Token: token, Role: user.Role, Name: user.Name})
}

// SetupAccount activates an invited client: sets their password, clears the
// invite token, and logs them straight in.
func (h *AuthHandler) SetupAccount(c *gin.Context) {
	var req models.SetupAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	user, err := h.store.GetUserByInviteToken(req.Token)
	if err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "invalid or used invite link"})
			return
		}
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.ActivateUser(user.ID, string(hash), req.Name); err != nil {
		respondError(c, err)
		return
	}

	user, err = h.store.GetUserByID(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := middleware.IssueToken(h.cfg, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{Token: token, Role: user.Role, Name: user.Name})
}

// currentUserID reads the authenticated caller's ID set by the middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid user id"})
		return uuid.Nil, false
	}
	return id, true
}
