package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/mail"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/store"
	"photostudio-backend/internal/tokens"
)

type ClientsHandler struct {
	store  *store.Client
	mailer *mail.Mailer
}

func NewClientsHandler(st *store.Client, mailer *mail.Mailer) *ClientsHandler {
	return &ClientsHandler{store: st, mailer: mailer}
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"created_at"`
}

func toClientResponse(u *models.User) ClientResponse {
	return ClientResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone.String,
		Activated: u.PasswordHash != "",
		CreatedAt: u.CreatedAt,
	}
}

func (h *ClientsHandler) ListClients(c *gin.Context) {
	clients, err := h.store.ListClients()
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toClientResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, gin.H{"clients": out})
}

// ensureClient finds or invites the client a project is being created for.
// New clients get an account row with no password and an emailed setup link.
func (h *ClientsHandler) ensureClient(email, name string) (*models.User, error) {
	user, err := h.store.GetUserByEmail(email)
	if err == nil {
		return user, nil
	}
	if !store.IsNotFound(err) {
		return nil, err
	}

	user, err = h.store.CreateUser(email, "", models.RoleClient, name)
	if err != nil {
		return nil, err
	}
	invite := tokens.NewInviteToken()
	if err := h.store.SetUserInviteToken(user.ID, invite); err != nil {
		return nil, err
	}
	if err := h.mailer.SendInvite(email, name, invite); err != nil {
		// the account exists either way; the invite can be resent
		logging.L().Error().Err(err).Str("email", email).Msg("send invite email")
	}
	return user, nil
}
