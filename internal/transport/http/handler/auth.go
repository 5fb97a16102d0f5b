package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/identity"
	"github.com/irohit373/AlignTODO/internal/metrics"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	identity    *identity.Manager
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, im *identity.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		identity:    im,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login deliberately skips the length rule: a short password is simply
// a wrong one, and rejecting it differently would leak the policy.
type loginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type accountResponse struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUsecase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": errEmailTaken})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "register", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.RegistrationsTotal.Inc()
	h.identity.SetSessionCookie(c, token)
	c.JSON(http.StatusCreated, accountResponse{AccountID: user.ID, Email: user.Email})
}

// POST /auth/login
// Unknown email and wrong password get the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	h.identity.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, accountResponse{AccountID: user.ID, Email: user.Email})
}

// POST /auth/logout
// The token is self-contained, so logging out is purely discarding the
// cookie client-side; no store access happens.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.identity.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
