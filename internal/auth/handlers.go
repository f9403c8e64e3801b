package auth

import (
	"time"

	"agrimanager-backend/internal/api/response"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/logger"
	"agrimanager-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// LoginRequest represents the credentials presented at login
type LoginRequest struct {
	TenantID uint   `json:"tenant_id" binding:"required" example:"1"`
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"pw"`
}

// LoginResponse is returned in the envelope data of a successful login
type LoginResponse struct {
	UserID    uint      `json:"user_id" example:"7"`
	TenantID  uint      `json:"tenant_id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service  *AuthService
	verifier *CredentialVerifier
	metrics  *metrics.Metrics
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, verifier *CredentialVerifier, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{service: service, verifier: verifier, metrics: m}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify tenant id, username and password and issue a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope{data=LoginResponse} "Login successful"
// @Failure 401 {object} response.Envelope "Invalid tenant, username, or password"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// incomplete credentials fail the same way as wrong ones
		h.metrics.ObserveLogin(metrics.LoginRejected)
		logger.WithContext(c.Request.Context()).WithError(err).Warn("login rejected: unreadable credentials")
		response.Unauthorized(c, apperrors.ErrInvalidCredentials.Error())
		return
	}

	log := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
		"tenant_id": req.TenantID,
		"user":      req.Username,
	})

	user, err := h.verifier.Verify(c.Request.Context(), req.TenantID, req.Username, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			h.metrics.ObserveLogin(metrics.LoginRejected)
			log.Warn("login rejected")
			response.Unauthorized(c, err.Error())
			return
		}
		h.metrics.ObserveLogin(metrics.LoginFailed)
		log.WithError(err).Error("login failed")
		response.InternalServerError(c, "Failed to log in: "+err.Error())
		return
	}

	token, expiresAt, err := h.service.GenerateJWT(user)
	if err != nil {
		h.metrics.ObserveLogin(metrics.LoginFailed)
		log.WithError(err).Error("token issuance failed")
		response.InternalServerError(c, "Failed to issue token: "+err.Error())
		return
	}

	h.metrics.ObserveLogin(metrics.LoginSucceeded)
	log.WithField("user_id", user.ID).Info("login successful")

	response.OK(c, "Login successful", LoginResponse{
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Me handles GET /api/auth/me
// @Summary Current caller
// @Description Return the identity carried by the bearer token
// @Tags authentication
// @Produce json
// @Success 200 {object} response.Envelope{data=Identity} "Identity"
// @Failure 401 {object} response.Envelope "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := IdentityFrom(c)
	if !ok {
		response.Unauthorized(c, apperrors.ErrUnauthenticated.Error())
		return
	}
	response.OK(c, "Identity retrieved successfully", identity)
}
