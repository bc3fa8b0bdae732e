package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/celestine-lau/enactus-app/internal/errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service  *Service
	resolver UserResolver
}

// NewHandler creates a new authentication handler
func NewHandler(service *Service, resolver UserResolver) *Handler {
	return &Handler{service: service, resolver: resolver}
}

// TokenRequest represents the request for token issuance
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse represents the response for token issuance
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}

// ValidateResponse represents the response from the token validation endpoint
type ValidateResponse struct {
	Valid  bool    `json:"valid" example:"true"`
	Claims *Claims `json:"claims,omitempty"`
}

// Token handles POST /api/auth/token
// @Summary Issue an access token
// @Description Issue a signed token for a registered user's email
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token request"
// @Success 200 {object} TokenResponse "Signed access token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Email is not a registered user"
// @Router /api/auth/token [post]
func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"code":    apperrors.CodeMalformedRequest,
			"data":    apperrors.ErrMalformedRequest.Error(),
		})
		return
	}

	if _, err := h.resolver.GetByEmail(req.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortUnauthorized(c, apperrors.ErrNotRegistered)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"code":    apperrors.CodeInternal,
			"data":    "internal server error",
		})
		return
	}

	token, err := h.service.GenerateJWT(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"code":    apperrors.CodeInternal,
			"data":    "failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.service.TokenTTL().Seconds()),
	})
}

// Validate handles GET /api/auth/validate
// @Summary Validate an access token
// @Description Check whether the presented bearer token is valid
// @Tags authentication
// @Produce json
// @Success 200 {object} ValidateResponse "Validation result"
// @Router /api/auth/validate [get]
func (h *Handler) Validate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Valid: true, Claims: claims})
}
