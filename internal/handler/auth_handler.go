package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-ce/catalog-api/internal/service"
	appErrors "github.com/campus-ce/catalog-api/pkg/errors"
	"github.com/campus-ce/catalog-api/pkg/response"
)

type tokenIssuer interface {
	IssueToken(req service.TokenRequest) (*service.TokenResponse, error)
}

// AuthHandler exposes the admin token endpoint.
type AuthHandler struct {
	auth tokenIssuer
}

// NewAuthHandler constructs handler.
func NewAuthHandler(auth tokenIssuer) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Token godoc
// @Summary Exchange admin credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body service.TokenRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req service.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	token, err := h.auth.IssueToken(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, token)
}
