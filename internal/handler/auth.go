package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/hamzahey/algorithm-ai/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Email, display name and password"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request"})
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusCreated, model.AuthResponse{User: user, AccessToken: token})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request"})
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, model.AuthResponse{User: user, AccessToken: token})
}

// Signout godoc
// @Summary Sign out
// @Description Clears the auth cookie. Tokens are stateless, so the bearer
// token itself stays valid until it expires.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /auth/signout [post]
func (h *AuthHandler) Signout(c *gin.Context) {
	user := GetAuthUser(c)
	h.clearAuthCookie(c)

	who := "user"
	if user != nil {
		who = user.Email
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: fmt.Sprintf("Signed out %s", who)})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	cfg := h.svc.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, token, cfg.MaxAge, cfg.Path, "", cfg.Secure, true)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	cfg := h.svc.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, "", -1, cfg.Path, "", cfg.Secure, true)
}
