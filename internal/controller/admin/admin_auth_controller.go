package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizdesk/internal/dto"
	"quizdesk/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges admin credentials for a signed session token.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.AdminLoginDTO true "Admin credentials"
// @Success 200 {object} dto.AdminLoginResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.AdminLoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authService.Login(req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("Admin Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Login failed"})
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminLoginResponseDTO{Success: true, Token: token})
}

// Verify godoc
// @Summary Verify an admin session token
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param token body dto.AdminVerifyDTO true "Session token"
// @Success 200 {object} dto.AdminVerifyResponseDTO
// @Failure 401 {object} dto.AdminVerifyResponseDTO
// @Router /admin/verify [post]
func (c *AuthController) Verify(ctx *gin.Context) {
	var req dto.AdminVerifyDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.AdminVerifyResponseDTO{Valid: false})
		return
	}

	valid, err := c.authService.Verify(req.Token)
	if err != nil || !valid {
		ctx.JSON(http.StatusUnauthorized, dto.AdminVerifyResponseDTO{Valid: false})
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminVerifyResponseDTO{Valid: true})
}
