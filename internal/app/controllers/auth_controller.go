package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/app/services"
	"github.com/lmartinez/boletin-digital/internal/middleware"
)

// AuthController handles registration and login.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a user from the admin panel (any role).
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.authService.Register(c.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success("Usuario creado correctamente desde administración."))
}

// RegisterStudent creates a self-service student registration; the
// account starts pending approval.
func (ctrl *AuthController) RegisterStudent(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.authService.RegisterStudent(c.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success("Usuario registrado correctamente. Pendiente de aprobación."))
}

// Login runs the account gate and returns the session descriptor.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	user, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		OK:      true,
		Message: "Login correcto.",
		UserID:  user.ID,
		Role:    string(user.Role),
	})
}
