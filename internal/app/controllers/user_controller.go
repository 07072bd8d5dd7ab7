package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/app/services"
	"github.com/lmartinez/boletin-digital/internal/middleware"
)

// UserController handles user administration and the alumnos
// read projections.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// List returns every user joined with its course name.
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.userService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WithData(users))
}

// Update overwrites a user's profile fields.
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.userService.Update(c.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Usuario actualizado correctamente."))
}

// Delete removes a user.
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.userService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Usuario eliminado correctamente."))
}

// ChangeOwnPassword replaces a user's password after verifying the
// current one.
func (ctrl *UserController) ChangeOwnPassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeOwnPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.userService.ChangeOwnPassword(c.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Contraseña actualizada correctamente."))
}

// SetPassword overwrites a user's password unconditionally (admin
// panel, no current-password check).
func (ctrl *UserController) SetPassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.userService.SetPassword(c.Request.Context(), id, req.Password); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Contraseña reiniciada correctamente."))
}

// ResetPassword stores a generated temporary password and relays the
// plaintext back in the response message.
func (ctrl *UserController) ResetPassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tempPassword, err := ctrl.userService.ResetPassword(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(fmt.Sprintf("Contraseña reiniciada. Nueva contraseña temporal: %s", tempPassword)))
}

// ListStudents returns the alumno projection for the staff panel.
func (ctrl *UserController) ListStudents(c *gin.Context) {
	students, err := ctrl.userService.ListStudents(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WithData(students))
}

// GetStudent returns one alumno projection by user id.
func (ctrl *UserController) GetStudent(c *gin.Context) {
	id, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}

	student, err := ctrl.userService.GetStudent(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WithData(student))
}
