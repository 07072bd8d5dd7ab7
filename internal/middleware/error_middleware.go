package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
	"github.com/lmartinez/boletin-digital/internal/pkg/logger"
)

// HandleAPIError translates service errors into the response
// envelope. Invalid credentials deliberately share one message so the
// caller cannot tell an unknown user from a wrong password; pending
// and disabled accounts are intentionally distinguishable.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.Fail(apperrors.Message(err, "Datos inválidos.")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.Fail("Usuario o contraseña incorrectos."))

	case errors.Is(err, apperrors.ErrCurrentPasswordMismatch):
		c.JSON(http.StatusBadRequest, dto.Fail("La contraseña actual no es correcta."))

	case errors.Is(err, apperrors.ErrAccountPending):
		c.JSON(http.StatusForbidden, dto.Fail("Tu cuenta está pendiente de aprobación. Consultá con el Departamento de Alumnado o el administrador."))

	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.Fail("Tu cuenta está deshabilitada. Consultá con el Departamento de Alumnado o el administrador."))

	case errors.Is(err, apperrors.ErrAccountStateUnknown):
		c.JSON(http.StatusForbidden, dto.Fail(apperrors.Message(err, "Cuenta en estado desconocido. Consulte con el administrador.")))

	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.Fail("El nombre de usuario ya está en uso."))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.Fail("El email ya está en uso."))

	case errors.Is(err, apperrors.ErrDNIAlreadyExists):
		c.JSON(http.StatusConflict, dto.Fail("El DNI ya está registrado."))

	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		c.JSON(http.StatusConflict, dto.Fail("Ya existe un curso con ese nombre."))

	case errors.Is(err, apperrors.ErrSubjectAlreadyExists):
		c.JSON(http.StatusConflict, dto.Fail("Ya existe una materia con ese nombre."))

	case errors.Is(err, apperrors.ErrCourseInUse):
		c.JSON(http.StatusConflict, dto.Fail("No se puede eliminar el curso porque hay alumnos asociados."))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(apperrors.Message(err, "Ya existe un registro con alguno de los datos únicos.")))

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Usuario no encontrado."))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Alumno no encontrado."))

	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Curso no encontrado."))

	case errors.Is(err, apperrors.ErrSubjectNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Materia no encontrada."))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(apperrors.Message(err, "Recurso no encontrado.")))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.Fail("Error interno del servidor."))
	}
}
