package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/app/services"
	"github.com/lmartinez/boletin-digital/internal/middleware"
)

// CatalogController handles the cursos and materias catalogs.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCourses returns every course ordered by name.
func (ctrl *CatalogController) ListCourses(c *gin.Context) {
	courses, err := ctrl.catalogService.ListCourses(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WithData(courses))
}

// CreateCourse inserts a course and returns its generated id.
func (ctrl *CatalogController) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	id, err := ctrl.catalogService.CreateCourse(c.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedCourseResponse{
		OK:       true,
		Message:  "Curso creado correctamente.",
		CourseID: id,
	})
}

// RenameCourse updates a course's name.
func (ctrl *CatalogController) RenameCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.catalogService.RenameCourse(c.Request.Context(), id, req.Name); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Curso actualizado correctamente."))
}

// DeleteCourse removes a course. Courses with enrolled students are
// protected by the foreign key and reported as a conflict.
func (ctrl *CatalogController) DeleteCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteCourse(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Curso eliminado correctamente."))
}

// ListSubjects returns every subject ordered by name.
func (ctrl *CatalogController) ListSubjects(c *gin.Context) {
	subjects, err := ctrl.catalogService.ListSubjects(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WithData(subjects))
}

// CreateSubject inserts a subject and returns its generated id.
func (ctrl *CatalogController) CreateSubject(c *gin.Context) {
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	id, err := ctrl.catalogService.CreateSubject(c.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedSubjectResponse{
		OK:        true,
		Message:   "Materia creada correctamente.",
		SubjectID: id,
	})
}

// RenameSubject updates a subject's name.
func (ctrl *CatalogController) RenameSubject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.catalogService.RenameSubject(c.Request.Context(), id, req.Name); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Materia actualizada correctamente."))
}

// DeleteSubject removes a subject together with its report card rows.
func (ctrl *CatalogController) DeleteSubject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteSubject(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Materia eliminada correctamente."))
}
