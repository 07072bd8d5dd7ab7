package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/app/services"
	"github.com/lmartinez/boletin-digital/internal/middleware"
)

// ReportCardController handles reading and saving boletines.
type ReportCardController struct {
	reportCardService services.ReportCardService
}

// NewReportCardController creates a new ReportCardController
func NewReportCardController(reportCardService services.ReportCardService) *ReportCardController {
	return &ReportCardController{reportCardService: reportCardService}
}

// Get returns a student's report card for one school year. The anio
// query parameter defaults to the current year.
func (ctrl *ReportCardController) Get(c *gin.Context) {
	userID, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}

	year := time.Now().Year()
	if raw := c.Query("anio"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("El año lectivo debe ser un número válido."))
			return
		}
		year = parsed
	}

	entries, err := ctrl.reportCardService.Get(c.Request.Context(), userID, year)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportCardResponse{
		OK:   true,
		Year: year,
		Data: entries,
	})
}

// Upsert saves a batch of grade rows for one student and year in a
// single transaction.
func (ctrl *ReportCardController) Upsert(c *gin.Context) {
	userID, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}

	var req dto.UpsertReportCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Cuerpo de la petición inválido."))
		return
	}

	if err := ctrl.reportCardService.Upsert(c.Request.Context(), userID, &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Boletín guardado/actualizado correctamente."))
}
