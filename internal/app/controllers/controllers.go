package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
)

// pathID parses a numeric path parameter. On failure it writes the
// 400 envelope and reports false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("El identificador debe ser un número válido."))
		return 0, false
	}
	return id, true
}
