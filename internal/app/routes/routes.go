package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lmartinez/boletin-digital/internal/app/controllers"
	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	catalogController *controllers.CatalogController,
	reportCardController *controllers.ReportCardController,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	api.POST("/register", authController.Register)
	api.POST("/register-alumno", authController.RegisterStudent)
	api.POST("/login", authController.Login)

	// --- User administration ---
	usuarios := api.Group("/usuarios")
	{
		usuarios.GET("", userController.List)
		usuarios.PUT("/:id", userController.Update)
		usuarios.DELETE("/:id", userController.Delete)
		usuarios.PUT("/:id/password-self", userController.ChangeOwnPassword)
		usuarios.PUT("/:id/password", userController.SetPassword)
		usuarios.POST("/:id/reset-password", userController.ResetPassword)
	}

	// --- Student projections ---
	alumnos := api.Group("/alumnos")
	{
		alumnos.GET("", userController.ListStudents)
		alumnos.GET("/:idUsuario", userController.GetStudent)
	}

	// --- Course catalog ---
	cursos := api.Group("/cursos")
	{
		cursos.GET("", catalogController.ListCourses)
		cursos.POST("", catalogController.CreateCourse)
		cursos.PUT("/:id", catalogController.RenameCourse)
		cursos.DELETE("/:id", catalogController.DeleteCourse)
	}

	// --- Subject catalog ---
	materias := api.Group("/materias")
	{
		materias.GET("", catalogController.ListSubjects)
		materias.POST("", catalogController.CreateSubject)
		materias.PUT("/:id", catalogController.RenameSubject)
		materias.DELETE("/:id", catalogController.DeleteSubject)
	}

	// --- Report cards ---
	boletines := api.Group("/boletines")
	{
		boletines.GET("/:idUsuario", reportCardController.Get)
		boletines.PUT("/:idUsuario", reportCardController.Upsert)
	}

	// Health check endpoint
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, dto.Success("Boletín Digital API operativa"))
	})
}
