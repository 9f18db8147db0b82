package routes

import (
	"github.com/recisbogor/recup-backend/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ----------------------
	// Competition routes
	// ----------------------
	r.POST("/competitions", controllers.CreateCompetition)
	r.GET("/competitions", controllers.ListCompetitions)
	r.PUT("/competitions/:id", controllers.UpdateCompetition)
	r.DELETE("/competitions/:id", controllers.DeleteCompetition)

	// ----------------------
	// Registration routes
	// ----------------------
	r.GET("/registrationdata", controllers.ListRegistrations)
	r.POST("/registrationdata", controllers.SubmitRegistration)

	// ----------------------
	// Upload & payment routes
	// ----------------------
	r.POST("/upload-files", controllers.UploadFiles)
	r.POST("/payment-notification", controllers.PaymentNotification)
}
