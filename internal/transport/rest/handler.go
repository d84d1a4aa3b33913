package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/:id", h.updateUser)
			users.PUT("/:id/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		professionals := api.Group("/professionals")
		professionals.Use(h.authMiddleware())
		{
			professionals.GET("/", h.getProfessionals)
			professionals.GET("/me", h.getMyProfessionalProfile)
			professionals.GET("/:id", h.getProfessionalByID)
			professionals.POST("/", h.createProfessional)
			professionals.PUT("/:id", h.updateProfessional)
			professionals.DELETE("/:id", h.deleteProfessional)

			professionals.GET("/:id/availability", h.getWeeklyAvailability)
			professionals.PUT("/:id/availability", h.setWeeklyAvailability)
			professionals.GET("/:id/exceptions", h.getAvailabilityExceptions)
			professionals.POST("/:id/exceptions", h.setAvailabilityException)
			professionals.DELETE("/exceptions/:id", h.deleteAvailabilityException)

			professionals.GET("/:id/slots", h.getFreeSlots)
		}

		patients := api.Group("/patients")
		patients.Use(h.authMiddleware())
		{
			patients.GET("/", h.getPatients)
			patients.GET("/:id", h.getPatientByID)
			patients.POST("/", h.createPatient)
			patients.PUT("/:id", h.updatePatient)
			patients.DELETE("/:id", h.deletePatient)
		}

		consultorios := api.Group("/consultorios")
		consultorios.Use(h.authMiddleware())
		{
			consultorios.GET("/", h.getConsultorios)
			consultorios.GET("/:id", h.getConsultorioByID)
			consultorios.POST("/", h.createConsultorio)
			consultorios.PUT("/:id", h.updateConsultorio)
			consultorios.DELETE("/:id", h.deleteConsultorio)
		}

		consultations := api.Group("/consultations")
		consultations.Use(h.authMiddleware())
		{
			consultations.GET("/", h.getConsultations)
			consultations.GET("/:id", h.getConsultationByID)
			consultations.POST("/", h.createConsultation)
			consultations.PUT("/:id/time", h.updateConsultationTime)
			consultations.POST("/:id/reschedule", h.rescheduleConsultation)
			consultations.DELETE("/:id", h.cancelConsultation)

			consultations.GET("/:id/attachments", h.getConsultationAttachments)
			consultations.POST("/:id/attachments", h.addConsultationAttachment)
			consultations.GET("/attachments/:id", h.downloadConsultationAttachment)
			consultations.DELETE("/attachments/:id", h.deleteConsultationAttachment)
		}
	}
}
