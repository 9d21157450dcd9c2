package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/config"
	"salon/internal/service"
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
			auth.POST("/register", h.register)
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

		clients := api.Group("/clients")
		clients.Use(h.authMiddleware())
		{
			clients.POST("/", h.createClient)
			clients.GET("/", h.getClients)
			clients.GET("/:id", h.getClientByID)
			clients.PUT("/:id", h.updateClient)
			clients.DELETE("/:id", h.deleteClient)
		}

		procedures := api.Group("/procedures")
		{
			procedures.GET("/", h.getProcedures)
			procedures.GET("/:id", h.getProcedureByID)

			admin := procedures.Group("/")
			admin.Use(h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createProcedure)
				admin.PUT("/:id", h.updateProcedure)
				admin.DELETE("/:id", h.deleteProcedure)
			}
		}

		masters := api.Group("/masters")
		{
			masters.GET("/", h.getMasters)
			masters.GET("/:id", h.getMasterByID)
			masters.GET("/:id/working-hours", h.getWorkingHours)
			masters.GET("/me", h.authMiddleware(), h.getMyMasterProfile)

			auth := masters.Group("/", h.authMiddleware())
			{
				admin := auth.Group("/", h.adminMiddleware())
				{
					admin.POST("/", h.createMaster)
					admin.PUT("/:id", h.updateMaster)
					admin.DELETE("/:id", h.deleteMaster)
				}

				auth.PUT("/:id/working-hours", h.setWorkingHours)
				auth.POST("/:id/photo", h.uploadMasterPhoto)
				auth.DELETE("/:id/photo", h.deleteMasterPhoto)
			}
		}

		schedule := api.Group("/schedule")
		{
			schedule.GET("/slots", h.getSlots)
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.DELETE("/:id", h.cancelAppointment)
		}
	}
}
