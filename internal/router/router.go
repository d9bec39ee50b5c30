package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/voluntai/voluntai-api/internal/auth"
	"github.com/voluntai/voluntai-api/internal/handlers"
	"github.com/voluntai/voluntai-api/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Opportunity *handlers.OpportunityHandler
	Enrollment  *handlers.EnrollmentHandler
	Chat        *handlers.ChatHandler
	User        *handlers.UserHandler
	Report      *handlers.ReportHandler
}

// New builds the engine with the explicit middleware chain: CORS first, JSON
// body handling per route, then the auth gate on protected groups.
func New(issuer *auth.TokenIssuer, h Handlers) *gin.Engine {
	r := gin.Default()

	// Mirrors the mobile client's expectations: any origin, Authorization allowed.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(issuer)

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
			authRoutes.GET("/me", requireAuth, h.Auth.Me)
		}

		vagas := api.Group("/vagas")
		{
			vagas.GET("", h.Opportunity.List)
			vagas.GET("/me", requireAuth, h.Opportunity.ListMine)
			vagas.GET("/:id", h.Opportunity.Get)
			vagas.POST("", requireAuth, h.Opportunity.Create)
			vagas.PUT("/:id", requireAuth, h.Opportunity.Update)
			vagas.DELETE("/:id", requireAuth, h.Opportunity.Delete)
		}

		inscricoes := api.Group("/inscricoes", requireAuth)
		{
			inscricoes.POST("", h.Enrollment.Enroll)
			inscricoes.DELETE("", h.Enrollment.Cancel)
			inscricoes.GET("/me", h.Enrollment.ListMine)
			inscricoes.GET("/vaga/:vagaId", h.Enrollment.ListForOpportunity)
			inscricoes.POST("/confirmar-presenca", h.Enrollment.ConfirmAttendance)
			inscricoes.GET("/estatisticas", h.Enrollment.Statistics)
		}

		chat := api.Group("/chat", requireAuth)
		{
			chat.POST("/send", h.Chat.Send)
			chat.GET("/vaga/:vagaId", h.Chat.ListForOpportunity)
		}

		usuarios := api.Group("/usuarios", requireAuth)
		{
			usuarios.GET("/me", h.User.GetProfile)
			usuarios.PUT("/me", h.User.UpdateProfile)
		}

		relatorios := api.Group("/relatorios", requireAuth)
		{
			relatorios.GET("/ong", h.Report.OrganizationMetrics)
		}
	}

	return r
}
