package handlers

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/voluntai/voluntai-api/internal/auth"
	"github.com/voluntai/voluntai-api/internal/database"
	"github.com/voluntai/voluntai-api/internal/middleware"
	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/repository"
	"github.com/voluntai/voluntai-api/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	issuer *auth.TokenIssuer
	router *gin.Engine

	authService        *services.AuthService
	opportunityService *services.OpportunityService
	enrollmentService  *services.EnrollmentService
	chatService        *services.ChatService
}

// setupTestEnv wires the full stack against an in-memory database with the
// same route table the server mounts.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Opportunity{},
		&models.Enrollment{},
		&models.ChatMessage{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	issuer := auth.NewTokenIssuer("test-secret", 7*24*time.Hour)

	userRepo := repository.NewUserRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	chatRepo := repository.NewChatRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	opportunityService := services.NewOpportunityService(opportunityRepo)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, opportunityRepo)
	chatService := services.NewChatService(chatRepo, opportunityRepo)
	reportService := services.NewReportService(opportunityRepo, enrollmentRepo)

	authHandler := NewAuthHandler(authService, issuer)
	opportunityHandler := NewOpportunityHandler(opportunityService)
	enrollmentHandler := NewEnrollmentHandler(enrollmentService)
	chatHandler := NewChatHandler(chatService)
	userHandler := NewUserHandler(userService)
	reportHandler := NewReportHandler(reportService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	requireAuth := middleware.RequireAuth(issuer)

	r.GET("/health", HealthCheck)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", requireAuth, authHandler.Me)

		vagas := api.Group("/vagas")
		vagas.GET("", opportunityHandler.List)
		vagas.GET("/me", requireAuth, opportunityHandler.ListMine)
		vagas.GET("/:id", opportunityHandler.Get)
		vagas.POST("", requireAuth, opportunityHandler.Create)
		vagas.PUT("/:id", requireAuth, opportunityHandler.Update)
		vagas.DELETE("/:id", requireAuth, opportunityHandler.Delete)

		inscricoes := api.Group("/inscricoes", requireAuth)
		inscricoes.POST("", enrollmentHandler.Enroll)
		inscricoes.DELETE("", enrollmentHandler.Cancel)
		inscricoes.GET("/me", enrollmentHandler.ListMine)
		inscricoes.GET("/vaga/:vagaId", enrollmentHandler.ListForOpportunity)
		inscricoes.POST("/confirmar-presenca", enrollmentHandler.ConfirmAttendance)
		inscricoes.GET("/estatisticas", enrollmentHandler.Statistics)

		chat := api.Group("/chat", requireAuth)
		chat.POST("/send", chatHandler.Send)
		chat.GET("/vaga/:vagaId", chatHandler.ListForOpportunity)

		usuarios := api.Group("/usuarios", requireAuth)
		usuarios.GET("/me", userHandler.GetProfile)
		usuarios.PUT("/me", userHandler.UpdateProfile)

		relatorios := api.Group("/relatorios", requireAuth)
		relatorios.GET("/ong", reportHandler.OrganizationMetrics)
	}

	return &testEnv{
		db:                 db,
		issuer:             issuer,
		router:             r,
		authService:        authService,
		opportunityService: opportunityService,
		enrollmentService:  enrollmentService,
		chatService:        chatService,
	}
}

func (env *testEnv) createUser(t *testing.T, name, email string, kind models.UserKind) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Kind:         kind,
	}
	if kind == models.KindIndividual {
		cpf := "12345678900"
		user.CPF = &cpf
	} else {
		cnpj := "11111111000100"
		user.CNPJ = &cnpj
	}

	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createOpportunity(t *testing.T, creator *models.User, title, category string, slots int) *models.Opportunity {
	t.Helper()

	scheduledAt := time.Date(2025, 12, 31, 18, 30, 0, 0, time.Local)
	opportunity := &models.Opportunity{
		Title:          title,
		Description:    "descrição de teste",
		Location:       "Praça Central",
		ScheduledAt:    &scheduledAt,
		SlotsAvailable: slots,
		Category:       category,
		CreatorID:      creator.ID,
	}

	require.NoError(t, env.db.Create(opportunity).Error)
	return opportunity
}

func jsonReader(body []byte) io.Reader {
	return bytes.NewReader(body)
}

func (env *testEnv) token(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := env.issuer.Generate(user)
	require.NoError(t, err)
	return token
}
