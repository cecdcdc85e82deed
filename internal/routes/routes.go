package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/PedroPossari/Vitalis/internal/audit"
	"github.com/PedroPossari/Vitalis/internal/auth"
	"github.com/PedroPossari/Vitalis/internal/config"
	"github.com/PedroPossari/Vitalis/internal/handlers"
	"github.com/PedroPossari/Vitalis/internal/middleware"
	"github.com/PedroPossari/Vitalis/internal/repository"
	"github.com/PedroPossari/Vitalis/internal/session"
	"github.com/PedroPossari/Vitalis/internal/usecase/relatorio"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	pacienteRepo := repository.NewPacienteRepository(db)
	medicoRepo := repository.NewMedicoRepository(db)
	agendamentoRepo := repository.NewAgendamentoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	sessionStore := session.NewRedisStore(rdb, cfg.SessionTTL)
	authService := auth.NewService(usuarioRepo, sessionStore)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	resumoMensalUC := relatorio.NewResumoMensal(agendamentoRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService, int(cfg.SessionTTL.Seconds()))
	pacienteHandler := handlers.NewPacienteHandler(pacienteRepo, auditDispatcher)
	medicoHandler := handlers.NewMedicoHandler(medicoRepo, auditDispatcher)
	agendamentoHandler := handlers.NewAgendamentoHandler(agendamentoRepo, auditDispatcher)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioRepo, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(resumoMensalUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(sessionStore))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", authHandler.Me)

			secured.GET("/dashboard", dashboardHandler.Resumo)

			secured.POST("/pacientes", pacienteHandler.Create)
			secured.GET("/pacientes", pacienteHandler.List)
			secured.GET("/pacientes/:id", pacienteHandler.GetByID)
			secured.PATCH("/pacientes/:id", pacienteHandler.Update)
			secured.DELETE("/pacientes/:id", pacienteHandler.Delete)

			secured.GET("/medicos/especialidades", medicoHandler.Especialidades)
			secured.POST("/medicos", medicoHandler.Create)
			secured.GET("/medicos", medicoHandler.List)
			secured.GET("/medicos/:id", medicoHandler.GetByID)
			secured.PATCH("/medicos/:id", medicoHandler.Update)
			secured.DELETE("/medicos/:id", medicoHandler.Delete)

			secured.POST("/agendamentos", agendamentoHandler.Create)
			secured.GET("/agendamentos", agendamentoHandler.List)
			secured.GET("/agendamentos/:id", agendamentoHandler.GetByID)
			secured.PATCH("/agendamentos/:id", agendamentoHandler.Update)
			secured.DELETE("/agendamentos/:id", agendamentoHandler.Delete)

			secured.POST("/usuarios", usuarioHandler.Create)
			secured.GET("/usuarios", usuarioHandler.List)
			secured.GET("/usuarios/:id", usuarioHandler.GetByID)
			secured.PATCH("/usuarios/:id", usuarioHandler.Update)
			secured.DELETE("/usuarios/:id", usuarioHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
