package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/config"
	"github.com/lucasroqe/PDM-App-School/internal/api/handler"
	"github.com/lucasroqe/PDM-App-School/internal/api/middleware"
	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/pkg/jwt"
	"github.com/lucasroqe/PDM-App-School/pkg/redis"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// Setup builds the gin engine. rdb may be nil.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if err := handler.RegisterValidators(); err != nil {
		logger.Error("failed to register validators", zap.Error(err))
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "Banco de dados indisponível")
			return
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "ok"
			if err := rdb.Ping(ctx); err != nil {
				redisStatus = "unavailable"
			}
		}
		response.OK(c, gin.H{"status": "ok", "redis": redisStatus})
	})

	throttle := middleware.RateLimit(rdb, cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow, logger)
	authn := middleware.JWTAuth(jwtMgr, rdb, logger)
	staffOnly := middleware.RequireRoles(model.RoleProfessor, model.RoleAdmin)

	// ── auth ──
	auth := r.Group("/auth")
	{
		auth.POST("/login", throttle, h.Auth.Login)
		auth.POST("/logout", authn, h.Auth.Logout)
		auth.GET("/me", authn, h.Auth.Me)
	}

	// ── registration ──
	cadastro := r.Group("/cadastro")
	{
		cadastro.POST("/aluno", throttle, h.Registration.RegisterStudent)
		cadastro.POST("/professor", throttle, h.Registration.RegisterProfessor)
		cadastro.POST("/disciplina", authn, staffOnly, h.Registration.RegisterCourse)
		cadastro.GET("/alunos", authn, h.Registration.ListStudents)
		cadastro.GET("/professores", authn, h.Registration.ListProfessors)
		cadastro.GET("/disciplinas", authn, h.Registration.ListCourses)
	}

	// ── academic records ──
	boletim := r.Group("/boletim", authn)
	{
		boletim.GET("", h.Report.GetReport)
		boletim.GET("/:alunoId", h.Report.GetReport)
	}

	// ── announcements ──
	avisos := r.Group("/avisos", authn)
	{
		avisos.POST("", staffOnly, h.Announcement.Create)
		avisos.GET("", h.Announcement.List)
		avisos.GET("/nao-lidos", h.Announcement.CountUnread)
		avisos.GET("/calendario", h.Announcement.Calendar)
		avisos.POST("/:id/lido", h.Announcement.MarkRead)
		avisos.DELETE("/:id", staffOnly, h.Announcement.Delete)
	}

	return r
}
