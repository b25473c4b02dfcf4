package handler

import (
	"net/http"

	"github.com/arnavshah/schedule-validator-go/pkg/auth"
	"github.com/arnavshah/schedule-validator-go/pkg/civiltime"
	"github.com/arnavshah/schedule-validator-go/pkg/database"
	"github.com/arnavshah/schedule-validator-go/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	clock, err := civiltime.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid BUSINESS_TZ")
	}

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, Clock: clock}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Static files served from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Schedule Validator API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
		admin.GET("/holidays", h.ListHolidays)
		admin.POST("/holidays", h.CreateHoliday)
		admin.DELETE("/holidays/:id", h.DeleteHoliday)
	}

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/validate", h.ValidateSchedule)
		api.POST("/validate/preflight", h.PreflightInput)
		api.POST("/remediate", h.RemediateIssue)
		api.GET("/usage", h.GetMyUsage)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
