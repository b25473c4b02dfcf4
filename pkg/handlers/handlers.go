package handlers

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/arnavshah/schedule-validator-go/pkg/auth"
	"github.com/arnavshah/schedule-validator-go/pkg/civiltime"
	"github.com/arnavshah/schedule-validator-go/pkg/database"
	"github.com/arnavshah/schedule-validator-go/pkg/models"
	"github.com/arnavshah/schedule-validator-go/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed static/*
var staticEmbed embed.FS

// Handler contains dependencies for the route handlers
type Handler struct {
	DB    *gorm.DB
	Clock *civiltime.Resolver
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the API key for validator routes using HMAC
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		clientID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		// Fetch or create API key record to track usage
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:       key,
			Name:      clientID,
			RateLimit: 10000,
		})

		c.Set("apiKey", &apiKey)
		c.Set("clientID", clientID)
		c.Next()
	}
}

// ValidateSchedule runs the full rule battery over one week's snapshot and
// returns the ordered issue list.
func (h *Handler) ValidateSchedule(c *gin.Context) {
	var input models.ValidationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekStart := input.WeekStart
	if weekStart == "" {
		if len(input.Shifts) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week_start is required when no shifts are supplied"})
			return
		}
		weekStart = h.Clock.DateOf(h.Clock.WeekStart(input.Shifts[0].Start))
	}

	in := &validator.Inputs{
		Clock:          h.Clock,
		WeekStart:      weekStart,
		Employees:      input.Employees,
		Shifts:         input.Shifts,
		PreviousShifts: input.PreviousShifts,
		Requirements:   input.Requirements,
		Settings:       input.Settings,
		TimeOff:        input.TimeOff,
		Holidays:       database.HolidayLookup(h.DB),
	}

	issues := validator.Validate(in)

	h.RecordUsage(c, len(input.Shifts), len(issues))
	log.Info().
		Str("week_start", weekStart).
		Int("shifts", len(input.Shifts)).
		Int("issues", len(issues)).
		Msg("schedule validated")

	c.JSON(http.StatusOK, models.ValidationResponse{
		Issues: issues,
		Counts: validator.CountByCategory(issues),
	})
}

// RemediateIssue executes one remediation descriptor against the scheduling
// store. "No available employee" is a distinct outcome, not a server error.
func (h *Handler) RemediateIssue(c *gin.Context) {
	var input models.RemediationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := &validator.Inputs{
		Clock:     h.Clock,
		Employees: input.Employees,
		Shifts:    input.Shifts,
		Settings:  input.Settings,
	}

	result, err := validator.Remediate(c.Request.Context(), in, input.Descriptor, database.NewShiftStore(h.DB))
	if err != nil {
		if errors.Is(err, validator.ErrNoAvailableEmployee) {
			c.JSON(http.StatusConflict, gin.H{
				"created": false,
				"error":   "no available employee",
			})
			return
		}
		log.Error().Err(err).
			Str("day", input.Descriptor.Day).
			Str("slot", string(input.Descriptor.Slot)).
			Msg("remediation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not create corrective shift"})
		return
	}

	log.Info().
		Str("day", input.Descriptor.Day).
		Str("slot", string(input.Descriptor.Slot)).
		Str("employee", result.EmployeeID).
		Msg("corrective shift created")

	c.JSON(http.StatusOK, gin.H{"created": true, "shift": result})
}

// RecordUsage records API usage in the database using an efficient upsert
func (h *Handler) RecordUsage(c *gin.Context, shiftCount, issueCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":   gorm.Expr("request_count + ?", 1),
			"shifts_checked":  gorm.Expr("shifts_checked + ?", shiftCount),
			"issues_reported": gorm.Expr("issues_reported + ?", issueCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:          apiKey.ID,
		Date:           today,
		RequestCount:   1,
		ShiftsChecked:  shiftCount,
		IssuesReported: issueCount,
	})
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// AdminInterface serves the admin web interface from embedded files
func (h *Handler) AdminInterface(c *gin.Context) {
	_ = auth.EnsureAdminExists(h.DB)

	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// GetStaticFS returns the embedded filesystem for static assets
func (h *Handler) GetStaticFS() http.FileSystem {
	sub, err := fs.Sub(staticEmbed, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
