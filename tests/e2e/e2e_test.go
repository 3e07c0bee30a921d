package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trainerbook/internal/database"
	"trainerbook/internal/domain"
	"trainerbook/internal/middleware"
	"trainerbook/internal/modules/auth"
	"trainerbook/internal/modules/busyslot"
	"trainerbook/internal/modules/notification"
	"trainerbook/internal/modules/session"
	jwtsvc "trainerbook/internal/pkg/jwt"
	"trainerbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Suite struct {
	router       *gin.Engine
	db           *gorm.DB
	jwtService   *jwtsvc.Service
	adminToken   string
	trainerToken string
	trainerID    int64
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *Suite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.BusySlot{},
		&domain.Session{},
		&domain.Notification{},
	))

	userRepo := repository.NewUserRepository(db)
	busySlotRepo := repository.NewBusySlotRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	busySlotService := busyslot.NewService(busySlotRepo, notificationService, nil)
	busySlotHandler := busyslot.NewHandler(busySlotService)

	sessionService := session.NewService(sessionRepo, busySlotRepo, notificationService, nil)
	sessionHandler := session.NewHandler(sessionService)

	r := gin.New()
	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(jwtService))
	busySlotHandler.RegisterRoutes(protected)
	sessionHandler.RegisterRoutes(protected)
	notificationHandler.RegisterRoutes(protected)

	s := &Suite{router: r, db: db, jwtService: jwtService}

	admin := s.createUser(t, "admin@test.local", domain.RoleAdmin)
	trainer := s.createUser(t, "trainer@test.local", domain.RoleTrainer)

	s.adminToken, _ = jwtService.GenerateToken(admin.ID, string(admin.Role))
	s.trainerToken, _ = jwtService.GenerateToken(trainer.ID, string(trainer.Role))
	s.trainerID = trainer.ID

	return s
}

func (s *Suite) createUser(t *testing.T, email string, role domain.Role) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         email,
	}
	require.NoError(t, s.db.Create(u).Error)
	return u
}

func (s *Suite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var res TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	return w, res
}

func TestBusySlotLifecycle(t *testing.T) {
	s := setupSuite(t)

	day := "2030-01-15T"

	// Trainer declares 10:00-11:00.
	w, res := s.request(t, "POST", "/api/v1/busy-slots", s.trainerToken, gin.H{
		"start_time": day + "10:00:00Z",
		"end_time":   day + "11:00:00Z",
		"reason":     "dentist",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, res.Success)

	// Overlapping 10:30-11:30 is rejected.
	w, res = s.request(t, "POST", "/api/v1/busy-slots", s.trainerToken, gin.H{
		"start_time": day + "10:30:00Z",
		"end_time":   day + "11:30:00Z",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, res.Error)
	assert.Equal(t, "SLOT_CONFLICT", res.Error.Code)

	// Adjacent 11:00-12:00 is fine.
	w, _ = s.request(t, "POST", "/api/v1/busy-slots", s.trainerToken, gin.H{
		"start_time": day + "11:00:00Z",
		"end_time":   day + "12:00:00Z",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Admin sees both in the global list.
	w, res = s.request(t, "GET", "/api/v1/busy-slots/all", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	slots := res.Data["busy_slots"].([]interface{})
	assert.Len(t, slots, 2)

	// Trainer endpoints reject admins.
	w, _ = s.request(t, "POST", "/api/v1/busy-slots", s.adminToken, gin.H{
		"start_time": day + "14:00:00Z",
		"end_time":   day + "15:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionApprovalFlow(t *testing.T) {
	s := setupSuite(t)

	// Trainer blocks out the morning.
	w, _ := s.request(t, "POST", "/api/v1/busy-slots", s.trainerToken, gin.H{
		"start_time": "2030-01-15T08:00:00Z",
		"end_time":   "2030-01-15T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// A session inside the busy window is rejected for the trainer.
	payload := gin.H{
		"course_name": "Go Fundamentals",
		"date":        "2030-01-15",
		"time":        "09:00",
		"location":    "Room 101",
		"duration":    60,
	}
	w, res := s.request(t, "POST", "/api/v1/sessions", s.trainerToken, payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, res.Error)
	assert.Equal(t, "SESSION_CONFLICT", res.Error.Code)

	// The admin schedules the same session for the same trainer anyway.
	adminPayload := gin.H{}
	for k, v := range payload {
		adminPayload[k] = v
	}
	adminPayload["trainer_id"] = s.trainerID

	w, res = s.request(t, "POST", "/api/v1/sessions", s.adminToken, adminPayload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := res.Data["session"].(map[string]interface{})
	assert.Equal(t, "approved", created["approval_status"])

	// An afternoon session from the trainer goes in pending.
	afternoon := gin.H{
		"course_name": "Advanced SQL",
		"date":        "2030-01-15",
		"time":        "14:00",
		"location":    "Room 202",
	}
	w, res = s.request(t, "POST", "/api/v1/sessions", s.trainerToken, afternoon)
	require.Equal(t, http.StatusCreated, w.Code)
	pending := res.Data["session"].(map[string]interface{})
	assert.Equal(t, "pending", pending["approval_status"])
	assert.Equal(t, true, pending["created_by_trainer"])
	sessionID := int64(pending["id"].(float64))

	// Approve, then reject: both succeed, no transition guard.
	w, _ = s.request(t, "PATCH", fmt.Sprintf("/api/v1/sessions/%d/approval", sessionID), s.adminToken, gin.H{"status": "approved"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, res = s.request(t, "PATCH", fmt.Sprintf("/api/v1/sessions/%d/approval", sessionID), s.adminToken, gin.H{"status": "rejected"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := res.Data["session"].(map[string]interface{})
	assert.Equal(t, "rejected", updated["approval_status"])

	// Trainer marks attendance.
	w, res = s.request(t, "PATCH", fmt.Sprintf("/api/v1/sessions/%d/attendance", sessionID), s.trainerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, res.Data["attended"])

	// The trainer's creations produced admin notifications.
	w, res = s.request(t, "GET", "/api/v1/notifications", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notifications := res.Data["notifications"].([]interface{})
	assert.GreaterOrEqual(t, len(notifications), 2)
}
