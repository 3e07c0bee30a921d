package session

import (
	"net/http"
	"strconv"

	"trainerbook/internal/domain"
	"trainerbook/internal/middleware"
	"trainerbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	sessions.GET("", h.List)
	sessions.POST("", h.Create)
	sessions.PUT("/:id", middleware.AdminOnly(), h.Update)
	sessions.DELETE("/:id", middleware.AdminOnly(), h.Delete)
	sessions.PATCH("/:id/approval", middleware.AdminOnly(), h.SetApproval)
	sessions.PATCH("/:id/attendance", middleware.TrainerOnly(), h.ToggleAttendance)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actor := actorFrom(c)
	if actor.Role == domain.RoleTrainer {
		// Trainers always book themselves.
		req.TrainerID = actor.ID
	}

	sess, err := h.service.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sess, err := h.service.Delete(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) SetApproval(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.SetApproval(c.Request.Context(), id, domain.ApprovalStatus(req.Status), actorFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) ToggleAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	attended, err := h.service.ToggleAttendance(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attended": attended})
}

func (h *Handler) List(c *gin.Context) {
	actor := actorFrom(c)

	var (
		sessions []domain.Session
		err      error
	)
	if actor.Role == domain.RoleAdmin {
		sessions, err = h.service.ListAll(c.Request.Context())
	} else {
		sessions, err = h.service.ListForTrainer(c.Request.Context(), actor.ID)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid session fields")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "SESSION_CONFLICT", "Session overlaps one of your busy slots")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process session")
	}
}

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetInt64("user_id"),
		Role: domain.Role(c.GetString("role")),
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return 0, false
	}
	return id, true
}
