package busyslot

import (
	"net/http"
	"strconv"

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
	slots := rg.Group("/busy-slots")
	slots.GET("", middleware.TrainerOnly(), h.List)
	slots.POST("", middleware.TrainerOnly(), h.Create)
	slots.PUT("/:id", middleware.TrainerOnly(), h.Update)
	slots.DELETE("/:id", middleware.TrainerOnly(), h.Delete)
	slots.GET("/all", middleware.AdminOnly(), h.ListAll)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBusySlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	trainerID := c.GetInt64("user_id")

	slot, err := h.service.Create(c.Request.Context(), trainerID, req.Start, req.End, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"busy_slot": slot})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBusySlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	trainerID := c.GetInt64("user_id")

	slot, err := h.service.Update(c.Request.Context(), id, trainerID, req.Start, req.End, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"busy_slot": slot})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trainerID := c.GetInt64("user_id")

	slot, err := h.service.Delete(c.Request.Context(), id, trainerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"busy_slot": slot})
}

func (h *Handler) List(c *gin.Context) {
	trainerID := c.GetInt64("user_id")

	slots, err := h.service.ListForTrainer(c.Request.Context(), trainerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"busy_slots": slots})
}

func (h *Handler) ListAll(c *gin.Context) {
	slots, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"busy_slots": slots})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid busy slot time range")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "Busy slot overlaps an existing one")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Busy slot not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process busy slot")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid busy slot ID")
		return 0, false
	}
	return id, true
}
