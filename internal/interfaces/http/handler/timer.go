package handler

import (
	"github.com/gin-gonic/gin"
	timesheetapp "github.com/hourbill/backend/internal/application/timesheet"
)

// TimerHandler handles timer-related API endpoints
type TimerHandler struct {
	BaseHandler
	timerService *timesheetapp.TimerService
}

// NewTimerHandler creates a new TimerHandler
func NewTimerHandler(timerService *timesheetapp.TimerService) *TimerHandler {
	return &TimerHandler{
		timerService: timerService,
	}
}

// Start opens a new time entry, or records a completed one when the
// request carries an end time
func (h *TimerHandler) Start(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req timesheetapp.StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required fields")
		return
	}

	entry, err := h.timerService.Start(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"timeEntry": entry})
}

// Stop stamps the end time on a running entry
func (h *TimerHandler) Stop(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	entryID, err := parseIDParam(c)
	if err != nil {
		h.NotFound(c, "Time entry not found")
		return
	}

	var req timesheetapp.StopTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required field: endTime")
		return
	}

	entry, err := h.timerService.Stop(c.Request.Context(), userID, entryID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"timeEntry": entry})
}

// ListOpen returns the user's running timers, newest first
func (h *TimerHandler) ListOpen(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	entries, err := h.timerService.ListOpen(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"inProgressEntries": entries})
}

// RegisterRoutes registers timer routes on the given router group
func (h *TimerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	timer := rg.Group("/timer")
	{
		timer.GET("", h.ListOpen)
		timer.POST("", h.Start)
		timer.PUT("/:id", h.Stop)
	}
}
