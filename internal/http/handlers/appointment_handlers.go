package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/http/middleware"
)

// AppointmentHandlers handles owner-scoped booking requests
type AppointmentHandlers struct {
	apptSvc domain.AppointmentService
}

// NewAppointmentHandlers creates new appointment handlers
func NewAppointmentHandlers(apptSvc domain.AppointmentService) *AppointmentHandlers {
	return &AppointmentHandlers{apptSvc: apptSvc}
}

// CreateAppointmentRequest is a new booking. Date is "2006-01-02" and
// Time is "15:04".
type CreateAppointmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

func appointmentJSON(a *domain.Appointment) gin.H {
	return gin.H{
		"id":          a.ID,
		"title":       a.Title,
		"description": a.Description,
		"date":        a.Date,
		"status":      a.Status,
		"location":    a.Location,
		"notes":       a.Notes,
		"createdAt":   a.CreatedAt,
	}
}

// List returns the caller's appointments
func (h *AppointmentHandlers) List(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appts, err := h.apptSvc.ListForUser(c.Request.Context(), info.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]gin.H, 0, len(appts))
	for i := range appts {
		out = append(out, appointmentJSON(&appts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": out})
}

// Create books a new appointment for the caller
func (h *AppointmentHandlers) Create(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > 256 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"title": "title must be between 1 and 256 characters"}})
		return
	}
	when, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"date": "expected date 2006-01-02 and time 15:04"}})
		return
	}

	appt, err := h.apptSvc.Create(c.Request.Context(), domain.CreateAppointmentInput{
		UserID:      info.UserID,
		Title:       title,
		Description: req.Description,
		Date:        when,
		Location:    req.Location,
		Notes:       req.Notes,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "appointment": appointmentJSON(appt)})
}

// Delete cancels one of the caller's appointments. Another user's
// appointment is indistinguishable from a missing one.
func (h *AppointmentHandlers) Delete(c *gin.Context) {
	info, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.apptSvc.Delete(c.Request.Context(), info.UserID, c.Param("id"), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
