package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply is POST /jobs/:id/applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Apply(auth.FromContext(c), jobID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Decide is PATCH /applications/:id/status (accept or reject).
func (h *ApplicationHandler) Decide(c *gin.Context) {
	appID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Decide(auth.FromContext(c), appID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// MarkDone is POST /applications/:id/done, the provider's "payment
// received" flag.
func (h *ApplicationHandler) MarkDone(c *gin.Context) {
	appID, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.Applications.MarkDone(auth.FromContext(c), appID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListForJob is GET /jobs/:id/applications, owner only.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	apps, err := h.Applications.ListForJob(auth.FromContext(c), jobID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}

// ListMine is GET /applications, the provider's own applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.Applications.ListMine(auth.FromContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}
