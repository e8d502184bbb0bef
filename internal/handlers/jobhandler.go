package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
)

// JobHandler exposes job CRUD plus the engagement finalizer as the "Finish
// Job" action.
type JobHandler struct {
	Jobs      *services.JobService
	Finalizer *services.FinalizerService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, finalizer *services.FinalizerService) *JobHandler {
	return &JobHandler{Jobs: jobs, Finalizer: finalizer}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(auth.FromContext(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	jobs, err := h.Jobs.List(auth.FromContext(c), &q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// A detail fetch counts as a view unless the caller opts out.
	countView := c.Query("count_view") != "false"
	job, err := h.Jobs.Get(id, countView)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Update(auth.FromContext(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.JobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.UpdateStatus(auth.FromContext(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Jobs.Delete(auth.FromContext(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Finish is the client-triggered engagement finalizer.
func (h *JobHandler) Finish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.Finalizer.Finish(auth.FromContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CanFinish lets the UI decide whether to offer the finish action.
func (h *JobHandler) CanFinish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	can, err := h.Finalizer.CanFinish(auth.FromContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_finish": can})
}

// WorkedWith lists the client's finished engagements.
func (h *JobHandler) WorkedWith(c *gin.Context) {
	rows, err := h.Finalizer.WorkedWithProviders(auth.FromContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"worked_with": rows, "count": len(rows)})
}
