package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var req dtos.ReviewSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	// Already validated as uuids by the binding.
	providerID, _ := uuid.Parse(req.ProviderID)
	jobID, _ := uuid.Parse(req.JobID)

	review, err := h.Reviews.Submit(auth.FromContext(c), providerID, jobID, req.Rating, req.ReviewText)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListForProvider(c *gin.Context) {
	providerID, ok := pathID(c)
	if !ok {
		return
	}
	reviews, err := h.Reviews.ListForProvider(providerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

func (h *ReviewHandler) Summary(c *gin.Context) {
	providerID, ok := pathID(c)
	if !ok {
		return
	}
	summary, err := h.Reviews.Summary(providerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
