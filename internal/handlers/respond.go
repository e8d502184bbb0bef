package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
)

// fail translates service sentinel errors into HTTP responses. Anything
// unrecognized is a 500 with a generic message; the detail goes to the log,
// not the client.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateApplication),
		errors.Is(err, services.ErrReviewExists),
		errors.Is(err, services.ErrAlreadyBookmarked),
		errors.Is(err, services.ErrStaleWrite):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrJobNotOpen),
		errors.Is(err, services.ErrOwnJob),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNotAccepted),
		errors.Is(err, services.ErrNoAcceptedApplications),
		errors.Is(err, services.ErrProvidersNotDone),
		errors.Is(err, services.ErrNotWorkedWith),
		errors.Is(err, services.ErrInvalidRating):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAIDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

// pathID parses the :id route parameter; a malformed id aborts with 400.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return uuid.Nil, false
	}
	return id, true
}
