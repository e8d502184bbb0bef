package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
)

type BookmarkHandler struct {
	Bookmarks *services.BookmarkService
}

func NewBookmarkHandler(bookmarks *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{Bookmarks: bookmarks}
}

// Toggle is POST /jobs/:id/bookmark.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	bookmarked, err := h.Bookmarks.Toggle(auth.FromContext(c), jobID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// Status is GET /jobs/:id/bookmark.
func (h *BookmarkHandler) Status(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	bookmarked, err := h.Bookmarks.IsBookmarked(auth.FromContext(c), jobID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) List(c *gin.Context) {
	bookmarks, err := h.Bookmarks.ListForUser(auth.FromContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks, "count": len(bookmarks)})
}
