package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
)

type TaskHandler struct {
	Tasks    *services.TaskService
	Calendar *services.CalendarService
}

func NewTaskHandler(tasks *services.TaskService, calendar *services.CalendarService) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Calendar: calendar}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req dtos.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	task, err := h.Tasks.Create(auth.FromContext(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Tasks.ListMine(auth.FromContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	task, err := h.Tasks.Update(auth.FromContext(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Tasks.Delete(auth.FromContext(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Generate is POST /tasks/generate: AI breakdown of a goal into tasks.
func (h *TaskHandler) Generate(c *gin.Context) {
	var req dtos.TaskGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	tasks, err := h.Tasks.Generate(c.Request.Context(), auth.FromContext(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": tasks, "count": len(tasks)})
}

// ExportCalendar is GET /tasks/calendar: due-dated tasks as an .ics file.
func (h *TaskHandler) ExportCalendar(c *gin.Context) {
	tasks, err := h.Tasks.ListMine(auth.FromContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	body := h.Calendar.TasksICS(tasks)
	c.Header("Content-Disposition", `attachment; filename="solosuite-tasks.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
