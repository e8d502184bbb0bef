package dtos

import "time"

type TaskCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      string     `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time `json:"due_date"`
	JobID       *string    `json:"job_id" binding:"omitempty,uuid"`
}

type TaskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time `json:"due_date"`
}

type TaskGenerateRequest struct {
	Goal  string `json:"goal" binding:"required,min=10"`
	Count int    `json:"count" binding:"omitempty,min=1,max=10"`
}

// GeneratedTask is the shape the LLM is prompted to emit, one element per
// task in a strict JSON array.
type GeneratedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}
