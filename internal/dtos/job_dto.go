package dtos

import "time"

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`

	// Optional Fields
	BudgetMin          *float64 `json:"budget_min" binding:"omitempty,gte=0"`
	BudgetMax          *float64 `json:"budget_max" binding:"omitempty,gte=0,gtefield=BudgetMin"`
	BudgetType         string   `json:"budget_type" binding:"omitempty,oneof=hourly fixed range"`
	SkillsRequired     []string `json:"skills_required"`
	ExperienceLevel    *string  `json:"experience_level" binding:"omitempty,oneof=beginner intermediate expert"`
	ProjectDuration    *string  `json:"project_duration"`
	LocationPreference *string  `json:"location_preference" binding:"omitempty,oneof=remote onsite hybrid"`
	IsFeatured         bool     `json:"is_featured"`
}

// JobUpdateRequest is a partial patch. UpdatedAt is the optimistic
// concurrency token: it must match the row's current value or the update is
// rejected as stale.
type JobUpdateRequest struct {
	UpdatedAt time.Time `json:"updated_at" binding:"required"`

	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	Category           *string  `json:"category"`
	BudgetMin          *float64 `json:"budget_min" binding:"omitempty,gte=0"`
	BudgetMax          *float64 `json:"budget_max" binding:"omitempty,gte=0"`
	BudgetType         *string  `json:"budget_type" binding:"omitempty,oneof=hourly fixed range"`
	SkillsRequired     []string `json:"skills_required"`
	ExperienceLevel    *string  `json:"experience_level" binding:"omitempty,oneof=beginner intermediate expert"`
	ProjectDuration    *string  `json:"project_duration"`
	LocationPreference *string  `json:"location_preference" binding:"omitempty,oneof=remote onsite hybrid"`
	IsFeatured         *bool    `json:"is_featured"`
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress completed cancelled"`
}

// JobListQuery is bound from query parameters on GET /jobs.
type JobListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=open in_progress completed cancelled"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Mine     bool   `form:"mine"`
}
