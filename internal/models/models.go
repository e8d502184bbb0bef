package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job lifecycle states. A job only ever moves forward: once completed or
// cancelled it never reopens.
const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

const (
	BudgetTypeHourly = "hourly"
	BudgetTypeFixed  = "fixed"
	BudgetTypeRange  = "range"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

const (
	RoleClient   = "client"
	RoleProvider = "provider"
)

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Profile is the local record for an identity-provider user. The primary key
// is the provider's user id, so rows are upserted on first authenticated
// request rather than created through a signup flow here.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email      string                      `gorm:"uniqueIndex;not null" json:"email"`
	FullName   string                      `json:"full_name"`
	Role       string                      `gorm:"default:'provider'" json:"role"`
	Headline   string                      `json:"headline"`
	HourlyRate *float64                    `json:"hourly_rate,omitempty"`
	Skills     datatypes.JSONSlice[string] `json:"skills"`
}

type Job struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	// Association: GORM needs Preload() to fill this
	Client Profile `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	Title              string                      `gorm:"not null" json:"title"`
	Description        string                      `gorm:"type:text" json:"description"`
	Category           string                      `gorm:"index" json:"category"`
	BudgetMin          *float64                    `json:"budget_min,omitempty"`
	BudgetMax          *float64                    `json:"budget_max,omitempty"`
	BudgetType         string                      `gorm:"default:'fixed'" json:"budget_type"`
	SkillsRequired     datatypes.JSONSlice[string] `json:"skills_required"`
	ExperienceLevel    *string                     `json:"experience_level,omitempty"`
	ProjectDuration    *string                     `json:"project_duration,omitempty"`
	LocationPreference *string                     `json:"location_preference,omitempty"`
	Status             string                      `gorm:"default:'open';index" json:"status"`
	IsFeatured         bool                        `json:"is_featured"`

	// Server-maintained counters, only ever touched with gorm.Expr updates.
	ViewsCount        int `json:"views_count"`
	ApplicationsCount int `json:"applications_count"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}

// JobApplication is a provider's proposal against an open job. The composite
// unique index is what actually enforces one-application-per-(job,provider);
// callers see the violation as gorm.ErrDuplicatedKey.
type JobApplication struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_job_provider" json:"job_id"`
	Job        Job       `gorm:"foreignKey:JobID" json:"job,omitempty"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_job_provider" json:"provider_id"`
	Provider   Profile   `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`

	Proposal          string   `gorm:"type:text;not null" json:"proposal"`
	ProposedRate      *float64 `json:"proposed_rate,omitempty"`
	EstimatedDuration string   `json:"estimated_duration"`
	Status            string   `gorm:"default:'pending';index" json:"status"`

	// Set by the provider after acceptance ("payment received"); never reset.
	ProviderMarkedDone bool `gorm:"default:false" json:"provider_marked_done"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// WorkedWith is the derived "finished engagement" relationship, materialized
// by the finalizer. The triple is the primary key so the finalizer's upsert
// (ON CONFLICT DO NOTHING) is idempotent.
type WorkedWith struct {
	ClientID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"client_id"`
	ProviderID uuid.UUID `gorm:"type:uuid;primaryKey" json:"provider_id"`
	JobID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"job_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (WorkedWith) TableName() string { return "providers_worked_with" }

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ClientID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_triple" json:"client_id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_triple;index" json:"provider_id"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_triple" json:"job_id"`

	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText string `gorm:"type:text" json:"review_text"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

type Bookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_job" json:"user_id"`
	JobID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_job" json:"job_id"`
	Job    Job       `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// Notification is the in-app record written alongside (not instead of) the
// transactional email. Data holds event-specific references, e.g.
// {"job_id": "...", "application_id": "..."}.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"`
	Title   string         `gorm:"not null" json:"title"`
	Message string         `json:"message"`
	Data    datatypes.JSON `json:"data,omitempty"`
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}

// Task is a provider-side to-do item, optionally tied to a job. Tasks are
// created by hand or by the AI generation flow.
type Task struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ProviderID uuid.UUID  `gorm:"type:uuid;not null;index" json:"provider_id"`
	JobID      *uuid.UUID `gorm:"type:uuid" json:"job_id,omitempty"`

	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"default:'todo'" json:"status"`
	Priority    string     `gorm:"default:'medium'" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
