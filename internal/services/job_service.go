package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/metrics"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewJobService(db *gorm.DB, mailer Mailer) *JobService {
	return &JobService{DB: db, Mailer: mailer}
}

// jobTransitions is the full set of legal status moves. Completed and
// cancelled are terminal.
var jobTransitions = map[string][]string{
	models.JobStatusOpen: {
		models.JobStatusInProgress,
		models.JobStatusCompleted,
		models.JobStatusCancelled,
	},
	models.JobStatusInProgress: {
		models.JobStatusCompleted,
		models.JobStatusCancelled,
	},
}

func canTransition(from, to string) bool {
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *JobService) Create(sess *auth.Session, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		ClientID:           sess.UserID,
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		BudgetMin:          req.BudgetMin,
		BudgetMax:          req.BudgetMax,
		BudgetType:         req.BudgetType,
		SkillsRequired:     datatypes.NewJSONSlice(req.SkillsRequired),
		ExperienceLevel:    req.ExperienceLevel,
		ProjectDuration:    req.ProjectDuration,
		LocationPreference: req.LocationPreference,
		Status:             models.JobStatusOpen,
		IsFeatured:         req.IsFeatured,
	}
	if job.BudgetType == "" {
		job.BudgetType = models.BudgetTypeFixed
	}

	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	metrics.JobsCreated.Inc()

	// Confirmation email is best-effort; a mail failure never unwinds the job.
	if s.Mailer != nil {
		err := s.Mailer.JobPosted(MailParams{
			To:            sess.Email,
			RecipientName: sess.Email,
			JobTitle:      job.Title,
			Link:          "/jobs/" + job.ID.String(),
		})
		if err != nil {
			log.Printf("job posted email failed for %s: %v", job.ID, err)
		}
	}
	return job, nil
}

// Get loads one job with its owner profile. countView bumps the view counter
// with a single atomic expression, never read-modify-write.
func (s *JobService) Get(id uuid.UUID, countView bool) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Client").First(&job, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	if countView {
		err := s.DB.Model(&models.Job{}).Where("id = ?", id).
			UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
		if err != nil {
			return nil, err
		}
		job.ViewsCount++
	}
	return &job, nil
}

func (s *JobService) List(sess *auth.Session, q *dtos.JobListQuery) ([]models.Job, error) {
	db := s.DB.Preload("Client").Order("created_at DESC")
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		db = db.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	if q.Mine {
		db = db.Where("client_id = ?", sess.UserID)
	}

	var jobs []models.Job
	if err := db.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update patches a job the caller owns. The request's updated_at must match
// the stored row or ErrStaleWrite comes back; that closes the silent
// last-write-wins overwrite between two stale edit forms.
func (s *JobService) Update(sess *auth.Session, id uuid.UUID, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "id = ? AND client_id = ?", id, sess.UserID).Error; err != nil {
			return notFound(err)
		}

		// JSON round-trips drop sub-millisecond precision, so the token
		// comparison truncates both sides.
		if !job.UpdatedAt.Truncate(time.Millisecond).Equal(req.UpdatedAt.Truncate(time.Millisecond)) {
			return ErrStaleWrite
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.BudgetMin != nil {
			updates["budget_min"] = *req.BudgetMin
		}
		if req.BudgetMax != nil {
			updates["budget_max"] = *req.BudgetMax
		}
		if req.BudgetType != nil {
			updates["budget_type"] = *req.BudgetType
		}
		if req.SkillsRequired != nil {
			updates["skills_required"] = datatypes.NewJSONSlice(req.SkillsRequired)
		}
		if req.ExperienceLevel != nil {
			updates["experience_level"] = *req.ExperienceLevel
		}
		if req.ProjectDuration != nil {
			updates["project_duration"] = *req.ProjectDuration
		}
		if req.LocationPreference != nil {
			updates["location_preference"] = *req.LocationPreference
		}
		if req.IsFeatured != nil {
			updates["is_featured"] = *req.IsFeatured
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&job).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateStatus applies an owner-initiated status change subject to the
// transition table. The finalizer has its own path to completed.
func (s *JobService) UpdateStatus(sess *auth.Session, id uuid.UUID, status string) (*models.Job, error) {
	var job models.Job
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "id = ? AND client_id = ?", id, sess.UserID).Error; err != nil {
			return notFound(err)
		}
		if !canTransition(job.Status, status) {
			return ErrInvalidTransition
		}
		return tx.Model(&job).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete removes a job along with its applications and bookmarks in one
// transaction. Only the owning client can delete.
func (s *JobService) Delete(sess *auth.Session, id uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, "id = ? AND client_id = ?", id, sess.UserID).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}
