package services

import (
	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/metrics"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinalizerService owns the "Finish Job" transition: flip the job to
// completed and materialize one WorkedWith row per accepted provider, all in
// a single transaction so a crash can't leave the job completed with the
// relationship rows missing.
type FinalizerService struct {
	DB *gorm.DB
}

func NewFinalizerService(db *gorm.DB) *FinalizerService {
	return &FinalizerService{DB: db}
}

// CanFinish reports whether the finish action should be offered: job not yet
// completed, at least one accepted application, and every accepted provider
// has marked the engagement done.
func (s *FinalizerService) CanFinish(sess *auth.Session, jobID uuid.UUID) (bool, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ? AND client_id = ?", jobID, sess.UserID).Error; err != nil {
		return false, notFound(err)
	}
	if job.Status == models.JobStatusCompleted || job.Status == models.JobStatusCancelled {
		return false, nil
	}

	accepted, err := s.acceptedApplications(s.DB, jobID)
	if err != nil {
		return false, err
	}
	if len(accepted) == 0 {
		return false, nil
	}
	for _, a := range accepted {
		if !a.ProviderMarkedDone {
			return false, nil
		}
	}
	return true, nil
}

// Finish completes the job. Re-running on an already-completed job is the
// documented retry path: preconditions are skipped and the WorkedWith
// upserts run again, which the conflict target makes a no-op for rows that
// already exist.
func (s *FinalizerService) Finish(sess *auth.Session, jobID uuid.UUID) (*models.Job, error) {
	var job models.Job
	finalized := false

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "id = ? AND client_id = ?", jobID, sess.UserID).Error; err != nil {
			return notFound(err)
		}
		if job.Status == models.JobStatusCancelled {
			return ErrInvalidTransition
		}

		accepted, err := s.acceptedApplications(tx, jobID)
		if err != nil {
			return err
		}

		if job.Status != models.JobStatusCompleted {
			if len(accepted) == 0 {
				return ErrNoAcceptedApplications
			}
			for _, a := range accepted {
				if !a.ProviderMarkedDone {
					return ErrProvidersNotDone
				}
			}
			if err := tx.Model(&job).Update("status", models.JobStatusCompleted).Error; err != nil {
				return err
			}
			finalized = true
		}

		for _, a := range accepted {
			ww := models.WorkedWith{
				ClientID:   job.ClientID,
				ProviderID: a.ProviderID,
				JobID:      job.ID,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ww).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if finalized {
		metrics.JobsFinalized.Inc()
	}
	return &job, nil
}

func (s *FinalizerService) acceptedApplications(db *gorm.DB, jobID uuid.UUID) ([]models.JobApplication, error) {
	var accepted []models.JobApplication
	err := db.Where("job_id = ? AND status = ?", jobID, models.ApplicationStatusAccepted).
		Find(&accepted).Error
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// missingRelationship is one accepted application on a completed job with no
// matching WorkedWith row.
type missingRelationship struct {
	ClientID   uuid.UUID
	ProviderID uuid.UUID
	JobID      uuid.UUID
}

// Reconcile repairs partial completions left behind by the pre-transactional
// finalize flow: completed jobs whose accepted applications have no
// WorkedWith row. Returns how many rows were created.
func (s *FinalizerService) Reconcile() (int, error) {
	var missing []missingRelationship
	err := s.DB.Table("job_applications AS a").
		Select("j.client_id AS client_id, a.provider_id AS provider_id, a.job_id AS job_id").
		Joins("JOIN jobs j ON j.id = a.job_id").
		Where("j.status = ? AND j.deleted_at IS NULL", models.JobStatusCompleted).
		Where("a.status = ?", models.ApplicationStatusAccepted).
		Where("NOT EXISTS (SELECT 1 FROM providers_worked_with w WHERE w.client_id = j.client_id AND w.provider_id = a.provider_id AND w.job_id = a.job_id)").
		Scan(&missing).Error
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, m := range missing {
		ww := models.WorkedWith{ClientID: m.ClientID, ProviderID: m.ProviderID, JobID: m.JobID}
		res := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&ww)
		if res.Error != nil {
			return repaired, res.Error
		}
		repaired += int(res.RowsAffected)
	}
	return repaired, nil
}

// WorkedWithProviders lists the providers this client has finished
// engagements with, for the "providers worked with" view and review
// eligibility.
func (s *FinalizerService) WorkedWithProviders(sess *auth.Session) ([]models.WorkedWith, error) {
	var rows []models.WorkedWith
	err := s.DB.Where("client_id = ?", sess.UserID).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
