package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/metrics"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB            *gorm.DB
	Mailer        Mailer
	Notifications *NotificationService
}

func NewApplicationService(db *gorm.DB, mailer Mailer, notifications *NotificationService) *ApplicationService {
	return &ApplicationService{DB: db, Mailer: mailer, Notifications: notifications}
}

// Apply creates a pending application. The insert and the conditional
// counter bump run in one transaction: the bump matches `status = 'open'`,
// so a job that closed in the meantime rolls the whole thing back. The
// composite unique index turns a concurrent double-submit into
// ErrDuplicateApplication instead of two rows.
func (s *ApplicationService) Apply(sess *auth.Session, jobID uuid.UUID, req *dtos.ApplicationCreateRequest) (*models.JobApplication, error) {
	var app models.JobApplication
	var job models.Job

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			return notFound(err)
		}
		if job.ClientID == sess.UserID {
			return ErrOwnJob
		}

		app = models.JobApplication{
			JobID:             jobID,
			ProviderID:        sess.UserID,
			Proposal:          req.Proposal,
			ProposedRate:      req.ProposedRate,
			EstimatedDuration: req.EstimatedDuration,
			Status:            models.ApplicationStatusPending,
		}
		if err := tx.Create(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateApplication
			}
			return err
		}

		res := tx.Model(&models.Job{}).
			Where("id = ? AND status = ?", jobID, models.JobStatusOpen).
			UpdateColumn("applications_count", gorm.Expr("applications_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrJobNotOpen
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ApplicationsSubmitted.Inc()

	s.notifyClient(&job, sess)
	return &app, nil
}

func (s *ApplicationService) notifyClient(job *models.Job, provider *auth.Session) {
	var client models.Profile
	if err := s.DB.First(&client, "id = ?", job.ClientID).Error; err != nil {
		log.Printf("application notify: load client %s: %v", job.ClientID, err)
		return
	}

	var prov models.Profile
	providerName := provider.Email
	if err := s.DB.First(&prov, "id = ?", provider.UserID).Error; err == nil && prov.FullName != "" {
		providerName = prov.FullName
	}

	if s.Mailer != nil {
		err := s.Mailer.ApplicationSubmitted(MailParams{
			To:              client.Email,
			RecipientName:   client.FullName,
			JobTitle:        job.Title,
			CounterpartName: providerName,
			Link:            "/jobs/" + job.ID.String() + "/applications",
		})
		if err != nil {
			log.Printf("application submitted email failed for job %s: %v", job.ID, err)
		}
	}
	if s.Notifications != nil {
		err := s.Notifications.Record(job.ClientID, "application_submitted",
			"New application", providerName+" applied to "+job.Title,
			map[string]string{"job_id": job.ID.String()})
		if err != nil {
			log.Printf("application submitted notification failed for job %s: %v", job.ID, err)
		}
	}
}

// Decide moves a pending application to accepted or rejected. Only the job's
// owning client may decide, and decisions are terminal.
func (s *ApplicationService) Decide(sess *auth.Session, appID uuid.UUID, status string) (*models.JobApplication, error) {
	if status != models.ApplicationStatusAccepted && status != models.ApplicationStatusRejected {
		return nil, ErrInvalidTransition
	}

	var app models.JobApplication
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Job").Preload("Provider").First(&app, "id = ?", appID).Error; err != nil {
			return notFound(err)
		}
		// Outsiders see the same ErrNotFound an absent row produces.
		if app.Job.ClientID != sess.UserID {
			return ErrNotFound
		}
		if app.Status != models.ApplicationStatusPending {
			return ErrInvalidTransition
		}
		return tx.Model(&app).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	metrics.ApplicationsDecided.WithLabelValues(status).Inc()

	if status == models.ApplicationStatusAccepted {
		s.notifyProvider(&app, sess)
	}
	return &app, nil
}

func (s *ApplicationService) notifyProvider(app *models.JobApplication, client *auth.Session) {
	var cli models.Profile
	clientName := client.Email
	if err := s.DB.First(&cli, "id = ?", client.UserID).Error; err == nil && cli.FullName != "" {
		clientName = cli.FullName
	}

	if s.Mailer != nil {
		err := s.Mailer.ApplicationAccepted(MailParams{
			To:              app.Provider.Email,
			RecipientName:   app.Provider.FullName,
			JobTitle:        app.Job.Title,
			CounterpartName: clientName,
			Link:            "/jobs/" + app.JobID.String(),
		})
		if err != nil {
			log.Printf("application accepted email failed for %s: %v", app.ID, err)
		}
	}
	if s.Notifications != nil {
		err := s.Notifications.Record(app.ProviderID, "application_accepted",
			"Application accepted", "You were accepted for "+app.Job.Title,
			map[string]string{"job_id": app.JobID.String(), "application_id": app.ID.String()})
		if err != nil {
			log.Printf("application accepted notification failed for %s: %v", app.ID, err)
		}
	}
}

// MarkDone is the provider's "payment received" flag. Only meaningful on an
// accepted application; once set it stays set, and setting it again is a
// no-op rather than an error.
func (s *ApplicationService) MarkDone(sess *auth.Session, appID uuid.UUID) (*models.JobApplication, error) {
	var app models.JobApplication
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&app, "id = ? AND provider_id = ?", appID, sess.UserID).Error; err != nil {
			return notFound(err)
		}
		if app.Status != models.ApplicationStatusAccepted {
			return ErrNotAccepted
		}
		if app.ProviderMarkedDone {
			return nil
		}
		return tx.Model(&app).Update("provider_marked_done", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListForJob returns a job's applications to its owning client.
func (s *ApplicationService) ListForJob(sess *auth.Session, jobID uuid.UUID) ([]models.JobApplication, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ? AND client_id = ?", jobID, sess.UserID).Error; err != nil {
		return nil, notFound(err)
	}

	var apps []models.JobApplication
	err := s.DB.Preload("Provider").Where("job_id = ?", jobID).
		Order("created_at ASC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListMine returns the calling provider's applications with their jobs.
func (s *ApplicationService) ListMine(sess *auth.Session) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := s.DB.Preload("Job").Where("provider_id = ?", sess.UserID).
		Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
