package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/metrics"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/gorm"
)

// ReviewService gates review submission on a finished engagement: the
// (client, provider, job) triple must exist in providers_worked_with, and
// the unique index allows exactly one review per triple.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

func (s *ReviewService) Submit(sess *auth.Session, providerID, jobID uuid.UUID, rating int, reviewText string) (*models.Review, error) {
	// Validated here too, not just at the binding layer: the gate must hold
	// for every caller of the service, not every caller of the handler.
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review := models.Review{
		ClientID:   sess.UserID,
		ProviderID: providerID,
		JobID:      jobID,
		Rating:     rating,
		ReviewText: reviewText,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ww models.WorkedWith
		err := tx.First(&ww, "client_id = ? AND provider_id = ? AND job_id = ?",
			sess.UserID, providerID, jobID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotWorkedWith
			}
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrReviewExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ReviewsSubmitted.Inc()
	return &review, nil
}

func (s *ReviewService) ListForProvider(providerID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Where("provider_id = ?", providerID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Summary computes the provider's aggregate rating from review rows at read
// time. Nothing denormalized is stored.
func (s *ReviewService) Summary(providerID uuid.UUID) (*dtos.ProviderRatingSummary, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := s.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("provider_id = ?", providerID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &dtos.ProviderRatingSummary{
		ProviderID: providerID.String(),
		Average:    row.Average,
		Count:      row.Count,
	}, nil
}
