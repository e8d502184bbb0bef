package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/gorm"
)

// BookmarkService lets a user save job references. Completely independent of
// job or application state; the only store-level rule is the unique
// (user_id, job_id) constraint.
type BookmarkService struct {
	DB *gorm.DB
}

func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{DB: db}
}

// Toggle removes the bookmark if present, otherwise creates it. Returns
// whether the job is bookmarked afterwards. A concurrent duplicate insert is
// folded into the bookmarked=true outcome rather than surfaced.
func (s *BookmarkService) Toggle(sess *auth.Session, jobID uuid.UUID) (bool, error) {
	res := s.DB.Where("user_id = ? AND job_id = ?", sess.UserID, jobID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	if err := s.add(sess, jobID); err != nil {
		if errors.Is(err, ErrAlreadyBookmarked) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Add bookmarks the job; a duplicate surfaces as the friendly
// ErrAlreadyBookmarked, never a bare constraint error.
func (s *BookmarkService) Add(sess *auth.Session, jobID uuid.UUID) (*models.Bookmark, error) {
	if err := s.add(sess, jobID); err != nil {
		return nil, err
	}
	var b models.Bookmark
	if err := s.DB.First(&b, "user_id = ? AND job_id = ?", sess.UserID, jobID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookmarkService) add(sess *auth.Session, jobID uuid.UUID) error {
	var job models.Job
	if err := s.DB.Select("id").First(&job, "id = ?", jobID).Error; err != nil {
		return notFound(err)
	}

	b := models.Bookmark{UserID: sess.UserID, JobID: jobID}
	if err := s.DB.Create(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyBookmarked
		}
		return err
	}
	return nil
}

func (s *BookmarkService) Remove(sess *auth.Session, jobID uuid.UUID) error {
	res := s.DB.Where("user_id = ? AND job_id = ?", sess.UserID, jobID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsBookmarked treats "no row" as false, not as an error.
func (s *BookmarkService) IsBookmarked(sess *auth.Session, jobID uuid.UUID) (bool, error) {
	var b models.Bookmark
	err := s.DB.Select("id").First(&b, "user_id = ? AND job_id = ?", sess.UserID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *BookmarkService) ListForUser(sess *auth.Session) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := s.DB.Preload("Job").Where("user_id = ?", sess.UserID).
		Order("created_at DESC").Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}
