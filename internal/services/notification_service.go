package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationService writes the in-app notification rows that accompany
// transactional emails, and serves the user's notification feed.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// Record stores one notification. data is marshalled into the JSON payload
// column; a nil map leaves it empty.
func (s *NotificationService) Record(userID uuid.UUID, typ, title, message string, data map[string]string) error {
	n := models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
	}
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		n.Data = datatypes.JSON(b)
	}
	return s.DB.Create(&n).Error
}

func (s *NotificationService) ListForUser(sess *auth.Session, unreadOnly bool) ([]models.Notification, error) {
	q := s.DB.Where("user_id = ?", sess.UserID).Order("created_at DESC").Limit(50)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var out []models.Notification
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NotificationService) MarkRead(sess *auth.Session, id uuid.UUID) error {
	now := time.Now()
	res := s.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, sess.UserID).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// notFound maps gorm's sentinel to the service-level one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
