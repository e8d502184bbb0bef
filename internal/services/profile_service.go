package services

import (
	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// Ensure creates the local profile row for a verified session on first
// sight. The identity provider owns the id and email.
func (s *ProfileService) Ensure(sess *auth.Session) (*models.Profile, error) {
	p := models.Profile{ID: sess.UserID}
	err := s.DB.Where(models.Profile{ID: sess.UserID}).
		Attrs(models.Profile{Email: sess.Email, Role: models.RoleProvider}).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) Get(id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := s.DB.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *ProfileService) Update(sess *auth.Session, req *dtos.ProfileUpdateRequest) (*models.Profile, error) {
	p, err := s.Ensure(sess)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Headline != nil {
		updates["headline"] = *req.Headline
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.Skills != nil {
		updates["skills"] = datatypes.NewJSONSlice(req.Skills)
	}
	if len(updates) == 0 {
		return p, nil
	}

	if err := s.DB.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	return p, nil
}
