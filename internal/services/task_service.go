package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/gorm"
)

// ErrAIDisabled means no LLM client is configured; manual task creation
// still works.
var ErrAIDisabled = errors.New("AI task generation is not configured")

type TaskService struct {
	DB  *gorm.DB
	LLM *LLMService
}

func NewTaskService(db *gorm.DB, llm *LLMService) *TaskService {
	return &TaskService{DB: db, LLM: llm}
}

func (s *TaskService) Create(sess *auth.Session, req *dtos.TaskCreateRequest) (*models.Task, error) {
	task := models.Task{
		ProviderID:  sess.UserID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if req.JobID != nil {
		id, err := uuid.Parse(*req.JobID)
		if err != nil {
			return nil, ErrNotFound
		}
		task.JobID = &id
	}

	if err := s.DB.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) ListMine(sess *auth.Session) ([]models.Task, error) {
	var tasks []models.Task
	err := s.DB.Where("provider_id = ?", sess.UserID).
		Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Update(sess *auth.Session, id uuid.UUID, req *dtos.TaskUpdateRequest) (*models.Task, error) {
	var task models.Task
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ? AND provider_id = ?", id, sess.UserID).Error; err != nil {
			return notFound(err)
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Priority != nil {
			updates["priority"] = *req.Priority
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.DueDate != nil {
			updates["due_date"] = req.DueDate
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&task).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Delete(sess *auth.Session, id uuid.UUID) error {
	res := s.DB.Where("id = ? AND provider_id = ?", id, sess.UserID).Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Generate asks the LLM for a task breakdown of the goal and persists the
// result for the calling provider.
func (s *TaskService) Generate(ctx context.Context, sess *auth.Session, req *dtos.TaskGenerateRequest) ([]models.Task, error) {
	if s.LLM == nil {
		return nil, ErrAIDisabled
	}

	count := req.Count
	if count == 0 {
		count = 5
	}

	generated, err := s.LLM.GenerateTasks(ctx, req.Goal, count)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(generated))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, g := range generated {
			task := models.Task{
				ProviderID:  sess.UserID,
				Title:       g.Title,
				Description: g.Description,
				Priority:    g.Priority,
				Status:      models.TaskStatusTodo,
			}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
			tasks = append(tasks, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
