package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/pharmacy-tasks/internal/constants"
	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"github.com/yukikurage/pharmacy-tasks/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
)

// TaskService handles task queries and administrative task operations
type TaskService struct {
	taskRepo     repository.TaskRepository
	commentRepo  repository.CommentRepository
	pharmacyRepo repository.PharmacyRepository
	userRepo     repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	commentRepo repository.CommentRepository,
	pharmacyRepo repository.PharmacyRepository,
	userRepo repository.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		commentRepo:  commentRepo,
		pharmacyRepo: pharmacyRepo,
		userRepo:     userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title        string `validate:"required,max=200"`
	Description  string
	Status       models.TaskStatus
	Priority     models.TaskPriority
	PharmacyID   uint64 `validate:"required"`
	AssignedToID uint64 `validate:"required"`
	CreatedByID  uint64 `validate:"required"`
	DueDate      *time.Time
}

// ListRecent returns the limit most recently created tasks, newest first.
// A non-positive limit falls back to the home page default.
func (s *TaskService) ListRecent(ctx context.Context, limit int) ([]models.Task, error) {
	if limit <= 0 {
		limit = constants.DefaultRecentTasksLimit
	}

	tasks, err := s.taskRepo.ListNewest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tasks: %w", err)
	}
	return tasks, nil
}

// ListAll returns every task, newest first
func (s *TaskService) ListAll(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListNewest(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetWithComments returns a task and its comments in chronological order
func (s *TaskService) GetWithComments(ctx context.Context, taskID uint64) (*models.Task, []models.TaskComment, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTaskNotFound
		}
		return nil, nil, fmt.Errorf("failed to find task: %w", err)
	}

	comments, err := s.commentRepo.ListByTaskID(ctx, task.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return task, comments, nil
}

// Create creates a task under an existing pharmacy for existing users
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, input.Status)
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !input.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, input.Priority)
	}

	if err := s.ensurePharmacy(ctx, input.PharmacyID); err != nil {
		return nil, err
	}
	for _, userID := range []uint64{input.AssignedToID, input.CreatedByID} {
		if err := ensureUser(ctx, s.userRepo, userID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		PharmacyID:   input.PharmacyID,
		AssignedToID: input.AssignedToID,
		CreatedByID:  input.CreatedByID,
		DueDate:      input.DueDate,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(ctx, task.ID)
}

// Delete deletes a task and its comments
func (s *TaskService) Delete(ctx context.Context, taskID uint64) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) ensurePharmacy(ctx context.Context, pharmacyID uint64) error {
	if _, err := s.pharmacyRepo.FindByID(ctx, pharmacyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPharmacyNotFound
		}
		return fmt.Errorf("failed to find pharmacy: %w", err)
	}
	return nil
}

// ensureUser verifies that a referenced user exists
func ensureUser(ctx context.Context, userRepo repository.UserRepository, userID uint64) error {
	if _, err := userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	return nil
}
