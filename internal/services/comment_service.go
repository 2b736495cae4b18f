package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"github.com/yukikurage/pharmacy-tasks/internal/repository"
	"gorm.io/gorm"
)

// CommentService handles administrative comment operations
type CommentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// CreateCommentInput represents input for adding a comment to a task
type CreateCommentInput struct {
	TaskID   uint64 `validate:"required"`
	AuthorID uint64 `validate:"required"`
	Content  string `validate:"required"`
}

// Create adds a comment to an existing task
func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*models.TaskComment, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.taskRepo.FindByID(ctx, input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if err := ensureUser(ctx, s.userRepo, input.AuthorID); err != nil {
		return nil, err
	}

	comment := &models.TaskComment{
		TaskID:   input.TaskID,
		AuthorID: input.AuthorID,
		Content:  input.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
