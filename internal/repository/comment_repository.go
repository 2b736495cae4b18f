package repository

import (
	"context"

	"github.com/yukikurage/pharmacy-tasks/internal/database"
	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(ctx context.Context, comment *models.TaskComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByTaskID lists the comments of a task in chronological order
func (r *GormCommentRepository) ListByTaskID(ctx context.Context, taskID uint64) ([]models.TaskComment, error) {
	comments := []models.TaskComment{}
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("task_id = ?", taskID).
		Scopes(database.OldestFirst("task_comments")).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
