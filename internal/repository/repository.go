package repository

import (
	"context"

	"github.com/yukikurage/pharmacy-tasks/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID with its pharmacy, assignee and creator loaded
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// ListNewest lists tasks newest first; limit <= 0 means no limit
	ListNewest(ctx context.Context, limit int) ([]models.Task, error)

	// Delete deletes a task and its comments
	Delete(ctx context.Context, id uint64) error
}

// CommentRepository defines the interface for task comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *models.TaskComment) error

	// ListByTaskID lists the comments of a task oldest first, authors loaded
	ListByTaskID(ctx context.Context, taskID uint64) ([]models.TaskComment, error)
}

// PharmacyRepository defines the interface for pharmacy data access
type PharmacyRepository interface {
	// Create creates a new pharmacy
	Create(ctx context.Context, pharmacy *models.Pharmacy) error

	// FindByID finds a pharmacy by ID
	FindByID(ctx context.Context, id uint64) (*models.Pharmacy, error)

	// FindByLicenseNumber finds a pharmacy by its license number
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Pharmacy, error)

	// List lists every pharmacy in storage order
	List(ctx context.Context) ([]models.Pharmacy, error)

	// Delete deletes a pharmacy together with its tasks and their comments
	Delete(ctx context.Context, id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Delete deletes a user, every task assigned to or created by them, and
	// all comments on those tasks or written by them
	Delete(ctx context.Context, id uint64) error
}
