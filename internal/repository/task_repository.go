package repository

import (
	"context"

	"github.com/yukikurage/pharmacy-tasks/internal/database"
	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"gorm.io/gorm"
)

// taskAssociations are eagerly loaded for every task read.
var taskAssociations = []string{"AssignedTo", "CreatedBy", "Pharmacy"}

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID with its associations loaded
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.preloaded(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListNewest lists tasks newest first
func (r *GormTaskRepository) ListNewest(ctx context.Context, limit int) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.preloaded(ctx).
		Scopes(database.NewestFirst("tasks"), database.Limit(limit)).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Delete deletes a task and its comments in a transaction
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		return deleteTasksWhere(tx, "id = ?", id)
	})
}

func (r *GormTaskRepository) preloaded(ctx context.Context) *gorm.DB {
	query := r.db.WithContext(ctx)
	for _, p := range taskAssociations {
		query = query.Preload(p)
	}
	return query
}

// deleteTasksWhere removes the tasks matching the condition and their comments.
// Comments go first so it also works with foreign keys enforced.
func deleteTasksWhere(tx *gorm.DB, query interface{}, args ...interface{}) error {
	taskIDs := tx.Model(&models.Task{}).Select("id").Where(query, args...)

	if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskComment{}).Error; err != nil {
		return err
	}
	return tx.Where(query, args...).Delete(&models.Task{}).Error
}
