package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"gorm.io/gorm"
)

type index struct {
	model   interface{}
	table   string
	name    string
	columns string
}

// indexes backs the default orderings and the foreign-key lookups used by the
// cascading deletes.
var indexes = []index{
	{&models.Task{}, "tasks", "idx_tasks_created_at", "created_at"},
	{&models.Task{}, "tasks", "idx_tasks_pharmacy_id", "pharmacy_id"},
	{&models.Task{}, "tasks", "idx_tasks_assigned_to_id", "assigned_to_id"},
	{&models.Task{}, "tasks", "idx_tasks_created_by_id", "created_by_id"},
	{&models.TaskComment{}, "task_comments", "idx_task_comments_task_id_created_at", "task_id, created_at"},
	{&models.TaskComment{}, "task_comments", "idx_task_comments_author_id", "author_id"},
}

// EnsureIndexes creates any missing secondary index. It is safe to run on
// every start.
func EnsureIndexes(db *gorm.DB, log zerolog.Logger) error {
	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Msg("created index")
	}

	return nil
}
