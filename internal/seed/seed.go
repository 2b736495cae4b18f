// Package seed loads a small demo data set through the services, so the
// same validation and uniqueness rules apply as for any other writer.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"github.com/yukikurage/pharmacy-tasks/internal/services"
)

type Services struct {
	Users      *services.UserService
	Pharmacies *services.PharmacyService
	Tasks      *services.TaskService
	Comments   *services.CommentService
}

// Result counts what a Run created.
type Result struct {
	Users      int
	Pharmacies int
	Tasks      int
	Comments   int
	Skipped    bool
}

var demoUsers = []string{"amina", "jonas", "priya"}

var demoPharmacies = []services.CreatePharmacyInput{
	{Name: "Central Pharmacy", Address: "12 Market Street", Phone: "555-0100", Email: "central@example.com", LicenseNumber: "PH-1001"},
	{Name: "Riverside Pharmacy", Address: "4 Quay Road", Phone: "555-0101", Email: "riverside@example.com", LicenseNumber: "PH-1002"},
}

type demoTask struct {
	title    string
	pharmacy int
	assignee int
	creator  int
	status   models.TaskStatus
	priority models.TaskPriority
	dueIn    time.Duration
	comments []string
}

var demoTasks = []demoTask{
	{title: "Reconcile controlled drug register", pharmacy: 0, assignee: 0, creator: 1, status: models.TaskStatusInProgress, priority: models.TaskPriorityHigh, dueIn: 24 * time.Hour,
		comments: []string{"Started with the morning count.", "Two entries need a second signature."}},
	{title: "Check fridge temperature log", pharmacy: 0, assignee: 1, creator: 0, status: models.TaskStatusPending, priority: models.TaskPriorityMedium, dueIn: -48 * time.Hour},
	{title: "Order flu vaccine stock", pharmacy: 1, assignee: 2, creator: 1, status: models.TaskStatusCompleted, priority: models.TaskPriorityLow,
		comments: []string{"Order placed with the wholesaler."}},
	{title: "Update opening hours notice", pharmacy: 1, assignee: 1, creator: 2, status: models.TaskStatusPending, priority: models.TaskPriorityLow},
	{title: "Review expired stock", pharmacy: 0, assignee: 2, creator: 0, status: models.TaskStatusCancelled, priority: models.TaskPriorityMedium},
	{title: "Prepare monthly audit", pharmacy: 1, assignee: 0, creator: 2, status: models.TaskStatusPending, priority: models.TaskPriorityHigh, dueIn: 7 * 24 * time.Hour},
}

// Run creates the demo data. If the demo pharmacies already exist it creates
// nothing and reports Skipped.
func Run(ctx context.Context, svc Services, password string, now time.Time, log zerolog.Logger) (Result, error) {
	var res Result

	users := make([]*models.User, 0, len(demoUsers))
	for _, username := range demoUsers {
		user, err := svc.Users.Create(ctx, services.CreateUserInput{
			Username: username,
			Email:    username + "@example.com",
			Password: password,
		})
		if errors.Is(err, services.ErrUsernameTaken) {
			user, err = svc.Users.GetByUsername(ctx, username)
		} else if err == nil {
			res.Users++
		}
		if err != nil {
			return res, fmt.Errorf("seed user %s: %w", username, err)
		}
		users = append(users, user)
	}

	pharmacies := make([]*models.Pharmacy, 0, len(demoPharmacies))
	for _, input := range demoPharmacies {
		pharmacy, err := svc.Pharmacies.Create(ctx, input)
		if errors.Is(err, services.ErrLicenseNumberTaken) {
			log.Info().Str("license_number", input.LicenseNumber).Msg("Demo data already present, skipping")
			res.Skipped = true
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("seed pharmacy %s: %w", input.LicenseNumber, err)
		}
		res.Pharmacies++
		pharmacies = append(pharmacies, pharmacy)
	}

	for _, t := range demoTasks {
		var due *time.Time
		if t.dueIn != 0 {
			d := now.Add(t.dueIn)
			due = &d
		}

		task, err := svc.Tasks.Create(ctx, services.CreateTaskInput{
			Title:        t.title,
			Description:  t.title + ".",
			Status:       t.status,
			Priority:     t.priority,
			PharmacyID:   pharmacies[t.pharmacy].ID,
			AssignedToID: users[t.assignee].ID,
			CreatedByID:  users[t.creator].ID,
			DueDate:      due,
		})
		if err != nil {
			return res, fmt.Errorf("seed task %q: %w", t.title, err)
		}
		res.Tasks++

		for _, content := range t.comments {
			if _, err := svc.Comments.Create(ctx, services.CreateCommentInput{
				TaskID:   task.ID,
				AuthorID: users[t.creator].ID,
				Content:  content,
			}); err != nil {
				return res, fmt.Errorf("seed comment on task %d: %w", task.ID, err)
			}
			res.Comments++
		}
	}

	log.Info().
		Int("users", res.Users).
		Int("pharmacies", res.Pharmacies).
		Int("tasks", res.Tasks).
		Int("comments", res.Comments).
		Msg("Demo data created")

	return res, nil
}
