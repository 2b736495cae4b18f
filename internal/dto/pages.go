package dto

import (
	"github.com/yukikurage/pharmacy-tasks/internal/models"
)

// Template names

const (
	TemplateHome         = "home.html"
	TemplateTaskList     = "task_list.html"
	TemplatePharmacyList = "pharmacy_list.html"
	TemplateTaskDetail   = "task_detail.html"
	TemplateNotFound     = "not_found.html"
	TemplateError        = "error.html"
)

// HomePage is the context for the home page
type HomePage struct {
	Tasks      []models.Task
	Pharmacies []models.Pharmacy
}

// TaskListPage is the context for the task list
type TaskListPage struct {
	Tasks []models.Task
}

// PharmacyListPage is the context for the pharmacy list
type PharmacyListPage struct {
	Pharmacies []models.Pharmacy
}

// TaskDetailPage is the context for a single task and its comments
type TaskDetailPage struct {
	Task     models.Task
	Comments []models.TaskComment
}

// ErrorPage is the context for the not found and error pages
type ErrorPage struct {
	Status  int
	Message string
}
