package models

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusPending:    "Pending",
	TaskStatusInProgress: "In Progress",
	TaskStatusCompleted:  "Completed",
	TaskStatusCancelled:  "Cancelled",
}

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// Label returns the display name, or the raw value for unknown statuses.
func (s TaskStatus) Label() string {
	if l, ok := taskStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

var taskPriorityLabels = map[TaskPriority]string{
	TaskPriorityLow:    "Low",
	TaskPriorityMedium: "Medium",
	TaskPriorityHigh:   "High",
	TaskPriorityUrgent: "Urgent",
}

func (p TaskPriority) IsValid() bool {
	_, ok := taskPriorityLabels[p]
	return ok
}

func (p TaskPriority) Label() string {
	if l, ok := taskPriorityLabels[p]; ok {
		return l
	}
	return string(p)
}

// Task is a unit of work assigned to a user within a pharmacy.
type Task struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Title        string       `gorm:"type:varchar(200);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Status       TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Priority     TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	AssignedToID uint64       `gorm:"not null" json:"assigned_to_id"`
	PharmacyID   uint64       `gorm:"not null" json:"pharmacy_id"`
	CreatedByID  uint64       `gorm:"not null" json:"created_by_id"`
	DueDate      *time.Time   `json:"due_date"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	AssignedTo User          `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	Pharmacy   Pharmacy      `gorm:"foreignKey:PharmacyID" json:"pharmacy,omitempty"`
	CreatedBy  User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Comments   []TaskComment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

func (t Task) String() string {
	return fmt.Sprintf("%s - %s", t.Title, t.Pharmacy.Name)
}

// IsOverdue reports whether the task has a due date before now and is still open.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == TaskStatusCompleted || t.Status == TaskStatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}
