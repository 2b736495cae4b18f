package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/pharmacy-tasks/internal/constants"
	"github.com/yukikurage/pharmacy-tasks/internal/dto"
	apierrors "github.com/yukikurage/pharmacy-tasks/internal/errors"
	"github.com/yukikurage/pharmacy-tasks/internal/metrics"
	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"github.com/yukikurage/pharmacy-tasks/internal/services"
	"github.com/yukikurage/pharmacy-tasks/internal/utils"
)

// TaskQueries is the read side of the task service used by the pages
type TaskQueries interface {
	ListRecent(ctx context.Context, limit int) ([]models.Task, error)
	ListAll(ctx context.Context) ([]models.Task, error)
	GetWithComments(ctx context.Context, taskID uint64) (*models.Task, []models.TaskComment, error)
}

// PharmacyQueries is the read side of the pharmacy service used by the pages
type PharmacyQueries interface {
	ListAll(ctx context.Context) ([]models.Pharmacy, error)
}

type PageHandler struct {
	tasks       TaskQueries
	pharmacies  PharmacyQueries
	recentLimit int
}

func NewPageHandler(tasks TaskQueries, pharmacies PharmacyQueries, recentLimit int) *PageHandler {
	if recentLimit <= 0 {
		recentLimit = constants.DefaultRecentTasksLimit
	}
	return &PageHandler{
		tasks:       tasks,
		pharmacies:  pharmacies,
		recentLimit: recentLimit,
	}
}

// Home shows the latest tasks and every pharmacy
func (h *PageHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.tasks.ListRecent(ctx, h.recentLimit)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	pharmacies, err := h.pharmacies.ListAll(ctx)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.HTML(http.StatusOK, dto.TemplateHome, dto.HomePage{
		Tasks:      tasks,
		Pharmacies: pharmacies,
	})
}

// TaskList lists all tasks
func (h *PageHandler) TaskList(c *gin.Context) {
	tasks, err := h.tasks.ListAll(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.HTML(http.StatusOK, dto.TemplateTaskList, dto.TaskListPage{Tasks: tasks})
}

// PharmacyList lists all pharmacies
func (h *PageHandler) PharmacyList(c *gin.Context) {
	pharmacies, err := h.pharmacies.ListAll(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.HTML(http.StatusOK, dto.TemplatePharmacyList, dto.PharmacyListPage{Pharmacies: pharmacies})
}

// TaskDetail shows one task with its comments, or 404
func (h *PageHandler) TaskDetail(c *gin.Context) {
	taskID, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	task, comments, err := h.tasks.GetWithComments(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			metrics.TaskNotFoundTotal.Inc()
			apierrors.NotFound(c, apierrors.MessageTaskNotFound)
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.HTML(http.StatusOK, dto.TemplateTaskDetail, dto.TaskDetailPage{
		Task:     *task,
		Comments: comments,
	})
}
