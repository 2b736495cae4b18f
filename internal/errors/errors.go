package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/pharmacy-tasks/internal/dto"
)

// Default messages
const (
	MessageNotFound      = "Page not found"
	MessageTaskNotFound  = "No task matches the given query."
	MessageInternalError = "Something went wrong on our side."
)

// RespondWithPage renders the error template for the given status
func RespondWithPage(c *gin.Context, statusCode int, message string) {
	name := dto.TemplateError
	if statusCode == http.StatusNotFound {
		name = dto.TemplateNotFound
	}

	c.HTML(statusCode, name, dto.ErrorPage{
		Status:  statusCode,
		Message: message,
	})
}

// NotFound renders a 404 page
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = MessageNotFound
	}
	RespondWithPage(c, http.StatusNotFound, message)
}

// InternalError renders a 500 page and records err on the context for the
// request logger
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	RespondWithPage(c, http.StatusInternalServerError, MessageInternalError)
}

// ServiceUnavailable sends a 503 JSON body, used by the readiness probe
func ServiceUnavailable(c *gin.Context, body interface{}) {
	c.JSON(http.StatusServiceUnavailable, body)
}
