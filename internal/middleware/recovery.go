package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	apierrors "github.com/yukikurage/pharmacy-tasks/internal/errors"
)

// Recovery turns a panic into a rendered 500 page
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Str("panic", fmt.Sprint(recovered)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")

		apierrors.RespondWithPage(c, http.StatusInternalServerError, apierrors.MessageInternalError)
		c.Abort()
	})
}
