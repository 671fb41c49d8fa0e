package routes

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/constant"
	"github.com/msgdesk/pkg/state"
	"go.uber.org/zap"
)

// respondError writes err as {"error": ...} with the status of its kind.
// Internal errors are logged with their cause and context.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= 500 {
		fields := []zap.Field{
			zap.String("request_id", c.GetString(state.CurrentRequestID)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && len(appErr.Context) > 0 {
			fields = append(fields, zap.Any("context", appErr.Context))
		}
		logger.Error("request failed", fields...)
	}
	c.Error(err)
	c.JSON(status, gin.H{"error": apperrors.PublicMessage(err)})
}

func respondBindError(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(400, gin.H{"error": constant.INVALID_REQUEST, "details": err.Error()})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(400, gin.H{"error": constant.INVALID_ID})
		return 0, false
	}
	return uint(id), true
}
