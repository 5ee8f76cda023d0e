package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/pkg/logger"
	"talentpact.backend/pkg/utils"
)

// Envelope is the body of every API response
type Envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Code       string                `json:"code,omitempty"`
	Data       interface{}           `json:"data,omitempty"`
	Pagination *utils.PaginationMeta `json:"pagination,omitempty"`
}

// Success sends a success envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Paginated sends a success envelope carrying pagination metadata
func Paginated(c *gin.Context, message string, data interface{}, meta utils.PaginationMeta) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Pagination: &meta})
}

// Error maps err onto its HTTP status. Unclassified errors are logged and
// answered with a generic message.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, Envelope{Success: false, Message: appErr.Message, Code: appErr.Code})
}

// Abort writes an error envelope and stops the handler chain
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
