package handlers

import (
	"net/http"

	"github.com/celestine-lau/enactus-app/internal/auth"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/logger"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body: success mirrors code == 0, data
// carries the payload on success or the error message otherwise.
type Envelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Code: apperrors.CodeSuccess, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Code: apperrors.CodeSuccess, Data: data})
}

// respondError maps a service error to its HTTP status and envelope code.
// Infrastructure errors are logged server-side and surface as a generic
// internal message.
func respondError(c *gin.Context, err error) {
	code := apperrors.Code(err)
	message := err.Error()
	if code == apperrors.CodeInternal {
		logger.New().WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		message = "internal server error"
	}
	c.JSON(httpStatus(code), Envelope{Success: false, Code: code, Data: message})
}

func httpStatus(code int) int {
	switch code {
	case apperrors.CodeNoSuchUser, apperrors.CodeNoSuchTask, apperrors.CodeNoSuchTeam:
		return http.StatusNotFound
	case apperrors.CodeDuplicateName:
		return http.StatusConflict
	case apperrors.CodeInsufficientPrivilege:
		return http.StatusForbidden
	case apperrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// callerFrom builds the service-layer caller identity from the request
// context populated by the auth middleware
func callerFrom(c *gin.Context) service.Caller {
	email, _ := auth.GetUserEmail(c)
	privilege, _ := auth.GetPrivilege(c)
	return service.Caller{Email: email, Privilege: privilege}
}
