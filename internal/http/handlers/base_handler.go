// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/modules/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures IDs are alphanumeric and at most 32 chars (matches the
// ID generator).
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	switch err {
	case trip.ErrBadRequest, estimate.ErrBadRequest, estimate.ErrBadDate, trip.ErrInvalidStatus:
		writeError(c, http.StatusBadRequest, err.Error())
	case trip.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case trip.ErrNotAuthorized:
		writeError(c, http.StatusForbidden, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
