package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
)

// dispatcher holds the channel set wired at startup. Handlers take a
// per-request copy so the request id lands in delivery logs.
var dispatcher notify.Dispatcher

// SetDispatcher installs the notification dispatcher for all handlers.
func SetDispatcher(d notify.Dispatcher) {
	dispatcher = d
}

func requestDispatcher(c *gin.Context) notify.Dispatcher {
	d := dispatcher
	d.RequestID = middleware.GetRequestID(c)
	return d
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "request body required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid request payload", err)
		return false
	}
	return true
}

// pathID parses a positive integer path parameter, responding 400 on
// failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid "+name, err)
		return 0, false
	}
	return id, true
}
