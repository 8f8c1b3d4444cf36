package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripfluencer/internal/modules/usage"
)

const maxSummaryHours = 24 * 31

type UsageHandler struct {
	usage *usage.Service
}

func NewUsageHandler(svc *usage.Service) *UsageHandler {
	return &UsageHandler{usage: svc}
}

// Summary handles GET /api/generations/summary?hours=N (default 24).
func (h *UsageHandler) Summary(c *gin.Context) {
	hours := 24
	if raw := c.Query("hours"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxSummaryHours {
			writeError(c, http.StatusBadRequest, "hours must be between 1 and 744")
			return
		}
		hours = n
	}

	counts, err := h.usage.Summary(c.Request.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"enabled":      h.usage != nil,
		"window_hours": hours,
		"outcomes":     counts,
	})
}
