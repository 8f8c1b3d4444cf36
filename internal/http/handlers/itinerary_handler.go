// README: Itinerary handler; POST /generate relays trip input to Gemini and returns Markdown.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripfluencer/internal/http/middleware"
	"tripfluencer/internal/modules/itinerary"
	"tripfluencer/internal/modules/usage"
)

type ItineraryHandler struct {
	itinerary     *itinerary.Service
	usage         *usage.Service
	credentialEnv string
}

// NewItineraryHandler wires the handler. usageSvc may be nil to disable the audit log;
// credentialEnv names the key variable in the missing-credential message.
func NewItineraryHandler(svc *itinerary.Service, usageSvc *usage.Service, credentialEnv string) *ItineraryHandler {
	return &ItineraryHandler{itinerary: svc, usage: usageSvc, credentialEnv: credentialEnv}
}

// Generate handles POST /generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	start := time.Now()

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON body")
		h.record(c, start, usage.OutcomeBadPayload, nil, "")
		return
	}

	res, err := h.itinerary.Generate(c.Request.Context(), payload)
	if err != nil {
		_ = c.Error(err)
		writeItineraryError(c, err, h.credentialEnv)
	} else {
		writeJSON(c, http.StatusOK, res)
	}
	h.record(c, start, outcomeFor(err), payload, res.Model)
}

func (h *ItineraryHandler) record(c *gin.Context, start time.Time, outcome usage.Outcome, payload map[string]any, model string) {
	req := itinerary.ParseTripRequest(payload)
	h.usage.Record(c.Request.Context(), usage.Entry{
		RequestID:    middleware.GetRequestID(c),
		Outcome:      outcome,
		Model:        model,
		Destination:  req.Destination,
		DurationDays: req.Duration,
		Latency:      time.Since(start),
	})
}
