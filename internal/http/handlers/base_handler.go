// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripfluencer/internal/modules/itinerary"
	"tripfluencer/internal/modules/usage"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Detail: msg})
}

func writeItineraryError(c *gin.Context, err error, credentialEnv string) {
	switch {
	case errors.Is(err, itinerary.ErrMissingCredential):
		writeError(c, http.StatusBadRequest, "Missing "+credentialEnv)
	case errors.Is(err, itinerary.ErrInvalidRequest):
		writeError(c, http.StatusBadRequest, "source, destination, duration (>0), and people are required")
	case errors.Is(err, itinerary.ErrUpstreamEmpty):
		writeError(c, http.StatusBadGateway, "Empty response from Gemini")
	case errors.Is(err, itinerary.ErrUpstreamError):
		writeError(c, http.StatusInternalServerError, "Generation failed: "+upstreamCause(err))
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// upstreamCause drops the sentinel prefix so the detail carries only the provider's message.
func upstreamCause(err error) string {
	return strings.TrimPrefix(err.Error(), itinerary.ErrUpstreamError.Error()+": ")
}

func outcomeFor(err error) usage.Outcome {
	switch {
	case err == nil:
		return usage.OutcomeSuccess
	case errors.Is(err, itinerary.ErrMissingCredential):
		return usage.OutcomeMissingCredential
	case errors.Is(err, itinerary.ErrInvalidRequest):
		return usage.OutcomeInvalidRequest
	case errors.Is(err, itinerary.ErrUpstreamEmpty):
		return usage.OutcomeUpstreamEmpty
	default:
		return usage.OutcomeUpstreamError
	}
}
