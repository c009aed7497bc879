package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrinet/cropguard-api/schema"
	"github.com/agrinet/cropguard-api/store"
	"github.com/agrinet/cropguard-api/surveillance"
)

// submitDetection accepts a classifier result for a location and runs
// the alert pipeline. The response reports success as soon as the event
// is evaluated and, when above threshold, persisted; notification is
// best-effort and never fails the request.
func (s *Server) submitDetection(c *gin.Context) {
	var params struct {
		Latitude   *float64        `json:"latitude"`
		Longitude  *float64        `json:"longitude"`
		Disease    string          `json:"disease"`
		Severity   schema.Severity `json:"severity"`
		Confidence float64         `json:"confidence"`
		Treatment  string          `json:"treatment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Latitude == nil || params.Longitude == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	loc := schema.Location{
		Latitude:  *params.Latitude,
		Longitude: *params.Longitude,
	}
	result := schema.Classification{
		Disease:    params.Disease,
		Severity:   params.Severity,
		Confidence: params.Confidence,
		Treatment:  params.Treatment,
	}

	outcome, err := s.orchestrator.Process(c, loc, result)
	if err != nil {
		switch {
		case errors.Is(err, surveillance.ErrInvalidInput):
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		case errors.Is(err, store.ErrStorageUnavailable):
			abortWithEncoding(c, http.StatusInternalServerError, errorStorageUnavailable, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	delivered := outcome.Delivered()
	c.JSON(http.StatusOK, gin.H{
		"disease":    result.Disease,
		"severity":   result.Severity,
		"confidence": result.Confidence,
		"treatment":  result.Treatment,
		"state":      outcome.State,
		"report_id":  outcome.ReportID,
		"matched":    len(outcome.Matches),
		"notified":   delivered,
		"failed":     len(outcome.Attempts) - delivered,
	})
}
