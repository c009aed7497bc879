package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// heatmap returns the severity-weighted aggregation of all stored
// reports, recomputed on every call.
func (s *Server) heatmap(c *gin.Context) {
	buckets, err := s.mongoStore.AggregateHeatmap()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStorageUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}
