package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// reindexFarmers reloads the in-memory farmer index from the registry.
// The swap is atomic; in-flight radius queries keep their snapshot.
func (s *Server) reindexFarmers(c *gin.Context) {
	if err := s.farmerIndex.Refresh(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStorageUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  "OK",
		"farmers": s.farmerIndex.Size(),
	})
}

// listAttempts returns the recorded delivery attempts of one report.
func (s *Server) listAttempts(c *gin.Context) {
	reportID := c.Param("reportID")
	if _, err := primitive.ObjectIDFromHex(reportID); err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorReportNotFound, err)
		return
	}

	attempts, err := s.store.ListNotificationAttempts(reportID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempts": attempts,
	})
}
