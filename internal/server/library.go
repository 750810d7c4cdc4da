package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sahayak-project/sahayak-backend/internal/models"
)

// libraryItem is the wire shape for one stored artifact
type libraryItem struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Content   json.RawMessage `json:"content"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toLibraryItems(artifacts []models.Artifact) []libraryItem {
	items := make([]libraryItem, 0, len(artifacts))
	for _, artifact := range artifacts {
		items = append(items, libraryItem{
			ID:        artifact.PublicID,
			UserID:    artifact.UserID,
			Content:   json.RawMessage(artifact.Payload),
			Metadata:  json.RawMessage(artifact.Metadata),
			CreatedAt: artifact.CreatedAt,
		})
	}
	return items
}

// handleUserContent lists a user's stored content, newest first. The
// optional ?type= query narrows the list to one content type.
func (s *Server) handleUserContent(c *gin.Context) {
	userID := c.Param("userId")
	contentType := c.Query("type")

	artifacts, err := s.store.ArtifactsByUser(userID, models.KindContent)
	if err != nil {
		s.logger.Error("content lookup failed", "user_id", userID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if contentType != "" {
		artifacts = filterByContentType(artifacts, contentType)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": toLibraryItems(artifacts),
	})
}

// handleUserWorksheets lists a user's stored worksheets, newest first
func (s *Server) handleUserWorksheets(c *gin.Context) {
	userID := c.Param("userId")

	artifacts, err := s.store.ArtifactsByUser(userID, models.KindWorksheet)
	if err != nil {
		s.logger.Error("worksheet lookup failed", "user_id", userID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"worksheets": toLibraryItems(artifacts),
	})
}

// handleUserStats reports per-kind artifact counts for the dashboard
func (s *Server) handleUserStats(c *gin.Context) {
	userID := c.Param("userId")

	counts, err := s.store.CountByUser(userID)
	if err != nil {
		s.logger.Error("stats lookup failed", "user_id", userID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalContent":     counts[models.KindContent],
			"totalWorksheets":  counts[models.KindWorksheet],
			"totalVisualAids":  counts[models.KindVisualAid],
			"totalAssessments": counts[models.KindAssessment],
			"totalVideos":      counts[models.KindVideo],
		},
	})
}

// filterByContentType keeps artifacts whose metadata content_type matches
func filterByContentType(artifacts []models.Artifact, contentType string) []models.Artifact {
	filtered := make([]models.Artifact, 0, len(artifacts))
	for _, artifact := range artifacts {
		var meta struct {
			ContentType string `json:"content_type"`
		}
		if err := json.Unmarshal(artifact.Metadata, &meta); err != nil {
			continue
		}
		if meta.ContentType == contentType {
			filtered = append(filtered, artifact)
		}
	}
	return filtered
}
