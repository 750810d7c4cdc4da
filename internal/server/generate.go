package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahayak-project/sahayak-backend/internal/ai"
	"github.com/sahayak-project/sahayak-backend/internal/identity"
	"github.com/sahayak-project/sahayak-backend/internal/models"
)

type generateContentRequest struct {
	UserID      string `json:"userId"`
	Subject     string `json:"subject" binding:"required"`
	Grade       string `json:"grade" binding:"required"`
	Language    string `json:"language" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type generateWorksheetRequest struct {
	UserID       string `json:"userId"`
	Subject      string `json:"subject" binding:"required"`
	Grade        string `json:"grade" binding:"required"`
	Language     string `json:"language" binding:"required"`
	Topic        string `json:"topic" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
	StudentLevel string `json:"studentLevel" binding:"required"`
}

type generateVisualAidRequest struct {
	UserID   string `json:"userId"`
	Subject  string `json:"subject" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
	Language string `json:"language" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
	AidType  string `json:"aidType" binding:"required"`
}

type voiceAssessmentRequest struct {
	UserID    string `json:"userId"`
	Subject   string `json:"subject" binding:"required"`
	Grade     string `json:"grade" binding:"required"`
	Language  string `json:"language" binding:"required"`
	Question  string `json:"question" binding:"required"`
	AudioData string `json:"audioData"`
}

type analyzeImageRequest struct {
	UserID    string `json:"userId"`
	Subject   string `json:"subject" binding:"required"`
	Grade     string `json:"grade" binding:"required"`
	Language  string `json:"language" binding:"required"`
	ImageData string `json:"imageData"`
}

type processVideoRequest struct {
	UserID    string `json:"userId"`
	Language  string `json:"language"`
	VideoData string `json:"videoData"`
}

// handleGenerateContent creates educational content and persists it
func (s *Server) handleGenerateContent(c *gin.Context) {
	var req generateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := orDefaultUser(req.UserID)

	result, err := s.ai.GenerateContent(c.Request.Context(), ai.ContentRequest{
		Subject:     req.Subject,
		Grade:       req.Grade,
		Language:    req.Language,
		Topic:       req.Topic,
		ContentType: req.ContentType,
	})
	if err != nil {
		s.failGeneration(c, "content generation failed", err)
		return
	}

	contentID, err := s.persistArtifact(models.KindContent, userID, result.Content, result.Metadata)
	if err != nil {
		s.failGeneration(c, "content persistence failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"content":   result.Content,
		"contentId": contentID,
		"metadata":  result.Metadata,
	})
}

// handleGenerateWorksheet creates a personalized worksheet and persists it
func (s *Server) handleGenerateWorksheet(c *gin.Context) {
	var req generateWorksheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := orDefaultUser(req.UserID)

	result, err := s.ai.GenerateWorksheet(c.Request.Context(), ai.WorksheetRequest{
		Subject:      req.Subject,
		Grade:        req.Grade,
		Language:     req.Language,
		Topic:        req.Topic,
		Difficulty:   req.Difficulty,
		StudentLevel: req.StudentLevel,
	})
	if err != nil {
		s.failGeneration(c, "worksheet generation failed", err)
		return
	}

	worksheetID, err := s.persistArtifact(models.KindWorksheet, userID, result.Worksheet, result.Metadata)
	if err != nil {
		s.failGeneration(c, "worksheet persistence failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"worksheet":   result.Worksheet,
		"worksheetId": worksheetID,
		"metadata":    result.Metadata,
	})
}

// handleGenerateVisualAid creates visual aid instructions and persists them
func (s *Server) handleGenerateVisualAid(c *gin.Context) {
	var req generateVisualAidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := orDefaultUser(req.UserID)

	result, err := s.ai.GenerateVisualAid(c.Request.Context(), ai.VisualAidRequest{
		Subject:  req.Subject,
		Grade:    req.Grade,
		Language: req.Language,
		Topic:    req.Topic,
		AidType:  req.AidType,
	})
	if err != nil {
		s.failGeneration(c, "visual aid generation failed", err)
		return
	}

	aidID, err := s.persistArtifact(models.KindVisualAid, userID, result.Description, result.Metadata)
	if err != nil {
		s.failGeneration(c, "visual aid persistence failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"description": result.Description,
		"aidId":       aidID,
		"metadata":    result.Metadata,
	})
}

// handleVoiceAssessment analyzes a spoken answer and persists the analysis
func (s *Server) handleVoiceAssessment(c *gin.Context) {
	var req voiceAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := orDefaultUser(req.UserID)

	result, err := s.ai.AnalyzeVoiceAssessment(c.Request.Context(), ai.VoiceAssessmentRequest{
		Subject:   req.Subject,
		Grade:     req.Grade,
		Language:  req.Language,
		Question:  req.Question,
		AudioData: req.AudioData,
	})
	if err != nil {
		s.failGeneration(c, "voice assessment failed", err)
		return
	}

	assessmentID, err := s.persistArtifact(models.KindAssessment, userID, result.Analysis, result.Metadata)
	if err != nil {
		s.failGeneration(c, "assessment persistence failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"analysis":     result.Analysis,
		"assessmentId": assessmentID,
		"metadata":     result.Metadata,
	})
}

// handleAnalyzeImage analyzes an uploaded image. The analysis is returned
// but deliberately not persisted.
func (s *Server) handleAnalyzeImage(c *gin.Context) {
	var req analyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.ai.AnalyzeImage(c.Request.Context(), ai.ImageAnalysisRequest{
		Subject:   req.Subject,
		Grade:     req.Grade,
		Language:  req.Language,
		ImageData: req.ImageData,
	})
	if err != nil {
		s.failGeneration(c, "image analysis failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": result.Analysis,
		"metadata": result.Metadata,
	})
}

// handleProcessVideo analyzes a recorded lesson and persists the result.
// Every field is optional: an empty body still yields a mock analysis.
func (s *Server) handleProcessVideo(c *gin.Context) {
	var req processVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := orDefaultUser(req.UserID)
	if req.Language == "" {
		req.Language = "English"
	}

	result, err := s.ai.ProcessVideo(c.Request.Context(), ai.VideoRequest{
		Language:  req.Language,
		VideoData: req.VideoData,
	})
	if err != nil {
		s.failGeneration(c, "video processing failed", err)
		return
	}

	videoID, err := s.persistArtifact(models.KindVideo, userID, result.ProcessedContent, result.Metadata)
	if err != nil {
		s.failGeneration(c, "video persistence failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"videoId":          videoID,
		"processedContent": result.ProcessedContent,
		"message":          "Video processed successfully",
	})
}

// persistArtifact stores one generated artifact and returns its new ID
func (s *Server) persistArtifact(kind, userID string, payload any, metadata ai.Metadata) (string, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}

	artifact := &models.Artifact{
		PublicID: identity.NewID(),
		Kind:     kind,
		UserID:   userID,
		Payload:  payloadJSON,
		Metadata: metadataJSON,
	}
	if err := s.store.SaveArtifact(artifact); err != nil {
		return "", err
	}

	s.logger.Info("artifact stored", "kind", kind, "artifact_id", artifact.PublicID, "user_id", userID)
	return artifact.PublicID, nil
}

// failGeneration logs the failure and returns the 500 error envelope.
// There are no retries and no partial results.
func (s *Server) failGeneration(c *gin.Context, msg string, err error) {
	s.logger.Error(msg, "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func orDefaultUser(userID string) string {
	if userID == "" {
		return DefaultUserID
	}
	return userID
}
