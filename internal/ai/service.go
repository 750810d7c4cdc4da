// Package ai produces teaching artifacts from request descriptors. The
// Service interface is the seam between the HTTP handlers and whatever
// actually generates content: the offline template implementation or the
// Gemini-backed one.
package ai

import (
	"context"
	"time"
)

// ContentRequest describes an educational content generation request
type ContentRequest struct {
	Subject     string
	Grade       string
	Language    string
	Topic       string
	ContentType string
}

// WorksheetRequest describes a personalized worksheet generation request
type WorksheetRequest struct {
	Subject      string
	Grade        string
	Language     string
	Topic        string
	Difficulty   string
	StudentLevel string
}

// VisualAidRequest describes a visual aid instruction generation request
type VisualAidRequest struct {
	Subject  string
	Grade    string
	Language string
	Topic    string
	AidType  string
}

// VoiceAssessmentRequest describes a spoken-answer analysis request.
// AudioData is an optional base64 recording (possibly a data URL).
type VoiceAssessmentRequest struct {
	Subject   string
	Grade     string
	Language  string
	Question  string
	AudioData string
}

// ImageAnalysisRequest describes a classroom image analysis request.
// ImageData is an optional base64 image (possibly a data URL).
type ImageAnalysisRequest struct {
	Subject   string
	Grade     string
	Language  string
	ImageData string
}

// VideoRequest describes a recorded-lesson processing request
type VideoRequest struct {
	Language  string
	VideoData string
}

// Metadata carries the request descriptor fields plus the generation
// timestamp, exactly as they are persisted and echoed to clients.
type Metadata map[string]any

// ContentResult is the outcome of a content generation call
type ContentResult struct {
	Content  string
	Metadata Metadata
}

// WorksheetResult is the outcome of a worksheet generation call
type WorksheetResult struct {
	Worksheet string
	Metadata  Metadata
}

// VisualAidResult is the outcome of a visual aid generation call
type VisualAidResult struct {
	Description string
	Metadata    Metadata
}

// VoiceAssessmentResult is the outcome of a voice assessment analysis
type VoiceAssessmentResult struct {
	Analysis VoiceAnalysis
	Metadata Metadata
}

// ImageAnalysisResult is the outcome of an image analysis
type ImageAnalysisResult struct {
	Analysis ImageAnalysis
	Metadata Metadata
}

// VideoResult is the outcome of a video processing call
type VideoResult struct {
	ProcessedContent string
	Metadata         Metadata
}

// Service generates teaching artifacts. Every call is stateless and
// independent; implementations must honor context cancellation while
// blocking. Errors carry no retry semantics; callers surface them as-is.
type Service interface {
	GenerateContent(ctx context.Context, req ContentRequest) (*ContentResult, error)
	GenerateWorksheet(ctx context.Context, req WorksheetRequest) (*WorksheetResult, error)
	GenerateVisualAid(ctx context.Context, req VisualAidRequest) (*VisualAidResult, error)
	AnalyzeVoiceAssessment(ctx context.Context, req VoiceAssessmentRequest) (*VoiceAssessmentResult, error)
	AnalyzeImage(ctx context.Context, req ImageAnalysisRequest) (*ImageAnalysisResult, error)
	ProcessVideo(ctx context.Context, req VideoRequest) (*VideoResult, error)
}

func (r ContentRequest) metadata(now time.Time) Metadata {
	return Metadata{
		"subject":      r.Subject,
		"grade":        r.Grade,
		"language":     r.Language,
		"topic":        r.Topic,
		"content_type": r.ContentType,
		"generated_at": now,
	}
}

func (r WorksheetRequest) metadata(now time.Time) Metadata {
	return Metadata{
		"subject":       r.Subject,
		"grade":         r.Grade,
		"language":      r.Language,
		"topic":         r.Topic,
		"difficulty":    r.Difficulty,
		"student_level": r.StudentLevel,
		"generated_at":  now,
	}
}

func (r VisualAidRequest) metadata(now time.Time) Metadata {
	return Metadata{
		"subject":      r.Subject,
		"grade":        r.Grade,
		"language":     r.Language,
		"topic":        r.Topic,
		"aid_type":     r.AidType,
		"generated_at": now,
	}
}

func (r VoiceAssessmentRequest) metadata(now time.Time) Metadata {
	return Metadata{
		"subject":      r.Subject,
		"grade":        r.Grade,
		"language":     r.Language,
		"question":     r.Question,
		"generated_at": now,
	}
}

func (r ImageAnalysisRequest) metadata(now time.Time) Metadata {
	return Metadata{
		"subject":      r.Subject,
		"grade":        r.Grade,
		"language":     r.Language,
		"generated_at": now,
	}
}

func (r VideoRequest) metadata(now time.Time) Metadata {
	return Metadata{
		"language":     r.Language,
		"generated_at": now,
	}
}

// wait blocks for d or until the context is cancelled, whichever comes first
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
