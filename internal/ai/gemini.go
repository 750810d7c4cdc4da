package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Generation parameters for every Gemini call
const (
	geminiTemperature     = 0.7
	geminiMaxOutputTokens = 2048
)

// GeminiService is the model-backed Service implementation. Each operation
// sends the same prompt the template implementation builds, plus inline media
// for the analysis operations, and shapes the model output into the shared
// result types.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates a Gemini client with the given API key and model
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// GenerateContent asks the model for a lesson document
func (s *GeminiService) GenerateContent(ctx context.Context, req ContentRequest) (*ContentResult, error) {
	text, err := s.generateText(ctx, []*genai.Part{genai.NewPartFromText(buildContentPrompt(req))})
	if err != nil {
		return nil, err
	}
	return &ContentResult{Content: text, Metadata: req.metadata(time.Now())}, nil
}

// GenerateWorksheet asks the model for a worksheet with answer key
func (s *GeminiService) GenerateWorksheet(ctx context.Context, req WorksheetRequest) (*WorksheetResult, error) {
	text, err := s.generateText(ctx, []*genai.Part{genai.NewPartFromText(buildWorksheetPrompt(req))})
	if err != nil {
		return nil, err
	}
	return &WorksheetResult{Worksheet: text, Metadata: req.metadata(time.Now())}, nil
}

// GenerateVisualAid asks the model for visual aid creation instructions
func (s *GeminiService) GenerateVisualAid(ctx context.Context, req VisualAidRequest) (*VisualAidResult, error) {
	text, err := s.generateText(ctx, []*genai.Part{genai.NewPartFromText(buildVisualAidPrompt(req))})
	if err != nil {
		return nil, err
	}
	return &VisualAidResult{Description: text, Metadata: req.metadata(time.Now())}, nil
}

// AnalyzeVoiceAssessment sends the recording with the assessment prompt and
// parses the model's JSON analysis.
func (s *GeminiService) AnalyzeVoiceAssessment(ctx context.Context, req VoiceAssessmentRequest) (*VoiceAssessmentResult, error) {
	parts := []*genai.Part{genai.NewPartFromText(buildVoiceAssessmentPrompt(req))}
	if req.AudioData != "" {
		blob, err := partFromBase64(req.AudioData, "audio/webm")
		if err != nil {
			return nil, fmt.Errorf("decode audio data: %w", err)
		}
		parts = append(parts, blob)
	}

	text, err := s.generateText(ctx, parts)
	if err != nil {
		return nil, err
	}

	var analysis VoiceAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &analysis); err != nil {
		return nil, fmt.Errorf("parse voice analysis response: %w", err)
	}

	return &VoiceAssessmentResult{Analysis: analysis, Metadata: req.metadata(time.Now())}, nil
}

// AnalyzeImage sends the image with the analysis prompt and parses the
// model's JSON analysis.
func (s *GeminiService) AnalyzeImage(ctx context.Context, req ImageAnalysisRequest) (*ImageAnalysisResult, error) {
	parts := []*genai.Part{genai.NewPartFromText(buildImageAnalysisPrompt(req))}
	if req.ImageData != "" {
		blob, err := partFromBase64(req.ImageData, "image/jpeg")
		if err != nil {
			return nil, fmt.Errorf("decode image data: %w", err)
		}
		parts = append(parts, blob)
	}

	text, err := s.generateText(ctx, parts)
	if err != nil {
		return nil, err
	}

	var analysis ImageAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &analysis); err != nil {
		return nil, fmt.Errorf("parse image analysis response: %w", err)
	}

	return &ImageAnalysisResult{Analysis: analysis, Metadata: req.metadata(time.Now())}, nil
}

// ProcessVideo sends the recording with the lesson-analysis prompt
func (s *GeminiService) ProcessVideo(ctx context.Context, req VideoRequest) (*VideoResult, error) {
	parts := []*genai.Part{genai.NewPartFromText(buildVideoPrompt(req))}
	if req.VideoData != "" {
		blob, err := partFromBase64(req.VideoData, "video/webm")
		if err != nil {
			return nil, fmt.Errorf("decode video data: %w", err)
		}
		parts = append(parts, blob)
	}

	text, err := s.generateText(ctx, parts)
	if err != nil {
		return nil, err
	}

	return &VideoResult{ProcessedContent: text, Metadata: req.metadata(time.Now())}, nil
}

func (s *GeminiService) generateText(ctx context.Context, parts []*genai.Part) (string, error) {
	temperature := float32(geminiTemperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: geminiMaxOutputTokens,
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("genai request: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return "", errors.New("model returned no content")
	}
	return text, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sections []string
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		if text := strings.TrimSpace(part.Text); text != "" {
			sections = append(sections, text)
		}
	}
	return strings.TrimSpace(strings.Join(sections, "\n\n"))
}

// partFromBase64 turns a base64 payload (optionally a data URL) into an
// inline media part. The data URL's own MIME type wins when present.
func partFromBase64(encoded, fallbackMIME string) (*genai.Part, error) {
	mimeType := fallbackMIME
	if strings.HasPrefix(encoded, "data:") {
		header, rest, ok := strings.Cut(encoded, ",")
		if !ok {
			return nil, errors.New("malformed data URL")
		}
		if mt := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64"); mt != "" {
			mimeType = mt
		}
		encoded = rest
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty media payload")
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return &genai.Part{InlineData: &genai.Blob{Data: data, MIMEType: mimeType}}, nil
}

// stripCodeFence unwraps a ```json ... ``` fenced block if the model
// wrapped its JSON output in one.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
