package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateServiceGenerateContent(t *testing.T) {
	svc := NewTemplateService(0)

	result, err := svc.GenerateContent(context.Background(), ContentRequest{
		Subject:     "Science",
		Grade:       "Grade 4",
		Language:    "Hindi",
		Topic:       "Photosynthesis",
		ContentType: "lesson_plan",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Content, "Lesson Plan: Photosynthesis")
	assert.Contains(t, result.Content, "Subject: Science | Grade: Grade 4 | Language: Hindi")
	assert.Contains(t, result.Content, "Learning Objectives")

	assert.Equal(t, "Science", result.Metadata["subject"])
	assert.Equal(t, "lesson_plan", result.Metadata["content_type"])
	assert.NotNil(t, result.Metadata["generated_at"])
}

func TestTemplateServiceGenerateWorksheet(t *testing.T) {
	svc := NewTemplateService(0)

	result, err := svc.GenerateWorksheet(context.Background(), WorksheetRequest{
		Subject:      "Mathematics",
		Grade:        "Grade 3",
		Language:     "English",
		Topic:        "Fractions",
		Difficulty:   "medium",
		StudentLevel: "beginner",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Worksheet, "WORKSHEET: Fractions")
	assert.Contains(t, result.Worksheet, "Grade: Grade 3")
	assert.Contains(t, result.Worksheet, "Difficulty: medium | Student Level: beginner")
	assert.Contains(t, result.Worksheet, "ANSWER KEY")

	assert.Equal(t, "Fractions", result.Metadata["topic"])
	assert.Equal(t, "medium", result.Metadata["difficulty"])
	assert.Equal(t, "beginner", result.Metadata["student_level"])
}

func TestTemplateServiceGenerateVisualAid(t *testing.T) {
	svc := NewTemplateService(0)

	result, err := svc.GenerateVisualAid(context.Background(), VisualAidRequest{
		Subject:  "Science",
		Grade:    "Grade 5",
		Language: "English",
		Topic:    "Water Cycle",
		AidType:  "chart",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Description, "VISUAL AID CREATION GUIDE: CHART")
	assert.Contains(t, result.Description, "Topic: Water Cycle")
	assert.Contains(t, result.Description, "STEP-BY-STEP CREATION GUIDE")
	assert.Equal(t, "chart", result.Metadata["aid_type"])
}

func TestTemplateServiceVoiceAssessmentScores(t *testing.T) {
	svc := NewTemplateService(0)

	for i := 0; i < 20; i++ {
		result, err := svc.AnalyzeVoiceAssessment(context.Background(), VoiceAssessmentRequest{
			Subject:  "Science",
			Grade:    "Grade 4",
			Language: "English",
			Question: "What is evaporation?",
		})
		require.NoError(t, err)

		analysis := result.Analysis
		assert.GreaterOrEqual(t, analysis.Accuracy, 75)
		assert.LessOrEqual(t, analysis.Accuracy, 95)
		assert.GreaterOrEqual(t, analysis.FluencyScore, 70)
		assert.LessOrEqual(t, analysis.FluencyScore, 90)
		assert.GreaterOrEqual(t, analysis.PronunciationScore, 75)
		assert.LessOrEqual(t, analysis.PronunciationScore, 95)
		assert.GreaterOrEqual(t, analysis.ContentScore, 80)
		assert.LessOrEqual(t, analysis.ContentScore, 95)

		switch {
		case analysis.Accuracy > 85:
			assert.Equal(t, "B+", analysis.Grade)
		case analysis.Accuracy > 75:
			assert.Equal(t, "B", analysis.Grade)
		default:
			assert.Equal(t, "C+", analysis.Grade)
		}

		assert.NotEmpty(t, analysis.Transcription)
		assert.NotEmpty(t, analysis.KeyPoints)
		assert.NotEmpty(t, analysis.Feedback)
	}
}

func TestTemplateServiceAnalyzeImage(t *testing.T) {
	svc := NewTemplateService(0)

	result, err := svc.AnalyzeImage(context.Background(), ImageAnalysisRequest{
		Subject:  "Mathematics",
		Grade:    "Grade 3",
		Language: "English",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Analysis.Description, "Mathematics")
	assert.Contains(t, result.Analysis.LessonPlan.Title, "Mathematics")
	assert.Equal(t, "45 minutes", result.Analysis.LessonPlan.Duration)
	assert.NotEmpty(t, result.Analysis.DiscussionQuestions)
	assert.Len(t, result.Analysis.CrossCurricular, 4)
}

func TestTemplateServiceProcessVideo(t *testing.T) {
	svc := NewTemplateService(0)

	result, err := svc.ProcessVideo(context.Background(), VideoRequest{Language: "Hindi"})
	require.NoError(t, err)

	assert.Contains(t, result.ProcessedContent, "Video Content Analysis")
	assert.Contains(t, result.ProcessedContent, "Language: Hindi")
	assert.Equal(t, "Hindi", result.Metadata["language"])
}

func TestTemplateServiceHonorsCancellation(t *testing.T) {
	svc := NewTemplateService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateContent(ctx, ContentRequest{
		Subject: "Science", Grade: "Grade 4", Language: "English",
		Topic: "Plants", ContentType: "story",
	})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.ProcessVideo(ctx, VideoRequest{Language: "English"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Lesson Plan", titleCase("lesson_plan"))
	assert.Equal(t, "Story", titleCase("story"))
	assert.Equal(t, "Question Bank", titleCase("question bank"))
}
