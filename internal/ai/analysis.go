package ai

// VoiceAnalysis is the structured result of assessing a student's spoken
// answer. Field names follow the wire contract consumed by the SPA.
type VoiceAnalysis struct {
	Transcription      string   `json:"transcription"`
	Accuracy           int      `json:"accuracy"`
	FluencyScore       int      `json:"fluency_score"`
	PronunciationScore int      `json:"pronunciation_score"`
	ContentScore       int      `json:"content_score"`
	KeyPoints          []string `json:"keyPoints"`
	Improvements       []string `json:"improvements"`
	Feedback           string   `json:"feedback"`
	Grade              string   `json:"grade"`
	Suggestions        []string `json:"suggestions"`
	Strengths          []string `json:"strengths"`
	NextSteps          []string `json:"next_steps"`
}

// ImageAnalysis is the structured result of analyzing a classroom image for
// teaching opportunities.
type ImageAnalysis struct {
	Description         string               `json:"description"`
	EducationalConcepts []string             `json:"educationalConcepts"`
	LessonPlan          LessonPlan           `json:"lessonPlan"`
	DiscussionQuestions []string             `json:"discussionQuestions"`
	CrossCurricular     []CurricularActivity `json:"crossCurricular"`
	AssessmentIdeas     []string             `json:"assessmentIdeas"`
	CulturalConnections []string             `json:"culturalConnections"`
	ExtensionActivities []string             `json:"extensionActivities"`
}

// LessonPlan is the ready-to-teach plan derived from an analyzed image
type LessonPlan struct {
	Title      string   `json:"title"`
	Duration   string   `json:"duration"`
	Objectives []string `json:"objectives"`
	Activities []string `json:"activities"`
}

// CurricularActivity links an analyzed image to another subject
type CurricularActivity struct {
	Subject  string `json:"subject"`
	Activity string `json:"activity"`
}

// letterGrade maps an accuracy score to the report-card grade shown to
// students.
func letterGrade(accuracy int) string {
	switch {
	case accuracy > 85:
		return "B+"
	case accuracy > 75:
		return "B"
	default:
		return "C+"
	}
}
