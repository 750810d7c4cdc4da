package ai

import "fmt"

// Prompt builders shared by every Service implementation. The template
// implementation builds them for parity but never sends them anywhere; the
// Gemini implementation sends them verbatim.

func buildContentPrompt(req ContentRequest) string {
	return fmt.Sprintf(`Create educational content for rural teachers in %[3]s.

Subject: %[1]s
Grade Level: %[2]s
Topic: %[4]s
Content Type: %[5]s

Requirements:
- Use simple, clear language appropriate for %[2]s students
- Include culturally relevant examples from rural Indian contexts
- Provide practical activities using locally available materials
- Make content engaging and interactive
- Include assessment methods suitable for multi-grade classrooms
- Ensure content is appropriate for low-resource settings

Generate comprehensive %[5]s content that teachers can use immediately.`,
		req.Subject, req.Grade, req.Language, req.Topic, req.ContentType)
}

func buildWorksheetPrompt(req WorksheetRequest) string {
	return fmt.Sprintf(`Create a worksheet for rural students in %[3]s.

Subject: %[1]s
Grade Level: %[2]s
Topic: %[4]s
Difficulty: %[5]s
Student Level: %[6]s

Requirements:
- Include multiple question types (MCQ, short answer, problem-solving)
- Adapt difficulty to %[6]s students
- Use examples relevant to rural life
- Provide clear instructions in %[3]s
- Include assessment rubric for teachers
- Make it suitable for multi-grade classrooms

Generate a complete worksheet with answer key.`,
		req.Subject, req.Grade, req.Language, req.Topic, req.Difficulty, req.StudentLevel)
}

func buildVisualAidPrompt(req VisualAidRequest) string {
	return fmt.Sprintf(`Create instructions for making a %[5]s about %[4]s in %[3]s.

Subject: %[1]s
Grade Level: %[2]s
Visual Aid Type: %[5]s

Requirements:
- Use only low-cost, locally available materials
- Provide step-by-step creation instructions
- Include classroom usage guidelines
- Make it engaging for %[2]s students
- Ensure it's suitable for rural classroom settings
- Include cultural context relevant to rural India

Generate detailed instructions that any teacher can follow.`,
		req.Subject, req.Grade, req.Language, req.Topic, req.AidType)
}

func buildVoiceAssessmentPrompt(req VoiceAssessmentRequest) string {
	return fmt.Sprintf(`Assess a %[2]s student's spoken answer in %[3]s.

Subject: %[1]s
Question asked: %[4]s

Transcribe the recording, then score accuracy, fluency, pronunciation and
content on a 0-100 scale. List key points the student covered, areas to
improve, overall strengths and concrete next steps, and write encouraging
feedback suitable for a rural classroom.

Format the response as JSON with fields: transcription, accuracy,
fluency_score, pronunciation_score, content_score, keyPoints, improvements,
feedback, grade, suggestions, strengths, next_steps.`,
		req.Subject, req.Grade, req.Language, req.Question)
}

func buildImageAnalysisPrompt(req ImageAnalysisRequest) string {
	return fmt.Sprintf(`Analyze this image for educational opportunities in %[3]s.

Context:
- Subject: %[1]s
- Grade Level: %[2]s
- Rural classroom setting

Provide:
1. Description of what's in the image
2. Educational concepts that can be taught
3. Lesson plan ideas
4. Discussion questions for students
5. Cross-curricular connections
6. Assessment ideas
7. Cultural connections relevant to rural India

Format response as JSON with these sections.`,
		req.Subject, req.Grade, req.Language)
}

func buildVideoPrompt(req VideoRequest) string {
	return fmt.Sprintf(`Analyze this recorded lesson for a rural classroom, responding in %s.

Summarize the video, identify the key points made, suggest improvements to
the presentation, list educational applications, and propose next steps for
the teacher. Format the response as a markdown document.`, req.Language)
}
