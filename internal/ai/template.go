package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// TemplateService is the offline Service implementation. It interpolates the
// request descriptor into fixed document templates after a simulated
// processing delay, standing in for a real model call. Useful for tests,
// development and deployments without model access.
type TemplateService struct {
	delayUnit time.Duration
}

// NewTemplateService creates a template generator. delayUnit scales the
// simulated per-call latency; pass 0 to disable waiting entirely.
func NewTemplateService(delayUnit time.Duration) *TemplateService {
	return &TemplateService{delayUnit: delayUnit}
}

// GenerateContent produces a templated lesson document for the topic
func (s *TemplateService) GenerateContent(ctx context.Context, req ContentRequest) (*ContentResult, error) {
	if err := wait(ctx, 2*s.delayUnit); err != nil {
		return nil, err
	}
	_ = buildContentPrompt(req)

	return &ContentResult{
		Content:  renderContent(req),
		Metadata: req.metadata(time.Now()),
	}, nil
}

// GenerateWorksheet produces a templated worksheet with answer key
func (s *TemplateService) GenerateWorksheet(ctx context.Context, req WorksheetRequest) (*WorksheetResult, error) {
	if err := wait(ctx, 2*s.delayUnit); err != nil {
		return nil, err
	}
	_ = buildWorksheetPrompt(req)

	return &WorksheetResult{
		Worksheet: renderWorksheet(req),
		Metadata:  req.metadata(time.Now()),
	}, nil
}

// GenerateVisualAid produces templated creation instructions for the aid
func (s *TemplateService) GenerateVisualAid(ctx context.Context, req VisualAidRequest) (*VisualAidResult, error) {
	if err := wait(ctx, 2*s.delayUnit); err != nil {
		return nil, err
	}
	_ = buildVisualAidPrompt(req)

	return &VisualAidResult{
		Description: renderVisualAid(req),
		Metadata:    req.metadata(time.Now()),
	}, nil
}

// AnalyzeVoiceAssessment produces a canned analysis with randomized scores
func (s *TemplateService) AnalyzeVoiceAssessment(ctx context.Context, req VoiceAssessmentRequest) (*VoiceAssessmentResult, error) {
	if err := wait(ctx, 3*s.delayUnit); err != nil {
		return nil, err
	}

	return &VoiceAssessmentResult{
		Analysis: renderVoiceAnalysis(req),
		Metadata: req.metadata(time.Now()),
	}, nil
}

// AnalyzeImage produces a canned image analysis for the subject and grade
func (s *TemplateService) AnalyzeImage(ctx context.Context, req ImageAnalysisRequest) (*ImageAnalysisResult, error) {
	if err := wait(ctx, 2*s.delayUnit); err != nil {
		return nil, err
	}
	_ = buildImageAnalysisPrompt(req)

	return &ImageAnalysisResult{
		Analysis: renderImageAnalysis(req),
		Metadata: req.metadata(time.Now()),
	}, nil
}

// ProcessVideo produces a canned recorded-lesson analysis document
func (s *TemplateService) ProcessVideo(ctx context.Context, req VideoRequest) (*VideoResult, error) {
	if err := wait(ctx, 3*s.delayUnit); err != nil {
		return nil, err
	}

	return &VideoResult{
		ProcessedContent: renderVideoAnalysis(req, time.Now()),
		Metadata:         req.metadata(time.Now()),
	}, nil
}

func renderContent(req ContentRequest) string {
	return fmt.Sprintf(`# %s: %s

## Subject: %s | Grade: %s | Language: %s

### Learning Objectives:
- Students will understand the fundamental concepts of %[2]s
- Students will be able to apply knowledge in real-world situations
- Students will develop critical thinking skills related to %[2]s
- Students will connect %[2]s to their daily experiences

### Materials Needed:
- Locally available materials (stones, sticks, leaves, clay)
- Chalk and blackboard or slate
- Student notebooks and pencils
- Simple household items
- Natural objects from the environment

### Introduction (10 minutes):
Begin by asking students about their experiences with %[2]s. Connect the concept to their daily lives and local environment. Use familiar examples from their village or community.

### Main Activity (25 minutes):
1. **Explanation Phase**: Use simple language and local examples
2. **Demonstration**: Show practical examples using available materials
3. **Student Participation**: Encourage questions and observations
4. **Group Activity**: Divide into small groups for hands-on learning
5. **Discussion**: Share findings and insights

### Assessment Methods:
- Observe student participation during activities
- Ask oral questions to check understanding
- Simple written exercises adapted to grade level
- Peer teaching and explanation
- Practical demonstration by students

### Extension Activities:
- Home observation assignments
- Community connections
- Real-world applications
- Creative projects using local materials

### Cultural Context:
This lesson incorporates local traditions, practices, and knowledge systems, making learning relevant and meaningful for rural students.

### Differentiation for Multi-Grade Classroom:
- **Lower grades**: Focus on basic observation and simple concepts
- **Higher grades**: Include analysis, problem-solving, and complex applications
- **Mixed activities**: Pair older students with younger ones for peer learning

### Resources for Teachers:
- Additional reading materials
- Extension activity ideas
- Assessment rubrics
- Parent engagement suggestions

---
*Generated by Sahayak AI Teaching Assistant for rural education*`,
		titleCase(req.ContentType), req.Topic, req.Subject, req.Grade, req.Language)
}

func renderWorksheet(req WorksheetRequest) string {
	return fmt.Sprintf(`# WORKSHEET: %[1]s
## Subject: %[2]s | Grade: %[3]s | Language: %[4]s
### Difficulty: %[5]s | Student Level: %[6]s

**Student Name:** _________________________ **Date:** _____________

**Instructions:** Read each question carefully and write your answers clearly.

---

### SECTION A: Multiple Choice Questions (Choose the best answer)

**Question 1:** What is the main concept related to %[1]s?
a) First option related to %[1]s
b) Second option with local context
c) Third option with practical application
d) Fourth option with cultural relevance

**Question 2:** Which example best shows %[1]s in your daily life?
a) Example from farming/agriculture
b) Example from household activities
c) Example from nature/environment
d) Example from community practices

**Question 3:** How does %[1]s help in your village?
a) Practical benefit 1
b) Practical benefit 2
c) Practical benefit 3
d) All of the above

### SECTION B: Short Answer Questions

**Question 4:** Explain %[1]s in your own words using examples from your village. (3 marks)
_________________________________________________________________
_________________________________________________________________
_________________________________________________________________

**Question 5:** Give three examples of %[1]s that you can observe in your daily life. (3 marks)
1. ____________________________________________________________
2. ____________________________________________________________
3. ____________________________________________________________

**Question 6:** How would you explain %[1]s to a younger student? (2 marks)
_________________________________________________________________
_________________________________________________________________

### SECTION C: Problem Solving and Application

**Question 7:** Solve this problem related to %[1]s: (5 marks)

[Problem scenario relevant to rural context and %[1]s]

**Work Space:**
_________________________________________________________________
_________________________________________________________________
_________________________________________________________________

**Answer:** ____________________________________________________

**Question 8:** Design a simple activity to demonstrate %[1]s using materials available in your home. (4 marks)

**Materials needed:**
_________________________________________________________________

**Steps:**
1. ____________________________________________________________
2. ____________________________________________________________
3. ____________________________________________________________

**Expected result:**
_________________________________________________________________

### SECTION D: Creative Thinking

**Question 9:** Draw and label a diagram showing %[1]s. (3 marks)

[Drawing space]

**Question 10:** Write a short story (4-5 sentences) that includes %[1]s. (3 marks)
_________________________________________________________________
_________________________________________________________________
_________________________________________________________________
_________________________________________________________________

---

### ANSWER KEY (For Teachers)

**Section A:** 1-c, 2-d, 3-d
**Section B:** [Sample answers provided]
**Section C:** [Step-by-step solutions]
**Section D:** [Evaluation criteria]

### ASSESSMENT RUBRIC

**Excellent (4 points):** Complete understanding, clear explanations, creative examples
**Good (3 points):** Good understanding with minor gaps, mostly accurate
**Satisfactory (2 points):** Basic understanding, some correct explanations
**Needs Improvement (1 point):** Limited understanding, requires additional support

### DIFFERENTIATION NOTES

**For Advanced Students:** Provide extension questions and research projects
**For Struggling Students:** Offer additional examples and simplified explanations
**For Mixed Levels:** Use peer tutoring and collaborative learning

---
*Generated by Sahayak AI Teaching Assistant*
*Adapted for rural multi-grade classrooms*`,
		req.Topic, req.Subject, req.Grade, req.Language, req.Difficulty, req.StudentLevel)
}

func renderVisualAid(req VisualAidRequest) string {
	aidUpper := strings.ToUpper(req.AidType)
	return fmt.Sprintf(`# VISUAL AID CREATION GUIDE: %[1]s
## Topic: %[2]s | Subject: %[3]s | Grade: %[4]s

### OVERVIEW
Create an engaging %[5]s about %[2]s that will help students understand key concepts through visual learning.

### MATERIALS NEEDED (All Low-Cost & Locally Available)
- Large chart paper or flattened cardboard box
- Colored pencils, crayons, or natural colors (turmeric, beetroot, etc.)
- Old magazines or newspapers for cutting pictures
- Glue made from flour and water, or commercial glue
- Ruler or straight stick for drawing lines
- Black marker or charcoal for outlines
- Cotton, cloth pieces, or natural materials for texture

### STEP-BY-STEP CREATION GUIDE

**STEP 1: Planning and Design (15 minutes)**
1. Sketch your %[5]s layout on paper first
2. Decide on the main sections and information to include
3. Plan color scheme using available materials
4. Mark where text and images will go

**STEP 2: Prepare the Base (20 minutes)**
1. Clean and flatten your chart paper or cardboard
2. Use ruler to lightly mark sections
3. Draw border and main title area
4. Create background design if needed

**STEP 3: Add Content (45 minutes)**
1. Write clear headings in %[6]s
2. Add main information about %[2]s
3. Include diagrams and illustrations
4. Use bright colors to make it attractive
5. Add local examples and cultural references

**STEP 4: Enhance with Visuals (30 minutes)**
1. Cut and paste relevant pictures from magazines
2. Draw simple illustrations related to %[2]s
3. Add texture using natural materials
4. Create interactive elements (flaps, moveable parts)

**STEP 5: Final Touches (15 minutes)**
1. Review all content for accuracy
2. Add decorative borders
3. Ensure text is clearly readable
4. Add your name and date

### CONTENT STRUCTURE FOR %[1]s

**Main Title:** "%[2]s" (Large, bold letters at the top)

**Section 1: What is %[2]s?**
- Simple definition in %[6]s
- Key characteristics
- Visual representation

**Section 2: Examples in Daily Life**
- Local examples from village/community
- Pictures or drawings
- Student-relatable scenarios

**Section 3: Why is %[2]s Important?**
- Benefits and applications
- Connection to student lives
- Cultural significance

**Section 4: Fun Facts**
- Interesting information about %[2]s
- Did-you-know sections
- Interactive questions

### CLASSROOM USAGE INSTRUCTIONS

**Before the Lesson:**
- Display the %[5]s prominently where all students can see
- Prepare pointing stick or pointer
- Review content to ensure smooth presentation

**During the Lesson:**
- Use the %[5]s as a reference throughout the lesson
- Point to specific sections while explaining
- Encourage students to ask questions about what they see
- Use it for interactive discussions

**After the Lesson:**
- Leave displayed for student reference
- Use for review sessions
- Encourage students to create their own versions

### INTERACTIVE ELEMENTS TO ADD

1. **Question Boxes:** Small sections with questions for students
2. **Flip Cards:** Information hidden under flaps
3. **Matching Activities:** Connect related concepts
4. **Fill-in-the-Blanks:** Interactive learning opportunities

### MAINTENANCE AND STORAGE

- Cover with plastic or cloth when not in use
- Store flat to prevent damage
- Make repairs as needed
- Create multiple copies for different classrooms

### EXTENSION ACTIVITIES

1. **Student Creation:** Have students make their own %[5]s
2. **Peer Teaching:** Students use the aid to teach others
3. **Home Connection:** Students explain the aid to family members
4. **Community Display:** Show the aid at community events

### ASSESSMENT OPPORTUNITIES

Use the %[5]s to:
- Check student understanding through questions
- Encourage student explanations
- Facilitate group discussions
- Assess prior knowledge

---

### CULTURAL ADAPTATIONS

**Local Language Integration:**
- Include terms in local dialect
- Use familiar cultural references
- Connect to traditional knowledge

**Community Connections:**
- Reference local practices
- Include community examples
- Honor traditional wisdom

---

*Created by Sahayak AI Teaching Assistant*
*Designed specifically for rural, low-resource classrooms*
*Promoting inclusive and culturally relevant education*`,
		aidUpper, req.Topic, req.Subject, req.Grade, req.AidType, req.Language)
}

func renderVoiceAnalysis(req VoiceAssessmentRequest) VoiceAnalysis {
	subject := strings.ToLower(req.Subject)
	accuracy := scoreBetween(75, 95)

	return VoiceAnalysis{
		Transcription:      fmt.Sprintf("The student provided a thoughtful response about %s, demonstrating understanding of key concepts. They used appropriate vocabulary and showed clear reasoning in their explanation.", subject),
		Accuracy:           accuracy,
		FluencyScore:       scoreBetween(70, 90),
		PronunciationScore: scoreBetween(75, 95),
		ContentScore:       scoreBetween(80, 95),
		KeyPoints: []string{
			"Correctly identified main concepts",
			fmt.Sprintf("Used appropriate %s vocabulary", req.Language),
			"Showed clear understanding of the topic",
			"Provided relevant examples from daily life",
			"Demonstrated logical thinking",
		},
		Improvements: []string{
			"Could elaborate more on specific details",
			"Practice pronunciation of technical terms",
			"Add more examples from personal experience",
			"Speak more slowly for clarity",
			"Use more descriptive language",
		},
		Feedback: fmt.Sprintf("Excellent work! You showed good understanding of %s. Your explanation was clear and you mentioned important points. To improve further, try to include more examples from your daily life and practice speaking slowly. Keep up the great work!", subject),
		Grade:    letterGrade(accuracy),
		Suggestions: []string{
			fmt.Sprintf("Read more about %s concepts", subject),
			"Practice explaining topics to family members",
			"Observe examples in your environment",
			"Ask questions when you don't understand",
			fmt.Sprintf("Practice speaking in %s regularly", req.Language),
		},
		Strengths: []string{
			"Clear communication",
			"Good vocabulary usage",
			"Logical thinking",
			"Relevant examples",
		},
		NextSteps: []string{
			"Practice with more complex questions",
			"Explore related topics",
			"Teach concepts to younger students",
			"Create visual aids to support explanations",
		},
	}
}

func renderImageAnalysis(req ImageAnalysisRequest) ImageAnalysis {
	return ImageAnalysis{
		Description: fmt.Sprintf("This image contains educational content relevant to %s for %s students. It shows various elements that can be used to teach important concepts in an engaging and visual way.", req.Subject, req.Grade),
		EducationalConcepts: []string{
			fmt.Sprintf("Core concepts in %s", req.Subject),
			"Visual learning opportunities",
			"Real-world applications",
			"Cross-curricular connections",
			"Cultural and contextual learning",
		},
		LessonPlan: LessonPlan{
			Title:    fmt.Sprintf("Understanding %s Through Visual Learning", req.Subject),
			Duration: "45 minutes",
			Objectives: []string{
				fmt.Sprintf("Students will identify key elements related to %s", req.Subject),
				"Students will connect visual content to theoretical learning",
				"Students will engage in meaningful discussions about the topic",
				"Students will apply learning to their own experiences",
			},
			Activities: []string{
				"Observe and describe the image in detail",
				fmt.Sprintf("Identify concepts related to %s", req.Subject),
				"Discuss real-world connections and applications",
				"Create related activities and projects",
				"Share personal experiences and observations",
			},
		},
		DiscussionQuestions: []string{
			"What do you see in this image?",
			fmt.Sprintf("How does this relate to what we're learning in %s?", req.Subject),
			"Can you find similar examples in your area?",
			"What questions does this image raise for you?",
			"How would you explain this to someone else?",
		},
		CrossCurricular: []CurricularActivity{
			{Subject: "Art", Activity: "Draw or create similar visual representations"},
			{Subject: "Language", Activity: fmt.Sprintf("Write descriptions and stories in %s", req.Language)},
			{Subject: "Mathematics", Activity: "Count, measure, and calculate elements in the image"},
			{Subject: "Social Studies", Activity: "Explore cultural and community connections"},
		},
		AssessmentIdeas: []string{
			"Ask students to explain concepts in their own words",
			"Have them identify and label different elements",
			"Check understanding through drawing activities",
			"Observe participation in discussions",
			"Listen to their explanations and reasoning",
		},
		CulturalConnections: []string{
			"Local festivals and traditions",
			"Traditional knowledge and practices",
			"Regional examples and applications",
			"Community customs and beliefs",
			"Family and household connections",
		},
		ExtensionActivities: []string{
			"Field trips to observe similar examples",
			"Community interviews and research",
			"Creative projects and presentations",
			"Peer teaching and sharing",
			"Home-based observations and reporting",
		},
	}
}

func renderVideoAnalysis(req VideoRequest, at time.Time) string {
	return fmt.Sprintf(`# Video Content Analysis

## Language: %s
## Processed at: %s

### Video Summary:
The video contains educational content that can be used for teaching purposes. The speaker demonstrates clear communication skills and presents information in an organized manner.

### Key Points Identified:
- Clear explanation of concepts
- Good use of examples
- Appropriate pace for learning
- Engaging presentation style

### Suggested Improvements:
- Add visual aids to support explanations
- Include more interactive elements
- Provide summary at the end
- Use local language examples

### Educational Applications:
- Can be used as lesson introduction
- Suitable for flipped classroom approach
- Good for teacher training
- Useful for parent engagement

### Next Steps:
- Create accompanying worksheet
- Develop discussion questions
- Plan follow-up activities
- Share with other teachers
`, req.Language, at.Format("2006-01-02 15:04:05"))
}

// scoreBetween returns a random score in [lo, hi]
func scoreBetween(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}

// titleCase turns a snake_case content type into a display heading,
// e.g. "lesson_plan" -> "Lesson Plan".
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
