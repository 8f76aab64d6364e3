// Package assessment holds the domain model and the orchestration service for
// the adaptive career assessment: a fixed-length sequence of AI-generated
// questions followed by a synthesized multi-section report.
package assessment

import (
	"time"
)

// QuestionType distinguishes multiple-choice questions from open-response ones.
type QuestionType string

const (
	// QuestionTypeChoice is a multiple-choice question with exactly four options.
	QuestionTypeChoice QuestionType = "choice"
	// QuestionTypeText is an open-response question.
	QuestionTypeText QuestionType = "text"
)

// Question is a single generated assessment question. Content may embed a
// stage-transition preamble when the question opens a new stage.
type Question struct {
	// ID is the unique question identifier.
	ID string `json:"id"`
	// QuestionNumber is the 1-based position in the question sequence.
	QuestionNumber int `json:"questionNumber"`
	// Content is the question text shown to the user.
	Content string `json:"content"`
	// Type is either "choice" or "text".
	Type QuestionType `json:"type"`
	// Options holds the choice labels for choice questions, absent otherwise.
	Options []string `json:"options,omitempty"`
}

// Answer records the user's response to one question. Exactly one of
// AnswerContent and SelectedOption is expected to be populated depending on
// the question type; the model does not enforce mutual exclusivity.
type Answer struct {
	// QuestionID links back to the answered question.
	QuestionID string `json:"questionId"`
	// QuestionNumber is the 1-based position in the question sequence.
	QuestionNumber int `json:"questionNumber"`
	// AnswerContent is the free-text response, empty for pure choice answers.
	AnswerContent string `json:"answerContent,omitempty"`
	// SelectedOption is the chosen option label, empty for text answers.
	SelectedOption string `json:"selectedOption,omitempty"`
}

// Session is the durable record of one user's assessment, keyed by access key.
//
// Invariant: len(Answers) == CurrentQuestionNumber-1 while in progress, and
// len(Answers) == the scheme's total once completed. Result is set exactly
// once, at the transition to completed.
type Session struct {
	// SessionID identifies the session; it equals the access key.
	SessionID string `json:"sessionId"`
	// Key is the access key the session was started with.
	Key string `json:"key"`
	// Provider names the LLM backend used for this session.
	Provider string `json:"modelProvider"`
	// Answers is append-only, ordered by QuestionNumber.
	Answers []Answer `json:"answers"`
	// CurrentQuestionNumber starts at 1 and only moves forward.
	CurrentQuestionNumber int `json:"currentQuestionNumber"`
	// Completed is false until the final answer is processed.
	Completed bool `json:"completed"`
	// Result is present iff Completed.
	Result *Result `json:"result,omitempty"`
	// CreatedAt is set at creation and never changes.
	CreatedAt time.Time `json:"createdAt"`
}

// TalentDimension is one of the six fixed scored aptitude categories.
type TalentDimension string

const (
	DimensionCreativity    TalentDimension = "CREATIVITY"
	DimensionAnalysis      TalentDimension = "ANALYSIS"
	DimensionLeadership    TalentDimension = "LEADERSHIP"
	DimensionExecution     TalentDimension = "EXECUTION"
	DimensionCommunication TalentDimension = "COMMUNICATION"
	DimensionLearning      TalentDimension = "LEARNING"
)

// Dimensions lists all talent dimensions in report order.
func Dimensions() []TalentDimension {
	return []TalentDimension{
		DimensionCreativity,
		DimensionAnalysis,
		DimensionLeadership,
		DimensionExecution,
		DimensionCommunication,
		DimensionLearning,
	}
}

// IdentityCategory is one of the three fixed user-identity segments that
// career-path advice is tailored to. Values outside the three canonical
// constants can still appear as map keys when a model drifts; use Known to
// tell them apart.
type IdentityCategory string

const (
	IdentityStudent      IdentityCategory = "学生/应届生"
	IdentityProfessional IdentityCategory = "职场人"
	IdentityParent       IdentityCategory = "宝妈/宝爸"
)

// Known reports whether the category is one of the three canonical segments.
func (c IdentityCategory) Known() bool {
	switch c {
	case IdentityStudent, IdentityProfessional, IdentityParent:
		return true
	}
	return false
}

// CareerPath is one recommended career direction with identity-segmented advice.
type CareerPath struct {
	// Name is the path label, e.g. 精英职场之路.
	Name string `json:"name"`
	// GeneralAdvice applies regardless of the user's identity.
	GeneralAdvice string `json:"generalAdvice"`
	// IdentityAdvice maps identity categories to tailored advice. Keys the
	// model supplied are preserved as-is, including unknown ones.
	IdentityAdvice map[IdentityCategory]string `json:"identityAdvice"`
}

// ActionStep is one step of the personalized action plan.
type ActionStep struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ActionPlan is the next-step plan tailored to the user's declared identity.
type ActionPlan struct {
	// IdentityLabel is the user's identity as phrased in the report.
	IdentityLabel string `json:"identityLabel"`
	// Steps holds 2-3 concrete action steps.
	Steps []ActionStep `json:"steps"`
	// ClosingMessage is the closing encouragement; may be empty.
	ClosingMessage string `json:"closingMessage"`
}

// Result is the full assessment report produced once per completed session.
// CareerPaths and ActionPlan are absent in the reduced report variant.
type Result struct {
	TalentScores           map[TalentDimension]int `json:"talentScores"`
	PersonalityType        string                  `json:"personalityType"`
	PersonalityDescription string                  `json:"personalityDescription"`
	WorkStyle              string                  `json:"workStyle"`
	WorkStyleDescription   string                  `json:"workStyleDescription"`
	Strengths              []string                `json:"strengths"`
	Summary                string                  `json:"summary"`
	CareerPaths            []CareerPath            `json:"careerPaths,omitempty"`
	ActionPlan             *ActionPlan             `json:"actionPlan,omitempty"`
}
