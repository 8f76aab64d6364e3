// Package prompt compiles the natural-language instructions sent to the
// model: one mode generates the next question from the answer history, the
// other requests the final report. Compilation is pure and deterministic;
// the staging layout is data (Scheme), so the 35-question navigator flow and
// the 10-question RIASEC flow share one compiler.
package prompt

// Topic is one suggested question angle within a stage, with an example the
// model can riff on. Topics are guidance, not a literal enumeration.
type Topic struct {
	Direction string
	Example   string
}

// Stage is a contiguous sub-range of question numbers sharing a thematic
// goal. The first question of a stage must open with Transition.
type Stage struct {
	// First and Last bound the stage's question numbers, inclusive.
	First int
	Last  int
	// Title names the stage, e.g. 第一阶段：探索"工作电池"模式 | 了解底层性格.
	Title string
	// Goal states what the stage is trying to learn about the user.
	Goal string
	// Transition is the one-time lead-in sentence for the stage's first question.
	Transition string
	// Topics are the directions questions in this stage should draw from.
	Topics []Topic
	// MixNote describes the choice/text question mix for the stage.
	MixNote string
}

// Scheme is a complete staging layout: persona, fixed identity question,
// stages and rules. Question 1 is always the identity question and is not
// part of any stage.
type Scheme struct {
	// Name selects the scheme in configuration.
	Name string
	// TotalQuestions is the fixed length of the question sequence.
	TotalQuestions int
	// AssessmentLabel names the assessment in the progress line.
	AssessmentLabel string
	// Persona is the opening persona/style preamble, with trailing newline.
	Persona string
	// StrategyHeading opens the stage-directive block.
	StrategyHeading string
	// FirstQuestionText is the fixed identity-elicitation question.
	FirstQuestionText string
	// Stages cover questions 2..TotalQuestions without gaps.
	Stages []Stage
	// Rules are the numbered hard rules appended after the stage directives.
	Rules []string
	// AnalysisPersona opens the analysis instruction.
	AnalysisPersona string
	// AnalysisIntro introduces the answer transcript.
	AnalysisIntro string
	// AnalysisRubric is the full output-requirements block, ending with the
	// strict JSON shape template the model must reproduce.
	AnalysisRubric string
}
