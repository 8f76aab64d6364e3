package prompt

import (
	"fmt"
	"strings"
)

// UnknownIdentity is the sentinel used when the user never answered the
// identity question with free text.
const UnknownIdentity = "未知身份"

// Answer is one transcript entry fed into instruction compilation. The
// compiler needs only the question position and the response text.
type Answer struct {
	QuestionNumber int
	Content        string
	SelectedOption string
}

// Compiler builds model instructions for one staging scheme. It never touches
// the network or session state; same inputs, same output.
type Compiler struct {
	scheme Scheme
}

// NewCompiler returns a compiler for the given scheme.
func NewCompiler(scheme Scheme) *Compiler {
	return &Compiler{scheme: scheme}
}

// Scheme returns the scheme the compiler was built with.
func (c *Compiler) Scheme() Scheme { return c.scheme }

// TotalQuestions returns the fixed length of the question sequence.
func (c *Compiler) TotalQuestions() int { return c.scheme.TotalQuestions }

// SchemeByName resolves a configured scheme name.
func SchemeByName(name string) (Scheme, error) {
	switch name {
	case "", "navigator":
		return Navigator(), nil
	case "riasec":
		return RIASEC(), nil
	}
	return Scheme{}, fmt.Errorf("unknown stage scheme %q", name)
}

// QuestionInstruction compiles the instruction for generating question
// questionNumber given the accumulated answer history.
func (c *Compiler) QuestionInstruction(questionNumber int, history []Answer) string {
	s := c.scheme
	var b strings.Builder

	b.WriteString(s.Persona)
	fmt.Fprintf(&b, "你正在为用户进行一场%s，共%d道题。当前是第%d题。\n\n", s.AssessmentLabel, s.TotalQuestions, questionNumber)

	if len(history) > 0 {
		b.WriteString("=== 用户之前的回答 ===\n")
		writeTranscript(&b, history)
		b.WriteString("======================\n\n")
	}

	fmt.Fprintf(&b, "请生成第%d道题目。\n\n", questionNumber)

	b.WriteString(s.StrategyHeading)
	b.WriteString("\n\n")

	b.WriteString("■ 第1题（简答题 · 身份识别）：\n")
	b.WriteString("  友好地询问用户的身份背景。\n")
	fmt.Fprintf(&b, "  题目内容固定为：\"%s\"\n", s.FirstQuestionText)
	b.WriteString("  type 为 \"text\"，options 为 null。\n\n")

	for _, stage := range s.Stages {
		fmt.Fprintf(&b, "■ 第%d-%d题（%s，共%d题）：\n", stage.First, stage.Last, stage.Title, stage.Last-stage.First+1)
		fmt.Fprintf(&b, "  阶段目标：%s\n", stage.Goal)
		fmt.Fprintf(&b, "  第%d题开头需要包含阶段引导语：\"%s\"\n", stage.First, stage.Transition)
		b.WriteString("  出题方向：\n")
		for _, t := range stage.Topics {
			fmt.Fprintf(&b, "    - %s（如：\"%s\"）\n", t.Direction, t.Example)
		}
		fmt.Fprintf(&b, "  %s\n\n", stage.MixNote)
	}

	b.WriteString("【重要规则】\n")
	for i, rule := range s.Rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}
	b.WriteString("\n")

	b.WriteString("请严格按以下JSON格式返回（不要包含其他内容）：\n")
	b.WriteString("{\"content\": \"题目内容（如果是阶段首题，需要在前面加上阶段引导语，用换行分隔）\", \"type\": \"choice或text\", \"options\": [\"选项1\", \"选项2\", \"选项3\", \"选项4\"]}\n")
	b.WriteString("如果是简答题，type 为 \"text\"，options 为 null。\n")
	b.WriteString("如果是选择题，type 为 \"choice\"，options 为4个选项的数组。")

	return b.String()
}

// AnalysisInstruction compiles the report-generation instruction from the
// full answer transcript. The user's declared identity is the free-text
// answer to question 1, falling back to UnknownIdentity.
func (c *Compiler) AnalysisInstruction(history []Answer) string {
	s := c.scheme
	var b strings.Builder

	b.WriteString(s.AnalysisPersona)
	b.WriteString("\n")
	b.WriteString(s.AnalysisIntro)
	b.WriteString("\n\n")

	writeTranscript(&b, history)

	fmt.Fprintf(&b, "\n用户自述身份：%s\n\n", DeclaredIdentity(history))

	b.WriteString(s.AnalysisRubric)

	return b.String()
}

// DeclaredIdentity extracts the user's self-declared identity from the answer
// to question 1.
func DeclaredIdentity(history []Answer) string {
	for _, a := range history {
		if a.QuestionNumber == 1 && a.Content != "" {
			return a.Content
		}
	}
	return UnknownIdentity
}

// writeTranscript renders answers as 第N题 → content（选项O） lines.
func writeTranscript(b *strings.Builder, history []Answer) {
	for _, a := range history {
		fmt.Fprintf(b, "第%d题 → %s", a.QuestionNumber, a.Content)
		if a.SelectedOption != "" {
			fmt.Fprintf(b, "（选项%s）", a.SelectedOption)
		}
		b.WriteString("\n")
	}
}
