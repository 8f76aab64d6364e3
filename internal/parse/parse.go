// Package parse turns raw model output into validated domain objects. Input
// is expected to be fence-free JSON (the gateway strips markdown fences); any
// structural violation fails with a MalformedResponseError carrying the raw
// text for diagnosis. Parsing never produces a partially populated object.
package parse

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/qihang-dev/qihang/internal/assessment"
)

// MalformedResponseError reports model output that failed structural
// validation. RawText preserves the offending payload.
type MalformedResponseError struct {
	Reason  string
	RawText string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return "malformed model response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func malformed(raw, format string, args ...any) error {
	return &MalformedResponseError{Reason: fmt.Sprintf(format, args...), RawText: raw}
}

type questionPayload struct {
	Content *string  `json:"content"`
	Type    *string  `json:"type"`
	Options []string `json:"options"`
}

// Question parses a question payload. content and type are required strings;
// options is passed through at whatever length the model produced.
func Question(raw string) (*assessment.Question, error) {
	var p questionPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &MalformedResponseError{Reason: "question is not valid JSON", RawText: raw, Err: err}
	}
	if p.Content == nil || *p.Content == "" {
		return nil, malformed(raw, "question missing content")
	}
	if p.Type == nil || *p.Type == "" {
		return nil, malformed(raw, "question missing type")
	}
	return &assessment.Question{
		Content: *p.Content,
		Type:    assessment.QuestionType(*p.Type),
		Options: p.Options,
	}, nil
}

type careerPathPayload struct {
	Name           *string           `json:"name"`
	GeneralAdvice  *string           `json:"generalAdvice"`
	IdentityAdvice map[string]string `json:"identityAdvice"`
}

type actionStepPayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type actionPlanPayload struct {
	IdentityLabel  *string             `json:"identityLabel"`
	Steps          []actionStepPayload `json:"steps"`
	ClosingMessage *string             `json:"closingMessage"`
}

type resultPayload struct {
	TalentScores           map[string]*json.Number `json:"talentScores"`
	PersonalityType        *string                 `json:"personalityType"`
	PersonalityDescription *string                 `json:"personalityDescription"`
	WorkStyle              *string                 `json:"workStyle"`
	WorkStyleDescription   *string                 `json:"workStyleDescription"`
	Strengths              []string                `json:"strengths"`
	Summary                *string                 `json:"summary"`
	CareerPaths            []careerPathPayload     `json:"careerPaths"`
	ActionPlan             *actionPlanPayload      `json:"actionPlan"`
}

// Result parses a report payload. All six talent dimensions and the core
// narrative fields are required; careerPaths and actionPlan are optional
// (reduced report variant), but validated strictly when present.
func Result(raw string) (*assessment.Result, error) {
	var p resultPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &MalformedResponseError{Reason: "result is not valid JSON", RawText: raw, Err: err}
	}

	if p.TalentScores == nil {
		return nil, malformed(raw, "result missing talentScores")
	}
	scores := make(map[assessment.TalentDimension]int, len(assessment.Dimensions()))
	for _, dim := range assessment.Dimensions() {
		n, ok := p.TalentScores[string(dim)]
		if !ok || n == nil {
			return nil, malformed(raw, "talentScores missing dimension %s", dim)
		}
		f, err := n.Float64()
		if err != nil {
			return nil, malformed(raw, "talentScores dimension %s is not a number", dim)
		}
		scores[dim] = int(math.Round(f))
	}

	for name, v := range map[string]*string{
		"personalityType":        p.PersonalityType,
		"personalityDescription": p.PersonalityDescription,
		"workStyle":              p.WorkStyle,
		"workStyleDescription":   p.WorkStyleDescription,
		"summary":                p.Summary,
	} {
		if v == nil {
			return nil, malformed(raw, "result missing %s", name)
		}
	}
	if p.Strengths == nil {
		return nil, malformed(raw, "result missing strengths")
	}

	result := &assessment.Result{
		TalentScores:           scores,
		PersonalityType:        *p.PersonalityType,
		PersonalityDescription: *p.PersonalityDescription,
		WorkStyle:              *p.WorkStyle,
		WorkStyleDescription:   *p.WorkStyleDescription,
		Strengths:              p.Strengths,
		Summary:                *p.Summary,
	}

	for i, cp := range p.CareerPaths {
		if cp.Name == nil {
			return nil, malformed(raw, "careerPaths[%d] missing name", i)
		}
		if cp.GeneralAdvice == nil {
			return nil, malformed(raw, "careerPaths[%d] missing generalAdvice", i)
		}
		// Key-by-key merge: whatever identity keys the model supplied are
		// kept, known or not.
		advice := make(map[assessment.IdentityCategory]string, len(cp.IdentityAdvice))
		for k, v := range cp.IdentityAdvice {
			advice[assessment.IdentityCategory(k)] = v
		}
		result.CareerPaths = append(result.CareerPaths, assessment.CareerPath{
			Name:           *cp.Name,
			GeneralAdvice:  *cp.GeneralAdvice,
			IdentityAdvice: advice,
		})
	}

	if p.ActionPlan != nil {
		plan, err := parseActionPlan(raw, p.ActionPlan)
		if err != nil {
			return nil, err
		}
		result.ActionPlan = plan
	}

	return result, nil
}

func parseActionPlan(raw string, p *actionPlanPayload) (*assessment.ActionPlan, error) {
	if p.IdentityLabel == nil {
		return nil, malformed(raw, "actionPlan missing identityLabel")
	}
	if len(p.Steps) == 0 {
		return nil, malformed(raw, "actionPlan missing steps")
	}
	plan := &assessment.ActionPlan{IdentityLabel: *p.IdentityLabel}
	for i, s := range p.Steps {
		if s.Title == nil || s.Content == nil {
			return nil, malformed(raw, "actionPlan.steps[%d] missing title or content", i)
		}
		plan.Steps = append(plan.Steps, assessment.ActionStep{Title: *s.Title, Content: *s.Content})
	}
	if p.ClosingMessage != nil {
		plan.ClosingMessage = *p.ClosingMessage
	}
	return plan, nil
}
