package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qihang-dev/qihang/internal/assessment"
)

func TestQuestion(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantType   assessment.QuestionType
		optionsLen int
		wantErr    string
	}{
		{
			name:       "choice question",
			raw:        `{"content":"你更喜欢哪种工作节奏？","type":"choice","options":["A","B","C","D"]}`,
			wantType:   assessment.QuestionTypeChoice,
			optionsLen: 4,
		},
		{
			name:     "text question with null options",
			raw:      `{"content":"说说你的身份背景","type":"text","options":null}`,
			wantType: assessment.QuestionTypeText,
		},
		{
			name:       "five options pass through",
			raw:        `{"content":"题目","type":"choice","options":["1","2","3","4","5"]}`,
			wantType:   assessment.QuestionTypeChoice,
			optionsLen: 5,
		},
		{
			name:    "missing content",
			raw:     `{"type":"choice","options":["A","B"]}`,
			wantErr: "missing content",
		},
		{
			name:    "missing type",
			raw:     `{"content":"题目"}`,
			wantErr: "missing type",
		},
		{
			name:    "not json",
			raw:     "很抱歉，我无法生成题目。",
			wantErr: "not valid JSON",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Question(tt.raw)
			if tt.wantErr != "" {
				var malformed *MalformedResponseError
				require.ErrorAs(t, err, &malformed)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.raw, malformed.RawText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, q.Type)
			assert.Len(t, q.Options, tt.optionsLen)
		})
	}
}

const validResult = `{
  "talentScores": {"CREATIVITY": 85, "ANALYSIS": 70, "LEADERSHIP": 60, "EXECUTION": 75, "COMMUNICATION": 80, "LEARNING": 90},
  "personalityType": "星辰航海家",
  "personalityDescription": "你是一个……",
  "workStyle": "直觉驱动型",
  "workStyleDescription": "你处理问题时……",
  "strengths": ["在混乱中理清头绪", "三言两语讲清复杂的事"],
  "summary": "总结……"
}`

func TestResultCoreFields(t *testing.T) {
	r, err := Result(validResult)
	require.NoError(t, err)

	assert.Equal(t, 85, r.TalentScores[assessment.DimensionCreativity])
	assert.Equal(t, 90, r.TalentScores[assessment.DimensionLearning])
	assert.Equal(t, "星辰航海家", r.PersonalityType)
	assert.Len(t, r.Strengths, 2)
	assert.Nil(t, r.CareerPaths)
	assert.Nil(t, r.ActionPlan)
}

func TestResultScoreRounding(t *testing.T) {
	raw := `{
	  "talentScores": {"CREATIVITY": 85.6, "ANALYSIS": 70.2, "LEADERSHIP": 60, "EXECUTION": 75, "COMMUNICATION": 80, "LEARNING": 90},
	  "personalityType": "x", "personalityDescription": "x",
	  "workStyle": "x", "workStyleDescription": "x",
	  "strengths": ["x"], "summary": "x"
	}`
	r, err := Result(raw)
	require.NoError(t, err)

	assert.Equal(t, 86, r.TalentScores[assessment.DimensionCreativity])
	assert.Equal(t, 70, r.TalentScores[assessment.DimensionAnalysis])
}

func TestResultMissingDimension(t *testing.T) {
	raw := `{
	  "talentScores": {"CREATIVITY": 85, "ANALYSIS": 70, "LEADERSHIP": 60, "EXECUTION": 75, "COMMUNICATION": 80},
	  "personalityType": "x", "personalityDescription": "x",
	  "workStyle": "x", "workStyleDescription": "x",
	  "strengths": ["x"], "summary": "x"
	}`
	_, err := Result(raw)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "LEARNING")
	assert.Equal(t, raw, malformed.RawText)
}

func TestResultMissingNarrativeField(t *testing.T) {
	raw := `{
	  "talentScores": {"CREATIVITY": 85, "ANALYSIS": 70, "LEADERSHIP": 60, "EXECUTION": 75, "COMMUNICATION": 80, "LEARNING": 90},
	  "personalityType": "x", "personalityDescription": "x",
	  "workStyle": "x", "workStyleDescription": "x",
	  "strengths": ["x"]
	}`
	_, err := Result(raw)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "summary")
}

const fullResult = `{
  "talentScores": {"CREATIVITY": 85, "ANALYSIS": 70, "LEADERSHIP": 60, "EXECUTION": 75, "COMMUNICATION": 80, "LEARNING": 90},
  "personalityType": "x", "personalityDescription": "x",
  "workStyle": "x", "workStyleDescription": "x",
  "strengths": ["x"], "summary": "x",
  "careerPaths": [
    {"name": "精英职场之路", "generalAdvice": "建议……", "identityAdvice": {"学生/应届生": "a", "职场人": "b", "宝妈/宝爸": "c", "自由职业者": "d"}},
    {"name": "创新事业之路", "generalAdvice": "建议……", "identityAdvice": {"学生/应届生": "a"}},
    {"name": "超级个体之路", "generalAdvice": "建议……", "identityAdvice": {}}
  ],
  "actionPlan": {
    "identityLabel": "在校学生",
    "steps": [{"title": "关键一步", "content": "去做"}, {"title": "资源利用", "content": "去找"}]
  }
}`

func TestResultFullReport(t *testing.T) {
	r, err := Result(fullResult)
	require.NoError(t, err)

	require.Len(t, r.CareerPaths, 3)
	assert.Equal(t, "精英职场之路", r.CareerPaths[0].Name)

	// Unknown identity keys are kept alongside the canonical ones.
	advice := r.CareerPaths[0].IdentityAdvice
	assert.Len(t, advice, 4)
	assert.Equal(t, "a", advice[assessment.IdentityStudent])
	unknown := assessment.IdentityCategory("自由职业者")
	assert.False(t, unknown.Known())
	assert.Equal(t, "d", advice[unknown])

	require.NotNil(t, r.ActionPlan)
	assert.Equal(t, "在校学生", r.ActionPlan.IdentityLabel)
	assert.Len(t, r.ActionPlan.Steps, 2)
	assert.Empty(t, r.ActionPlan.ClosingMessage)
}

func TestResultCareerPathMissingName(t *testing.T) {
	raw := `{
	  "talentScores": {"CREATIVITY": 85, "ANALYSIS": 70, "LEADERSHIP": 60, "EXECUTION": 75, "COMMUNICATION": 80, "LEARNING": 90},
	  "personalityType": "x", "personalityDescription": "x",
	  "workStyle": "x", "workStyleDescription": "x",
	  "strengths": ["x"], "summary": "x",
	  "careerPaths": [{"generalAdvice": "建议"}]
	}`
	_, err := Result(raw)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "careerPaths[0] missing name")
}

func TestResultActionPlanWithoutSteps(t *testing.T) {
	raw := `{
	  "talentScores": {"CREATIVITY": 85, "ANALYSIS": 70, "LEADERSHIP": 60, "EXECUTION": 75, "COMMUNICATION": 80, "LEARNING": 90},
	  "personalityType": "x", "personalityDescription": "x",
	  "workStyle": "x", "workStyleDescription": "x",
	  "strengths": ["x"], "summary": "x",
	  "actionPlan": {"identityLabel": "职场人士", "steps": []}
	}`
	_, err := Result(raw)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "actionPlan missing steps")
}
