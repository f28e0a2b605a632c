package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prescription-screening-server/internal/models"
)

func answers(pairs map[string]string) []models.Answer {
	// Deterministic order keeps failures readable.
	ids := []string{"Q1", "Q2", "Q3", "Q4", "Q5"}
	var result []models.Answer
	for _, id := range ids {
		if value, ok := pairs[id]; ok {
			result = append(result, models.Answer{QuestionID: id, Value: value})
		}
	}
	return result
}

func TestEvaluateScenarios(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name            string
		answers         []models.Answer
		wantEligible    bool
		wantStatus      models.EligibilityStatus
		wantMessagePart string
	}{
		{
			name:            "all severe symptoms without adverse reaction",
			answers:         answers(map[string]string{"Q1": "yes", "Q2": "yes", "Q3": "yes", "Q5": "no"}),
			wantEligible:    true,
			wantStatus:      models.StatusEligible,
			wantMessagePart: "good candidate",
		},
		{
			name:            "adverse reaction vetoes symptoms",
			answers:         answers(map[string]string{"Q1": "yes", "Q5": "yes"}),
			wantEligible:    false,
			wantStatus:      models.StatusNotEligible,
			wantMessagePart: "adverse reaction",
		},
		{
			name:            "single symptom requires review",
			answers:         answers(map[string]string{"Q1": "yes", "Q2": "no", "Q3": "no", "Q5": "no"}),
			wantEligible:    true,
			wantStatus:      models.StatusRequiresReview,
			wantMessagePart: "doctor review",
		},
		{
			name:            "no symptoms not eligible",
			answers:         answers(map[string]string{"Q1": "no", "Q2": "no", "Q3": "no", "Q5": "no"}),
			wantEligible:    false,
			wantStatus:      models.StatusNotEligible,
			wantMessagePart: "may not be necessary",
		},
		{
			name:            "two symptoms still require review",
			answers:         answers(map[string]string{"Q1": "yes", "Q2": "yes", "Q3": "no", "Q5": "no"}),
			wantEligible:    true,
			wantStatus:      models.StatusRequiresReview,
			wantMessagePart: "doctor review",
		},
		{
			name:            "empty answer set defaults to not eligible",
			answers:         nil,
			wantEligible:    false,
			wantStatus:      models.StatusNotEligible,
			wantMessagePart: "may not be necessary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := engine.Evaluate(tt.answers)
			assert.Equal(t, tt.wantEligible, assessment.Eligible)
			assert.Equal(t, tt.wantStatus, assessment.Status)
			assert.Contains(t, assessment.Message, tt.wantMessagePart)
		})
	}
}

func TestEvaluateVetoDominance(t *testing.T) {
	engine := NewEngine()

	// The veto wins no matter how many severe symptoms are present.
	for _, q5 := range []string{"yes", "YES", "Yes", "yEs"} {
		assessment := engine.Evaluate(answers(map[string]string{
			"Q1": "yes", "Q2": "yes", "Q3": "yes", "Q5": q5,
		}))
		assert.False(t, assessment.Eligible, "Q5=%q", q5)
		assert.Equal(t, models.StatusNotEligible, assessment.Status, "Q5=%q", q5)
	}
}

func TestEvaluateThresholdBoundary(t *testing.T) {
	engine := NewEngine()

	two := engine.Evaluate(answers(map[string]string{"Q1": "yes", "Q2": "yes", "Q3": "no"}))
	three := engine.Evaluate(answers(map[string]string{"Q1": "yes", "Q2": "yes", "Q3": "yes"}))

	// 2 vs 3 symptoms is the business boundary between review and approval.
	assert.Equal(t, models.StatusRequiresReview, two.Status)
	assert.Equal(t, models.StatusEligible, three.Status)
	assert.NotEqual(t, two.Status, three.Status)
}

func TestEvaluateCaseInsensitiveYes(t *testing.T) {
	engine := NewEngine()

	for _, value := range []string{"yes", "YES", "Yes"} {
		assessment := engine.Evaluate([]models.Answer{
			{QuestionID: "Q1", Value: value},
			{QuestionID: "Q2", Value: value},
			{QuestionID: "Q3", Value: value},
		})
		assert.Equal(t, models.StatusEligible, assessment.Status, "value=%q", value)
	}

	// Anything other than "yes" is treated as not-yes.
	for _, value := range []string{"no", "y", "yeah", "true", ""} {
		assessment := engine.Evaluate([]models.Answer{
			{QuestionID: "Q1", Value: value},
		})
		assert.Equal(t, models.StatusNotEligible, assessment.Status, "value=%q", value)
	}
}

func TestEvaluateMissingAnswersCountAsNo(t *testing.T) {
	engine := NewEngine()

	// Only Q2 answered: counts as one symptom, no veto.
	assessment := engine.Evaluate([]models.Answer{{QuestionID: "Q2", Value: "yes"}})
	assert.True(t, assessment.Eligible)
	assert.Equal(t, models.StatusRequiresReview, assessment.Status)
}

func TestEvaluateIgnoresUnknownQuestions(t *testing.T) {
	engine := NewEngine()

	// Unknown question ids are counted as not-yes, never rejected.
	assessment := engine.Evaluate([]models.Answer{
		{QuestionID: "Q99", Value: "yes"},
		{QuestionID: "Q4", Value: "yes"},
	})
	assert.Equal(t, models.StatusNotEligible, assessment.Status)
}
