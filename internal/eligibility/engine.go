package eligibility

import (
	"strings"

	"prescription-screening-server/internal/models"
)

// Assessment is the verdict produced by evaluating a set of answers.
// Eligible can be true while Status still flags the case for review.
type Assessment struct {
	Eligible bool
	Message  string
	Status   models.EligibilityStatus
}

// Rule inspects the answers and either claims the outcome or returns nil to
// pass evaluation to the next rule.
type Rule func(answers []models.Answer) *Assessment

// Engine evaluates answers against an ordered decision list. The first rule
// that returns a non-nil assessment wins, so safety rules placed earlier can
// never be overridden by later signals. New rules are appended without
// touching existing ones.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine with the current screening rules: an
// adverse-reaction veto followed by the severe-symptom threshold.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			adverseReactionVeto,
			severeSymptomThreshold,
		},
	}
}

// Evaluate runs the decision list over the answers. Pure: no I/O, no
// mutation of the input. Missing answers are treated as "no".
func (e *Engine) Evaluate(answers []models.Answer) Assessment {
	for _, rule := range e.rules {
		if assessment := rule(answers); assessment != nil {
			return *assessment
		}
	}

	return Assessment{
		Eligible: false,
		Message: "Based on your responses, our medication may not be necessary for your current symptom level. " +
			"Consider consulting with your doctor for alternative treatments.",
		Status: models.StatusNotEligible,
	}
}

// adverseReactionQuestionID identifies the medication-reaction history
// question. A "yes" here is a hard stop regardless of symptom severity.
const adverseReactionQuestionID = "Q5"

// severeSymptomQuestionIDs are the questions whose "yes" answers count
// toward the symptom threshold.
var severeSymptomQuestionIDs = []string{"Q1", "Q2", "Q3"}

func adverseReactionVeto(answers []models.Answer) *Assessment {
	for _, answer := range answers {
		if answer.QuestionID == adverseReactionQuestionID && isYes(answer.Value) {
			return &Assessment{
				Eligible: false,
				Message: "Unfortunately, we cannot prescribe medication due to your previous adverse reaction to allergy medication. " +
					"Please consult with your doctor.",
				Status: models.StatusNotEligible,
			}
		}
	}
	return nil
}

func severeSymptomThreshold(answers []models.Answer) *Assessment {
	count := 0
	for _, answer := range answers {
		if isSevereSymptomQuestion(answer.QuestionID) && isYes(answer.Value) {
			count++
		}
	}

	// Threshold boundaries are business-significant: exactly 3 clears the
	// patient, 1 or 2 escalates to a physician.
	if count >= 3 {
		return &Assessment{
			Eligible: true,
			Message: "Great news! Based on your symptoms, you appear to be a good candidate for our pear allergy medication. " +
				"We'll proceed with your consultation.",
			Status: models.StatusEligible,
		}
	}
	if count >= 1 {
		return &Assessment{
			Eligible: true,
			Message:  "Based on your responses, you may benefit from our medication. We'll have a doctor review your case.",
			Status:   models.StatusRequiresReview,
		}
	}
	return nil
}

func isSevereSymptomQuestion(questionID string) bool {
	for _, id := range severeSymptomQuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

func isYes(value string) bool {
	return strings.EqualFold(value, "yes")
}
