package model

// QuestionType selects which answer fields of a Question are meaningful.
type QuestionType string

const (
	QuestionTypeMCQ QuestionType = "MCQ" // single correct option
	QuestionTypeMSQ QuestionType = "MSQ" // one or more correct options
	QuestionTypeNAT QuestionType = "NAT" // numeric answer inside [MinValue, MaxValue]
)

func (t QuestionType) Valid() bool {
	return t == QuestionTypeMCQ || t == QuestionTypeMSQ || t == QuestionTypeNAT
}

// Option is one rich-text answer choice.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect,omitempty"`
}

// Question is the canonical authored question. Text, option texts and
// Explanation hold editor markup that may contain formula and image embeds.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Options     []Option     `json:"options"`
	Explanation string       `json:"explanation"`
	Type        QuestionType `json:"type"`
	MinValue    float64      `json:"min_value"`
	MaxValue    float64      `json:"max_value"`
	SubjectID   string       `json:"subject_id"`
}

// CorrectCount reports how many options are marked correct.
func (q Question) CorrectCount() int {
	n := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}
