// Package composer validates question drafts and turns them into Question
// records.
package composer

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/lshigami/QuizDraft/internal/richtext"
)

const (
	MinOptions = 2
	MaxOptions = 5
)

// Validation failures, in the order they are checked.
const (
	FieldText        = "text"
	FieldType        = "type"
	FieldRange       = "range"
	FieldOptions     = "options"
	FieldCorrect     = "correct"
	FieldExplanation = "explanation"
	FieldSubject     = "subject"
)

// ValidationError describes the first rule a draft broke. Message is meant
// for the author.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Draft is the composer form as submitted by the editor.
type Draft struct {
	Text        string
	Type        model.QuestionType
	Options     []model.Option
	Explanation string
	MinValue    float64
	MaxValue    float64
	DomainID    string
	SubjectID   string
}

// NewDraft is the blank form a client resets to after a save.
func NewDraft() Draft {
	return Draft{
		Text:        richtext.EmptyParagraph,
		Type:        model.QuestionTypeMCQ,
		Options:     []model.Option{{Text: richtext.EmptyParagraph}, {Text: richtext.EmptyParagraph}},
		Explanation: richtext.EmptyParagraph,
	}
}

type Composer struct {
	// RequireTaxonomy makes domain and subject mandatory. It is set when
	// questions are forwarded to a question bank.
	RequireTaxonomy bool

	ids *IDGenerator
}

func New(requireTaxonomy bool, ids *IDGenerator) *Composer {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	return &Composer{RequireTaxonomy: requireTaxonomy, ids: ids}
}

// Validate checks d and returns the first failure as a *ValidationError.
// For NAT drafts the options are dropped from d.
func (c *Composer) Validate(d *Draft) error {
	if richtext.IsBlank(d.Text) {
		return invalid(FieldText, "Question text is required.")
	}
	if d.Type == "" {
		return invalid(FieldType, "Please select a question type.")
	}
	if !d.Type.Valid() {
		return invalid(FieldType, "Unknown question type %q.", d.Type)
	}

	if d.Type == model.QuestionTypeNAT {
		d.Options = nil
		if d.MinValue > d.MaxValue {
			return invalid(FieldRange, "Minimum value must not exceed maximum value.")
		}
	} else {
		if n := len(d.Options); n < MinOptions || n > MaxOptions {
			return invalid(FieldOptions, "A question needs between %d and %d options.", MinOptions, MaxOptions)
		}
		for i, o := range d.Options {
			if richtext.IsBlank(o.Text) {
				return invalid(FieldOptions, "Option %d is empty.", i+1)
			}
		}

		correct := 0
		for _, o := range d.Options {
			if o.IsCorrect {
				correct++
			}
		}
		switch {
		case correct == 0:
			return invalid(FieldCorrect, "Please select at least one correct answer.")
		case d.Type == model.QuestionTypeMCQ && correct > 1:
			return invalid(FieldCorrect, "A multiple choice question has exactly one correct answer.")
		}
	}

	if richtext.IsBlank(d.Explanation) {
		return invalid(FieldExplanation, "An explanation is required.")
	}
	if c.RequireTaxonomy && (strings.TrimSpace(d.DomainID) == "" || strings.TrimSpace(d.SubjectID) == "") {
		return invalid(FieldSubject, "Please select a domain and a subject.")
	}
	return nil
}

// Build validates d and returns the Question it describes with a fresh id.
func (c *Composer) Build(d Draft) (model.Question, error) {
	if err := c.Validate(&d); err != nil {
		return model.Question{}, err
	}
	options := make([]model.Option, len(d.Options))
	copy(options, d.Options)
	q := model.Question{
		ID:          c.ids.Next(),
		Text:        d.Text,
		Options:     options,
		Explanation: d.Explanation,
		Type:        d.Type,
		SubjectID:   d.SubjectID,
	}
	if d.Type == model.QuestionTypeNAT {
		q.MinValue, q.MaxValue = d.MinValue, d.MaxValue
	}
	return q, nil
}

// IDGenerator issues unix-millisecond ids that strictly increase even when
// two saves land in the same millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Observe records an id that is already in use, such as one loaded back
// from storage, so later ids sort after it even if the clock went back.
// Ids that are not unix-millisecond numbers are ignored.
func (g *IDGenerator) Observe(id string) {
	ms, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if ms > g.last {
		g.last = ms
	}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
