package composer

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/lshigami/QuizDraft/internal/model"
)

func validDraft() Draft {
	return Draft{
		Text: "<p>What is 2+2?</p>",
		Type: model.QuestionTypeMCQ,
		Options: []model.Option{
			{Text: "<p>4</p>", IsCorrect: true},
			{Text: "<p>5</p>"},
		},
		Explanation: "<p>Arithmetic.</p>",
		DomainID:    "d1",
		SubjectID:   "s1",
	}
}

func TestValidateOrder(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"empty text", func(d *Draft) { d.Text = "" }, FieldText},
		{"sentinel text", func(d *Draft) { d.Text = "<p><br></p>" }, FieldText},
		{"whitespace markup", func(d *Draft) { d.Text = "<p>  </p><p><br></p>" }, FieldText},
		{"text checked before type", func(d *Draft) { d.Text = ""; d.Type = "" }, FieldText},
		{"missing type", func(d *Draft) { d.Type = "" }, FieldType},
		{"unknown type", func(d *Draft) { d.Type = "ESSAY" }, FieldType},
		{"one option", func(d *Draft) { d.Options = d.Options[:1] }, FieldOptions},
		{"six options", func(d *Draft) {
			for i := 0; i < 4; i++ {
				d.Options = append(d.Options, model.Option{Text: "<p>x</p>"})
			}
		}, FieldOptions},
		{"blank option", func(d *Draft) { d.Options[1].Text = "<p><br></p>" }, FieldOptions},
		{"options checked before correct", func(d *Draft) {
			d.Options[0].IsCorrect = false
			d.Options[1].Text = ""
		}, FieldOptions},
		{"no correct answer", func(d *Draft) { d.Options[0].IsCorrect = false }, FieldCorrect},
		{"two correct for MCQ", func(d *Draft) { d.Options[1].IsCorrect = true }, FieldCorrect},
		{"missing explanation", func(d *Draft) { d.Explanation = "<p><br></p>" }, FieldExplanation},
		{"missing subject", func(d *Draft) { d.SubjectID = "" }, FieldSubject},
		{"missing domain", func(d *Draft) { d.DomainID = " " }, FieldSubject},
		{"NAT inverted range", func(d *Draft) {
			d.Type = model.QuestionTypeNAT
			d.MinValue, d.MaxValue = 5, 1
		}, FieldRange},
	}

	c := New(true, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := c.Validate(&d)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("failed on %q (%s), want %q", verr.Field, verr.Message, tc.field)
			}
			if verr.Message == "" {
				t.Fatalf("empty user message")
			}
		})
	}
}

func TestValidateAcceptsValidDrafts(t *testing.T) {
	c := New(true, nil)

	mcq := validDraft()
	if err := c.Validate(&mcq); err != nil {
		t.Fatalf("MCQ: %v", err)
	}

	msq := validDraft()
	msq.Type = model.QuestionTypeMSQ
	msq.Options[1].IsCorrect = true
	if err := c.Validate(&msq); err != nil {
		t.Fatalf("MSQ: %v", err)
	}

	formulaOnly := validDraft()
	formulaOnly.Text = `<p><span class="ql-formula" data-value="x^2">x^2</span></p>`
	if err := c.Validate(&formulaOnly); err != nil {
		t.Fatalf("formula-only text: %v", err)
	}
}

func TestNATClearsOptions(t *testing.T) {
	c := New(false, nil)
	d := validDraft()
	d.Type = model.QuestionTypeNAT
	d.Options = []model.Option{{Text: ""}}
	d.MinValue, d.MaxValue = 1.5, 2.5

	q, err := c.Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(q.Options) != 0 {
		t.Fatalf("NAT question kept options: %+v", q.Options)
	}
	if q.MinValue != 1.5 || q.MaxValue != 2.5 {
		t.Fatalf("range = [%v, %v]", q.MinValue, q.MaxValue)
	}
}

func TestTaxonomyOptionalWithoutSync(t *testing.T) {
	d := validDraft()
	d.DomainID, d.SubjectID = "", ""
	if err := New(false, nil).Validate(&d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildCopiesDraft(t *testing.T) {
	c := New(true, NewIDGenerator(func() time.Time { return time.UnixMilli(1700000000123) }))
	d := validDraft()
	q, err := c.Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.ID != "1700000000123" {
		t.Fatalf("id = %q", q.ID)
	}
	if q.SubjectID != "s1" || q.Type != model.QuestionTypeMCQ || q.CorrectCount() != 1 {
		t.Fatalf("unexpected question %+v", q)
	}
	d.Options[0].Text = "changed"
	if q.Options[0].Text != "<p>4</p>" {
		t.Fatalf("question shares option storage with the draft")
	}
}

func TestIDGeneratorStrictlyIncreases(t *testing.T) {
	fixed := time.UnixMilli(1000)
	g := NewIDGenerator(func() time.Time { return fixed })
	prev := int64(0)
	for i := 0; i < 5; i++ {
		id, err := strconv.ParseInt(g.Next(), 10, 64)
		if err != nil {
			t.Fatalf("id is not numeric: %v", err)
		}
		if id <= prev {
			t.Fatalf("id %d not greater than %d", id, prev)
		}
		prev = id
	}
	if prev != 1004 {
		t.Fatalf("last id = %d, want 1004", prev)
	}
}

func TestIDGeneratorContinuesAfterObservedIDs(t *testing.T) {
	g := NewIDGenerator(func() time.Time { return time.UnixMilli(1000) })
	for _, id := range []string{"4000", "5000", "legacy-id", ""} {
		g.Observe(id)
	}
	g.Observe("3000")
	if got := g.Next(); got != "5001" {
		t.Fatalf("first id after restart = %s, want 5001", got)
	}
	if got := g.Next(); got != "5002" {
		t.Fatalf("second id = %s, want 5002", got)
	}
}

func TestNewDraftIsBlank(t *testing.T) {
	d := NewDraft()
	err := New(false, nil).Validate(&d)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != FieldText {
		t.Fatalf("blank draft should fail on text, got %v", err)
	}
	if len(d.Options) != MinOptions {
		t.Fatalf("blank draft has %d options", len(d.Options))
	}
}
