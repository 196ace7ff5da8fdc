package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/QuizDraft/internal/composer"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/mathml"
	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/lshigami/QuizDraft/internal/render"
	"github.com/lshigami/QuizDraft/internal/store"
)

type recordingSyncer struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingSyncer) Submit(domainID string, q model.Question) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, domainID+"/"+q.ID)
}

type failingSlot struct{}

func (failingSlot) Load(context.Context) ([]byte, error) { return nil, store.ErrSlotEmpty }
func (failingSlot) Save(context.Context, []byte) error   { return errors.New("quota exceeded") }

type stubCatalog struct {
	domains  []model.Domain
	subjects []model.Subject
	err      error
}

func (s stubCatalog) ListDomains(context.Context) ([]model.Domain, error) { return s.domains, s.err }
func (s stubCatalog) ListSubjects(context.Context, string) ([]model.Subject, error) {
	return s.subjects, s.err
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.NewRenderer(mathml.NewTypesetter(), 16)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func composeRequest() dto.ComposeQuestionRequest {
	return dto.ComposeQuestionRequest{
		Text: `<p>Simplify <span class="ql-formula" data-value="x^2 \cdot x">x^2 \cdot x</span></p>`,
		Type: "MCQ",
		Options: []dto.OptionDTO{
			{Text: `<p><span class="ql-formula" data-value="x^3">x^3</span></p>`, IsCorrect: true},
			{Text: "<p>x</p>"},
		},
		Explanation: "<p>Add the exponents.</p>",
		DomainID:    "d1",
		SubjectID:   "s1",
	}
}

func TestComposeAppendsAndSyncs(t *testing.T) {
	ctx := context.Background()
	qs := store.NewQuestionStore(ctx, store.NewMemorySlot(nil))
	syncer := &recordingSyncer{}
	svc := NewComposerService(composer.New(true, nil), qs, syncer)

	resp, err := svc.Compose(ctx, composeRequest())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if qs.Len() != 1 || resp.Index != 0 {
		t.Fatalf("store len %d, index %d", qs.Len(), resp.Index)
	}
	if resp.Question.ID == "" || resp.Question.Type != "MCQ" || len(resp.Question.Options) != 2 || !resp.Question.Options[0].IsCorrect {
		t.Fatalf("unexpected question %+v", resp.Question)
	}
	if resp.NextDraft.Text != "<p><br></p>" || len(resp.NextDraft.Options) != 2 {
		t.Fatalf("next draft not blank: %+v", resp.NextDraft)
	}
	if !resp.Synced || len(syncer.calls) != 1 || syncer.calls[0] != "d1/"+resp.Question.ID {
		t.Fatalf("sync calls = %v", syncer.calls)
	}
}

func TestComposeRejectsInvalidDraftWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	qs := store.NewQuestionStore(ctx, store.NewMemorySlot(nil))
	syncer := &recordingSyncer{}
	svc := NewComposerService(composer.New(true, nil), qs, syncer)

	req := composeRequest()
	req.Options[0].IsCorrect = false
	_, err := svc.Compose(ctx, req)
	var verr *composer.ValidationError
	if !errors.As(err, &verr) || verr.Field != composer.FieldCorrect {
		t.Fatalf("expected correct-answer validation error, got %v", err)
	}

	req = composeRequest()
	req.Text = "<p><br></p>"
	if _, err := svc.Compose(ctx, req); !errors.As(err, &verr) || verr.Field != composer.FieldText {
		t.Fatalf("expected text validation error, got %v", err)
	}

	if qs.Len() != 0 || len(syncer.calls) != 0 {
		t.Fatalf("rejected drafts changed state: len=%d sync=%v", qs.Len(), syncer.calls)
	}
}

func TestComposeAfterRestartNeverReusesIDs(t *testing.T) {
	ctx := context.Background()
	slot := store.NewMemorySlot([]byte(`[{"id":"1700000005000","text":"<p>old</p>","type":"NAT","options":[],"explanation":"<p>e</p>"}]`))
	qs := store.NewQuestionStore(ctx, slot)

	clockBehind := func() time.Time { return time.UnixMilli(1700000000000) }
	svc := NewComposerService(composer.New(false, SeededIDGenerator(qs, clockBehind)), qs, nil)

	req := composeRequest()
	req.DomainID, req.SubjectID = "", ""
	resp, err := svc.Compose(ctx, req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if resp.Question.ID != "1700000005001" {
		t.Fatalf("id = %s, want one past the stored id", resp.Question.ID)
	}
}

func TestComposeWithoutSyncer(t *testing.T) {
	ctx := context.Background()
	qs := store.NewQuestionStore(ctx, store.NewMemorySlot(nil))
	svc := NewComposerService(composer.New(false, nil), qs, nil)

	req := composeRequest()
	req.DomainID, req.SubjectID = "", ""
	resp, err := svc.Compose(ctx, req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if resp.Synced {
		t.Fatalf("reported sync without a syncer")
	}
}

func TestComposeSurfacesStoreFailure(t *testing.T) {
	ctx := context.Background()
	qs := store.NewQuestionStore(ctx, failingSlot{})
	syncer := &recordingSyncer{}
	svc := NewComposerService(composer.New(true, nil), qs, syncer)

	if _, err := svc.Compose(ctx, composeRequest()); err == nil {
		t.Fatalf("expected store error")
	}
	if len(syncer.calls) != 0 {
		t.Fatalf("question synced although it was not saved")
	}
}

func TestQuestionServiceRenderedAndDelete(t *testing.T) {
	ctx := context.Background()
	qs := store.NewQuestionStore(ctx, store.NewMemorySlot(nil))
	composeSvc := NewComposerService(composer.New(false, nil), qs, nil)
	for i := 0; i < 3; i++ {
		if _, err := composeSvc.Compose(ctx, composeRequest()); err != nil {
			t.Fatalf("Compose: %v", err)
		}
	}
	svc := NewQuestionService(qs, newRenderer(t))

	rendered, err := svc.GetRenderedQuestions()
	if err != nil {
		t.Fatalf("GetRenderedQuestions: %v", err)
	}
	if len(rendered) != 3 || rendered[2].Index != 2 {
		t.Fatalf("rendered %d questions", len(rendered))
	}
	if !strings.Contains(rendered[0].Text, "<math") || strings.Contains(rendered[0].Text, "formula-error") {
		t.Fatalf("question text not typeset: %q", rendered[0].Text)
	}
	if !strings.Contains(rendered[0].Options[0].HTML, "<msup") || !rendered[0].Options[0].IsCorrect {
		t.Fatalf("option not typeset: %+v", rendered[0].Options[0])
	}

	all, err := svc.GetAllQuestions()
	if err != nil {
		t.Fatalf("GetAllQuestions: %v", err)
	}
	middle := all[1].ID

	deleted, err := svc.DeleteQuestion(ctx, 1)
	if err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if deleted.ID != middle {
		t.Fatalf("deleted %s, want %s", deleted.ID, middle)
	}
	after, _ := svc.GetAllQuestions()
	if len(after) != 2 || after[0].ID != all[0].ID || after[1].ID != all[2].ID {
		t.Fatalf("order not preserved after delete: %+v", after)
	}

	if _, err := svc.DeleteQuestion(ctx, 5); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestGetAllQuestionsEmptyIsNotNil(t *testing.T) {
	qs := store.NewQuestionStore(context.Background(), store.NewMemorySlot(nil))
	all, err := NewQuestionService(qs, newRenderer(t)).GetAllQuestions()
	if err != nil || all == nil || len(all) != 0 {
		t.Fatalf("GetAllQuestions = %v, %v", all, err)
	}
}

func TestEditorService(t *testing.T) {
	svc := NewEditorService(newRenderer(t))

	idx := 2
	out, err := svc.InsertFormula(dto.EditorInsertRequest{Payload: "<p>abcd</p>", Index: &idx, Value: "x^2"})
	if err != nil {
		t.Fatalf("InsertFormula: %v", err)
	}
	if !strings.HasPrefix(out.Payload, `<p>ab<span class="ql-formula"`) {
		t.Fatalf("payload = %q", out.Payload)
	}

	if _, err := svc.InsertImage(dto.EditorInsertRequest{Payload: "<p>a</p>", Index: &idx, Value: "not a url"}); err == nil {
		t.Fatalf("expected invalid url error")
	}

	preview := svc.PreviewFormula(`\frac{1}{`)
	if preview.Error == "" || !strings.Contains(preview.HTML, "Invalid formula") {
		t.Fatalf("preview = %+v", preview)
	}

	rendered, err := svc.Render(out.Payload)
	if err != nil || !strings.Contains(rendered.HTML, "<msup") {
		t.Fatalf("Render = %+v, %v", rendered, err)
	}
}

func TestCatalogServiceSwallowsFailures(t *testing.T) {
	ctx := context.Background()

	failing := NewCatalogService(stubCatalog{err: errors.New("connection refused")})
	if got := failing.ListDomains(ctx); got == nil || len(got) != 0 {
		t.Fatalf("ListDomains on failure = %v", got)
	}
	if got := failing.ListSubjects(ctx, "d1"); got == nil || len(got) != 0 {
		t.Fatalf("ListSubjects on failure = %v", got)
	}

	ok := NewCatalogService(stubCatalog{
		domains:  []model.Domain{{ID: "d1", Name: "Math"}},
		subjects: []model.Subject{{ID: "s1", DomainID: "d1", Name: "Algebra"}},
	})
	domains := ok.ListDomains(ctx)
	if len(domains) != 1 || domains[0].Name != "Math" {
		t.Fatalf("domains = %+v", domains)
	}
	subjects := ok.ListSubjects(ctx, "d1")
	if len(subjects) != 1 || subjects[0].DomainID != "d1" {
		t.Fatalf("subjects = %+v", subjects)
	}
}
