package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lshigami/QuizDraft/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&model.Domain{}, &model.Subject{}, &model.QuestionRecord{}, &model.StorageSlot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDomainRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDomainRepository(openTestDB(t))

	for _, name := range []string{"Physics", "Algebra"} {
		if err := repo.Create(ctx, &model.Domain{ID: uuid.NewString(), Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Algebra" || all[1].Name != "Physics" {
		t.Fatalf("FindAll = %+v, want Algebra then Physics", all)
	}

	got, err := repo.FindByName(ctx, "Physics")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	byID, err := repo.FindByID(ctx, got.ID)
	if err != nil || byID.Name != "Physics" {
		t.Fatalf("FindByID = %+v, %v", byID, err)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Create(ctx, &model.Domain{ID: uuid.NewString(), Name: "Physics"}); err == nil {
		t.Fatalf("expected unique violation for duplicate name")
	}
}

func TestSubjectRepositoryScopesByDomain(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	domains := NewDomainRepository(db)
	subjects := NewSubjectRepository(db)

	math := model.Domain{ID: uuid.NewString(), Name: "Math"}
	chem := model.Domain{ID: uuid.NewString(), Name: "Chemistry"}
	for _, d := range []*model.Domain{&math, &chem} {
		if err := domains.Create(ctx, d); err != nil {
			t.Fatalf("create domain: %v", err)
		}
	}
	for _, s := range []model.Subject{
		{ID: uuid.NewString(), DomainID: math.ID, Name: "Calculus"},
		{ID: uuid.NewString(), DomainID: math.ID, Name: "Algebra"},
		{ID: uuid.NewString(), DomainID: chem.ID, Name: "Organic"},
	} {
		s := s
		if err := subjects.Create(ctx, &s); err != nil {
			t.Fatalf("create subject: %v", err)
		}
	}

	got, err := subjects.FindByDomainID(ctx, math.ID)
	if err != nil {
		t.Fatalf("FindByDomainID: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Algebra" {
		t.Fatalf("FindByDomainID = %+v", got)
	}

	if _, err := subjects.FindByDomainAndName(ctx, chem.ID, "Calculus"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("subject of another domain should not match, got %v", err)
	}
	organic, err := subjects.FindByDomainAndName(ctx, chem.ID, "Organic")
	if err != nil {
		t.Fatalf("FindByDomainAndName: %v", err)
	}
	if _, err := subjects.FindByID(ctx, organic.ID); err != nil {
		t.Fatalf("FindByID: %v", err)
	}
}

func TestQuestionRecordRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRecordRepository(openTestDB(t))

	rec := &model.QuestionRecord{
		ID:        uuid.NewString(),
		ClientID:  "1700000000000",
		DomainID:  "d1",
		SubjectID: "s1",
		Type:      string(model.QuestionTypeMCQ),
		Text:      "<p>2+2?</p>",
		Options:   datatypes.JSON(`[{"text":"4","isCorrect":true},{"text":"5"}]`),
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ClientID != rec.ClientID || string(got.Options) != string(rec.Options) {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	byDomain, err := repo.FindByDomainID(ctx, "d1")
	if err != nil || len(byDomain) != 1 {
		t.Fatalf("FindByDomainID = %v, %v", byDomain, err)
	}
	bySubject, err := repo.FindBySubjectID(ctx, "other")
	if err != nil || len(bySubject) != 0 {
		t.Fatalf("FindBySubjectID = %v, %v", bySubject, err)
	}
}

func TestSlotRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(openTestDB(t))

	if _, err := repo.Get(ctx, "questions"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty slot, got %v", err)
	}
	if err := repo.Put(ctx, "questions", "[]"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, "questions", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	slot, err := repo.Get(ctx, "questions")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if slot.Value != `[{"id":"1"}]` {
		t.Fatalf("slot value = %q", slot.Value)
	}
}
