package remote

import (
	"context"
	"sync"
	"time"

	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/rs/zerolog/log"
)

type QuestionCreator interface {
	CreateQuestion(ctx context.Context, domainID string, q model.Question) error
}

// Syncer forwards saved questions to the bank in the background. Failures
// are logged and dropped; there is no retry.
type Syncer struct {
	creator QuestionCreator
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewSyncer(creator QuestionCreator, timeout time.Duration) *Syncer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Syncer{creator: creator, timeout: timeout}
}

// Submit returns immediately; the create call runs in its own goroutine.
func (s *Syncer) Submit(domainID string, q model.Question) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.creator.CreateQuestion(ctx, domainID, q); err != nil {
			log.Warn().Err(err).Str("domain_id", domainID).Str("question_id", q.ID).Msg("Failed to sync question to bank")
			return
		}
		log.Info().Str("domain_id", domainID).Str("question_id", q.ID).Msg("Question synced to bank")
	}()
}

// Wait blocks until every submitted call has finished or ctx is done.
func (s *Syncer) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
