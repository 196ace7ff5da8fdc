package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/lshigami/QuizDraft/internal/repository"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// CatalogSeed is the YAML layout of the bank's taxonomy file:
//
//	domains:
//	  - name: Mathematics
//	    subjects: [Algebra, Calculus]
type CatalogSeed struct {
	Domains []SeedDomain `yaml:"domains"`
}

type SeedDomain struct {
	Name     string   `yaml:"name"`
	Subjects []string `yaml:"subjects"`
}

// ParseCatalogSeed decodes a seed document, rejecting unknown fields.
func ParseCatalogSeed(data []byte) (*CatalogSeed, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var seed CatalogSeed
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	for i, d := range seed.Domains {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("catalog seed: domain %d has no name", i+1)
		}
	}
	return &seed, nil
}

type CatalogSeeder struct {
	domainRepo  repository.DomainRepository
	subjectRepo repository.SubjectRepository
}

func NewCatalogSeeder(domainRepo repository.DomainRepository, subjectRepo repository.SubjectRepository) *CatalogSeeder {
	return &CatalogSeeder{domainRepo: domainRepo, subjectRepo: subjectRepo}
}

// SeedFile applies the seed at path. An empty path is a no-op.
func (s *CatalogSeeder) SeedFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog seed: %w", err)
	}
	seed, err := ParseCatalogSeed(data)
	if err != nil {
		return err
	}
	return s.Seed(ctx, seed)
}

// Seed creates the domains and subjects that do not exist yet, matching by
// name, so running it twice changes nothing.
func (s *CatalogSeeder) Seed(ctx context.Context, seed *CatalogSeed) error {
	created := 0
	for _, d := range seed.Domains {
		name := strings.TrimSpace(d.Name)
		domain, err := s.domainRepo.FindByName(ctx, name)
		if errors.Is(err, repository.ErrNotFound) {
			domain = &model.Domain{ID: uuid.NewString(), Name: name}
			if err := s.domainRepo.Create(ctx, domain); err != nil {
				return fmt.Errorf("create domain %q: %w", name, err)
			}
			created++
		} else if err != nil {
			return fmt.Errorf("find domain %q: %w", name, err)
		}

		for _, subjectName := range d.Subjects {
			subjectName = strings.TrimSpace(subjectName)
			if subjectName == "" {
				continue
			}
			_, err := s.subjectRepo.FindByDomainAndName(ctx, domain.ID, subjectName)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("find subject %q: %w", subjectName, err)
			}
			subject := &model.Subject{ID: uuid.NewString(), DomainID: domain.ID, Name: subjectName}
			if err := s.subjectRepo.Create(ctx, subject); err != nil {
				return fmt.Errorf("create subject %q: %w", subjectName, err)
			}
			created++
		}
	}
	log.Info().Int("domains", len(seed.Domains)).Int("created", created).Msg("Catalog seeded")
	return nil
}
