package service

import (
	"context"
	"fmt"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository"
	"go.uber.org/zap"
)

// CatalogService manages the reference data: terms, languages and
// specializations.
type CatalogService struct {
	termRepo    *repository.TermRepository
	catalogRepo *repository.CatalogRepository
	logger      *zap.Logger
}

func NewCatalogService(
	termRepo *repository.TermRepository,
	catalogRepo *repository.CatalogRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		termRepo:    termRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreateTerm validates and stores an academic term.
func (s *CatalogService) CreateTerm(ctx context.Context, term *model.Term) error {
	if err := term.Validate(); err != nil {
		return err
	}

	if err := s.termRepo.Create(ctx, term); err != nil {
		return err
	}

	s.logger.Info("Term created",
		zap.Int64("term_id", term.ID),
		zap.String("name", string(term.Name)),
	)

	return nil
}

// GetTerm fetches a term.
func (s *CatalogService) GetTerm(ctx context.Context, id int64) (*model.Term, error) {
	return s.termRepo.GetByID(ctx, id)
}

// ListTerms returns all terms ordered by start date.
func (s *CatalogService) ListTerms(ctx context.Context) ([]*model.Term, error) {
	return s.termRepo.List(ctx)
}

// CreateLanguage stores a language.
func (s *CatalogService) CreateLanguage(ctx context.Context, name string) (*model.Language, error) {
	if name == "" {
		return nil, fmt.Errorf("language name is required")
	}

	language := &model.Language{Name: name}
	if err := s.catalogRepo.CreateLanguage(ctx, language); err != nil {
		return nil, err
	}

	return language, nil
}

// ListLanguages returns all languages.
func (s *CatalogService) ListLanguages(ctx context.Context) ([]*model.Language, error) {
	return s.catalogRepo.ListLanguages(ctx)
}

// CreateSpecialization stores a specialization linked to languages.
func (s *CatalogService) CreateSpecialization(ctx context.Context, name string, languageIDs []int64) (*model.Specialization, error) {
	if name == "" {
		return nil, fmt.Errorf("specialization name is required")
	}

	spec := &model.Specialization{Name: name}
	for _, id := range languageIDs {
		language, err := s.catalogRepo.GetLanguageByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get language: %w", err)
		}
		if language == nil {
			return nil, fmt.Errorf("language %d not found", id)
		}
		spec.Languages = append(spec.Languages, *language)
	}

	if err := s.catalogRepo.CreateSpecialization(ctx, spec); err != nil {
		return nil, err
	}

	return spec, nil
}

// ListSpecializations returns all specializations with their languages.
func (s *CatalogService) ListSpecializations(ctx context.Context) ([]*model.Specialization, error) {
	return s.catalogRepo.ListSpecializations(ctx)
}
