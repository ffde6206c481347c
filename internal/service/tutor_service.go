package service

import (
	"context"
	"fmt"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository"
	"go.uber.org/zap"
)

type TutorService struct {
	tutorRepo        *repository.TutorRepository
	userRepo         *repository.UserRepository
	catalogRepo      *repository.CatalogRepository
	availabilityRepo *repository.AvailabilityRepository
	applicationRepo  *repository.ApplicationRepository
	logger           *zap.Logger
}

func NewTutorService(
	tutorRepo *repository.TutorRepository,
	userRepo *repository.UserRepository,
	catalogRepo *repository.CatalogRepository,
	availabilityRepo *repository.AvailabilityRepository,
	applicationRepo *repository.ApplicationRepository,
	logger *zap.Logger,
) *TutorService {
	return &TutorService{
		tutorRepo:        tutorRepo,
		userRepo:         userRepo,
		catalogRepo:      catalogRepo,
		availabilityRepo: availabilityRepo,
		applicationRepo:  applicationRepo,
		logger:           logger,
	}
}

// UpdateProfile replaces the tutor's taught languages and specializations.
// At least one language is required, matching the profile form rules.
func (s *TutorService) UpdateProfile(ctx context.Context, tutorID int64, languageIDs, specializationIDs []int64) (*model.Tutor, error) {
	tutor, err := s.tutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor: %w", err)
	}
	if tutor == nil {
		return nil, fmt.Errorf("tutor not found")
	}

	if len(languageIDs) == 0 {
		return nil, fmt.Errorf("at least one language is required")
	}

	for _, id := range languageIDs {
		language, err := s.catalogRepo.GetLanguageByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get language: %w", err)
		}
		if language == nil {
			return nil, fmt.Errorf("language %d not found", id)
		}
	}

	for _, id := range specializationIDs {
		spec, err := s.catalogRepo.GetSpecializationByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get specialization: %w", err)
		}
		if spec == nil {
			return nil, fmt.Errorf("specialization %d not found", id)
		}
	}

	if err := s.tutorRepo.SetLanguages(ctx, tutorID, languageIDs); err != nil {
		return nil, fmt.Errorf("set languages: %w", err)
	}
	if err := s.tutorRepo.SetSpecializations(ctx, tutorID, specializationIDs); err != nil {
		return nil, fmt.Errorf("set specializations: %w", err)
	}

	s.logger.Info("Tutor profile updated",
		zap.Int64("tutor_id", tutorID),
		zap.Int("languages", len(languageIDs)),
		zap.Int("specializations", len(specializationIDs)),
	)

	return s.tutorRepo.GetByID(ctx, tutorID)
}

// DeclareAvailability validates and stores an availability window.
func (s *TutorService) DeclareAvailability(ctx context.Context, availability *model.TutorAvailability) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	tutor, err := s.tutorRepo.GetByID(ctx, availability.TutorID)
	if err != nil {
		return fmt.Errorf("get tutor: %w", err)
	}
	if tutor == nil {
		return fmt.Errorf("tutor not found")
	}

	if err := s.availabilityRepo.Create(ctx, availability); err != nil {
		return fmt.Errorf("create availability: %w", err)
	}

	s.logger.Info("Availability declared",
		zap.Int64("tutor_id", availability.TutorID),
		zap.Int64("term_id", availability.TermID),
		zap.String("start", availability.StartTime.String()),
		zap.String("end", availability.EndTime.String()),
	)

	return nil
}

// GetAvailability returns the tutor's windows for a term.
func (s *TutorService) GetAvailability(ctx context.Context, tutorID, termID int64) ([]*model.TutorAvailability, error) {
	return s.availabilityRepo.GetByTutorAndTerm(ctx, tutorID, termID)
}

// RemoveAvailability deletes one of the tutor's windows.
func (s *TutorService) RemoveAvailability(ctx context.Context, availabilityID, tutorID int64) error {
	return s.availabilityRepo.Delete(ctx, availabilityID, tutorID)
}

// GetByID fetches a tutor profile.
func (s *TutorService) GetByID(ctx context.Context, tutorID int64) (*model.Tutor, error) {
	return s.tutorRepo.GetByID(ctx, tutorID)
}

// GetByUserID fetches the tutor profile of a user.
func (s *TutorService) GetByUserID(ctx context.Context, userID int64) (*model.Tutor, error) {
	return s.tutorRepo.GetByUserID(ctx, userID)
}

// List returns all tutor profiles.
func (s *TutorService) List(ctx context.Context) ([]*model.Tutor, error) {
	return s.tutorRepo.List(ctx)
}

// Apply files a tutor application for a user. One application per user.
func (s *TutorService) Apply(ctx context.Context, userID int64, message string) (*model.TutorApplication, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.IsTutor() {
		return nil, fmt.Errorf("user is already a tutor")
	}

	existing, err := s.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("application already exists")
	}

	application := &model.TutorApplication{
		UserID:  userID,
		Status:  model.ApplicationStatusPending,
		Message: message,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info("Tutor application filed",
		zap.Int64("application_id", application.ID),
		zap.Int64("user_id", userID),
	)

	return application, nil
}

// ReviewApplication records an admin verdict. Approval promotes the user to
// a tutor account and creates an empty teaching profile.
func (s *TutorService) ReviewApplication(ctx context.Context, applicationID int64, approve bool) (*model.TutorApplication, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if application == nil {
		return nil, fmt.Errorf("application not found")
	}
	if !application.IsPending() {
		return nil, fmt.Errorf("application already reviewed")
	}

	status := model.ApplicationStatusRejected
	if approve {
		status = model.ApplicationStatusApproved
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	application.Status = status

	if approve {
		if err := s.userRepo.UpdateAccountType(ctx, application.UserID, model.AccountTypeTutor); err != nil {
			return nil, fmt.Errorf("promote user: %w", err)
		}

		tutor := &model.Tutor{UserID: application.UserID}
		if err := s.tutorRepo.Create(ctx, tutor); err != nil {
			return nil, fmt.Errorf("create tutor profile: %w", err)
		}
	}

	s.logger.Info("Tutor application reviewed",
		zap.Int64("application_id", applicationID),
		zap.String("status", string(status)),
	)

	return application, nil
}

// PendingApplications returns applications awaiting review.
func (s *TutorService) PendingApplications(ctx context.Context) ([]*model.TutorApplication, error) {
	return s.applicationRepo.ListPending(ctx)
}
