package service

import (
	"context"
	"encoding/json"
	"fmt"

	"bookden/internal/domains/preference/model"
	userRepo "bookden/internal/domains/user/repository"
)

// ServiceInterface is the preference domain's business logic contract.
// Preferences live as a serialized blob on the user row, so the service
// works through the user repository rather than owning tables.
type ServiceInterface interface {
	Save(ctx context.Context, userID int64, prefs model.UserPreferences) error
	Get(ctx context.Context, userID int64) (*model.UserPreferences, error)
	Status(ctx context.Context, userID int64) (*model.StatusResult, error)
}

type preferenceService struct {
	users userRepo.UserRepository
}

func NewPreferenceService(users userRepo.UserRepository) ServiceInterface {
	return &preferenceService{users: users}
}

func (s *preferenceService) Save(ctx context.Context, userID int64, prefs model.UserPreferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}

	blob, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}

	return s.users.SavePreference(ctx, userID, string(blob))
}

func (s *preferenceService) Get(ctx context.Context, userID int64) (*model.UserPreferences, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Preference == nil || *user.Preference == "" {
		return nil, nil
	}

	var prefs model.UserPreferences
	if err := json.Unmarshal([]byte(*user.Preference), &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse stored preferences: %w", err)
	}
	return &prefs, nil
}

func (s *preferenceService) Status(ctx context.Context, userID int64) (*model.StatusResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.StatusResult{
		HasSetPreferences: user.Preference != nil && *user.Preference != "",
	}, nil
}
