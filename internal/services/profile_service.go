package services

import (
	"time"

	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
)

type ProfileUpdate struct {
	Name        string
	Surname     string
	Patronymic  string
	DateOfBirth *time.Time
	Phone       string
	Sex         string
}

type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetOrCreate returns the user's profile, creating an empty one on first
// access.
func (s *ProfileService) GetOrCreate(userID uint) (*models.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &models.UserProfile{UserID: userID}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(userID uint, upd ProfileUpdate) (*models.UserProfile, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	profile.Name = upd.Name
	profile.Surname = upd.Surname
	profile.Patronymic = upd.Patronymic
	profile.DateOfBirth = upd.DateOfBirth
	profile.Phone = upd.Phone
	profile.Sex = upd.Sex

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
