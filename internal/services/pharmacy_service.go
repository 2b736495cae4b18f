package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"github.com/yukikurage/pharmacy-tasks/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPharmacyNotFound   = errors.New("pharmacy not found")
	ErrLicenseNumberTaken = errors.New("license number already registered")
)

// PharmacyService provides pharmacy queries and administrative operations.
type PharmacyService struct {
	pharmacyRepo repository.PharmacyRepository
}

// NewPharmacyService creates a new PharmacyService.
func NewPharmacyService(pharmacyRepo repository.PharmacyRepository) *PharmacyService {
	return &PharmacyService{
		pharmacyRepo: pharmacyRepo,
	}
}

// CreatePharmacyInput represents parameters to register a pharmacy.
type CreatePharmacyInput struct {
	Name          string `validate:"required,max=200"`
	Address       string
	Phone         string `validate:"max=20"`
	Email         string `validate:"omitempty,email,max=254"`
	LicenseNumber string `validate:"required,max=100"`
}

// ListAll returns every pharmacy in storage order.
func (s *PharmacyService) ListAll(ctx context.Context) ([]models.Pharmacy, error) {
	pharmacies, err := s.pharmacyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pharmacies: %w", err)
	}
	return pharmacies, nil
}

// Create registers a pharmacy. License numbers are unique across pharmacies.
func (s *PharmacyService) Create(ctx context.Context, input CreatePharmacyInput) (*models.Pharmacy, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.pharmacyRepo.FindByLicenseNumber(ctx, input.LicenseNumber); err == nil {
		return nil, ErrLicenseNumberTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check license number: %w", err)
	}

	pharmacy := &models.Pharmacy{
		Name:          input.Name,
		Address:       input.Address,
		Phone:         input.Phone,
		Email:         input.Email,
		LicenseNumber: input.LicenseNumber,
	}

	if err := s.pharmacyRepo.Create(ctx, pharmacy); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLicenseNumberTaken
		}
		return nil, fmt.Errorf("failed to create pharmacy: %w", err)
	}

	return pharmacy, nil
}

// Delete removes a pharmacy with its tasks and their comments.
func (s *PharmacyService) Delete(ctx context.Context, pharmacyID uint64) error {
	if err := s.pharmacyRepo.Delete(ctx, pharmacyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPharmacyNotFound
		}
		return fmt.Errorf("failed to delete pharmacy: %w", err)
	}
	return nil
}
