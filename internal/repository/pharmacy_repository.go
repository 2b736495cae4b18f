package repository

import (
	"context"

	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"gorm.io/gorm"
)

// GormPharmacyRepository is a GORM implementation of PharmacyRepository
type GormPharmacyRepository struct {
	db *gorm.DB
}

// NewPharmacyRepository creates a new PharmacyRepository
func NewPharmacyRepository(db *gorm.DB) PharmacyRepository {
	return &GormPharmacyRepository{db: db}
}

// Create creates a new pharmacy
func (r *GormPharmacyRepository) Create(ctx context.Context, pharmacy *models.Pharmacy) error {
	return r.db.WithContext(ctx).Create(pharmacy).Error
}

// FindByID finds a pharmacy by ID
func (r *GormPharmacyRepository) FindByID(ctx context.Context, id uint64) (*models.Pharmacy, error) {
	var pharmacy models.Pharmacy
	if err := r.db.WithContext(ctx).First(&pharmacy, id).Error; err != nil {
		return nil, err
	}
	return &pharmacy, nil
}

// FindByLicenseNumber finds a pharmacy by license number
func (r *GormPharmacyRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Pharmacy, error) {
	var pharmacy models.Pharmacy
	if err := r.db.WithContext(ctx).
		Where("license_number = ?", licenseNumber).
		First(&pharmacy).Error; err != nil {
		return nil, err
	}
	return &pharmacy, nil
}

// List lists every pharmacy ordered by primary key
func (r *GormPharmacyRepository) List(ctx context.Context) ([]models.Pharmacy, error) {
	pharmacies := []models.Pharmacy{}
	if err := r.db.WithContext(ctx).Order("pharmacies.id ASC").Find(&pharmacies).Error; err != nil {
		return nil, err
	}
	return pharmacies, nil
}

// Delete deletes a pharmacy and all related data in a transaction
func (r *GormPharmacyRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Pharmacy{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := deleteTasksWhere(tx, "pharmacy_id = ?", id); err != nil {
			return err
		}

		return tx.Delete(&models.Pharmacy{}, id).Error
	})
}
