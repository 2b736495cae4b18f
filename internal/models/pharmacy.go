package models

import "time"

// Pharmacy is a dispensing location. It owns its tasks.
type Pharmacy struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	Email         string    `gorm:"type:varchar(254)" json:"email"`
	LicenseNumber string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"license_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:PharmacyID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// PharmacyPluralLabel is the heading used for pharmacy listings.
const PharmacyPluralLabel = "Pharmacies"

func (p Pharmacy) String() string {
	return p.Name
}
