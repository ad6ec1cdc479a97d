package services

import (
	"errors"
	"invest/models"

	"gorm.io/gorm"
)

// PackageInput carries the editable fields of an investment package.
// Presence and positivity are checked by the validator layer; min/max are
// deliberately not cross-checked against each other.
type PackageInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MinAmount   float64 `json:"min_amount"`
	MaxAmount   float64 `json:"max_amount"`
	ReturnRate  float64 `json:"return_rate"`
	PeriodDays  int     `json:"period_days"`
	Status      string  `json:"status"`
}

// CreatePackage inserts a new investment package
func CreatePackage(db *gorm.DB, in PackageInput) (*models.InvestmentPackage, error) {
	pkg := models.InvestmentPackage{
		Name:        in.Name,
		Description: in.Description,
		MinAmount:   in.MinAmount,
		MaxAmount:   in.MaxAmount,
		ReturnRate:  in.ReturnRate,
		PeriodDays:  in.PeriodDays,
		Status:      models.PackageStatusActive,
	}
	if in.Status != "" {
		pkg.Status = in.Status
	}
	if err := db.Create(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// UpdatePackage overwrites the editable fields of an existing package
func UpdatePackage(db *gorm.DB, id uint, in PackageInput) (*models.InvestmentPackage, error) {
	var pkg models.InvestmentPackage
	if err := db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageInactive
		}
		return nil, err
	}

	pkg.Name = in.Name
	pkg.Description = in.Description
	pkg.MinAmount = in.MinAmount
	pkg.MaxAmount = in.MaxAmount
	pkg.ReturnRate = in.ReturnRate
	pkg.PeriodDays = in.PeriodDays
	if in.Status != "" {
		pkg.Status = in.Status
	}

	if err := db.Save(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// DeletePackage removes a package unless an active investment still
// references it
func DeletePackage(db *gorm.DB, id uint) error {
	var pkg models.InvestmentPackage
	if err := db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPackageInactive
		}
		return err
	}

	var active int64
	if err := db.Model(&models.Investment{}).
		Where("package_id = ? AND status = ?", id, models.InvestmentStatusActive).
		Count(&active).Error; err != nil {
		return err
	}
	if active > 0 {
		return ErrPackageInUse
	}

	return db.Delete(&pkg).Error
}
