package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizdesk/internal/model"
)

type StudentProfileRepository interface {
	Create(profile *model.StudentProfile) error
	FindByID(id uuid.UUID) (*model.StudentProfile, error)
	FindByPhone(phoneNumber string) (*model.StudentProfile, error)
}

type studentProfileRepository struct {
	db *gorm.DB
}

func NewStudentProfileRepository(db *gorm.DB) StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

func (r *studentProfileRepository) Create(profile *model.StudentProfile) error {
	return r.db.Create(profile).Error
}

func (r *studentProfileRepository) FindByID(id uuid.UUID) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentProfileRepository) FindByPhone(phoneNumber string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	if err := r.db.First(&profile, "phone_number = ?", phoneNumber).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
