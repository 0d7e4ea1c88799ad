package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizdesk/internal/model"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByIDWithAnswers(id uuid.UUID) (*model.Attempt, error)
	FindAllByQuizRanked(quizID uuid.UUID) ([]model.Attempt, error)
	FindAllByStudent(studentProfileID uuid.UUID) ([]model.Attempt, error)
	Count() (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

// Create writes the attempt row and its associated answers in one
// transaction. The leaderboard can never see an attempt without its answers.
func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByIDWithAnswers(id uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Quiz").
		Preload("Answers.Question", func(db *gorm.DB) *gorm.DB {
			// Replacing a quiz's questions soft-deletes the old rows; past
			// attempts must still render them.
			return db.Unscoped()
		}).
		First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// FindAllByQuizRanked returns every attempt for a quiz in leaderboard order:
// score descending, faster time wins ties, attempts with no recorded time
// sort last within their score.
func (r *attemptRepository) FindAllByQuizRanked(quizID uuid.UUID) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("quiz_id = ?", quizID).
		Order("score DESC, time_taken_seconds ASC NULLS LAST, submitted_at ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByStudent(studentProfileID uuid.UUID) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Preload("Quiz").
		Where("student_profile_id = ?", studentProfileID).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).Count(&count).Error
	return count, err
}
