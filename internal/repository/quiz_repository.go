package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizdesk/internal/dto"
	"quizdesk/internal/model"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uuid.UUID) (*model.Quiz, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error)
	FindPublishedByIDWithQuestions(id uuid.UUID) (*model.Quiz, error)
	FindPublished(filter dto.QuizListFilter) ([]QuizWithQuestionCount, error)
	FindAllWithCounts() ([]QuizWithCounts, error)
	Update(quiz *model.Quiz) error
	ReplaceQuestions(quizID uuid.UUID, questions []model.Question) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// QuizWithQuestionCount backs the public listing.
type QuizWithQuestionCount struct {
	model.Quiz
	QuestionCount int
}

// QuizWithCounts backs the admin listing.
type QuizWithCounts struct {
	model.Quiz
	QuestionCount int
	AttemptCount  int
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates associated questions in the same transaction when
	// quiz.Questions is populated.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.question_order ASC")
	}).First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindPublishedByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.question_order ASC")
	}).First(&quiz, "id = ? AND status = ?", id, model.QuizStatusPublished).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindPublished(filter dto.QuizListFilter) ([]QuizWithQuestionCount, error) {
	var results []QuizWithQuestionCount
	query := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.status = ?", model.QuizStatusPublished)
	if filter.ClassLevel != "" {
		query = query.Where("quizzes.class_level = ?", filter.ClassLevel)
	}
	if filter.TestType != "" {
		query = query.Where("quizzes.test_type = ?", filter.TestType)
	}
	if filter.Subject != "" {
		query = query.Where("quizzes.subject = ?", filter.Subject)
	}
	err := query.Order("quizzes.created_at DESC").Scan(&results).Error
	return results, err
}

func (r *quizRepository) FindAllWithCounts() ([]QuizWithCounts, error) {
	var results []QuizWithCounts
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, " +
			"(SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count, " +
			"(SELECT COUNT(*) FROM attempts WHERE attempts.quiz_id = quizzes.id) as attempt_count").
		Order("quizzes.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

// ReplaceQuestions swaps the whole question set for a quiz in one transaction.
func (r *quizRepository) ReplaceQuestions(quizID uuid.UUID, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

// Delete removes the quiz with its questions, attempts and answers in one
// transaction. Orphaned attempts would keep counting in the dashboard stats.
func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		attemptIDs := tx.Model(&model.Attempt{}).Select("id").Where("quiz_id = ?", id)
		if err := tx.Where("attempt_id IN (?)", attemptIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Attempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, "id = ?", id).Error
	})
}

func (r *quizRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Count(&count).Error
	return count, err
}
