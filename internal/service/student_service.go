package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizdesk/internal/dto"
	"quizdesk/internal/model"
	"quizdesk/internal/repository"
)

// StudentService handles the phone-number identity layer: registration,
// login and attempt history.
type StudentService interface {
	Register(req dto.StudentRegisterDTO) (*dto.StudentProfileDTO, error)
	Login(req dto.StudentLoginDTO) (*dto.StudentProfileDTO, error)
	GetAttemptHistory(studentProfileID uuid.UUID) ([]dto.AttemptSummaryDTO, error)
}

type studentService struct {
	studentRepo repository.StudentProfileRepository
	attemptRepo repository.AttemptRepository
}

func NewStudentService(studentRepo repository.StudentProfileRepository, attemptRepo repository.AttemptRepository) StudentService {
	return &studentService{studentRepo: studentRepo, attemptRepo: attemptRepo}
}

func (s *studentService) Register(req dto.StudentRegisterDTO) (*dto.StudentProfileDTO, error) {
	if _, err := s.studentRepo.FindByPhone(req.PhoneNumber); err == nil {
		return nil, ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking phone number: %w", err)
	}

	profile := model.StudentProfile{
		PhoneNumber: req.PhoneNumber,
		FullName:    req.FullName,
		Address:     req.Address,
	}
	if err := s.studentRepo.Create(&profile); err != nil {
		log.Error().Err(err).Msg("Student Register: failed to persist profile")
		return nil, fmt.Errorf("creating student profile: %w", err)
	}
	log.Info().Str("student_id", profile.ID.String()).Msg("Student registered")

	var resp dto.StudentProfileDTO
	if err := copier.Copy(&resp, &profile); err != nil {
		return nil, fmt.Errorf("preparing profile response: %w", err)
	}
	return &resp, nil
}

func (s *studentService) Login(req dto.StudentLoginDTO) (*dto.StudentProfileDTO, error) {
	profile, err := s.studentRepo.FindByPhone(req.PhoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("looking up phone number: %w", err)
	}

	var resp dto.StudentProfileDTO
	if err := copier.Copy(&resp, profile); err != nil {
		return nil, fmt.Errorf("preparing profile response: %w", err)
	}
	return &resp, nil
}

func (s *studentService) GetAttemptHistory(studentProfileID uuid.UUID) ([]dto.AttemptSummaryDTO, error) {
	if _, err := s.studentRepo.FindByID(studentProfileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("looking up student %s: %w", studentProfileID, err)
	}

	attempts, err := s.attemptRepo.FindAllByStudent(studentProfileID)
	if err != nil {
		return nil, fmt.Errorf("fetching attempt history: %w", err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &a); err != nil {
			log.Error().Err(err).Str("attempt_id", a.ID.String()).Msg("GetAttemptHistory: copy error")
			continue
		}
		summary.QuizTitle = a.Quiz.Title
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
