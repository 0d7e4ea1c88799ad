package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizdesk/internal/dto"
	"quizdesk/internal/model"
	"quizdesk/internal/repository"
)

// NotificationService serves site-wide announcements and per-student read
// tracking, plus the admin management surface.
type NotificationService interface {
	ListActive(studentProfileID *uuid.UUID) ([]dto.NotificationDTO, error)
	MarkRead(notificationID, studentProfileID uuid.UUID) error
	MarkAllRead(studentProfileID uuid.UUID) error

	ListAll() ([]dto.NotificationDTO, error)
	Create(req dto.NotificationCreateDTO) (*dto.NotificationDTO, error)
	Update(notificationID uuid.UUID, req dto.NotificationUpdateDTO) (*dto.NotificationDTO, error)
	Delete(notificationID uuid.UUID) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func toNotificationDTO(n model.Notification, read bool) dto.NotificationDTO {
	return dto.NotificationDTO{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsActive:  n.IsActive,
		IsRead:    read,
		CreatedAt: n.CreatedAt,
	}
}

func (s *notificationService) ListActive(studentProfileID *uuid.UUID) ([]dto.NotificationDTO, error) {
	notifications, err := s.notificationRepo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("fetching notifications: %w", err)
	}

	readSet := map[uuid.UUID]bool{}
	if studentProfileID != nil {
		readIDs, err := s.notificationRepo.FindReadIDs(*studentProfileID)
		if err != nil {
			return nil, fmt.Errorf("fetching read markers: %w", err)
		}
		for _, id := range readIDs {
			readSet[id] = true
		}
	}

	dtos := make([]dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, toNotificationDTO(n, readSet[n.ID]))
	}
	return dtos, nil
}

func (s *notificationService) MarkRead(notificationID, studentProfileID uuid.UUID) error {
	if _, err := s.notificationRepo.FindByID(notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("fetching notification %s: %w", notificationID, err)
	}
	return s.notificationRepo.MarkRead(notificationID, studentProfileID)
}

func (s *notificationService) MarkAllRead(studentProfileID uuid.UUID) error {
	notifications, err := s.notificationRepo.FindActive()
	if err != nil {
		return fmt.Errorf("fetching notifications: %w", err)
	}
	for _, n := range notifications {
		if err := s.notificationRepo.MarkRead(n.ID, studentProfileID); err != nil {
			return fmt.Errorf("marking notification %s read: %w", n.ID, err)
		}
	}
	return nil
}

func (s *notificationService) ListAll() ([]dto.NotificationDTO, error) {
	notifications, err := s.notificationRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching notifications: %w", err)
	}
	dtos := make([]dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, toNotificationDTO(n, false))
	}
	return dtos, nil
}

func (s *notificationService) Create(req dto.NotificationCreateDTO) (*dto.NotificationDTO, error) {
	notification := model.Notification{
		Title:    req.Title,
		Message:  req.Message,
		IsActive: true,
	}
	if req.IsActive != nil {
		notification.IsActive = *req.IsActive
	}
	if err := s.notificationRepo.Create(&notification); err != nil {
		log.Error().Err(err).Msg("Notification Create: failed to persist")
		return nil, fmt.Errorf("creating notification: %w", err)
	}
	resp := toNotificationDTO(notification, false)
	return &resp, nil
}

func (s *notificationService) Update(notificationID uuid.UUID, req dto.NotificationUpdateDTO) (*dto.NotificationDTO, error) {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("fetching notification %s: %w", notificationID, err)
	}

	notification.Title = req.Title
	notification.Message = req.Message
	if req.IsActive != nil {
		notification.IsActive = *req.IsActive
	}
	if err := s.notificationRepo.Update(notification); err != nil {
		return nil, fmt.Errorf("updating notification: %w", err)
	}
	resp := toNotificationDTO(*notification, false)
	return &resp, nil
}

func (s *notificationService) Delete(notificationID uuid.UUID) error {
	if _, err := s.notificationRepo.FindByID(notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("fetching notification %s: %w", notificationID, err)
	}
	return s.notificationRepo.Delete(notificationID)
}
