package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quizdesk/internal/model"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	Update(notification *model.Notification) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*model.Notification, error)
	FindAll() ([]model.Notification, error)
	FindActive() ([]model.Notification, error)
	MarkRead(notificationID, studentProfileID uuid.UUID) error
	FindReadIDs(studentProfileID uuid.UUID) ([]uuid.UUID, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) Update(notification *model.Notification) error {
	return r.db.Save(notification).Error
}

func (r *notificationRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).Delete(&model.NotificationRead{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Notification{}, "id = ?", id).Error
	})
}

func (r *notificationRepository) FindByID(id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindAll() ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindActive() ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

// MarkRead is idempotent: re-reading an already-read notification is a no-op.
func (r *notificationRepository) MarkRead(notificationID, studentProfileID uuid.UUID) error {
	read := model.NotificationRead{
		NotificationID:   notificationID,
		StudentProfileID: studentProfileID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error
}

func (r *notificationRepository) FindReadIDs(studentProfileID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&model.NotificationRead{}).
		Where("student_profile_id = ?", studentProfileID).
		Pluck("notification_id", &ids).Error
	return ids, err
}
