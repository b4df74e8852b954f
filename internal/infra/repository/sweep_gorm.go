package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/jobs"
	"github.com/tekser/repair-tracker/internal/models"
)

type SweepGormStore struct {
	db *gorm.DB
}

func NewSweepGormStore(db *gorm.DB) *SweepGormStore {
	return &SweepGormStore{db: db}
}

func (s *SweepGormStore) ListStale(
	ctx context.Context,
	before time.Time,
) ([]models.ServiceRecord, error) {

	var recs []models.ServiceRecord
	if err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Brand").
		Where("LOWER(status) <> ? AND updated_at < ?", string(domain.StatusDelivered), before).
		Find(&recs).Error; err != nil {
		return nil, err
	}

	return recs, nil
}

func (s *SweepGormStore) ListActiveUsers(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *SweepGormStore) HasRecentNotification(
	ctx context.Context,
	recordID uint,
	since time.Time,
) (bool, error) {

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("service_record_id = ? AND created_at >= ?", recordID, since).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *SweepGormStore) CreateNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return s.db.WithContext(ctx).Create(n).Error
}

// Compile-time check
var _ jobs.SweepStore = (*SweepGormStore)(nil)
