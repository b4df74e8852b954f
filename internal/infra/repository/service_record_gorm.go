package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/models"
)

type ServiceRecordGormRepository struct {
	db *gorm.DB
}

func NewServiceRecordGormRepository(db *gorm.DB) *ServiceRecordGormRepository {
	return &ServiceRecordGormRepository{db: db}
}

// --------------------------------------------------
// Record + log (one transaction)
// --------------------------------------------------
//
// The record write and its audit entry commit together or not at all.
// A failed log insert rolls the record mutation back.

func (r *ServiceRecordGormRepository) CreateWithLog(
	ctx context.Context,
	rec *models.ServiceRecord,
	entry *models.ServiceLog,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}

		entry.ServiceRecordID = rec.ID
		return tx.Create(entry).Error
	})
}

func (r *ServiceRecordGormRepository) UpdateWithLog(
	ctx context.Context,
	rec *models.ServiceRecord,
	entry *models.ServiceLog,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(rec).Error; err != nil {
			return err
		}

		entry.ServiceRecordID = rec.ID
		return tx.Create(entry).Error
	})
}

// --------------------------------------------------
// Record
// --------------------------------------------------

func (r *ServiceRecordGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.ServiceRecord, error) {

	var rec models.ServiceRecord
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Brand").
		Preload("Service").
		Preload("CreatedUser").
		First(&rec, id).Error; err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *ServiceRecordGormRepository) List(
	ctx context.Context,
	limit int,
	offset int,
) ([]models.ServiceRecord, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceRecord{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Brand").
		Preload("Service").
		Order("id DESC")

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var recs []models.ServiceRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, 0, err
	}

	return recs, total, nil
}

func (r *ServiceRecordGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.ServiceRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Logs
// --------------------------------------------------

func (r *ServiceRecordGormRepository) ListLogs(
	ctx context.Context,
	recordID uint,
) ([]models.ServiceLog, error) {

	var logs []models.ServiceLog
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("service_record_id = ?", recordID).
		Order("change_date DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *ServiceRecordGormRepository) Stats(
	ctx context.Context,
	now time.Time,
) (*domain.DashboardStats, error) {

	stats := &domain.DashboardStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.ServiceRecord{}).
		Count(&stats.TotalRecords).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceRecord{}).
		Where("arrival_date >= ?", monthStart).
		Count(&stats.MonthlyRecords).Error; err != nil {
		return nil, err
	}

	weekStart := now.AddDate(0, 0, -7)
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceRecord{}).
		Where("arrival_date >= ?", weekStart).
		Count(&stats.WeeklyRecords).Error; err != nil {
		return nil, err
	}

	// LOWER() keeps legacy rows with mixed-case statuses in the right bucket.
	var counts []domain.StatusCount
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceRecord{}).
		Select("LOWER(status) AS status, COUNT(*) AS count").
		Group("LOWER(status)").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	stats.StatusCounts = counts
	stats.StatusSummary = domain.SummarizeStatusCounts(counts)

	var brands []domain.BrandCount
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceRecord{}).
		Select("brands.name AS name, COUNT(*) AS count").
		Joins("JOIN brands ON brands.id = service_records.brand_id").
		Group("brands.name").
		Order("count DESC").
		Limit(5).
		Scan(&brands).Error; err != nil {
		return nil, err
	}
	stats.TopBrands = brands

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*ServiceRecordGormRepository)(nil)
