package repository

import (
	"context"
	"errors"
	"fmt"

	"go_study_sheet/internal/middleware"
	"go_study_sheet/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// gormRecordRepository はシートと同じ行番号の意味を持つ study_rows テーブルを使います
type gormRecordRepository struct {
	db *gorm.DB
}

func NewGormRecordRepository(db *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: db}
}

func (r *gormRecordRepository) LoadAll(ctx context.Context) ([]model.StudyRecord, error) {
	logger := middleware.GetLogger(ctx)
	var rows []model.StudyRow
	if err := r.db.WithContext(ctx).Order("row_no ASC").Find(&rows).Error; err != nil {
		logger.Error("Error loading study rows from DB", "error", err)
		return nil, fmt.Errorf("gormRecordRepository.LoadAll: %w: %w", model.ErrStoreUnavailable, err)
	}

	records := make([]model.StudyRecord, 0, len(rows))
	for _, row := range rows {
		rec := row.ToRecord()
		if rec.NormalizeCounts() {
			logger.Warn("Row has correct > tried, clamped", "row", row.RowNo)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *gormRecordRepository) Append(ctx context.Context, record *model.StudyRecord) error {
	logger := middleware.GetLogger(ctx)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxRow int
		if err := tx.Model(&model.StudyRow{}).
			Select("COALESCE(MAX(row_no), ?)", model.HeaderRows).
			Scan(&maxRow).Error; err != nil {
			return err
		}
		row := &model.StudyRow{
			RowNo:    maxRow + 1,
			Subject:  record.Subject,
			Question: record.Question,
			Answer:   record.Answer,
			Image:    record.ImageURL,
			Tried:    record.Tried,
			Correct:  record.Correct,
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		record.RowIndex = row.RowNo - model.FirstDataRow
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if (errors.As(err, &pgErr) && pgErr.Code == "23505") || errors.Is(err, gorm.ErrDuplicatedKey) {
			// 同時追加で行番号がぶつかった
			logger.Warn("Duplicate row number on append", "error", err, "subject", record.Subject)
			return model.ErrConflict
		}
		logger.Error("Error appending study row in DB", "error", err, "subject", record.Subject)
		return fmt.Errorf("gormRecordRepository.Append: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *gormRecordRepository) SetField(ctx context.Context, rowIndex int, field model.RecordField, value interface{}) error {
	if err := checkRowIndex(rowIndex); err != nil {
		return err
	}
	if _, err := field.Column(); err != nil {
		return err
	}
	return r.update(ctx, rowIndex, map[string]interface{}{string(field): value})
}

func (r *gormRecordRepository) SetCounts(ctx context.Context, rowIndex int, tried, correct int) error {
	if err := checkRowIndex(rowIndex); err != nil {
		return err
	}
	return r.update(ctx, rowIndex, map[string]interface{}{
		string(model.FieldTried):   tried,
		string(model.FieldCorrect): correct,
	})
}

func (r *gormRecordRepository) update(ctx context.Context, rowIndex int, updates map[string]interface{}) error {
	rowNo := model.RowNumberOf(rowIndex)
	result := r.db.WithContext(ctx).Model(&model.StudyRow{}).Where("row_no = ?", rowNo).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating study row in DB",
			"error", result.Error,
			"row", rowNo,
		)
		return fmt.Errorf("gormRecordRepository.update: %w: %w", model.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormRecordRepository) ReadRow(ctx context.Context, rowIndex int) (*model.StudyRecord, error) {
	if err := checkRowIndex(rowIndex); err != nil {
		return nil, err
	}
	var row model.StudyRow
	result := r.db.WithContext(ctx).Where("row_no = ?", model.RowNumberOf(rowIndex)).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormRecordRepository.ReadRow: %w: %w", model.ErrStoreUnavailable, result.Error)
	}
	rec := row.ToRecord()
	return &rec, nil
}
