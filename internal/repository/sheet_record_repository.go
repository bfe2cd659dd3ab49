package repository

import (
	"context"
	"fmt"
	"strings"

	"go_study_sheet/internal/middleware"
	"go_study_sheet/internal/model"
)

type sheetRecordRepository struct {
	values    SheetValuesAPI
	sheetName string
}

// NewSheetRecordRepository はスプレッドシート1枚をストアとして使うリポジトリを返します
func NewSheetRecordRepository(values SheetValuesAPI, sheetName string) RecordRepository {
	return &sheetRecordRepository{values: values, sheetName: sheetName}
}

// a1 はシート名付きの A1 記法を返します ('My Sheet'!A2:F)
func (r *sheetRecordRepository) a1(rng string) string {
	return "'" + strings.ReplaceAll(r.sheetName, "'", "''") + "'!" + rng
}

func (r *sheetRecordRepository) LoadAll(ctx context.Context) ([]model.StudyRecord, error) {
	logger := middleware.GetLogger(ctx)

	rows, err := r.values.Get(ctx, r.a1(fmt.Sprintf("A%d:F", model.FirstDataRow)))
	if err != nil {
		logger.Error("Error loading records from sheet", "error", err, "sheet", r.sheetName)
		return nil, fmt.Errorf("sheetRecordRepository.LoadAll: %w", err)
	}

	records := make([]model.StudyRecord, 0, len(rows))
	for i, row := range rows {
		// 途中の空行は読み飛ばすが、行番号は位置のまま保つ
		if isBlankRow(row) {
			continue
		}
		rec, err := rowToRecord(i, row)
		if err != nil {
			logger.Error("Error parsing sheet row", "error", err, "row", model.RowNumberOf(i))
			return nil, fmt.Errorf("sheetRecordRepository.LoadAll: %w", err)
		}
		if rec.NormalizeCounts() {
			logger.Warn("Row has correct > tried, clamped", "row", model.RowNumberOf(i))
		}
		records = append(records, rec)
	}
	logger.Debug("Records loaded from sheet", "count", len(records))
	return records, nil
}

func (r *sheetRecordRepository) Append(ctx context.Context, record *model.StudyRecord) error {
	logger := middleware.GetLogger(ctx)
	if err := r.values.Append(ctx, r.a1("A:F"), [][]interface{}{recordToRow(record)}); err != nil {
		logger.Error("Error appending record to sheet",
			"error", err,
			"subject", record.Subject,
		)
		return fmt.Errorf("sheetRecordRepository.Append: %w", err)
	}
	return nil
}

func (r *sheetRecordRepository) SetField(ctx context.Context, rowIndex int, field model.RecordField, value interface{}) error {
	if err := checkRowIndex(rowIndex); err != nil {
		return err
	}
	col, err := field.ColumnLetter()
	if err != nil {
		return err
	}
	cell := fmt.Sprintf("%s%d", col, model.RowNumberOf(rowIndex))
	if err := r.values.Update(ctx, r.a1(cell), [][]interface{}{{value}}); err != nil {
		middleware.GetLogger(ctx).Error("Error updating sheet cell",
			"error", err,
			"cell", cell,
			"field", string(field),
		)
		return fmt.Errorf("sheetRecordRepository.SetField: %w", err)
	}
	return nil
}

// SetCounts は tried/correct (E:F列) を1回の更新で書き込みます
func (r *sheetRecordRepository) SetCounts(ctx context.Context, rowIndex int, tried, correct int) error {
	if err := checkRowIndex(rowIndex); err != nil {
		return err
	}
	row := model.RowNumberOf(rowIndex)
	rng := fmt.Sprintf("E%d:F%d", row, row)
	if err := r.values.Update(ctx, r.a1(rng), [][]interface{}{{tried, correct}}); err != nil {
		middleware.GetLogger(ctx).Error("Error updating counts in sheet",
			"error", err,
			"range", rng,
		)
		return fmt.Errorf("sheetRecordRepository.SetCounts: %w", err)
	}
	return nil
}

func (r *sheetRecordRepository) ReadRow(ctx context.Context, rowIndex int) (*model.StudyRecord, error) {
	if err := checkRowIndex(rowIndex); err != nil {
		return nil, err
	}
	row := model.RowNumberOf(rowIndex)
	rows, err := r.values.Get(ctx, r.a1(fmt.Sprintf("A%d:F%d", row, row)))
	if err != nil {
		return nil, fmt.Errorf("sheetRecordRepository.ReadRow: %w", err)
	}
	if len(rows) == 0 || isBlankRow(rows[0]) {
		return nil, model.ErrNotFound
	}
	rec, err := rowToRecord(rowIndex, rows[0])
	if err != nil {
		return nil, fmt.Errorf("sheetRecordRepository.ReadRow: %w", err)
	}
	return &rec, nil
}
