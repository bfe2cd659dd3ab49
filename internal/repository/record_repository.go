//go:generate mockery --name RecordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go_study_sheet/internal/model"
)

// RecordRepository は暗記カードを保存する表形式ストアの操作です。
// 行は位置 (rowIndex, 0始まり) で指定し、ストア上は rowIndex+2 行目になる。
type RecordRepository interface {
	LoadAll(ctx context.Context) ([]model.StudyRecord, error)
	Append(ctx context.Context, record *model.StudyRecord) error
	SetField(ctx context.Context, rowIndex int, field model.RecordField, value interface{}) error
	SetCounts(ctx context.Context, rowIndex int, tried, correct int) error
	ReadRow(ctx context.Context, rowIndex int) (*model.StudyRecord, error)
}

func checkRowIndex(rowIndex int) error {
	if rowIndex < 0 {
		return fmt.Errorf("row index %d: %w", rowIndex, model.ErrInvalidInput)
	}
	return nil
}

// rowToRecord は [subject, question, answer, image, tried, correct] の1行をレコードに変換します。
// Sheets API は末尾の空セルを省略するので、足りない列は空として扱う
func rowToRecord(rowIndex int, row []interface{}) (model.StudyRecord, error) {
	cell := func(i int) interface{} {
		if i < len(row) {
			return row[i]
		}
		return nil
	}

	tried, err := parseCount(cell(4))
	if err != nil {
		return model.StudyRecord{}, fmt.Errorf("row %d tried: %w", model.RowNumberOf(rowIndex), err)
	}
	correct, err := parseCount(cell(5))
	if err != nil {
		return model.StudyRecord{}, fmt.Errorf("row %d correct: %w", model.RowNumberOf(rowIndex), err)
	}

	return model.StudyRecord{
		RowIndex: rowIndex,
		Subject:  cellString(cell(0)),
		Question: cellString(cell(1)),
		Answer:   cellString(cell(2)),
		ImageURL: cellString(cell(3)),
		Tried:    tried,
		Correct:  correct,
	}, nil
}

func recordToRow(record *model.StudyRecord) []interface{} {
	return []interface{}{
		record.Subject,
		record.Question,
		record.Answer,
		record.ImageURL,
		record.Tried,
		record.Correct,
	}
}

func isBlankRow(row []interface{}) bool {
	for _, v := range row {
		if cellString(v) != "" {
			return false
		}
	}
	return true
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// parseCount は tried/correct のセル値を数値にします。空セルは 0
func parseCount(v interface{}) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	}

	s := cellString(v)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, model.ErrInvalidInput)
	}
	return int(f), nil
}
