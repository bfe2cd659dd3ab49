package repository

import (
	"context"
	"fmt"

	"go_study_sheet/internal/model"
)

// unavailableRecordRepository は接続できなかったストアの代わりに使います。
// すべての操作が原因付きの model.ErrStoreUnavailable を返す
type unavailableRecordRepository struct {
	err error
}

func NewUnavailableRecordRepository(cause error) RecordRepository {
	return &unavailableRecordRepository{
		err: fmt.Errorf("%w: %w", model.ErrStoreUnavailable, cause),
	}
}

func (r *unavailableRecordRepository) LoadAll(context.Context) ([]model.StudyRecord, error) {
	return nil, r.err
}

func (r *unavailableRecordRepository) Append(context.Context, *model.StudyRecord) error {
	return r.err
}

func (r *unavailableRecordRepository) SetField(context.Context, int, model.RecordField, interface{}) error {
	return r.err
}

func (r *unavailableRecordRepository) SetCounts(context.Context, int, int, int) error {
	return r.err
}

func (r *unavailableRecordRepository) ReadRow(context.Context, int) (*model.StudyRecord, error) {
	return nil, r.err
}
