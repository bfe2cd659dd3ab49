package repository

import (
	"context"
	"time"

	"go_study_sheet/internal/metrics"
	"go_study_sheet/internal/model"
)

// instrumentedRecordRepository は各呼び出しの件数と所要時間を記録します
type instrumentedRecordRepository struct {
	next    RecordRepository
	metrics *metrics.Metrics
}

func NewInstrumentedRecordRepository(next RecordRepository, m *metrics.Metrics) RecordRepository {
	return &instrumentedRecordRepository{next: next, metrics: m}
}

func (r *instrumentedRecordRepository) LoadAll(ctx context.Context) (records []model.StudyRecord, err error) {
	defer r.observe("load_all", time.Now(), &err)
	return r.next.LoadAll(ctx)
}

func (r *instrumentedRecordRepository) Append(ctx context.Context, record *model.StudyRecord) (err error) {
	defer r.observe("append", time.Now(), &err)
	return r.next.Append(ctx, record)
}

func (r *instrumentedRecordRepository) SetField(ctx context.Context, rowIndex int, field model.RecordField, value interface{}) (err error) {
	defer r.observe("set_field", time.Now(), &err)
	return r.next.SetField(ctx, rowIndex, field, value)
}

func (r *instrumentedRecordRepository) SetCounts(ctx context.Context, rowIndex int, tried, correct int) (err error) {
	defer r.observe("set_counts", time.Now(), &err)
	return r.next.SetCounts(ctx, rowIndex, tried, correct)
}

func (r *instrumentedRecordRepository) ReadRow(ctx context.Context, rowIndex int) (record *model.StudyRecord, err error) {
	defer r.observe("read_row", time.Now(), &err)
	return r.next.ReadRow(ctx, rowIndex)
}

// observe は defer 時点の err を見るためにポインタで受け取る
func (r *instrumentedRecordRepository) observe(op string, start time.Time, err *error) {
	r.metrics.ObserveStore(op, start, *err)
}
