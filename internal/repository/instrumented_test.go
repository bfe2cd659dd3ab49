package repository

import (
	"context"
	"strings"
	"testing"

	"go_study_sheet/internal/metrics"
	"go_study_sheet/internal/model"
	"go_study_sheet/internal/repository/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedRecordRepository(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	inner := mocks.NewRecordRepository(t)
	repo := NewInstrumentedRecordRepository(inner, metrics.New(reg))

	inner.On("LoadAll", mock.Anything).Return([]model.StudyRecord{}, nil).Once()
	inner.On("SetCounts", mock.Anything, 0, 1, 1).Return(model.ErrStoreUnavailable).Once()

	_, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	err = repo.SetCounts(ctx, 0, 1, 1)
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)

	expected := `
# HELP study_sheet_store_operations_total Record store calls by operation and result.
# TYPE study_sheet_store_operations_total counter
study_sheet_store_operations_total{op="load_all",result="ok"} 1
study_sheet_store_operations_total{op="set_counts",result="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "study_sheet_store_operations_total"))
	n, err := testutil.GatherAndCount(reg, "study_sheet_store_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncDraw("smart")
		m.IncMark(true)
		m.IncImageUpload(nil)
	})
}
