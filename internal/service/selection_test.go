package service

import (
	"math/rand/v2"
	"testing"

	"go_study_sheet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name     string
		tried    int
		correct  int
		wantAcc  int
		wantWeig int
	}{
		{"未挑戦は最大の重み", 0, 0, 0, 100},
		{"全問不正解", 4, 0, 0, 100},
		{"半分正解", 4, 2, 50, 50},
		{"切り捨て 2/3 -> 66", 3, 2, 66, 34},
		{"全問正解でも最小 5", 10, 10, 100, 5},
		{"96% は最小値に切り上げ", 25, 24, 96, 5},
		{"94% は 6", 50, 47, 94, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.StudyRecord{Tried: tt.tried, Correct: tt.correct}
			assert.Equal(t, tt.wantAcc, AccuracyPercent(r))
			assert.Equal(t, tt.wantWeig, Weight(r))
		})
	}
}

func TestFilterBySubjectAndSubjects(t *testing.T) {
	records := []model.StudyRecord{
		{Subject: "数学", Question: "1+1"},
		{Subject: "英語", Question: "apple"},
		{Subject: "数学", Question: "2*3"},
	}

	assert.Len(t, FilterBySubject(records, model.SubjectAll), 3)
	assert.Len(t, FilterBySubject(records, ""), 3)
	assert.Len(t, FilterBySubject(records, "数学"), 2)
	assert.Empty(t, FilterBySubject(records, "歴史"))

	assert.Equal(t, []string{"ALL", "数学", "英語"}, Subjects(records))
	assert.Equal(t, []string{"ALL"}, Subjects(nil))
}

func TestSelector_Pick(t *testing.T) {
	t.Run("候補なし", func(t *testing.T) {
		_, err := NewSelector(nil).Pick(nil, model.ModeSmart)
		assert.ErrorIs(t, err, model.ErrNoCandidates)
	})

	t.Run("1件なら常にそれ", func(t *testing.T) {
		sel := NewSelector(rand.New(rand.NewPCG(1, 2)))
		for i := 0; i < 20; i++ {
			idx, err := sel.Pick([]model.StudyRecord{{Question: "only"}}, model.ModeRandom)
			require.NoError(t, err)
			assert.Equal(t, 0, idx)
		}
	})

	t.Run("スマートモードは苦手な問題を多く出す", func(t *testing.T) {
		sel := NewSelector(rand.New(rand.NewPCG(42, 7)))
		cands := []model.StudyRecord{
			{Question: "weak", Tried: 10, Correct: 0},    // 重み 100
			{Question: "strong", Tried: 10, Correct: 10}, // 重み 5
		}
		counts := make([]int, 2)
		const n = 21000
		for i := 0; i < n; i++ {
			idx, err := sel.Pick(cands, model.ModeSmart)
			require.NoError(t, err)
			counts[idx]++
		}
		// 期待値 100/105 と 5/105
		assert.InDelta(t, float64(n)*100/105, float64(counts[0]), float64(n)*0.02)
		assert.InDelta(t, float64(n)*5/105, float64(counts[1]), float64(n)*0.02)
	})

	t.Run("ランダムモードはほぼ一様", func(t *testing.T) {
		sel := NewSelector(rand.New(rand.NewPCG(3, 4)))
		cands := []model.StudyRecord{
			{Tried: 10, Correct: 0},
			{Tried: 10, Correct: 10},
		}
		counts := make([]int, 2)
		const n = 20000
		for i := 0; i < n; i++ {
			idx, _ := sel.Pick(cands, model.ModeRandom)
			counts[idx]++
		}
		assert.InDelta(t, n/2, counts[0], n*0.03)
	})
}
