package service

import (
	"math/rand/v2"
	"sort"
	"sync"

	"go_study_sheet/internal/model"
)

const (
	maxWeight = 100
	minWeight = 5
)

// AccuracyPercent は正答率 (%) を切り捨てで返します。未挑戦は 0
func AccuracyPercent(r model.StudyRecord) int {
	if r.Tried <= 0 {
		return 0
	}
	return r.Correct * 100 / r.Tried
}

// Weight はスマートモードでの出題の重みです。正答率が低いほど大きく、最小 5
func Weight(r model.StudyRecord) int {
	return max(minWeight, maxWeight-AccuracyPercent(r))
}

// FilterBySubject は科目で絞り込みます。"ALL" または空なら全件
func FilterBySubject(records []model.StudyRecord, subject string) []model.StudyRecord {
	if subject == "" || subject == model.SubjectAll {
		return records
	}
	out := make([]model.StudyRecord, 0, len(records))
	for _, r := range records {
		if r.Subject == subject {
			out = append(out, r)
		}
	}
	return out
}

// Subjects は科目の一覧を昇順で返し、先頭に "ALL" を置きます
func Subjects(records []model.StudyRecord) []string {
	seen := make(map[string]struct{}, len(records))
	subjects := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Subject]; ok {
			continue
		}
		seen[r.Subject] = struct{}{}
		subjects = append(subjects, r.Subject)
	}
	sort.Strings(subjects)
	return append([]string{model.SubjectAll}, subjects...)
}

// Selector は候補から1件を選びます。乱数源はミューテックスで保護する
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector は乱数源を受け取ります。nil なら時刻由来のシードを使う
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{rng: rng}
}

// Pick は候補の添字を返します。候補が空なら model.ErrNoCandidates
func (s *Selector) Pick(cands []model.StudyRecord, mode model.StudyMode) (int, error) {
	if len(cands) == 0 {
		return -1, model.ErrNoCandidates
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if mode != model.ModeSmart {
		return s.rng.IntN(len(cands)), nil
	}

	total := 0
	for _, c := range cands {
		total += Weight(c)
	}
	// 累積和で重み付き抽選 (正規化しない)
	target := s.rng.IntN(total)
	for i, c := range cands {
		target -= Weight(c)
		if target < 0 {
			return i, nil
		}
	}
	return len(cands) - 1, nil
}
