// internal/model/study.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectAll は科目で絞り込まないことを表す
const SubjectAll = "ALL"

// StudyMode は出題方法
type StudyMode string

const (
	ModeRandom StudyMode = "random"
	ModeSmart  StudyMode = "smart" // 間違えた問題ほど出やすい
)

func (m StudyMode) Valid() bool {
	return m == ModeRandom || m == ModeSmart
}

// StudyPhase は学習画面の状態
type StudyPhase string

const (
	PhaseIdle           StudyPhase = "idle"
	PhaseQuestionShown  StudyPhase = "question_shown"
	PhaseAnswerRevealed StudyPhase = "answer_revealed"
)

// StudySession はブラウザセッション1つ分の状態
type StudySession struct {
	ID         string        `json:"id"`
	Records    []StudyRecord `json:"records"`
	CurrentID  *uuid.UUID    `json:"current_id,omitempty"`
	ShowAnswer bool          `json:"show_answer"`
	Phase      StudyPhase    `json:"phase"`
	Mode       StudyMode     `json:"mode"`
	Subject    string        `json:"subject"`
	LoadError  string        `json:"load_error,omitempty"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func NewStudySession(id string, mode StudyMode) *StudySession {
	return &StudySession{
		ID:      id,
		Records: []StudyRecord{},
		Phase:   PhaseIdle,
		Mode:    mode,
		Subject: SubjectAll,
	}
}

// CurrentIndex は出題中レコードの Records 内の位置を返します。なければ -1
func (s *StudySession) CurrentIndex() int {
	if s.CurrentID == nil {
		return -1
	}
	for i := range s.Records {
		if s.Records[i].ID == *s.CurrentID {
			return i
		}
	}
	return -1
}

// Current は出題中レコードを返します
func (s *StudySession) Current() (*StudyRecord, bool) {
	idx := s.CurrentIndex()
	if idx < 0 {
		return nil, false
	}
	return &s.Records[idx], true
}

// ClearCurrent は出題状態を idle に戻します
func (s *StudySession) ClearCurrent() {
	s.CurrentID = nil
	s.ShowAnswer = false
	s.Phase = PhaseIdle
}

// ReplaceRecords はレコード一覧を差し替え、セッション内IDを払い直します。
// RowIndex はストアが返した位置をそのまま使う (空行があると添字と一致しない)
func (s *StudySession) ReplaceRecords(records []StudyRecord) {
	if records == nil {
		records = []StudyRecord{}
	}
	for i := range records {
		records[i].ID = uuid.New()
	}
	s.Records = records
	s.ClearCurrent()
}

// DrawRequest は出題リクエストのDTO
type DrawRequest struct {
	Subject string    `json:"subject" validate:"omitempty,max=100"`
	Mode    StudyMode `json:"mode" validate:"omitempty,oneof=random smart"`
}

// MarkRequest は正誤送信リクエストのDTO
type MarkRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// QuestionView は出題中の問題。答えは公開後のみ含める
type QuestionView struct {
	ID       uuid.UUID `json:"id"`
	Subject  string    `json:"subject"`
	Question string    `json:"question"`
	Answer   string    `json:"answer,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	Tried    int       `json:"tried"`
	Correct  int       `json:"correct"`
}

// StudyView はホーム(学習)画面のレスポンス
type StudyView struct {
	Subjects     []string      `json:"subjects"`
	Subject      string        `json:"subject"`
	Mode         StudyMode     `json:"mode"`
	Phase        StudyPhase    `json:"phase"`
	ShowAnswer   bool          `json:"show_answer"`
	Current      *QuestionView `json:"current,omitempty"`
	RecordCount  int           `json:"record_count"`
	LoadError    string        `json:"load_error,omitempty"`
	Notification string        `json:"notification,omitempty"`
}
