// internal/model/record.go
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ストアの1行目はヘッダー、データは2行目から (1始まり)
const (
	HeaderRows   = 1
	FirstDataRow = HeaderRows + 1
)

// StudyRecord は暗記カード1件を表します
type StudyRecord struct {
	// ID はレコード一覧を読み込んだ時点で払い出すセッション内のキー (ストアには保存しない)
	ID       uuid.UUID `json:"id"`
	RowIndex int       `json:"row_index"`
	Subject  string    `json:"subject"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	ImageURL string    `json:"image_url"`
	Tried    int       `json:"tried"`
	Correct  int       `json:"correct"`
}

// RowNumber はストア上の行番号 (1始まり、ヘッダー込み) を返します
func (r StudyRecord) RowNumber() int {
	return RowNumberOf(r.RowIndex)
}

// SameContent は行ずれ検知用に科目と問題文を比較します
func (r StudyRecord) SameContent(other StudyRecord) bool {
	return r.Subject == other.Subject && r.Question == other.Question
}

// RowNumberOf は0始まりのリスト位置をストアの行番号に変換します。 0 -> 2
func RowNumberOf(rowIndex int) int {
	return rowIndex + FirstDataRow
}

// RecordField はストアの列に対応するフィールド名
type RecordField string

const (
	FieldSubject  RecordField = "subject"
	FieldQuestion RecordField = "question"
	FieldAnswer   RecordField = "answer"
	FieldImage    RecordField = "image"
	FieldTried    RecordField = "tried"
	FieldCorrect  RecordField = "correct"
)

// RecordColumns は列の並び順 (A..F)
var RecordColumns = []RecordField{
	FieldSubject, FieldQuestion, FieldAnswer, FieldImage, FieldTried, FieldCorrect,
}

// Column は1始まりの列番号を返します
func (f RecordField) Column() (int, error) {
	for i, c := range RecordColumns {
		if c == f {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown record field %q: %w", string(f), ErrInvalidInput)
}

// ColumnLetter は A1 記法の列文字を返します
func (f RecordField) ColumnLetter() (string, error) {
	col, err := f.Column()
	if err != nil {
		return "", err
	}
	return string(rune('A' + col - 1)), nil
}

// NormalizeCounts は correct <= tried を満たすように補正し、補正したかを返します
func (r *StudyRecord) NormalizeCounts() bool {
	changed := false
	if r.Tried < 0 {
		r.Tried = 0
		changed = true
	}
	if r.Correct < 0 {
		r.Correct = 0
		changed = true
	}
	if r.Correct > r.Tried {
		r.Correct = r.Tried
		changed = true
	}
	return changed
}

// AddRecordRequest は問題追加リクエストのDTO
type AddRecordRequest struct {
	Subject  string `json:"subject" validate:"required,max=100"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// ImageUpload はアップロードされた画像の生データ
type ImageUpload struct {
	Filename string
	Data     []byte
}

// AddRecordResult は問題追加の結果。画像アップロード失敗時は Warning に理由が入る
type AddRecordResult struct {
	Record  StudyRecord `json:"record"`
	Warning string      `json:"warning,omitempty"`
}

// RecordListResponse は一覧画面のレスポンス
type RecordListResponse struct {
	Records   []StudyRecord `json:"records"`
	Caption   string        `json:"caption"`
	LoadError string        `json:"load_error,omitempty"`
}
