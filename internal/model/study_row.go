// internal/model/study_row.go
package model

import "time"

// StudyRow は database バックエンドでスプレッドシートの1行を表すテーブルです。
// RowNo はシートの行番号と同じ意味 (データは2から)
type StudyRow struct {
	RowNo     int    `gorm:"primaryKey;autoIncrement:false"`
	Subject   string `gorm:"not null;default:''"`
	Question  string `gorm:"not null;default:''"`
	Answer    string `gorm:"not null;default:''"`
	Image     string `gorm:"not null;default:''"`
	Tried     int    `gorm:"not null;default:0"`
	Correct   int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StudyRow) TableName() string {
	return "study_rows"
}

// ToRecord は行をレコードに変換します
func (r StudyRow) ToRecord() StudyRecord {
	return StudyRecord{
		RowIndex: r.RowNo - FirstDataRow,
		Subject:  r.Subject,
		Question: r.Question,
		Answer:   r.Answer,
		ImageURL: r.Image,
		Tried:    r.Tried,
		Correct:  r.Correct,
	}
}
