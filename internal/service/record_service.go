//go:generate mockery --name RecordService --structname MockRecordService --output ./mocks --outpkg mocks --filename record_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_study_sheet/internal/imagehost"
	"go_study_sheet/internal/metrics"
	"go_study_sheet/internal/middleware"
	"go_study_sheet/internal/model"
	"go_study_sheet/internal/repository"
)

// 画像アップロード失敗時の警告 (レコードは画像なしで保存される)
const (
	WarnImageUploadFailed   = "画像のアップロードに失敗したため、画像なしで保存しました。"
	WarnImageUploadDisabled = "画像アップロードが設定されていないため、画像なしで保存しました。"
)

type RecordService interface {
	// LoadAll は失敗しても空のスライスを返し、エラーはユーザーに表示する
	LoadAll(ctx context.Context) ([]model.StudyRecord, error)
	AddRecord(ctx context.Context, req *model.AddRecordRequest, img *model.ImageUpload) (*model.AddRecordResult, error)
	UpdateCounts(ctx context.Context, record model.StudyRecord, verify bool) error
}

type recordService struct {
	repo     repository.RecordRepository
	uploader imagehost.Uploader
	metrics  *metrics.Metrics
}

func NewRecordService(repo repository.RecordRepository, uploader imagehost.Uploader, m *metrics.Metrics) RecordService {
	return &recordService{repo: repo, uploader: uploader, metrics: m}
}

func (s *recordService) LoadAll(ctx context.Context) ([]model.StudyRecord, error) {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load records", "error", err)
		return []model.StudyRecord{}, fmt.Errorf("データの読み込みに失敗しました: %w", err)
	}
	if records == nil {
		records = []model.StudyRecord{}
	}
	return records, nil
}

func (s *recordService) AddRecord(ctx context.Context, req *model.AddRecordRequest, img *model.ImageUpload) (*model.AddRecordResult, error) {
	logger := middleware.GetLogger(ctx)

	record := &model.StudyRecord{
		Subject:  strings.TrimSpace(req.Subject),
		Question: strings.TrimSpace(req.Question),
		Answer:   strings.TrimSpace(req.Answer),
	}
	if record.Subject == "" || record.Question == "" || record.Answer == "" {
		return nil, model.ErrInvalidInput
	}

	result := &model.AddRecordResult{}
	if img != nil && len(img.Data) > 0 {
		url, err := s.uploader.Upload(ctx, img.Data, img.Filename)
		if errors.Is(err, imagehost.ErrUploaderDisabled) {
			logger.Warn("Image upload skipped, uploader disabled", "filename", img.Filename)
			result.Warning = WarnImageUploadDisabled
		} else {
			s.metrics.IncImageUpload(err)
			if err != nil {
				logger.Warn("Image upload failed, saving record without image",
					"error", err,
					"filename", img.Filename,
				)
				result.Warning = WarnImageUploadFailed
			} else {
				record.ImageURL = url
			}
		}
	}

	if err := s.repo.Append(ctx, record); err != nil {
		logger.Error("Failed to append record", "error", err, "subject", record.Subject)
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("recordService.AddRecord: %w", err)
	}

	logger.Info("Record added", "subject", record.Subject, "has_image", record.ImageURL != "")
	result.Record = *record
	return result, nil
}

// UpdateCounts は tried/correct をストアに書き込みます。
// verify が true なら先に行を読み直し、科目と問題文が一致しなければ model.ErrConflict を返す
func (s *recordService) UpdateCounts(ctx context.Context, record model.StudyRecord, verify bool) error {
	logger := middleware.GetLogger(ctx)

	if verify {
		stored, err := s.repo.ReadRow(ctx, record.RowIndex)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Row vanished before counter write", "row", record.RowNumber())
				return model.ErrConflict
			}
			return fmt.Errorf("recordService.UpdateCounts: %w", err)
		}
		if !stored.SameContent(record) {
			logger.Warn("Row moved before counter write",
				"row", record.RowNumber(),
				"expected_question", record.Question,
				"stored_question", stored.Question,
			)
			return model.ErrConflict
		}
	}

	if err := s.repo.SetCounts(ctx, record.RowIndex, record.Tried, record.Correct); err != nil {
		logger.Error("Failed to write counters", "error", err, "row", record.RowNumber())
		return fmt.Errorf("recordService.UpdateCounts: %w", err)
	}
	return nil
}
