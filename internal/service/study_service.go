//go:generate mockery --name StudyService --structname MockStudyService --output ./mocks --outpkg mocks --filename study_service.go
package service

import (
	"context"
	"errors"

	"go_study_sheet/internal/metrics"
	"go_study_sheet/internal/middleware"
	"go_study_sheet/internal/model"
	"go_study_sheet/internal/session"
)

const (
	NotifySaved      = "保存しました!"
	NotifyReloaded   = "データを再読み込みしました。"
	msgNoCandidates  = "問題がありません。"
	msgInvalidState  = "この操作は現在の状態では実行できません。"
	msgRowConflict   = "スプレッドシートの行が変更されています。データを再読み込みしてください。"
	msgStoreFailure  = "スプレッドシートへの書き込みに失敗しました。もう一度お試しください。"
	msgSessionFailed = "セッションの保存に失敗しました。"
)

// StudyService は学習画面 (出題・答え表示・正誤記録) と追加・一覧画面の操作です。
// すべての操作はセッションID単位で状態を読み書きする
type StudyService interface {
	View(ctx context.Context, sessionID string) (*model.StudyView, error)
	Draw(ctx context.Context, sessionID string, req *model.DrawRequest) (*model.StudyView, error)
	Reveal(ctx context.Context, sessionID string) (*model.StudyView, error)
	Mark(ctx context.Context, sessionID string, correct bool) (*model.StudyView, error)
	Reload(ctx context.Context, sessionID string) (*model.StudyView, error)
	AddRecord(ctx context.Context, sessionID string, req *model.AddRecordRequest, img *model.ImageUpload) (*model.AddRecordResult, error)
	List(ctx context.Context, sessionID string) (*model.RecordListResponse, error)
}

type StudyOptions struct {
	DefaultMode          model.StudyMode
	ListCaption          string
	VerifyRowBeforeWrite bool
}

type studyService struct {
	records  RecordService
	sessions session.Store
	selector *Selector
	metrics  *metrics.Metrics
	opts     StudyOptions
}

func NewStudyService(records RecordService, sessions session.Store, selector *Selector, m *metrics.Metrics, opts StudyOptions) StudyService {
	if !opts.DefaultMode.Valid() {
		opts.DefaultMode = model.ModeSmart
	}
	return &studyService{
		records:  records,
		sessions: sessions,
		selector: selector,
		metrics:  m,
		opts:     opts,
	}
}

// getOrNew は保存済みのセッションを返します。なければ新規に作り、読めないものは破棄して作り直す
func (s *studyService) getOrNew(ctx context.Context, sessionID string) (*model.StudySession, error) {
	logger := middleware.GetLogger(ctx)
	sess, err := s.sessions.Get(ctx, sessionID)
	switch {
	case err == nil:
		return sess, nil
	case errors.Is(err, model.ErrNotFound):
	case errors.Is(err, session.ErrCorruptSession):
		logger.Warn("Discarding unreadable session", "error", err)
		if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
			logger.Error("Failed to delete session", "error", delErr)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", msgSessionFailed, "", model.ErrInternalServer)
		}
	default:
		logger.Error("Failed to get session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", msgSessionFailed, "", model.ErrInternalServer)
	}
	return model.NewStudySession(sessionID, s.opts.DefaultMode), nil
}

// open はセッションを取得し、なければ作ります。レコードが空なら読み込みを試みる
func (s *studyService) open(ctx context.Context, sessionID string) (*model.StudySession, error) {
	sess, err := s.getOrNew(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(sess.Records) == 0 {
		s.load(ctx, sess)
	}
	return sess, nil
}

func (s *studyService) load(ctx context.Context, sess *model.StudySession) {
	records, err := s.records.LoadAll(ctx)
	sess.ReplaceRecords(records)
	sess.LoadError = ""
	if err != nil {
		sess.LoadError = err.Error()
	}
}

func (s *studyService) save(ctx context.Context, sess *model.StudySession) error {
	if err := s.sessions.Save(ctx, sess); err != nil {
		middleware.GetLogger(ctx).Error("Failed to save session", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", msgSessionFailed, "", model.ErrInternalServer)
	}
	return nil
}

// reject はセッションを保存してから appErr を返します。open で読み込んだレコードを次のリクエストに残す
func (s *studyService) reject(ctx context.Context, sess *model.StudySession, appErr error) error {
	if err := s.save(ctx, sess); err != nil {
		return err
	}
	return appErr
}

func (s *studyService) View(ctx context.Context, sessionID string) (*model.StudyView, error) {
	sess, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return buildView(sess, ""), nil
}

func (s *studyService) Draw(ctx context.Context, sessionID string, req *model.DrawRequest) (*model.StudyView, error) {
	sess, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Mode != "" {
		sess.Mode = req.Mode
	}
	if !sess.Mode.Valid() {
		sess.Mode = s.opts.DefaultMode
	}
	sess.Subject = req.Subject
	if sess.Subject == "" {
		sess.Subject = model.SubjectAll
	}
	sess.ClearCurrent()

	cands := FilterBySubject(sess.Records, sess.Subject)
	idx, err := s.selector.Pick(cands, sess.Mode)
	if err != nil {
		return nil, s.reject(ctx, sess, model.NewAppError("NO_CANDIDATES", msgNoCandidates, "subject", err))
	}

	id := cands[idx].ID
	sess.CurrentID = &id
	sess.Phase = model.PhaseQuestionShown
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.metrics.IncDraw(string(sess.Mode))
	middleware.GetLogger(ctx).Debug("Question drawn",
		"subject", sess.Subject,
		"mode", sess.Mode,
		"row", cands[idx].RowNumber(),
		"candidates", len(cands),
	)
	return buildView(sess, ""), nil
}

func (s *studyService) Reveal(ctx context.Context, sessionID string) (*model.StudyView, error) {
	sess, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := sess.Current(); !ok || sess.Phase != model.PhaseQuestionShown {
		return nil, s.reject(ctx, sess, model.NewAppError("INVALID_STATE", msgInvalidState, "", model.ErrInvalidState))
	}

	sess.ShowAnswer = true
	sess.Phase = model.PhaseAnswerRevealed
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return buildView(sess, ""), nil
}

// Mark は正誤を記録します。ストアへの書き込みが成功してからセッション内のカウンタを更新するので、
// 失敗時は answer_revealed のまま再送できる
func (s *studyService) Mark(ctx context.Context, sessionID string, correct bool) (*model.StudyView, error) {
	sess, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cur, ok := sess.Current()
	if !ok || sess.Phase != model.PhaseAnswerRevealed {
		return nil, s.reject(ctx, sess, model.NewAppError("INVALID_STATE", msgInvalidState, "", model.ErrInvalidState))
	}

	updated := *cur
	updated.Tried++
	if correct {
		updated.Correct++
	}

	if err := s.records.UpdateCounts(ctx, updated, s.opts.VerifyRowBeforeWrite); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, s.reject(ctx, sess, model.NewAppError("ROW_CONFLICT", msgRowConflict, "", err))
		}
		return nil, s.reject(ctx, sess, model.NewAppError("STORE_UNAVAILABLE", msgStoreFailure, "", err))
	}

	*cur = updated
	sess.ClearCurrent()
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.metrics.IncMark(correct)
	middleware.GetLogger(ctx).Info("Answer marked",
		"row", updated.RowNumber(),
		"correct", correct,
		"tried", updated.Tried,
	)
	return buildView(sess, NotifySaved), nil
}

func (s *studyService) Reload(ctx context.Context, sessionID string) (*model.StudyView, error) {
	sess, err := s.getOrNew(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.load(ctx, sess)
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	notification := NotifyReloaded
	if sess.LoadError != "" {
		notification = ""
	}
	return buildView(sess, notification), nil
}

// AddRecord は問題を追加し、セッションのレコードを読み込み直します
func (s *studyService) AddRecord(ctx context.Context, sessionID string, req *model.AddRecordRequest, img *model.ImageUpload) (*model.AddRecordResult, error) {
	result, err := s.records.AddRecord(ctx, req, img)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidInput):
			return nil, model.NewAppError("VALIDATION_ERROR", "科目・問題・正解は必須です。", "", err)
		case errors.Is(err, model.ErrConflict):
			return nil, model.NewAppError("CONFLICT", "同時に追加されたため保存できませんでした。もう一度お試しください。", "", err)
		default:
			return nil, model.NewAppError("STORE_UNAVAILABLE", msgStoreFailure, "", err)
		}
	}

	// レコード自体は保存済みなので、セッションの更新に失敗しても結果は返す
	sess, err := s.getOrNew(ctx, sessionID)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Record added but session could not be read", "error", err)
		return result, nil
	}
	s.load(ctx, sess)
	if err := s.save(ctx, sess); err != nil {
		middleware.GetLogger(ctx).Warn("Record added but session refresh failed", "error", err)
	}
	return result, nil
}

// List は一覧画面用にセッションのレコードを返します (編集はスプレッドシートで行う)
func (s *studyService) List(ctx context.Context, sessionID string) (*model.RecordListResponse, error) {
	sess, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return &model.RecordListResponse{
		Records:   sess.Records,
		Caption:   s.opts.ListCaption,
		LoadError: sess.LoadError,
	}, nil
}

func buildView(sess *model.StudySession, notification string) *model.StudyView {
	view := &model.StudyView{
		Subjects:     Subjects(sess.Records),
		Subject:      sess.Subject,
		Mode:         sess.Mode,
		Phase:        sess.Phase,
		ShowAnswer:   sess.ShowAnswer,
		RecordCount:  len(sess.Records),
		LoadError:    sess.LoadError,
		Notification: notification,
	}
	if cur, ok := sess.Current(); ok {
		q := &model.QuestionView{
			ID:       cur.ID,
			Subject:  cur.Subject,
			Question: cur.Question,
			ImageURL: cur.ImageURL,
			Tried:    cur.Tried,
			Correct:  cur.Correct,
		}
		if sess.ShowAnswer {
			q.Answer = cur.Answer
		}
		view.Current = q
	}
	return view
}
