package handlers

import (
	"log/slog"
	"net/http"

	"go_study_sheet/internal/middleware"
	"go_study_sheet/internal/model"
	"go_study_sheet/internal/service"
	"go_study_sheet/internal/webutil"
)

// StudyHandler は学習画面 (出題・答え表示・正誤記録・再読み込み) のハンドラ
type StudyHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewStudyHandler(s service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		service: s,
		logger:  logger,
	}
}

// sessionLogger はハンドラ名とセッションIDを付けたロガーを返します。セッションがなければエラーを書き込む
func sessionLogger(w http.ResponseWriter, r *http.Request, base *slog.Logger, handler string) (string, *slog.Logger, bool) {
	logger := base.With(slog.String("handler", handler))
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Error("Session ID missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return "", logger, false
	}
	return sessionID, logger.With(slog.String("session_id", sessionID)), true
}

// GetStudy は現在の学習画面の状態を返します
func (h *StudyHandler) GetStudy(w http.ResponseWriter, r *http.Request) {
	sessionID, logger, ok := sessionLogger(w, r, h.logger, "GetStudy")
	if !ok {
		return
	}

	view, err := h.service.View(r.Context(), sessionID)
	if err != nil {
		logger.Error("Error getting study view", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// PostDraw は問題を1問出題します
func (h *StudyHandler) PostDraw(w http.ResponseWriter, r *http.Request) {
	sessionID, logger, ok := sessionLogger(w, r, h.logger, "PostDraw")
	if !ok {
		return
	}

	var req model.DrawRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.Draw(r.Context(), sessionID, &req)
	if err != nil {
		logger.Warn("Error drawing question", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// PostReveal は出題中の問題の答えを表示します
func (h *StudyHandler) PostReveal(w http.ResponseWriter, r *http.Request) {
	sessionID, logger, ok := sessionLogger(w, r, h.logger, "PostReveal")
	if !ok {
		return
	}

	view, err := h.service.Reveal(r.Context(), sessionID)
	if err != nil {
		logger.Warn("Error revealing answer", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// PostMark は正誤を記録します
func (h *StudyHandler) PostMark(w http.ResponseWriter, r *http.Request) {
	sessionID, logger, ok := sessionLogger(w, r, h.logger, "PostMark")
	if !ok {
		return
	}

	var req model.MarkRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.Mark(r.Context(), sessionID, *req.Correct)
	if err != nil {
		logger.Error("Error marking answer", slog.Any("error", err), slog.Bool("correct", *req.Correct))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// PostReload はストアからレコードを読み込み直します
func (h *StudyHandler) PostReload(w http.ResponseWriter, r *http.Request) {
	sessionID, logger, ok := sessionLogger(w, r, h.logger, "PostReload")
	if !ok {
		return
	}

	view, err := h.service.Reload(r.Context(), sessionID)
	if err != nil {
		logger.Error("Error reloading records", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Records reloaded", slog.Int("count", view.RecordCount))
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}
