package handlers

import (
	"log/slog"
	"net/http"

	"go_study_sheet/internal/model"
	"go_study_sheet/internal/service"
	"go_study_sheet/internal/webutil"
)

// RecordHandler は問題追加と一覧のハンドラ
type RecordHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewRecordHandler(s service.StudyService, logger *slog.Logger) *RecordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordHandler{
		service: s,
		logger:  logger,
	}
}

// PostRecord は問題を1件追加します。JSON か、画像付きなら multipart で受け付ける
func (h *RecordHandler) PostRecord(w http.ResponseWriter, r *http.Request) {
	sessionID, logger, ok := sessionLogger(w, r, h.logger, "PostRecord")
	if !ok {
		return
	}

	var (
		req *model.AddRecordRequest
		img *model.ImageUpload
	)
	if webutil.IsMultipart(r) {
		var err error
		req, img, err = webutil.DecodeAddRecordForm(w, r)
		if err != nil {
			logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "フォームの形式が正しくないか、画像が大きすぎます。", "image", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
	} else {
		req = &model.AddRecordRequest{}
		if err := webutil.DecodeJSONBody(r, req); err != nil {
			logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.AddRecord(r.Context(), sessionID, req, img)
	if err != nil {
		logger.Error("Error adding record", slog.Any("error", err), slog.String("subject", req.Subject))
		webutil.HandleError(w, logger, err)
		return
	}

	if result.Warning != "" {
		logger.Warn("Record added with warning", slog.String("warning", result.Warning))
	}
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}

// GetRecords はレコード一覧を返します。編集はスプレッドシート側で行う
func (h *RecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	sessionID, logger, ok := sessionLogger(w, r, h.logger, "GetRecords")
	if !ok {
		return
	}

	list, err := h.service.List(r.Context(), sessionID)
	if err != nil {
		logger.Error("Error listing records", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}
