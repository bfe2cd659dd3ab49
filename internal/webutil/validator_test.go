package webutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_study_sheet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		err := ValidateStruct(&model.AddRecordRequest{Subject: "英語", Question: "apple", Answer: "りんご"})
		assert.NoError(t, err)
	})

	t.Run("異常系: 必須項目なし", func(t *testing.T) {
		err := ValidateStruct(&model.AddRecordRequest{Subject: "英語", Answer: "りんご"})
		require.Error(t, err)

		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Equal(t, "question", appErr.Detail.Field)
		assert.Contains(t, appErr.Detail.Message, "問題は必須項目です")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 出題モードが不正", func(t *testing.T) {
		err := ValidateStruct(&model.DrawRequest{Mode: "hard"})
		require.Error(t, err)
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "mode", appErr.Detail.Field)
		assert.Contains(t, appErr.Detail.Message, "出題モード")
	})

	t.Run("異常系: 正誤が未指定", func(t *testing.T) {
		err := ValidateStruct(&model.MarkRequest{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"AppError 409", model.NewAppError("STATE", "まず問題を出してください。", "", model.ErrInvalidState), http.StatusConflict, "STATE"},
		{"AppError 404", model.NewAppError("NO_QUESTIONS", "問題がありません。", "", model.ErrNoCandidates), http.StatusNotFound, "NO_QUESTIONS"},
		{"AppError 502", model.NewAppError("STORE", "保存に失敗しました。", "", model.ErrStoreUnavailable), http.StatusBadGateway, "STORE"},
		{"予期せぬエラー", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HandleError(rr, nil, tt.err)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), `"code":"`+tt.wantCode+`"`)
			assert.NotContains(t, rr.Body.String(), "boom")
		})
	}
}
