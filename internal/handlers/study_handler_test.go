package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go_study_sheet/internal/model"
	"go_study_sheet/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStudyHandler_GetStudy(t *testing.T) {
	mockStudyService := mocks.NewMockStudyService(t)
	router := newTestRouter(mockStudyService)
	sessionID := uuid.NewString()

	view := &model.StudyView{Subjects: []string{"ALL", "英語"}, Subject: "ALL", Mode: model.ModeSmart, Phase: model.PhaseIdle, RecordCount: 2}
	mockStudyService.On("View", mock.Anything, sessionID).Return(view, nil).Once()

	rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/study", SessionID: sessionID})
	require.Equal(t, http.StatusOK, rr.Code)

	var got model.StudyView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, view.Subjects, got.Subjects)
	assert.Equal(t, 2, got.RecordCount)

	c := sessionCookie(rr)
	require.NotNil(t, c)
	assert.Equal(t, sessionID, c.Value)
}

func TestStudyHandler_GetStudy_IssuesSession(t *testing.T) {
	mockStudyService := mocks.NewMockStudyService(t)
	router := newTestRouter(mockStudyService)

	mockStudyService.On("View", mock.Anything, mock.AnythingOfType("string")).Return(&model.StudyView{}, nil).Once()

	rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/study"})
	require.Equal(t, http.StatusOK, rr.Code)
	c := sessionCookie(rr)
	require.NotNil(t, c)
	_, err := uuid.Parse(c.Value)
	assert.NoError(t, err)
}

func TestStudyHandler_PostDraw(t *testing.T) {
	mockStudyService := mocks.NewMockStudyService(t)
	router := newTestRouter(mockStudyService)
	sessionID := uuid.NewString()

	drawn := &model.StudyView{
		Phase:   model.PhaseQuestionShown,
		Current: &model.QuestionView{ID: uuid.New(), Subject: "英語", Question: "apple"},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 科目とモードを指定",
			body: model.DrawRequest{Subject: "英語", Mode: model.ModeRandom},
			setupMock: func() {
				mockStudyService.On("Draw", mock.Anything, sessionID, &model.DrawRequest{Subject: "英語", Mode: model.ModeRandom}).
					Return(drawn, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "正常系: ボディなしは全科目",
			body: nil,
			setupMock: func() {
				mockStudyService.On("Draw", mock.Anything, sessionID, &model.DrawRequest{}).Return(drawn, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 不正なモード",
			body:           map[string]string{"mode": "hard"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 未知のフィールド",
			body:           map[string]string{"subjects": "英語"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 候補なし",
			body: model.DrawRequest{Subject: "歴史"},
			setupMock: func() {
				mockStudyService.On("Draw", mock.Anything, sessionID, &model.DrawRequest{Subject: "歴史"}).
					Return(nil, model.NewAppError("NO_CANDIDATES", "問題がありません。", "subject", model.ErrNoCandidates)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NO_CANDIDATES",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/study/draw", Body: tc.body, SessionID: sessionID})
			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.expectedCode != "" {
				verifyErrorResponse(t, rr, tc.expectedCode)
				return
			}
			var got model.StudyView
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			require.NotNil(t, got.Current)
			assert.Equal(t, "apple", got.Current.Question)
			assert.Empty(t, got.Current.Answer)
		})
	}
}

func TestStudyHandler_PostReveal(t *testing.T) {
	mockStudyService := mocks.NewMockStudyService(t)
	router := newTestRouter(mockStudyService)
	sessionID := uuid.NewString()

	mockStudyService.On("Reveal", mock.Anything, sessionID).
		Return(&model.StudyView{Phase: model.PhaseAnswerRevealed, ShowAnswer: true, Current: &model.QuestionView{Answer: "りんご"}}, nil).Once()
	rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/study/reveal", SessionID: sessionID})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "りんご")

	mockStudyService.On("Reveal", mock.Anything, sessionID).
		Return(nil, model.NewAppError("INVALID_STATE", "この操作は現在の状態では実行できません。", "", model.ErrInvalidState)).Once()
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/study/reveal", SessionID: sessionID})
	assert.Equal(t, http.StatusConflict, rr.Code)
	verifyErrorResponse(t, rr, "INVALID_STATE")
}

func TestStudyHandler_PostMark(t *testing.T) {
	mockStudyService := mocks.NewMockStudyService(t)
	router := newTestRouter(mockStudyService)
	sessionID := uuid.NewString()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 正解",
			body: `{"correct": true}`,
			setupMock: func() {
				mockStudyService.On("Mark", mock.Anything, sessionID, true).
					Return(&model.StudyView{Phase: model.PhaseIdle, Notification: "保存しました!"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "正常系: 不正解",
			body: `{"correct": false}`,
			setupMock: func() {
				mockStudyService.On("Mark", mock.Anything, sessionID, false).
					Return(&model.StudyView{Phase: model.PhaseIdle}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: correct なし",
			body:           `{}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 行のずれ",
			body: `{"correct": true}`,
			setupMock: func() {
				mockStudyService.On("Mark", mock.Anything, sessionID, true).
					Return(nil, model.NewAppError("ROW_CONFLICT", "再読み込みしてください。", "", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ROW_CONFLICT",
		},
		{
			name: "異常系: ストア書き込み失敗",
			body: `{"correct": true}`,
			setupMock: func() {
				mockStudyService.On("Mark", mock.Anything, sessionID, true).
					Return(nil, model.NewAppError("STORE_UNAVAILABLE", "書き込みに失敗しました。", "", model.ErrStoreUnavailable)).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "STORE_UNAVAILABLE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/study/mark", Body: tc.body, SessionID: sessionID})
			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.expectedCode != "" {
				verifyErrorResponse(t, rr, tc.expectedCode)
			}
		})
	}
}

func TestStudyHandler_PostReload(t *testing.T) {
	mockStudyService := mocks.NewMockStudyService(t)
	router := newTestRouter(mockStudyService)
	sessionID := uuid.NewString()

	mockStudyService.On("Reload", mock.Anything, sessionID).
		Return(&model.StudyView{RecordCount: 0, LoadError: "データの読み込みに失敗しました: 403"}, nil).Once()

	rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/study/reload", SessionID: sessionID})
	require.Equal(t, http.StatusOK, rr.Code)

	var got model.StudyView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Contains(t, got.LoadError, "403")
}

func TestStudyHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	mockStudyService := mocks.NewMockStudyService(t)
	router := newTestRouter(mockStudyService)
	sessionID := uuid.NewString()

	mockStudyService.On("View", mock.Anything, sessionID).Return(nil, assert.AnError).Once()
	rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/study", SessionID: sessionID})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	verifyErrorResponse(t, rr, "INTERNAL_SERVER_ERROR")
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}
