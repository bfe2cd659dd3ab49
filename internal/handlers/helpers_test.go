// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_study_sheet/internal/handlers"
	"go_study_sheet/internal/middleware"
	"go_study_sheet/internal/model"
	"go_study_sheet/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "study_session"

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestRouter は本番と同じルーティングをテスト用に組み立てます
func newTestRouter(svc service.StudyService) http.Handler {
	studyHandler := handlers.NewStudyHandler(svc, testLogger)
	recordHandler := handlers.NewRecordHandler(svc, testLogger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(testCookieName, time.Hour))
		r.Get("/study", studyHandler.GetStudy)
		r.Post("/study/draw", studyHandler.PostDraw)
		r.Post("/study/reveal", studyHandler.PostReveal)
		r.Post("/study/mark", studyHandler.PostMark)
		r.Post("/study/reload", studyHandler.PostReload)
		r.Get("/records", recordHandler.GetRecords)
		r.Post("/records", recordHandler.PostRecord)
	})
	return r
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method    string
	Path      string
	Body      interface{}
	SessionID string
}

// sendRequest はルーターにリクエストを送り、レコーダーを返します。
func sendRequest(t *testing.T, router http.Handler, details httpRequestDetails) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			body = strings.NewReader(s)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			body = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(details.Method, details.Path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.SessionID != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: details.SessionID})
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// newMultipartRequest は画像付きの問題追加フォームを作ります
func newMultipartRequest(t *testing.T, fields map[string]string, filename string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// verifyErrorResponse はエラーレスポンスのコードを検証します。
func verifyErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "body: %s", rr.Body.String())
	assert.Equal(t, expectedCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}

// sessionCookie はレスポンスのセッションCookieを返します。
func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}
