package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"go_study_sheet/internal/model"
)

// 画像付きフォームの上限
const MaxUploadBytes = 10 << 20

// DecodeJSONBody はリクエストボディをデコードします。空ボディは許可する
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode json body: %v: %w", err, model.ErrInvalidInput)
	}
	return nil
}

// IsMultipart はフォーム送信 (画像付き) かどうかを判定します
func IsMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

// DecodeAddRecordForm は multipart フォームから問題と画像を取り出します。
// 画像が添付されていなければ nil を返す
func DecodeAddRecordForm(w http.ResponseWriter, r *http.Request) (*model.AddRecordRequest, *model.ImageUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %v: %w", err, model.ErrInvalidInput)
	}

	req := &model.AddRecordRequest{
		Subject:  strings.TrimSpace(r.FormValue("subject")),
		Question: r.FormValue("question"),
		Answer:   r.FormValue("answer"),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil, nil
		}
		return nil, nil, fmt.Errorf("read image field: %v: %w", err, model.ErrInvalidInput)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read image: %v: %w", err, model.ErrInvalidInput)
	}
	if len(data) == 0 {
		return req, nil, nil
	}
	return req, &model.ImageUpload{Filename: header.Filename, Data: data}, nil
}
