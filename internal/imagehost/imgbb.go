//go:generate mockery --name Uploader --output ./mocks --outpkg mocks --case=underscore
package imagehost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"go_study_sheet/internal/config"
)

// ErrUploaderDisabled は API キー未設定で画像アップロードが無効なときに返す
var ErrUploaderDisabled = errors.New("image uploader is disabled")

// Uploader は画像のバイト列を外部ホストに送り、公開URLを返します
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

type uploadResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type imgbbClient struct {
	endpoint   string
	apiKey     string
	expiration int
	httpClient *http.Client
}

// NewUploader は設定から Uploader を作ります。API キーがなければ無効な Uploader を返す
func NewUploader(cfg config.ImageHostConfig) Uploader {
	if cfg.APIKey == "" {
		return disabledUploader{}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultImageHostEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultImageHostTimeout
	}
	return &imgbbClient{
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
		expiration: cfg.Expiration,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Upload は ImgBB 形式 (key + base64 image) で画像を送ります
func (c *imgbbClient) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("imagehost: empty image data")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("key", c.apiKey); err != nil {
		return "", err
	}
	if err := w.WriteField("image", base64.StdEncoding.EncodeToString(data)); err != nil {
		return "", err
	}
	if filename != "" {
		if err := w.WriteField("name", filename); err != nil {
			return "", err
		}
	}
	if c.expiration > 0 {
		if err := w.WriteField("expiration", strconv.Itoa(c.expiration)); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("imagehost: build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagehost upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("imagehost: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("imagehost error %d: %s", resp.StatusCode, string(body))
	}

	var result uploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode imagehost response: %w", err)
	}
	if !result.Success || result.Data.URL == "" {
		msg := result.Error.Message
		if msg == "" {
			msg = "success=false"
		}
		return "", fmt.Errorf("imagehost rejected upload: %s", msg)
	}
	return result.Data.URL, nil
}

type disabledUploader struct{}

func (disabledUploader) Upload(context.Context, []byte, string) (string, error) {
	return "", ErrUploaderDisabled
}

