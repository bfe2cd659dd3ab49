// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "StudySheet"
	AppVersion = "1.0.0"
)

const (
	StoreBackendSheets   = "sheets"
	StoreBackendDatabase = "database"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// デフォルト設定値
const (
	DefaultServerPort        = ":8080"
	DefaultLogLevel          = "info"
	DefaultSheetName         = "Sheet1"
	DefaultImageHostEndpoint = "https://api.imgbb.com/1/upload"
	DefaultImageHostTimeout  = 30 * time.Second
	DefaultSessionCookieName = "study_session"
	DefaultSessionTTL        = 24 * time.Hour
	DefaultStudyMode         = "smart"
	DefaultListCaption       = "修正・削除はスプレッドシートで直接行う方が速く正確です。"
)
