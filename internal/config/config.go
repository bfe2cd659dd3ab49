// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Store     StoreConfig     `mapstructure:"store"`
	Sheets    SheetsConfig    `mapstructure:"sheets"`
	Database  DatabaseConfig  `mapstructure:"database"`
	ImageHost ImageHostConfig `mapstructure:"image_host"`
	Session   SessionConfig   `mapstructure:"session"`
	App       AppConfig       `mapstructure:"app"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// StoreConfig はレコードの保存先 (sheets / database) を選択します
type StoreConfig struct {
	Backend              string `mapstructure:"backend"`
	VerifyRowBeforeWrite bool   `mapstructure:"verify_row_before_write"`
}

type SheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	SheetName       string `mapstructure:"sheet_name"`
	CredentialsFile string `mapstructure:"credentials_file"`
	// CredentialsJSON はサービスアカウントJSONを直接渡す場合に使う (環境変数向け)
	CredentialsJSON string `mapstructure:"credentials_json"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type ImageHostConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Expiration int           `mapstructure:"expiration"` // 秒。0 なら無期限
}

type SessionConfig struct {
	Backend       string        `mapstructure:"backend"` // memory | redis
	CookieName    string        `mapstructure:"cookie_name"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

type AppConfig struct {
	DefaultMode string `mapstructure:"default_mode"`
	ListCaption string `mapstructure:"list_caption"`
}

var Cfg Config

var envKeys = []string{
	"server.port",
	"log.level",
	"store.backend",
	"store.verify_row_before_write",
	"sheets.spreadsheet_id",
	"sheets.sheet_name",
	"sheets.credentials_file",
	"database.driver",
	"database.url",
	"image_host.endpoint",
	"image_host.timeout",
	"image_host.expiration",
	"session.backend",
	"session.cookie_name",
	"session.ttl",
	"session.redis_addr",
	"session.redis_password",
	"session.redis_db",
	"app.default_mode",
	"app.list_caption",
}

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_SHEETS_SPREADSHEET_ID のように環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv は設定ファイルにないキーを Unmarshal に渡さないので明示的に登録する
	for _, key := range envKeys {
		v.BindEnv(key)
	}
	v.BindEnv("sheets.credentials_json", "APP_SHEETS_CREDENTIALS_JSON", "GOOGLE_SERVICE_ACCOUNT_JSON")
	v.BindEnv("image_host.api_key", "APP_IMAGE_HOST_API_KEY", "IMGBB_API_KEY")

	v.SetDefault("store.verify_row_before_write", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Store Backend: %s", Cfg.Store.Backend)
	log.Printf("Session Backend: %s", Cfg.Session.Backend)
	log.Printf("Image Host Enabled: %t", Cfg.ImageHost.APIKey != "")

	return nil
}

// --- デフォルト値の設定 ---
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = StoreBackendSheets
	}
	if cfg.Sheets.SheetName == "" {
		cfg.Sheets.SheetName = DefaultSheetName
	}
	if cfg.Store.Backend == StoreBackendSheets && cfg.Sheets.SpreadsheetID == "" {
		log.Println("Warning: Spreadsheet ID is not set in config.")
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.ImageHost.Endpoint == "" {
		cfg.ImageHost.Endpoint = DefaultImageHostEndpoint
	}
	if cfg.ImageHost.Timeout <= 0 {
		cfg.ImageHost.Timeout = DefaultImageHostTimeout
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = SessionBackendMemory
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = DefaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = DefaultSessionTTL
	}
	if cfg.App.DefaultMode == "" {
		cfg.App.DefaultMode = DefaultStudyMode
	}
	if cfg.App.ListCaption == "" {
		cfg.App.ListCaption = DefaultListCaption
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
}
