package config

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shouni/go-utils/envutil"

	kitconfig "github.com/shouni/go-deck-kit/pkg/config"
)

// デフォルト値の定義なのだ
const (
	DefaultModel           = kitconfig.DefaultGeminiModel
	DefaultServerAddr      = ":5000"
	DefaultOutputDir       = "output"
	DefaultSessionDir      = "sessions"
	DefaultTopic           = "The Future of Renewable Energy"
	DefaultTone            = "professional"
	DefaultTargetAudience  = "business executives"
	DefaultSlideCount      = 5
	DefaultColorPalette    = "blue"
	DefaultOutlineFileName = "outline.json"
)

// Config はアプリケーション全体の環境設定（APIキーやコンバーター設定）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	ConverterCommand string
	ConverterModule  string
	ServerAddr       string
	OutputDir        string
	SessionTTL       time.Duration
	RequestTimeout   time.Duration
	RateInterval     time.Duration
	KeepScratch      bool

	Options GenerateOptions
}

// LoadConfig は .env と環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env ファイルは読み込まれなかったのだ", "error", err)
	}

	cfg := &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:      envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		ConverterCommand: envutil.GetEnv("CONVERTER_COMMAND", kitconfig.DefaultConverterCommand),
		ConverterModule:  envutil.GetEnv("HTML2PPTX_MODULE", kitconfig.DefaultConverterModule),
		ServerAddr:       envutil.GetEnv("SERVER_ADDR", DefaultServerAddr),
		OutputDir:        envutil.GetEnv("OUTPUT_DIR", DefaultOutputDir),
		SessionTTL:       durationEnv("SESSION_TTL", kitconfig.DefaultSessionTTL),
		RequestTimeout:   durationEnv("REQUEST_TIMEOUT", kitconfig.DefaultRequestTimeout),
		RateInterval:     durationEnv("RATE_INTERVAL", kitconfig.DefaultRateInterval),
		KeepScratch:      boolEnv("KEEP_SCRATCH", false),
	}
	return cfg
}

// KitConfig は pkg/config の設定に変換するのだ。CLI のオプションがあれば優先するのだよ。
func (c *Config) KitConfig() kitconfig.Config {
	kc := kitconfig.DefaultConfig()
	kc.GeminiAPIKey = c.GeminiAPIKey
	kc.GeminiModel = c.GeminiModel
	kc.ConverterCommand = c.ConverterCommand
	kc.ConverterModule = c.ConverterModule
	kc.RequestTimeout = c.RequestTimeout
	kc.SessionTTL = c.SessionTTL
	kc.RateInterval = c.RateInterval
	kc.KeepScratch = c.KeepScratch

	if c.Options.AIModel != "" {
		kc.GeminiModel = c.Options.AIModel
	}
	kc.Offline = c.Options.Offline
	if c.Options.RenderConcurrency > 0 {
		kc.RenderConcurrency = c.Options.RenderConcurrency
	}
	return kc
}

// SessionBaseDir はセッションごとの作業ディレクトリを置く場所なのだ。
func (c *Config) SessionBaseDir() string {
	return filepath.Join(c.OutputDir, DefaultSessionDir)
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("期間の形式が不正なので既定値を使うのだ", "key", key, "value", raw, "default", def)
		return def
	}
	return d
}

func boolEnv(key string, def bool) bool {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("真偽値の形式が不正なので既定値を使うのだ", "key", key, "value", raw)
		return def
	}
	return b
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// リクエスト関連
	Topic          string // --topic
	Tone           string // --tone
	TargetAudience string // --audience
	SlideCount     int    // --slides
	ColorPalette   string // --palette
	IncludeCharts  bool   // --charts
	IncludeImages  bool   // --images

	// 入出力関連
	OutlineFile string // --outline-file: 既存のアウトライン JSON
	OutputFile  string // --output-file
	OutputDir   string // --output-dir

	// AI挙動設定
	AIModel string // --model
	Offline bool   // --offline: モデルを呼ばずにフォールバックを使う

	// 実行制御
	RenderConcurrency int
}
