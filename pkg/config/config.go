package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel       = "gemini-3-flash-preview"
	DefaultRateInterval      = 2 * time.Second
	DefaultRateBurst         = 1
	DefaultMaxResponseBytes  = 1 << 20
	DefaultMaxNestingDepth   = 64
	DefaultConverterCommand  = "node"
	DefaultConverterModule   = "@ant/html2pptx"
	DefaultRenderConcurrency = 4
	DefaultRequestTimeout    = 3 * time.Minute
	DefaultSessionTTL        = 1 * time.Hour
	DefaultDeckAuthor        = "go-deck-kit"
)

// Config は Go Deck Kit の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiAPIKey string
	GeminiModel  string

	// Offline が true の場合はモデルを呼び出さず、常にフォールバックのアウトラインを使います。
	Offline bool

	// --- Generation Settings ---
	RateInterval time.Duration
	RateBurst    int

	// --- Response Parsing ---
	MaxResponseBytes int
	MaxNestingDepth  int

	// --- Rendering ---
	RenderConcurrency int

	// --- Export Settings ---
	ConverterCommand string // 例: "node"
	ConverterModule  string // html2pptx を提供する Node モジュール
	DeckAuthor       string
	KeepScratch      bool // 変換用の作業ディレクトリを残す

	// --- Timeout & Sessions ---
	RequestTimeout time.Duration
	SessionTTL     time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:       DefaultGeminiModel,
		RateInterval:      DefaultRateInterval,
		RateBurst:         DefaultRateBurst,
		MaxResponseBytes:  DefaultMaxResponseBytes,
		MaxNestingDepth:   DefaultMaxNestingDepth,
		RenderConcurrency: DefaultRenderConcurrency,
		ConverterCommand:  DefaultConverterCommand,
		ConverterModule:   DefaultConverterModule,
		DeckAuthor:        DefaultDeckAuthor,
		RequestTimeout:    DefaultRequestTimeout,
		SessionTTL:        DefaultSessionTTL,
	}
}
