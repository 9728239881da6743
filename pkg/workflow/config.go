package workflow

import (
	"errors"

	"github.com/shouni/go-deck-kit/pkg/config"
	"github.com/shouni/go-deck-kit/pkg/generator"
	"github.com/shouni/go-deck-kit/pkg/prompts"
	"github.com/shouni/go-deck-kit/pkg/publisher"
)

// アウトライン生成に使う温度です。
const defaultGeminiTemperature = float32(0.7)

// ErrMissingAPIKey はオフラインモードでないのに API キーが設定されていない場合に返されます。
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY が設定されていません")

// ManagerArgs は Manager の初期化に必要な設定と差し替え可能な依存関係です。
// nil のフィールドは既定の実装で補います。
type ManagerArgs struct {
	Config config.Config

	// AIClient を指定した場合は Gemini クライアントを生成せずにこれを使います。
	AIClient generator.ContentGenerator
	// OutlinePrompt はアウトライン生成プロンプトのビルダーです。
	OutlinePrompt prompts.OutlinePromptBuilder
	// Writer は生成物の保存先です。
	Writer publisher.OutputWriter
	// Observer はアウトライン生成の結果を受け取る計測フックです。
	Observer generator.Observer
}
