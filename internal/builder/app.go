package builder

import (
	"github.com/shouni/go-deck-kit/internal/config"

	"github.com/shouni/go-deck-kit/pkg/workflow"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config         // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、コンバーターなど）。
	Options config.GenerateOptions // Optionsは、コマンドラインから渡された実行時の設定です（トピック、パレット、モデル名など）。
	Manager *workflow.Manager      // Managerは、アウトライン生成・描画・エクスポートの各 Runner を組み立てます。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(cfg *config.Config, manager *workflow.Manager) AppContext {
	return AppContext{
		Config:  cfg,
		Options: cfg.Options,
		Manager: manager,
	}
}
