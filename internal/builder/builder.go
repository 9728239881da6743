package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-deck-kit/internal/config"
	"github.com/shouni/go-deck-kit/internal/metrics"

	"github.com/shouni/go-deck-kit/pkg/generator"
	"github.com/shouni/go-deck-kit/pkg/workflow"
)

// Runners は1回のデッキ生成に使う Runner 一式です。
type Runners struct {
	Outline workflow.OutlineRunner
	Render  workflow.RenderRunner
	Publish workflow.PublishRunner
}

// BuildManager は設定から workflow.Manager を構築します。
// aiClient が nil の場合は設定に従って Gemini クライアントを初期化します。
func BuildManager(ctx context.Context, cfg *config.Config, aiClient generator.ContentGenerator) (*workflow.Manager, error) {
	mgr, err := workflow.New(ctx, workflow.ManagerArgs{
		Config:   cfg.KitConfig(),
		AIClient: aiClient,
		Observer: metrics.OutlineObserver{},
	})
	if err != nil {
		return nil, fmt.Errorf("ワークフローの初期化に失敗しました: %w", err)
	}
	return mgr, nil
}

// BuildRunners はアウトライン生成・描画・エクスポートの Runner をまとめて構築します。
func BuildRunners(appCtx *AppContext) (*Runners, error) {
	outlineRunner, err := appCtx.Manager.BuildOutlineRunner()
	if err != nil {
		return nil, fmt.Errorf("OutlineRunnerの構築に失敗しました: %w", err)
	}
	renderRunner, err := appCtx.Manager.BuildRenderRunner()
	if err != nil {
		return nil, fmt.Errorf("RenderRunnerの構築に失敗しました: %w", err)
	}
	publishRunner, err := appCtx.Manager.BuildPublishRunner()
	if err != nil {
		return nil, fmt.Errorf("PublishRunnerの構築に失敗しました: %w", err)
	}

	return &Runners{
		Outline: outlineRunner,
		Render:  renderRunner,
		Publish: publishRunner,
	}, nil
}
