package workflow

import (
	"context"

	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/renderer"
)

// Workflow は、デッキ生成ワークフローの各工程を担当するRunnerを構築するためのインターフェースを定義します。
type Workflow interface {
	BuildOutlineRunner() (OutlineRunner, error)
	BuildRenderRunner() (RenderRunner, error)
	BuildPublishRunner() (PublishRunner, error)
}

// OutlineRunner は、リクエストから構造化されたアウトラインを生成する責務を持ちます。
type OutlineRunner interface {
	Run(ctx context.Context, req domain.PresentationRequest) *domain.Outline
	RunAndSave(ctx context.Context, req domain.PresentationRequest, outputPath string) (*domain.Outline, error)
}

// RenderRunner は、アウトラインとパレットからスライド HTML と共有スタイルシートを生成する責務を持ちます。
type RenderRunner interface {
	Run(ctx context.Context, outline *domain.Outline, paletteName string) (renderer.DocumentSet, error)
	RunAndSave(ctx context.Context, outline *domain.Outline, paletteName, outputDir string) ([]string, error)
}

// PublishRunner は、描画済みの文書から .pptx デッキを書き出す責務を持ちます。
type PublishRunner interface {
	Run(ctx context.Context, docs renderer.DocumentSet, dest string) error
}
