package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-deck-kit/internal/builder"
	"github.com/shouni/go-deck-kit/internal/metrics"

	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/publisher"
)

// エクスポート結果のラベルなのだ
const (
	exportStatusSuccess = "success"
	exportStatusFailure = "failure"
)

// Deck は CLI と HTTP サーバーの両方から使う、アウトライン生成とデッキ書き出しの窓口なのだ。
type Deck struct {
	runners *builder.Runners
}

// NewDeck は構築済みの Runner 群から Deck を作るのだ。
func NewDeck(runners *builder.Runners) *Deck {
	return &Deck{runners: runners}
}

// Outline はリクエストからアウトラインを生成するのだ。失敗してもフォールバックが返るのだよ。
func (d *Deck) Outline(ctx context.Context, req domain.PresentationRequest) *domain.Outline {
	return d.runners.Outline.Run(ctx, req)
}

// Build はアウトラインを描画して dest に .pptx を書き出すのだ。
func (d *Deck) Build(ctx context.Context, outline *domain.Outline, paletteName, dest string) error {
	docs, err := d.runners.Render.Run(ctx, outline, paletteName)
	if err != nil {
		return fmt.Errorf("スライドの描画に失敗したのだ: %w", err)
	}
	metrics.RecordRender(len(docs.Slides))

	start := time.Now()
	err = d.runners.Publish.Run(ctx, docs, dest)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordExport(exportStatusFailure, elapsed)
		return fmt.Errorf("デッキの書き出しに失敗したのだ: %w", err)
	}
	metrics.RecordExport(exportStatusSuccess, elapsed)

	slog.InfoContext(ctx, "デッキを書き出したのだ", "dest", dest, "slides", len(docs.Slides))
	return nil
}

// IsExportFailure はエラーがコンバーターの失敗によるものかを判定するのだ。
func IsExportFailure(err error) bool {
	return errors.Is(err, publisher.ErrExportFailed)
}
