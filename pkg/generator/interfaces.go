package generator

import (
	"context"

	"github.com/shouni/go-deck-kit/pkg/domain"
)

// ContentGenerator は、単一のプロンプトからテキスト応答を得る言語モデルの最小限の契約です。
type ContentGenerator interface {
	GenerateText(ctx context.Context, prompt, model string) (string, error)
}

// OutlineProvider は、プレゼンテーションのリクエストからアウトラインを得る契約です。
// 実装は失敗時もフォールバックのアウトラインを返し、nil を返しません。
type OutlineProvider interface {
	Generate(ctx context.Context, req domain.PresentationRequest) *domain.Outline
}

// Observer は、アウトライン生成の結果を計測系へ通知するためのフックです。
type Observer interface {
	// OutlineGenerated は生成元 (model / fallback) ごとに呼ばれます。
	OutlineGenerated(source string)
	// OutlineFailed はモデル経由の生成が失敗した工程ごとに呼ばれます。
	OutlineFailed(stage string)
}

type nopObserver struct{}

func (nopObserver) OutlineGenerated(string) {}
func (nopObserver) OutlineFailed(string)    {}
