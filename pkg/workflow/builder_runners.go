package workflow

import (
	"github.com/shouni/go-deck-kit/pkg/publisher"
	"github.com/shouni/go-deck-kit/pkg/renderer"
	"github.com/shouni/go-deck-kit/pkg/runner"
)

// BuildOutlineRunner は、アウトライン生成を担当する Runner を作成します。
func (m *Manager) BuildOutlineRunner() (OutlineRunner, error) {
	return runner.NewDeckOutlineRunner(m.cfg, m.outlineProvider, m.writer), nil
}

// BuildRenderRunner は、スライド描画を担当する Runner を作成します。
func (m *Manager) BuildRenderRunner() (RenderRunner, error) {
	return runner.NewDeckRenderRunner(m.cfg, renderer.NewRenderer(), m.writer), nil
}

// BuildPublishRunner は、デッキのエクスポートを担当する Runner を作成します。
func (m *Manager) BuildPublishRunner() (PublishRunner, error) {
	pub := publisher.NewDeckPublisher(publisher.Options{
		Command:     m.cfg.ConverterCommand,
		Module:      m.cfg.ConverterModule,
		Author:      m.cfg.DeckAuthor,
		KeepScratch: m.cfg.KeepScratch,
	}, m.writer)
	return runner.NewDefaultPublishRunner(m.cfg, pub), nil
}
