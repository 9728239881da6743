package runner

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-deck-kit/pkg/config"
	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/generator"
	"github.com/shouni/go-deck-kit/pkg/publisher"
	"github.com/shouni/go-deck-kit/pkg/renderer"
)

type fallbackProvider struct{}

func (fallbackProvider) Generate(_ context.Context, req domain.PresentationRequest) *domain.Outline {
	return generator.BuildFallbackOutline(req)
}

type stubExporter struct {
	err  error
	docs renderer.DocumentSet
	dest string
}

func (s *stubExporter) Export(_ context.Context, docs renderer.DocumentSet, dest string) error {
	s.docs = docs
	s.dest = dest
	return s.err
}

func TestDeckOutlineRunner_RunAndSave(t *testing.T) {
	r := NewDeckOutlineRunner(config.DefaultConfig(), fallbackProvider{}, publisher.LocalWriter{})
	path := filepath.Join(t.TempDir(), "out", "outline.json")

	outline, err := r.RunAndSave(context.Background(), domain.PresentationRequest{Topic: "Go", SlideCount: 3}, path)
	if err != nil {
		t.Fatalf("RunAndSave() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("保存されたファイルを読めません: %v", err)
	}
	var saved domain.Outline
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("保存された JSON が不正です: %v", err)
	}
	if saved.Title != "Go" || len(saved.Slides) != len(outline.Slides) {
		t.Errorf("保存内容が一致しません: %+v", saved)
	}
}

func TestDeckRenderRunner_Run(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RenderConcurrency = 2
	r := NewDeckRenderRunner(cfg, renderer.NewRenderer(), publisher.LocalWriter{})

	outline := &domain.Outline{
		Title: "Order",
		Slides: []domain.Slide{
			{SlideNumber: 3, Type: domain.SlideTypeConclusion, Title: "C", Layout: domain.LayoutSingleColumn},
			{SlideNumber: 1, Type: domain.SlideTypeTitle, Title: "A"},
			{SlideNumber: 2, Type: domain.SlideTypeContent, Title: "B", Layout: domain.LayoutTwoColumn},
			{SlideNumber: 4, Type: domain.SlideTypeContent, Title: "D", Layout: domain.LayoutThreeColumn},
		},
	}

	t.Run("スライド番号順に揃う", func(t *testing.T) {
		set, err := r.Run(context.Background(), outline, "red")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		want := []string{"slide_1.html", "slide_2.html", "slide_3.html", "slide_4.html"}
		if len(set.Slides) != len(want) {
			t.Fatalf("文書数 = %d, want %d", len(set.Slides), len(want))
		}
		for i, name := range want {
			if set.Slides[i].Name != name {
				t.Errorf("Slides[%d].Name = %q, want %q", i, set.Slides[i].Name, name)
			}
		}
		if set.Stylesheet.Name != "shared.css" || set.Title != "Order" {
			t.Errorf("スタイルシートまたはタイトルが不正です: %q %q", set.Stylesheet.Name, set.Title)
		}
		if outline.Slides[0].SlideNumber != 3 {
			t.Error("入力のアウトラインが変更されています")
		}
	})

	t.Run("キャンセル済みのコンテキスト", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := r.Run(ctx, outline, "red"); !errors.Is(err, context.Canceled) {
			t.Errorf("context.Canceled を期待しましたが %v でした", err)
		}
	})

	t.Run("保存", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := r.RunAndSave(context.Background(), outline, "red", dir)
		if err != nil {
			t.Fatalf("RunAndSave() error = %v", err)
		}
		if len(paths) != 5 {
			t.Fatalf("保存数 = %d, want 5", len(paths))
		}
		for _, p := range paths {
			if _, err := os.Stat(p); err != nil {
				t.Errorf("%s が保存されていません", p)
			}
		}
	})

	t.Run("アウトラインなし", func(t *testing.T) {
		if _, err := r.Run(context.Background(), nil, "red"); err == nil {
			t.Error("エラーを期待しました")
		}
	})
}

func TestDefaultPublishRunner_Run(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		exp := &stubExporter{}
		pr := NewDefaultPublishRunner(config.DefaultConfig(), exp)
		docs := renderer.DocumentSet{Title: "T", Slides: []renderer.Document{{Name: "slide_1.html"}}}
		if err := pr.Run(context.Background(), docs, "/tmp/t.pptx"); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if exp.dest != "/tmp/t.pptx" || len(exp.docs.Slides) != 1 {
			t.Error("エクスポーターに正しく渡されていません")
		}
	})

	t.Run("失敗はそのまま返す", func(t *testing.T) {
		pr := NewDefaultPublishRunner(config.DefaultConfig(), &stubExporter{err: publisher.ErrExportFailed})
		if err := pr.Run(context.Background(), renderer.DocumentSet{}, "x"); !errors.Is(err, publisher.ErrExportFailed) {
			t.Errorf("ErrExportFailed を期待しましたが %v でした", err)
		}
	})
}
