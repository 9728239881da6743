package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-deck-kit/internal/builder"
	"github.com/shouni/go-deck-kit/internal/config"

	"github.com/shouni/go-deck-kit/pkg/asset"
	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/parser"
	"github.com/shouni/go-deck-kit/pkg/publisher"
)

// Execute は、リクエストからアウトライン生成・描画・エクスポートまでを一気に実行するのだ。
// アウトラインは出力ディレクトリに outline.json として残すのだよ。
func Execute(ctx context.Context, cfg *config.Config) (string, error) {
	appCtx, deck, err := setup(ctx, cfg, true)
	if err != nil {
		return "", err
	}
	opts := appCtx.Options
	outputDir := resolveOutputDir(cfg)

	// --- Phase 1: Outline Phase (構成案の作成) ---
	outlinePath, err := asset.ResolveOutputPath(outputDir, asset.DefaultOutlineJSON)
	if err != nil {
		return "", fmt.Errorf("アウトラインの保存先の解決に失敗したのだ: %w", err)
	}
	outline, err := deck.runners.Outline.RunAndSave(ctx, requestFromOptions(opts), outlinePath)
	if err != nil {
		return "", err
	}

	// --- Phase 2 & 3: Render / Publish Phase ---
	dest, err := resolveDeckDest(cfg, *outline)
	if err != nil {
		return "", err
	}
	if err := deck.Build(ctx, outline, opts.ColorPalette, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// ExecuteOutlineOnly は、アウトラインだけを生成して JSON として保存するのだ。
func ExecuteOutlineOnly(ctx context.Context, cfg *config.Config) (string, error) {
	appCtx, deck, err := setup(ctx, cfg, true)
	if err != nil {
		return "", err
	}

	outputPath := appCtx.Options.OutputFile
	if outputPath == "" {
		outputPath, err = asset.ResolveOutputPath(resolveOutputDir(cfg), asset.DefaultOutlineJSON)
		if err != nil {
			return "", fmt.Errorf("アウトラインの保存先の解決に失敗したのだ: %w", err)
		}
	}

	if _, err := deck.runners.Outline.RunAndSave(ctx, requestFromOptions(appCtx.Options), outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

// ExecuteRenderOnly は、アウトラインからスライドの HTML と shared.css を書き出すのだ。
// --outline-file がなければその場でアウトラインを生成するのだよ。
// アウトラインを読み込むだけなら API キーは要らないのだ。
func ExecuteRenderOnly(ctx context.Context, cfg *config.Config) ([]string, error) {
	appCtx, deck, err := setup(ctx, cfg, cfg.Options.OutlineFile == "")
	if err != nil {
		return nil, err
	}
	opts := appCtx.Options

	var outline *domain.Outline
	if opts.OutlineFile != "" {
		outline, err = loadOutline(cfg, opts.OutlineFile)
		if err != nil {
			return nil, err
		}
	} else {
		outline = deck.Outline(ctx, requestFromOptions(opts))
	}

	paths, err := deck.runners.Render.RunAndSave(ctx, outline, opts.ColorPalette, resolveOutputDir(cfg))
	if err != nil {
		return nil, fmt.Errorf("スライドの書き出しに失敗したのだ: %w", err)
	}
	return paths, nil
}

// ExecuteExportOnly は、保存済みのアウトライン JSON を読み込んでデッキに変換するのだ。
// モデルは呼ばないので API キーがなくても動くのだよ。
func ExecuteExportOnly(ctx context.Context, cfg *config.Config) (string, error) {
	appCtx, deck, err := setup(ctx, cfg, false)
	if err != nil {
		return "", err
	}
	opts := appCtx.Options

	if opts.OutlineFile == "" {
		return "", fmt.Errorf("アウトラインの JSON ファイル（--outline-file）を指定してほしいのだ")
	}
	outline, err := loadOutline(cfg, opts.OutlineFile)
	if err != nil {
		return "", err
	}

	dest, err := resolveDeckDest(cfg, *outline)
	if err != nil {
		return "", err
	}
	if err := deck.Build(ctx, outline, opts.ColorPalette, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Setup は HTTP サーバーなど長く生きる呼び出し元のために Deck を構築するのだ。
func Setup(ctx context.Context, cfg *config.Config) (*Deck, error) {
	_, deck, err := setup(ctx, cfg, true)
	return deck, err
}

// setup は、設定から Manager と Runner 群を組み立てて Deck を返すのだ。
// needsModel が false のときはモデルを使わないので、オフライン扱いで組み立てるのだ。
func setup(ctx context.Context, cfg *config.Config, needsModel bool) (*builder.AppContext, *Deck, error) {
	if !needsModel && !cfg.Options.Offline {
		local := *cfg
		local.Options.Offline = true
		cfg = &local
	}

	mgr, err := builder.BuildManager(ctx, cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	appCtx := builder.NewAppContext(cfg, mgr)
	runners, err := builder.BuildRunners(&appCtx)
	if err != nil {
		return nil, nil, err
	}
	return &appCtx, NewDeck(runners), nil
}

// loadOutline はアウトライン JSON を読み込み、スキーマ検証してから返すのだ。
func loadOutline(cfg *config.Config, path string) (*domain.Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("アウトライン '%s' の読み込みに失敗したのだ: %w", path, err)
	}

	kc := cfg.KitConfig()
	p := parser.NewOutlineParser(parser.Limits{
		MaxResponseBytes: kc.MaxResponseBytes,
		MaxNestingDepth:  kc.MaxNestingDepth,
	})
	outline, err := p.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("アウトライン '%s' の形式が不正なのだ: %w", path, err)
	}

	slog.Info("アウトラインを読み込んだのだ", "path", path, "slides", len(outline.Slides))
	return outline, nil
}

func resolveOutputDir(cfg *config.Config) string {
	if cfg.Options.OutputDir != "" {
		return cfg.Options.OutputDir
	}
	return cfg.OutputDir
}

// resolveDeckDest は --output-file があればそれを、なければタイトルから決めたパスを返すのだ。
func resolveDeckDest(cfg *config.Config, outline domain.Outline) (string, error) {
	if cfg.Options.OutputFile != "" {
		return cfg.Options.OutputFile, nil
	}
	dest, err := publisher.ResolveDeckPath(resolveOutputDir(cfg), outline)
	if err != nil {
		return "", fmt.Errorf("デッキの保存先の解決に失敗したのだ: %w", err)
	}
	return dest, nil
}

func requestFromOptions(opts config.GenerateOptions) domain.PresentationRequest {
	return domain.PresentationRequest{
		Topic:          opts.Topic,
		Tone:           opts.Tone,
		TargetAudience: opts.TargetAudience,
		SlideCount:     opts.SlideCount,
		ColorPalette:   opts.ColorPalette,
		IncludeCharts:  opts.IncludeCharts,
		IncludeImages:  opts.IncludeImages,
	}
}
