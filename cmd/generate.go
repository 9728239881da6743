package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-deck-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、構成案の生成からPowerPointへの変換までを一気に実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "構成案を生成して .pptx まで書き出すのだ。",
	Long: `トピックから構成案を作り、HTML スライドに描画して PowerPoint に変換するのだ。
構成案は outline.json として出力ディレクトリに残るのだよ。`,
	RunE: generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("デッキ生成パイプラインを起動するのだ！",
		"topic", opts.Topic,
		"slides", opts.SlideCount,
		"palette", opts.ColorPalette,
		"model", cfg.GeminiModel,
		"offline", opts.Offline)

	dest, err := pipeline.Execute(ctx, cfg)
	if err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！", "deck", dest)
	return nil
}
