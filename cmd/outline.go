package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-deck-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// outlineCmd は、構成案の生成（JSON出力）のみを実行するのだ。
var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "構成案（JSON）のみを生成して保存するのだ。",
	Long: `トピックからスライドの構成案（タイトル、各スライドの本文、レイアウト、チャート）を
JSON形式で出力するのだ。描画や変換は行わないのだよ。`,
	RunE: outlineCommand,
}

func outlineCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("構成案生成モードを起動するのだ！", "topic", opts.Topic, "model", cfg.GeminiModel)

	path, err := pipeline.ExecuteOutlineOnly(ctx, cfg)
	if err != nil {
		return fmt.Errorf("構成案の生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("構成案（JSON）の生成が完了したのだ！", "output_file", path)
	return nil
}
