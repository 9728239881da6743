package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-deck-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// renderCmd は、構成案から HTML スライドと shared.css を書き出すサブコマンドなのだ。
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "構成案からHTMLスライドを書き出すのだ。",
	Long: `--outline-file の構成案（なければその場で生成した構成案）を HTML スライドに描画するのだ。
ブラウザで見た目を確かめたいときに便利なのだ。`,
	RunE: renderCommand,
}

func renderCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("描画モードを起動するのだ！", "outline_file", opts.OutlineFile, "palette", opts.ColorPalette)

	paths, err := pipeline.ExecuteRenderOnly(ctx, cfg)
	if err != nil {
		return fmt.Errorf("スライドの描画中にエラーが発生したのだ: %w", err)
	}

	slog.Info("スライドの書き出しが完了したのだ！", "files", len(paths))
	return nil
}
