package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-deck-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// exportCmd は、保存済みの構成案 JSON を PowerPoint に変換する最終ステージなのだ！
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "構成案JSONから .pptx を書き出すのだ。",
	Long: `すでに生成・修正済みの構成案 JSON を読み込み、描画と PowerPoint への変換を行うのだ。
モデルは呼ばないので API キーは不要なのだよ。`,
	RunE: exportCommand,
}

func exportCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 必須となる入力ファイルの存在チェック
	if opts.OutlineFile == "" {
		return fmt.Errorf("読み込む構成案のJSONファイル（--outline-file）を指定してほしいのだ")
	}
	cfg := loadConfig()

	slog.Info("変換モードを起動するのだ！",
		"outline_file", opts.OutlineFile,
		"converter", cfg.ConverterCommand,
		"module", cfg.ConverterModule)

	dest, err := pipeline.ExecuteExportOnly(ctx, cfg)
	if err != nil {
		return fmt.Errorf("デッキの変換中にエラーが発生したのだ: %w", err)
	}

	slog.Info("デッキが完成したのだ！", "deck", dest)
	return nil
}
