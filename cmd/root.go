package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/go-deck-kit/internal/config"

	"github.com/spf13/cobra"
)

// opts は、全サブコマンドで共有する実行時オプションなのだ。
var opts config.GenerateOptions

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "deck-go",
	Short: "AIでプレゼンテーションの構成案を作り、スライドとPowerPointに変換するのだ。",
	Long: `トピックや対象者を指定すると、Gemini がスライドの構成案を作るのだ。
構成案は HTML スライドに描画され、html2pptx で .pptx に変換されるのだよ。`,
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	// --- リクエスト関連 ---
	flags.StringVarP(&opts.Topic, "topic", "t", config.DefaultTopic, "プレゼンテーションのトピックなのだ。")
	flags.StringVar(&opts.Tone, "tone", config.DefaultTone, "トーン（professional, casual, technical, creative）なのだ。")
	flags.StringVarP(&opts.TargetAudience, "audience", "a", config.DefaultTargetAudience, "想定する聞き手なのだ。")
	flags.IntVarP(&opts.SlideCount, "slides", "n", config.DefaultSlideCount, "希望するスライド枚数なのだ。")
	flags.StringVarP(&opts.ColorPalette, "palette", "p", config.DefaultColorPalette, "配色（blue, green, purple, orange, red）なのだ。")
	flags.BoolVar(&opts.IncludeCharts, "charts", false, "チャートの提案を含めるのだ。")
	flags.BoolVar(&opts.IncludeImages, "images", false, "画像の提案を含めるのだ。")

	// --- 入出力 ---
	flags.StringVarP(&opts.OutlineFile, "outline-file", "f", "", "既存のアウトライン JSON のパスなのだ。")
	flags.StringVarP(&opts.OutputFile, "output-file", "o", "", "出力ファイルのパスなのだ。")
	flags.StringVarP(&opts.OutputDir, "output-dir", "d", "", "出力ディレクトリなのだ（未指定なら OUTPUT_DIR）。")

	// --- AIモデル・挙動設定 ---
	flags.StringVar(&opts.AIModel, "model", "", "使用する Gemini モデル名なのだ（未指定なら GEMINI_MODEL）。")
	flags.BoolVar(&opts.Offline, "offline", false, "モデルを呼ばずにフォールバックの構成案を使うのだ。")
	flags.IntVar(&opts.RenderConcurrency, "concurrency", 0, "スライド描画の並列数なのだ。")
	flags.BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力するのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if !needsModel(cmd) || opts.Offline {
		return nil
	}
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if config.LoadConfig().GeminiAPIKey == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。--offline を付けるか、キーを設定してほしいのだ")
	}
	return nil
}

// needsModel は、そのコマンドがアウトライン生成でモデルを呼ぶかを返すのだ。
func needsModel(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case exportCmd.Name():
		return false
	case renderCmd.Name():
		return opts.OutlineFile == ""
	}
	return true
}

// loadConfig は環境変数の設定にフラグを重ねたものを返すのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.Options = opts
	if opts.AIModel != "" {
		cfg.GeminiModel = opts.AIModel
	}
	return cfg
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(generateCmd, outlineCmd, renderCmd, exportCmd, serveCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("コマンドの実行に失敗したのだ", "error", err)
		stop()
		os.Exit(1)
	}
}
