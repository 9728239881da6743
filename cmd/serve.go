package cmd

import (
	"fmt"

	"github.com/shouni/go-deck-kit/internal/httpserver"
	"github.com/shouni/go-deck-kit/internal/pipeline"

	"github.com/shouni/go-deck-kit/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// serveCmd は、デッキ生成の HTTP API を起動するのだ。
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "デッキ生成のHTTP APIを起動するのだ。",
	Long: `POST /api/generate で構成案を作り、POST /api/convert/:session_id で .pptx に変換するのだ。
生成物はセッションごとの作業ディレクトリに置かれ、SESSION_TTL を過ぎると片付けられるのだよ。`,
	RunE: serveCommand,
}

func serveCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	deck, err := pipeline.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("パイプラインの初期化に失敗したのだ: %w", err)
	}

	sessions := session.NewStore(cfg.SessionBaseDir(), cfg.SessionTTL)
	return httpserver.New(cfg, deck, sessions).Run(ctx)
}
