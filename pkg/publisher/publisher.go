package publisher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/go-deck-kit/pkg/asset"
	"github.com/shouni/go-deck-kit/pkg/renderer"
)

// ErrExportFailed は外部コンバーターがデッキを生成できなかった場合に返されます。
var ErrExportFailed = errors.New("デッキのエクスポートに失敗しました")

const maxLoggedOutput = 2000

// Options はエクスポート動作を制御する設定項目です。
type Options struct {
	// Command はコンバーターの実行コマンドです (例: "node")。空白区切りで引数を含められます。
	Command string
	// Module は html2pptx を提供する Node モジュール名です。
	Module string
	// Author はデッキのメタデータに書き込む作成者です。
	Author string
	// ScratchRoot は作業ディレクトリを作る場所です。空の場合は OS の一時ディレクトリを使います。
	ScratchRoot string
	// KeepScratch が true の場合は作業ディレクトリを削除しません。
	KeepScratch bool
}

// DeckPublisher は描画済みの文書を作業ディレクトリに書き出し、外部コンバーターで .pptx を生成します。
type DeckPublisher struct {
	opts   Options
	writer OutputWriter
}

// NewDeckPublisher は DeckPublisher を初期化します。writer が nil の場合はローカルファイルに書き込みます。
func NewDeckPublisher(opts Options, writer OutputWriter) *DeckPublisher {
	if writer == nil {
		writer = LocalWriter{}
	}
	return &DeckPublisher{
		opts:   opts,
		writer: writer,
	}
}

// Export はスタイルシートとスライドを書き出し、変換スクリプトを実行して dest にデッキを生成します。
// コンバーターの起動失敗や非ゼロ終了は ErrExportFailed でラップして返します。標準エラー出力はログにのみ残します。
func (p *DeckPublisher) Export(ctx context.Context, docs renderer.DocumentSet, dest string) error {
	if len(docs.Slides) == 0 {
		return fmt.Errorf("%w: スライドがありません", ErrExportFailed)
	}

	args := strings.Fields(p.opts.Command)
	if len(args) == 0 {
		return fmt.Errorf("%w: コンバーターのコマンドが設定されていません", ErrExportFailed)
	}

	// 変換スクリプトは作業ディレクトリで実行するため、出力先は絶対パスにします。
	dest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("出力パスを絶対パスに変換できません: %w", err)
	}

	scratch, err := os.MkdirTemp(p.opts.ScratchRoot, "deck-")
	if err != nil {
		return fmt.Errorf("作業ディレクトリの作成に失敗しました: %w", err)
	}
	logger := slog.With("scratch", scratch, "dest", dest, "slides", len(docs.Slides))
	defer func() {
		if p.opts.KeepScratch {
			logger.Info("作業ディレクトリを保持します")
			return
		}
		if err := os.RemoveAll(scratch); err != nil {
			logger.Warn("作業ディレクトリの削除に失敗しました", "error", err)
		}
	}()

	scriptPath, err := p.stage(ctx, scratch, docs, dest)
	if err != nil {
		return err
	}

	args = append(args, filepath.Base(scriptPath))
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = scratch
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Info("コンバーターを実行します", "command", args[0])
	start := time.Now()
	if err := cmd.Run(); err != nil {
		logger.Error("コンバーターが失敗しました",
			"error", err,
			"stderr", truncate(stderr.String()),
			"elapsed", time.Since(start),
		)
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	logger.Info("デッキを生成しました", "elapsed", time.Since(start), "stdout", truncate(stdout.String()))
	if _, err := os.Stat(dest); err != nil {
		logger.Warn("コンバーターは成功しましたが、出力ファイルが見つかりません", "error", err)
	}
	return nil
}

// stage はスタイルシート、スライド、変換スクリプトを作業ディレクトリへ書き出し、スクリプトのパスを返します。
func (p *DeckPublisher) stage(ctx context.Context, scratch string, docs renderer.DocumentSet, dest string) (string, error) {
	am := NewAssetManager(p.writer, scratch)

	if _, err := am.Save(ctx, docs.Stylesheet.Name, docs.Stylesheet.Content); err != nil {
		return "", err
	}

	names := make([]string, 0, len(docs.Slides))
	for _, doc := range docs.Slides {
		if !asset.SlideFileRegex.MatchString(doc.Name) {
			return "", fmt.Errorf("%w: スライドのファイル名が不正です: %q", ErrExportFailed, doc.Name)
		}
		if _, err := am.Save(ctx, doc.Name, doc.Content); err != nil {
			return "", err
		}
		names = append(names, doc.Name)
	}

	script, err := BuildScript(ScriptData{
		Module: p.opts.Module,
		Author: p.opts.Author,
		Title:  docs.Title,
		Slides: names,
		Dest:   dest,
	})
	if err != nil {
		return "", err
	}

	return am.Save(ctx, asset.DefaultScriptName, script)
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLoggedOutput {
		return s
	}
	return s[:maxLoggedOutput] + "..."
}
