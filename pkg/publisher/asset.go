package publisher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// OutputWriter はデータを保存するためのインターフェースです。
type OutputWriter interface {
	Write(ctx context.Context, path string, data []byte) error
}

// LocalWriter はローカルファイルシステムに書き込む OutputWriter です。
type LocalWriter struct{}

func (LocalWriter) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// AssetManager は生成物の保存パスと永続化を管理します。
type AssetManager struct {
	writer  OutputWriter
	baseDir string // 保存先のベースディレクトリ (例: 作業ディレクトリ)
}

func NewAssetManager(writer OutputWriter, baseDir string) *AssetManager {
	return &AssetManager{
		writer:  writer,
		baseDir: baseDir,
	}
}

// Save はデータを保存し、その保存先のパスを返します。
func (am *AssetManager) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	fullPath := filepath.Join(am.baseDir, fileName)
	if err := am.writer.Write(ctx, fullPath, data); err != nil {
		return "", fmt.Errorf("asset_manager: %s の保存に失敗しました: %w", fileName, err)
	}
	return fullPath, nil
}
