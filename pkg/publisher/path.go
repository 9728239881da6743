package publisher

import (
	"fmt"
	"path/filepath"

	"github.com/shouni/go-deck-kit/pkg/asset"
	"github.com/shouni/go-deck-kit/pkg/domain"
)

// ResolveDeckPath はアウトラインのタイトルから出力ディレクトリ内のデッキのパスを生成します。
// 変換スクリプトは作業ディレクトリで実行されるため、絶対パスで返します。
func ResolveDeckPath(outputDir string, outline domain.Outline) (string, error) {
	p, err := asset.ResolveOutputPath(outputDir, asset.DeckFileName(outline.FileStem()))
	if err != nil {
		return "", fmt.Errorf("デッキの出力パスの解決に失敗しました: %w", err)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("デッキの出力パスを絶対パスに変換できません: %w", err)
	}
	return abs, nil
}
