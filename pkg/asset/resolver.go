package asset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultSlideFileName はスライド HTML の共通のベースファイル名です。
	DefaultSlideFileName = "slide.html"
	// DefaultStylesheetName は全スライドが参照する共有スタイルシートのファイル名です。
	DefaultStylesheetName = "shared.css"
	// DefaultScriptName は変換スクリプトのファイル名です。
	DefaultScriptName = "convert.js"
	// DefaultOutlineJSON は保存するアウトラインのデフォルト JSON ファイル名です。
	DefaultOutlineJSON = "outline.json"
	// DeckFileSuffix はデッキのファイル名に付ける接尾辞です。
	DeckFileSuffix = "_presentation.pptx"
)

var (
	// SlideFileRegex はスライド HTML (slide_1.html 等) に一致します
	SlideFileRegex = createIndexedRegex(DefaultSlideFileName)
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// SlideFileName はスライド番号に対応する HTML のファイル名を返します。
// 例: 3 -> "slide_3.html"
func SlideFileName(slideNumber int) string {
	ext := filepath.Ext(DefaultSlideFileName)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(DefaultSlideFileName, ext), slideNumber, ext)
}

// DeckFileName はファイル名の語幹からデッキのファイル名を返します。
func DeckFileName(stem string) string {
	return stem + DeckFileSuffix
}

// IsSafeFileName は名前がディレクトリ区切りや親参照を含まない単一のファイル名であるかを判定します。
func IsSafeFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// createIndexedRegex は、ファイル名に基づきインデックス付きファイル用の正規表現を生成します。
// 例: "slide.html" -> ^slide_\d+\.html$
func createIndexedRegex(fileName string) *regexp.Regexp {
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)

	pattern := fmt.Sprintf(`^%s_\d+%s$`, regexp.QuoteMeta(baseName), regexp.QuoteMeta(ext))
	return regexp.MustCompile(pattern)
}
