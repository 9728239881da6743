package renderer

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shouni/go-deck-kit/pkg/asset"
	"github.com/shouni/go-deck-kit/pkg/domain"
)

//go:embed shared.css.tmpl
var sharedCSSTemplate string

var stylesheetTemplate = template.Must(template.New(asset.DefaultStylesheetName).Parse(sharedCSSTemplate))

// RenderStylesheet はパレットの配色を埋め込んだ共有スタイルシートを生成します。
// パレット名は大文字小文字を区別せず、未知の名前は blue になります。
func (r *Renderer) RenderStylesheet(paletteName string) Document {
	palette := domain.LookupPalette(paletteName)

	var sb strings.Builder
	if err := stylesheetTemplate.Execute(&sb, palette); err != nil {
		// テンプレートは埋め込み済みで、Palette の全フィールドが揃っているため到達しません。
		panic(fmt.Sprintf("スタイルシートの生成に失敗しました: %v", err))
	}

	return Document{
		Name:    asset.DefaultStylesheetName,
		Content: []byte(sb.String()),
	}
}
