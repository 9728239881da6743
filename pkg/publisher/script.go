package publisher

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

//go:embed convert.js.tmpl
var convertScriptTemplate string

var scriptTemplate = template.Must(template.New("convert.js").Funcs(template.FuncMap{
	"json": jsString,
}).Parse(convertScriptTemplate))

// ScriptData は変換スクリプトのテンプレートに渡すデータ構造です。
type ScriptData struct {
	Module string
	Author string
	Title  string
	Slides []string // 作業ディレクトリからの相対パス (順序どおり)
	Dest   string
}

// BuildScript は pptxgenjs と html2pptx を使ってスライドを順に追加し、デッキを書き出すスクリプトを生成します。
func BuildScript(data ScriptData) ([]byte, error) {
	var sb strings.Builder
	if err := scriptTemplate.Execute(&sb, data); err != nil {
		return nil, fmt.Errorf("変換スクリプトの生成に失敗しました: %w", err)
	}
	return []byte(sb.String()), nil
}

// jsString は文字列を JavaScript の文字列リテラルとして埋め込める形に変換します。
func jsString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
