package parser

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed outline.schema.json
var outlineSchemaJSON []byte

// ErrSchemaMismatch はデコード済みの値がアウトラインのスキーマに合致しない場合に返されます。
var ErrSchemaMismatch = errors.New("アウトラインのスキーマに合致しません")

var outlineSchema = mustLoadSchema(outlineSchemaJSON)

func mustLoadSchema(data []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		panic(fmt.Sprintf("アウトラインスキーマの読み込みに失敗しました: %v", err))
	}
	return schema
}

// ValidateDocument は任意のデコード済み JSON 値がアウトラインの形
// (title, subtitle, slides と各スライドの必須フィールド・型) を満たすか判定します。
func ValidateDocument(v any) error {
	result, err := outlineSchema.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return fmt.Errorf("スキーマ検証の実行に失敗しました: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(errs, "; "))
	}

	return nil
}
