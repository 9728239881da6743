package parser

import (
	"encoding/json"
	"fmt"

	"github.com/shouni/go-deck-kit/pkg/domain"
)

// 失敗した工程を表すステージ名です。抽出失敗とスキーマ不一致を区別して記録するために使います。
const (
	StageExtract = "extract"
	StageDecode  = "decode"
	StageSchema  = "schema"
)

// ParseError は応答解析のどの工程で失敗したかを保持します。
type ParseError struct {
	Stage string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser は解析するためのインターフェースです。
type Parser interface {
	// Parse はモデルの生の応答を受け取り、構造化された Outline を返します。
	Parse(raw string) (*domain.Outline, error)
}

// OutlineParser はモデル応答から JSON を取り出し、スキーマ検証のうえ Outline に変換します。
type OutlineParser struct {
	limits Limits
}

// NewOutlineParser は OutlineParser を初期化します。
func NewOutlineParser(limits Limits) *OutlineParser {
	return &OutlineParser{limits: limits.withDefaults()}
}

// Parse は応答のトリム、フェンス除去、波括弧の対応付け、JSON デコード、スキーマ検証の順に処理します。
// 失敗時は *ParseError を返します。
func (p *OutlineParser) Parse(raw string) (*domain.Outline, error) {
	text, err := ExtractJSON(raw, p.limits)
	if err != nil {
		return nil, &ParseError{Stage: StageExtract, Err: err}
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ParseError{Stage: StageDecode, Err: fmt.Errorf("JSONの解析に失敗しました (応答抜粋: %q): %w", truncateString(text, 200), err)}
	}

	if err := ValidateDocument(doc); err != nil {
		return nil, &ParseError{Stage: StageSchema, Err: err}
	}

	var outline domain.Outline
	if err := json.Unmarshal([]byte(text), &outline); err != nil {
		return nil, &ParseError{Stage: StageDecode, Err: fmt.Errorf("アウトラインへの変換に失敗しました: %w", err)}
	}

	return &outline, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
