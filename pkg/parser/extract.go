package parser

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultMaxResponseBytes は走査対象とする応答の最大バイト数です。
	DefaultMaxResponseBytes = 1 << 20
	// DefaultMaxNestingDepth は許容する波括弧のネストの深さです。
	DefaultMaxNestingDepth = 64
)

var (
	ErrEmptyResponse    = errors.New("AIの応答が空です")
	ErrResponseTooLarge = errors.New("AIの応答が大きすぎます")
	ErrNoJSONObject     = errors.New("応答にJSONオブジェクトが見つかりません")
	ErrUnbalancedBraces = errors.New("JSONオブジェクトの波括弧が閉じていません")
	ErrNestingTooDeep   = errors.New("JSONオブジェクトのネストが深すぎます")
)

// Limits は抽出処理の走査範囲を制限します。0 以下の値は既定値に置き換えます。
type Limits struct {
	MaxResponseBytes int
	MaxNestingDepth  int
}

// DefaultLimits は推奨される既定の制限値を返します。
func DefaultLimits() Limits {
	return Limits{
		MaxResponseBytes: DefaultMaxResponseBytes,
		MaxNestingDepth:  DefaultMaxNestingDepth,
	}
}

func (l Limits) withDefaults() Limits {
	if l.MaxResponseBytes <= 0 {
		l.MaxResponseBytes = DefaultMaxResponseBytes
	}
	if l.MaxNestingDepth <= 0 {
		l.MaxNestingDepth = DefaultMaxNestingDepth
	}
	return l
}

// ExtractJSON はモデルの生の応答から最初の JSON オブジェクトを取り出します。
// コードフェンスを取り除き、前置きの文章や後続のテキストは捨てます。
// あくまでベストエフォートのフィルタであり、パーサーではありません。
func ExtractJSON(raw string, limits Limits) (string, error) {
	limits = limits.withDefaults()

	if len(raw) > limits.MaxResponseBytes {
		return "", fmt.Errorf("%w: %d bytes (上限 %d)", ErrResponseTooLarge, len(raw), limits.MaxResponseBytes)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyResponse
	}

	text = stripFences(text)

	return matchObject(text, limits.MaxNestingDepth)
}

// stripFences は先頭と末尾のコードフェンスを取り除きます。
func stripFences(text string) string {
	if loc := OpeningFenceRegex.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	if loc := ClosingFenceRegex.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	return strings.TrimSpace(text)
}

// matchObject は最初の '{' から対応する '}' までを返します。
// 文字列リテラル内の波括弧はネストの計算に含めません。
func matchObject(text string, maxDepth int) (string, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", ErrNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
			if depth > maxDepth {
				return "", fmt.Errorf("%w: 上限 %d", ErrNestingTooDeep, maxDepth)
			}
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrUnbalancedBraces
}
