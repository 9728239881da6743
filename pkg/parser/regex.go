package parser

import "regexp"

var (
	// OpeningFenceRegex は応答先頭の "```" または "```json" 形式のコードフェンスをキャプチャします。
	OpeningFenceRegex = regexp.MustCompile("^```[A-Za-z0-9_-]*[ \\t]*\\r?\\n?")

	// ClosingFenceRegex は応答末尾の閉じフェンスを特定します。
	ClosingFenceRegex = regexp.MustCompile("\\r?\\n?```\\s*$")
)
