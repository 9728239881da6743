package director

import (
	"strings"
)

// ChartPlaceholderLabel はチャートのタイトルが空の場合に表示する文言です。
const ChartPlaceholderLabel = "Chart Placeholder"

// StyleManager は本文の段落分割やカラムへの振り分けを管理します。
type StyleManager struct{}

func NewStyleManager() *StyleManager {
	return &StyleManager{}
}

// SplitParagraphs は本文を改行 (\n, \r\n) で分割し、前後の空白を除いて空行を捨てます。順序は保ちます。
func (s *StyleManager) SplitParagraphs(content string) []string {
	return filterParagraphs(splitLines(content))
}

// PartitionColumns は本文を3つのカラムに振り分けます。
// 空行を含む改行区切りの行数 n に対して先頭2カラムは n/3 行ずつ、残りは3カラム目に入ります。
// 空行はカラムごとに振り分けた後で捨てます。
func (s *StyleManager) PartitionColumns(content string) [3][]string {
	lines := splitLines(content)
	third := len(lines) / 3
	return [3][]string{
		filterParagraphs(lines[:third]),
		filterParagraphs(lines[third : 2*third]),
		filterParagraphs(lines[2*third:]),
	}
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func filterParagraphs(lines []string) []string {
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if p := strings.TrimSpace(line); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// ChartLabel はチャート領域に表示する見出しを返します。
func (s *StyleManager) ChartLabel(title string) string {
	if strings.TrimSpace(title) == "" {
		return ChartPlaceholderLabel
	}
	return title
}
