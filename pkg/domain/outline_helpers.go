package domain

import (
	"sort"
	"strings"
)

// HasChart はスライドがチャート指定を持つかどうかを返します。
func (s Slide) HasChart() bool {
	return s.ChartData != nil
}

// IsSequential はスライド番号が 1 から連番で昇順に並んでいるかを判定します。
func (o Outline) IsSequential() bool {
	for i, s := range o.Slides {
		if s.SlideNumber != i+1 {
			return false
		}
	}
	return true
}

// Normalize はスライドをスライド番号で安定ソートし、1..N に振り直したコピーを返します。
// 重複や欠番のあるモデル出力でも、描画順とデッキ順を一意に決めるためのものです。
func (o Outline) Normalize() Outline {
	slides := make([]Slide, len(o.Slides))
	copy(slides, o.Slides)

	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].SlideNumber < slides[j].SlideNumber
	})
	for i := range slides {
		slides[i].SlideNumber = i + 1
	}

	out := o
	out.Slides = slides
	return out
}

// FileStem はアウトラインのタイトルから、ファイル名に使える小文字の語幹を生成します。
// 英数字・ハイフン以外はアンダースコアに置き換えます。
func (o Outline) FileStem() string {
	title := strings.TrimSpace(o.Title)
	if title == "" {
		return "presentation"
	}

	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	stem := strings.Trim(sb.String(), "_")
	if stem == "" {
		return "presentation"
	}
	return stem
}
