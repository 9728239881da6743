package director

import (
	"github.com/shouni/go-deck-kit/pkg/domain"
)

// LayoutKind は描画時に使うテンプレートの種類です。
type LayoutKind int

const (
	LayoutSingle LayoutKind = iota
	LayoutTitle
	LayoutTwoColumn
	LayoutThreeColumn
	LayoutChart
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutTitle:
		return "title"
	case LayoutTwoColumn:
		return "two_column"
	case LayoutThreeColumn:
		return "three_column"
	case LayoutChart:
		return "chart"
	default:
		return "single_column"
	}
}

// LayoutManager はスライドの種類・レイアウト指定・チャートの有無から描画テンプレートを選びます。
type LayoutManager struct{}

func NewLayoutManager() *LayoutManager {
	return &LayoutManager{}
}

// SelectLayout は次の優先順で判定します。
// タイトル種別、two_column、three_column、チャート付き full_slide、それ以外は単一カラム。
func (l *LayoutManager) SelectLayout(slide domain.Slide) LayoutKind {
	switch {
	case slide.Type == domain.SlideTypeTitle:
		return LayoutTitle
	case slide.Layout == domain.LayoutTwoColumn:
		return LayoutTwoColumn
	case slide.Layout == domain.LayoutThreeColumn:
		return LayoutThreeColumn
	case slide.Layout == domain.LayoutFullSlide && slide.HasChart():
		return LayoutChart
	default:
		return LayoutSingle
	}
}
