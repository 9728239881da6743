package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/go-deck-kit/pkg/domain"
)

const (
	ModeOutline = "outline"
)

// TemplateData はアウトラインプロンプトのテンプレートに渡すデータ構造です。
type TemplateData struct {
	Topic          string
	Tone           string
	TargetAudience string
	SlideCount     int
	ColorPalette   string
	IncludeCharts  bool
	IncludeImages  bool

	SlideTypes []string
	Layouts    []string
	ChartTypes []string
}

// ErrInvalidTemplateData はテンプレートに渡すデータが不完全な場合に返されます。
var ErrInvalidTemplateData = errors.New("テンプレートデータが不正です")

// Validate はプロンプトに必須の項目が揃っているかを確認します。
// 列挙値が空のままだとモデルが任意の値を返すため、空の一覧もエラーにします。
func (d TemplateData) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Topic) == "" {
		missing = append(missing, "Topic")
	}
	if d.SlideCount < 1 {
		missing = append(missing, "SlideCount")
	}
	if len(d.SlideTypes) == 0 {
		missing = append(missing, "SlideTypes")
	}
	if len(d.Layouts) == 0 {
		missing = append(missing, "Layouts")
	}
	if len(d.ChartTypes) == 0 {
		missing = append(missing, "ChartTypes")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTemplateData, strings.Join(missing, ", "))
	}
	return nil
}

// NewTemplateData はリクエストと許可された列挙値からテンプレートデータを組み立てます。
func NewTemplateData(req domain.PresentationRequest) TemplateData {
	return TemplateData{
		Topic:          req.Topic,
		Tone:           req.Tone,
		TargetAudience: req.TargetAudience,
		SlideCount:     req.SlideCount,
		ColorPalette:   req.ColorPalette,
		IncludeCharts:  req.IncludeCharts,
		IncludeImages:  req.IncludeImages,
		SlideTypes:     domain.SlideTypes,
		Layouts:        domain.Layouts,
		ChartTypes:     domain.ChartTypes,
	}
}

var (
	//go:embed outline.md
	OutlinePrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップです。
var allTemplates = map[string]string{
	ModeOutline: OutlinePrompt,
}
