package domain

// スライド種別です。
const (
	SlideTypeTitle      = "title"
	SlideTypeContent    = "content"
	SlideTypeComparison = "comparison"
	SlideTypeProcess    = "process"
	SlideTypeConclusion = "conclusion"
)

// レイアウト名です。
const (
	LayoutTitleSlide   = "title_slide"
	LayoutSingleColumn = "single_column"
	LayoutTwoColumn    = "two_column"
	LayoutThreeColumn  = "three_column"
	LayoutFullSlide    = "full_slide"
)

// チャート種別です。
const (
	ChartTypeBar     = "bar"
	ChartTypeLine    = "line"
	ChartTypePie     = "pie"
	ChartTypeScatter = "scatter"
)

// Outline の生成元です。
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// トーンの既定値です。
const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneTechnical    = "technical"
	ToneCreative     = "creative"
)

var (
	// SlideTypes はプロンプトで許可するスライド種別の一覧です。
	SlideTypes = []string{SlideTypeTitle, SlideTypeContent, SlideTypeComparison, SlideTypeProcess, SlideTypeConclusion}
	// Layouts はプロンプトで許可するレイアウトの一覧です。
	Layouts = []string{LayoutTitleSlide, LayoutSingleColumn, LayoutTwoColumn, LayoutThreeColumn, LayoutFullSlide}
	// ChartTypes はプロンプトで許可するチャート種別の一覧です。
	ChartTypes = []string{ChartTypeBar, ChartTypeLine, ChartTypePie, ChartTypeScatter}
)

// PresentationRequest はユーザーが指定するプレゼンテーション生成パラメータです。
// 一度構築したら読み取り専用として扱います。
type PresentationRequest struct {
	Topic          string `json:"topic"`
	Tone           string `json:"tone"`
	TargetAudience string `json:"target_audience"`
	SlideCount     int    `json:"slide_count"`
	ColorPalette   string `json:"color_palette"`
	IncludeCharts  bool   `json:"include_charts"`
	IncludeImages  bool   `json:"include_images"`
}

// Outline は AI モデル（またはフォールバック）から得られる構成案全体の構造です。
type Outline struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Slides   []Slide `json:"slides"`

	// Source は構成案の生成元 (model / fallback) です。
	Source string `json:"-"`
}

// Slide はアウトライン内の1枚のスライドです。
type Slide struct {
	SlideNumber  int        `json:"slide_number"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	SpeakerNotes string     `json:"speaker_notes"`
	Layout       string     `json:"layout"`
	ChartData    *ChartData `json:"chart_data"`
}

// ChartData はスライドに添えるチャートの仕様です。描画はせずプレースホルダーとして扱います。
type ChartData struct {
	Type  string      `json:"type"`
	Title string      `json:"title"`
	Data  []DataPoint `json:"data"`
}

// DataPoint はチャートの1系列値です。
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
