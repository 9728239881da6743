package renderer

import (
	"bytes"
	"fmt"

	"github.com/shouni/go-deck-kit/pkg/asset"
	"github.com/shouni/go-deck-kit/pkg/director"
	"github.com/shouni/go-deck-kit/pkg/domain"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PresenterLine はタイトルスライドに固定で表示する行です。
const PresenterLine = "Presented by: Your Name"

// Renderer はスライドを 960x540 のキャンバスに収まる静的 HTML に変換します。
// 状態を持たないため、複数のゴルーチンから同時に利用できます。
type Renderer struct {
	layouts *director.LayoutManager
	styles  *director.StyleManager
}

// NewRenderer は Renderer を初期化します。
func NewRenderer() *Renderer {
	return &Renderer{
		layouts: director.NewLayoutManager(),
		styles:  director.NewStyleManager(),
	}
}

// RenderSlide は1枚のスライドを HTML 文書に変換します。
// 文書は共有スタイルシートを参照し、body にパレット名を data-palette 属性として持ちます。
func (r *Renderer) RenderSlide(slide domain.Slide, paletteName string) Document {
	palette := domain.LookupPalette(paletteName)
	kind := r.layouts.SelectLayout(slide)

	var body *html.Node
	switch kind {
	case director.LayoutTitle:
		body = r.titleBody(slide)
	case director.LayoutTwoColumn:
		body = r.twoColumnBody(slide)
	case director.LayoutThreeColumn:
		body = r.threeColumnBody(slide)
	case director.LayoutChart:
		body = r.chartBody(slide)
	default:
		body = r.singleColumnBody(slide)
	}
	body.Attr = append(body.Attr, attr("data-palette", palette.Name), attr("data-layout", kind.String()))

	return Document{
		Name:    asset.SlideFileName(slide.SlideNumber),
		Content: mustRender(newDocument(slide.Title, body)),
	}
}

func (r *Renderer) titleBody(slide domain.Slide) *html.Node {
	return appendChildren(element(atom.Body, class("col center")),
		textElement(atom.H1, slide.Title),
		textElement(atom.H2, slide.Content, class("text-muted-foreground")),
		textElement(atom.P, PresenterLine, class("text-muted-foreground")),
	)
}

func (r *Renderer) singleColumnBody(slide domain.Slide) *html.Node {
	return appendChildren(element(atom.Body, class("col p-8")),
		textElement(atom.H2, slide.Title, class("text-primary")),
		r.paragraphs(element(atom.Div, class("fill-height")), r.styles.SplitParagraphs(slide.Content)),
	)
}

func (r *Renderer) twoColumnBody(slide domain.Slide) *html.Node {
	left := r.paragraphs(element(atom.Div, class("fill-width")), r.styles.SplitParagraphs(slide.Content))
	right := element(atom.Div, class("fill-width"))
	if slide.HasChart() {
		right.AppendChild(textElement(atom.Div, director.ChartPlaceholderLabel, class("placeholder fill-width")))
	}

	return appendChildren(element(atom.Body, class("col p-8")),
		textElement(atom.H2, slide.Title, class("text-primary text-center")),
		appendChildren(element(atom.Div, class("fill-height row gap-lg")), left, right),
	)
}

func (r *Renderer) threeColumnBody(slide domain.Slide) *html.Node {
	columns := r.styles.PartitionColumns(slide.Content)
	row := element(atom.Div, class("fill-height row gap"))
	for _, col := range columns {
		row.AppendChild(r.paragraphs(element(atom.Div, class("fill-width")), col))
	}

	return appendChildren(element(atom.Body, class("col p-8")),
		textElement(atom.H2, slide.Title, class("text-primary text-center")),
		row,
	)
}

func (r *Renderer) chartBody(slide domain.Slide) *html.Node {
	label := r.styles.ChartLabel(slide.ChartData.Title)
	area := appendChildren(element(atom.Div, class("fill-height")),
		textElement(atom.Div, label, class("placeholder fill-width fill-height")),
	)

	return appendChildren(element(atom.Body, class("col p-8")),
		textElement(atom.H2, slide.Title, class("text-primary text-center")),
		area,
	)
}

// paragraphs は段落ごとに <p> を追加します。
func (r *Renderer) paragraphs(parent *html.Node, paragraphs []string) *html.Node {
	for _, p := range paragraphs {
		parent.AppendChild(textElement(atom.P, p))
	}
	return parent
}

// newDocument は head (文字コード、viewport、タイトル、共有スタイルシート) と body から文書ノードを組み立てます。
func newDocument(title string, body *html.Node) *html.Node {
	head := appendChildren(element(atom.Head),
		element(atom.Meta, attr("charset", "UTF-8")),
		element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1.0")),
		textElement(atom.Title, title),
		element(atom.Link, attr("rel", "stylesheet"), attr("href", asset.DefaultStylesheetName)),
	)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(appendChildren(element(atom.Html, attr("lang", "en")), head, body))
	return doc
}

func mustRender(doc *html.Node) []byte {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		// ノードはすべてこのパッケージで組み立てており、bytes.Buffer への書き込みは失敗しません。
		panic(fmt.Sprintf("HTMLのシリアライズに失敗しました: %v", err))
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}
