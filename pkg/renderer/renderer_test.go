package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/shouni/go-deck-kit/pkg/domain"

	"golang.org/x/net/html"
)

// parseDoc は描画結果を解析し直し、構造を検証できるようにします。
func parseDoc(t *testing.T, d Document) *html.Node {
	t.Helper()
	n, err := html.Parse(bytes.NewReader(d.Content))
	if err != nil {
		t.Fatalf("描画結果を解析できません: %v", err)
	}
	return n
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func byClass(cls string) func(*html.Node) bool {
	return func(n *html.Node) bool { return getAttr(n, "class") == cls }
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func countP(n *html.Node) int {
	return len(findAll(n, byTag("p")))
}

func TestRenderer_RenderSlide(t *testing.T) {
	r := NewRenderer()

	t.Run("タイトルスライド", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 1, Type: domain.SlideTypeTitle, Title: "Solar Energy", Content: "An overview", Layout: domain.LayoutTwoColumn}
		doc := r.RenderSlide(slide, "green")
		if doc.Name != "slide_1.html" {
			t.Errorf("Name = %q", doc.Name)
		}
		root := parseDoc(t, doc)

		h1 := findAll(root, byTag("h1"))
		if len(h1) != 1 || textOf(h1[0]) != "Solar Energy" {
			t.Errorf("h1 が不正です")
		}
		h2 := findAll(root, byTag("h2"))
		if len(h2) != 1 || textOf(h2[0]) != "An overview" || getAttr(h2[0], "class") != "text-muted-foreground" {
			t.Errorf("サブタイトルが不正です")
		}
		if !strings.Contains(string(doc.Content), PresenterLine) {
			t.Error("発表者の行がありません")
		}
	})

	t.Run("共有スタイルシートを参照し、パレットを持つ", func(t *testing.T) {
		doc := r.RenderSlide(domain.Slide{SlideNumber: 2, Type: domain.SlideTypeContent, Title: "T", Layout: domain.LayoutSingleColumn}, "Purple")
		root := parseDoc(t, doc)

		links := findAll(root, byTag("link"))
		if len(links) != 1 || getAttr(links[0], "href") != "shared.css" || getAttr(links[0], "rel") != "stylesheet" {
			t.Error("shared.css へのリンクがありません")
		}
		body := findAll(root, byTag("body"))
		if len(body) != 1 || getAttr(body[0], "data-palette") != "purple" {
			t.Errorf("data-palette が purple ではありません")
		}
		titles := findAll(root, byTag("title"))
		if len(titles) != 1 || textOf(titles[0]) != "T" {
			t.Error("title 要素が不正です")
		}
	})

	t.Run("単一カラムは空行を除いた段落になる", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 2, Type: domain.SlideTypeContent, Title: "Points", Content: "A\n\nB\n  \nC", Layout: domain.LayoutSingleColumn}
		root := parseDoc(t, r.RenderSlide(slide, "blue"))

		h2 := findAll(root, byTag("h2"))
		if len(h2) != 1 || getAttr(h2[0], "class") != "text-primary" {
			t.Error("タイトルバーが不正です")
		}
		ps := findAll(root, byTag("p"))
		if len(ps) != 3 {
			t.Fatalf("段落数 = %d, want 3", len(ps))
		}
		for i, want := range []string{"A", "B", "C"} {
			if textOf(ps[i]) != want {
				t.Errorf("p[%d] = %q, want %q", i, textOf(ps[i]), want)
			}
		}
	})

	t.Run("3カラムは3/3/4に分割される", func(t *testing.T) {
		lines := make([]string, 10)
		for i := range lines {
			lines[i] = fmt.Sprintf("line %d", i+1)
		}
		slide := domain.Slide{SlideNumber: 3, Type: domain.SlideTypeProcess, Title: "Steps", Content: strings.Join(lines, "\n"), Layout: domain.LayoutThreeColumn}
		root := parseDoc(t, r.RenderSlide(slide, "blue"))

		cols := findAll(root, byClass("fill-width"))
		if len(cols) != 3 {
			t.Fatalf("カラム数 = %d, want 3", len(cols))
		}
		for i, want := range []int{3, 3, 4} {
			if got := countP(cols[i]); got != want {
				t.Errorf("column %d = %d 段落, want %d", i, got, want)
			}
		}
		if textOf(findAll(cols[2], byTag("p"))[3]) != "line 10" {
			t.Error("最後の段落が3カラム目の末尾にありません")
		}
	})

	t.Run("3カラムは空行を含めた行数で分割してから空行を捨てる", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 3, Type: domain.SlideTypeProcess, Title: "Steps", Content: "A\n\nB\nC\n\nD", Layout: domain.LayoutThreeColumn}
		root := parseDoc(t, r.RenderSlide(slide, "blue"))

		cols := findAll(root, byClass("fill-width"))
		if len(cols) != 3 {
			t.Fatalf("カラム数 = %d, want 3", len(cols))
		}
		for i, want := range [][]string{{"A"}, {"B", "C"}, {"D"}} {
			ps := findAll(cols[i], byTag("p"))
			if len(ps) != len(want) {
				t.Errorf("column %d = %d 段落, want %d", i, len(ps), len(want))
				continue
			}
			for j, p := range ps {
				if textOf(p) != want[j] {
					t.Errorf("column %d の %d 段落目 = %q, want %q", i, j, textOf(p), want[j])
				}
			}
		}
	})

	t.Run("2カラムはチャートがあればプレースホルダーを置く", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 4, Type: domain.SlideTypeContent, Title: "Sales", Content: "up\ndown", Layout: domain.LayoutTwoColumn,
			ChartData: &domain.ChartData{Type: domain.ChartTypeBar, Title: "Quarterly"}}
		root := parseDoc(t, r.RenderSlide(slide, "blue"))

		ph := findAll(root, byClass("placeholder fill-width"))
		if len(ph) != 1 || textOf(ph[0]) != "Chart Placeholder" {
			t.Error("チャートのプレースホルダーがありません")
		}

		slide.ChartData = nil
		root = parseDoc(t, r.RenderSlide(slide, "blue"))
		if len(findAll(root, byClass("placeholder fill-width"))) != 0 {
			t.Error("チャートなしなのにプレースホルダーがあります")
		}
		cols := findAll(root, byClass("fill-width"))
		if len(cols) != 2 || countP(cols[0]) != 2 || cols[1].FirstChild != nil {
			t.Error("2カラムの構造が不正です")
		}
	})

	t.Run("チャートスライドはタイトルを表示する", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 5, Type: domain.SlideTypeContent, Title: "Data", Layout: domain.LayoutFullSlide,
			ChartData: &domain.ChartData{Type: domain.ChartTypePie, Title: "Market Share"}}
		root := parseDoc(t, r.RenderSlide(slide, "blue"))
		ph := findAll(root, byClass("placeholder fill-width fill-height"))
		if len(ph) != 1 || textOf(ph[0]) != "Market Share" {
			t.Error("チャートのタイトルが表示されていません")
		}

		slide.ChartData.Title = ""
		root = parseDoc(t, r.RenderSlide(slide, "blue"))
		ph = findAll(root, byClass("placeholder fill-width fill-height"))
		if len(ph) != 1 || textOf(ph[0]) != "Chart Placeholder" {
			t.Error("空のタイトルがプレースホルダー文言になっていません")
		}
	})

	t.Run("full_slideでチャートなしは単一カラム", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 6, Type: domain.SlideTypeContent, Title: "Plain", Content: "x", Layout: domain.LayoutFullSlide}
		root := parseDoc(t, r.RenderSlide(slide, "blue"))
		if len(findAll(root, byClass("fill-height"))) != 1 || len(findAll(root, byClass("placeholder fill-width fill-height"))) != 0 {
			t.Error("単一カラムで描画されていません")
		}
	})

	t.Run("テキストはエスケープされる", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 7, Type: domain.SlideTypeContent, Title: "<script>alert(1)</script>", Content: "a & b < c", Layout: domain.LayoutSingleColumn}
		doc := r.RenderSlide(slide, "blue")
		out := string(doc.Content)
		if strings.Contains(out, "<script>") {
			t.Error("script タグがエスケープされていません")
		}
		if !strings.Contains(out, "&lt;script&gt;") || !strings.Contains(out, "a &amp; b &lt; c") {
			t.Errorf("エスケープ結果が想定と異なります: %s", out)
		}
	})

	t.Run("同じ入力からは同じ文書が得られる", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 8, Type: domain.SlideTypeComparison, Title: "Compare", Content: "x\ny\nz", Layout: domain.LayoutThreeColumn}
		a := r.RenderSlide(slide, "orange")
		b := NewRenderer().RenderSlide(slide, "orange")
		if a.Name != b.Name || !bytes.Equal(a.Content, b.Content) {
			t.Error("描画結果が一致しません")
		}
	})

	t.Run("パレット名の大文字小文字と未知の名前", func(t *testing.T) {
		slide := domain.Slide{SlideNumber: 1, Type: domain.SlideTypeContent, Title: "P", Layout: domain.LayoutSingleColumn}
		if !bytes.Equal(r.RenderSlide(slide, "RED").Content, r.RenderSlide(slide, "red").Content) {
			t.Error("RED と red で結果が異なります")
		}
		if !bytes.Equal(r.RenderSlide(slide, "teal").Content, r.RenderSlide(slide, "blue").Content) {
			t.Error("未知のパレットが blue になっていません")
		}
	})
}

func TestRenderer_RenderStylesheet(t *testing.T) {
	r := NewRenderer()

	t.Run("パレットの色が埋め込まれる", func(t *testing.T) {
		doc := r.RenderStylesheet("green")
		if doc.Name != "shared.css" {
			t.Errorf("Name = %q", doc.Name)
		}
		css := string(doc.Content)
		for _, want := range []string{"--color-primary: #4caf50;", "--color-accent: #e8f5e8;", "width: 960px;", "height: 540px;", ".placeholder {", ".gap-lg {"} {
			if !strings.Contains(css, want) {
				t.Errorf("スタイルシートに %q が含まれていません", want)
			}
		}
	})

	t.Run("大文字小文字を区別しない", func(t *testing.T) {
		if !bytes.Equal(r.RenderStylesheet("PURPLE").Content, r.RenderStylesheet("purple").Content) {
			t.Error("PURPLE と purple で結果が異なります")
		}
	})

	t.Run("未知のパレットはblue", func(t *testing.T) {
		if !bytes.Equal(r.RenderStylesheet("unknown").Content, r.RenderStylesheet("blue").Content) {
			t.Error("未知のパレットが blue になっていません")
		}
		if !strings.Contains(string(r.RenderStylesheet("unknown").Content), "#1791e8") {
			t.Error("blue の主要色が含まれていません")
		}
	})
}
