package generator

import (
	"fmt"

	"github.com/shouni/go-deck-kit/pkg/domain"
)

// maxFallbackSlides はフォールバック時のタイトルと本文スライドの合計上限です。
const maxFallbackSlides = 7

// BuildFallbackOutline はリクエストのみから決定論的なアウトラインを組み立てます。
// タイトルスライド、最大6枚の "Key Point" スライド、結論スライドの順に 1 から採番します。
func BuildFallbackOutline(req domain.PresentationRequest) *domain.Outline {
	slides := []domain.Slide{
		{
			SlideNumber:  1,
			Type:         domain.SlideTypeTitle,
			Title:        req.Topic,
			Content:      fmt.Sprintf("An overview of %s", req.Topic),
			SpeakerNotes: fmt.Sprintf("Introduce the topic: %s", req.Topic),
			Layout:       domain.LayoutTitleSlide,
		},
	}

	last := min(req.SlideCount, maxFallbackSlides)
	for i := 2; i <= last; i++ {
		slides = append(slides, domain.Slide{
			SlideNumber: i,
			Type:        domain.SlideTypeContent,
			Title:       fmt.Sprintf("Key Point %d", i-1),
			Content: fmt.Sprintf(
				"This slide covers an important aspect of %s. Content would be tailored for %s in a %s tone.",
				req.Topic, req.TargetAudience, req.Tone,
			),
			SpeakerNotes: fmt.Sprintf("Discuss key point %d about %s", i-1, req.Topic),
			Layout:       domain.LayoutSingleColumn,
		})
	}

	slides = append(slides, domain.Slide{
		SlideNumber:  len(slides) + 1,
		Type:         domain.SlideTypeConclusion,
		Title:        "Conclusion",
		Content:      fmt.Sprintf("Summary of key points about %s", req.Topic),
		SpeakerNotes: fmt.Sprintf("Wrap up the presentation on %s", req.Topic),
		Layout:       domain.LayoutSingleColumn,
	})

	return &domain.Outline{
		Title:    req.Topic,
		Subtitle: fmt.Sprintf("Presented to %s", req.TargetAudience),
		Slides:   slides,
		Source:   domain.SourceFallback,
	}
}
