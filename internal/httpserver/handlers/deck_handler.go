package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/shouni/go-deck-kit/internal/httpserver/responses"

	"github.com/shouni/go-deck-kit/pkg/asset"
	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/parser"
	"github.com/shouni/go-deck-kit/pkg/publisher"
	"github.com/shouni/go-deck-kit/pkg/session"
)

// DeckService はアウトライン生成とデッキ書き出しを提供します。
type DeckService interface {
	Outline(ctx context.Context, req domain.PresentationRequest) *domain.Outline
	Build(ctx context.Context, outline *domain.Outline, paletteName, dest string) error
}

// generateRequest は必須項目の有無を判定できるようポインタで受けます。
type generateRequest struct {
	Topic          *string `json:"topic"`
	Tone           *string `json:"tone"`
	TargetAudience *string `json:"target_audience"`
	SlideCount     *int    `json:"slide_count"`
	ColorPalette   *string `json:"color_palette"`
	IncludeCharts  bool    `json:"include_charts"`
	IncludeImages  bool    `json:"include_images"`
}

type convertRequest struct {
	Outline json.RawMessage `json:"outline"`
}

// DeckHandler はデッキ生成 API のハンドラーです。
type DeckHandler struct {
	deck     DeckService
	sessions *session.Store
	parser   parser.Parser
}

// NewDeckHandler は DeckHandler を作成します。
func NewDeckHandler(deck DeckService, sessions *session.Store) *DeckHandler {
	return &DeckHandler{
		deck:     deck,
		sessions: sessions,
		parser:   parser.NewOutlineParser(parser.DefaultLimits()),
	}
}

// Generate はアウトラインを生成し、新しいセッションに保存します。
func (h *DeckHandler) Generate(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if field := missingField(body); field != "" {
		responses.Error(c, http.StatusBadRequest, "Missing required field: "+field)
		return
	}

	req := domain.PresentationRequest{
		Topic:          *body.Topic,
		Tone:           *body.Tone,
		TargetAudience: *body.TargetAudience,
		SlideCount:     *body.SlideCount,
		ColorPalette:   *body.ColorPalette,
		IncludeCharts:  body.IncludeCharts,
		IncludeImages:  body.IncludeImages,
	}

	outline := h.deck.Outline(c.Request.Context(), req)
	sess, err := h.sessions.Create(req, outline)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "セッションの作成に失敗しました", "error", err)
		responses.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, responses.GenerateResponse{
		SessionID:  sess.ID,
		Outline:    outline,
		SlideCount: len(outline.Slides),
		Source:     outline.Source,
		Message:    "Presentation outline generated successfully",
	})
}

// Convert は送られたアウトラインからデッキを書き出し、ダウンロード URL を返します。
func (h *DeckHandler) Convert(c *gin.Context) {
	id := c.Param("session_id")
	sess, ok := h.lookup(c, id)
	if !ok {
		return
	}

	var body convertRequest
	if err := c.ShouldBindJSON(&body); err != nil || isEmptyJSON(body.Outline) {
		responses.Error(c, http.StatusBadRequest, "No outline provided")
		return
	}
	outline, err := h.parser.Parse(string(body.Outline))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid outline: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	dest, err := publisher.ResolveDeckPath(sess.WorkDir, *outline)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.deck.Build(ctx, outline, sess.Request.ColorPalette, dest); err != nil {
		slog.ErrorContext(ctx, "デッキの変換に失敗しました", "session_id", id, "error", err)
		if errors.Is(err, publisher.ErrExportFailed) {
			responses.Error(c, http.StatusInternalServerError, "Failed to convert presentation")
			return
		}
		responses.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.sessions.AttachOutline(id, outline); err != nil {
		slog.WarnContext(ctx, "アウトラインを記録できませんでした", "session_id", id, "error", err)
	}
	if err := h.sessions.AttachDeck(id, dest); err != nil {
		slog.WarnContext(ctx, "デッキのパスを記録できませんでした", "session_id", id, "error", err)
	}

	filename := filepath.Base(dest)
	c.JSON(http.StatusOK, responses.ConvertResponse{
		Success:     true,
		Filename:    filename,
		DownloadURL: fmt.Sprintf("/api/download/%s/%s", id, filename),
	})
}

// Download はセッションの作業ディレクトリにあるファイルを添付ファイルとして返します。
func (h *DeckHandler) Download(c *gin.Context) {
	sess, ok := h.lookup(c, c.Param("session_id"))
	if !ok {
		return
	}

	filename := c.Param("filename")
	if !asset.IsSafeFileName(filename) {
		responses.Error(c, http.StatusNotFound, "File not found")
		return
	}
	path := filepath.Join(sess.WorkDir, filename)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		responses.Error(c, http.StatusNotFound, "File not found")
		return
	}

	c.FileAttachment(path, filename)
}

// Cleanup はセッションと作業ディレクトリを破棄します。存在しない ID は 400 を返します。
func (h *DeckHandler) Cleanup(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("session_id")); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			responses.Error(c, http.StatusBadRequest, "Invalid session ID")
		} else {
			responses.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, responses.CleanupResponse{Success: true})
}

func (h *DeckHandler) lookup(c *gin.Context, id string) (session.Session, bool) {
	sess, err := h.sessions.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			responses.Error(c, http.StatusBadRequest, "Invalid session ID")
		} else {
			responses.Error(c, http.StatusInternalServerError, err.Error())
		}
		return session.Session{}, false
	}
	return sess, true
}

func missingField(body generateRequest) string {
	switch {
	case body.Topic == nil:
		return "topic"
	case body.Tone == nil:
		return "tone"
	case body.TargetAudience == nil:
		return "target_audience"
	case body.SlideCount == nil:
		return "slide_count"
	case body.ColorPalette == nil:
		return "color_palette"
	}
	return ""
}

func isEmptyJSON(raw json.RawMessage) bool {
	s := string(raw)
	return s == "" || s == "null" || s == "{}"
}
