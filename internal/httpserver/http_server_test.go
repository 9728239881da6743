package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-deck-kit/internal/builder"
	"github.com/shouni/go-deck-kit/internal/config"
	"github.com/shouni/go-deck-kit/internal/httpserver/responses"
	"github.com/shouni/go-deck-kit/internal/pipeline"

	"github.com/shouni/go-deck-kit/pkg/session"
)

type failingClient struct{}

func (failingClient) GenerateText(context.Context, string, string) (string, error) {
	return "", errors.New("backend unavailable")
}

func newTestServer(t *testing.T, converter string) (*HTTPServer, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GeminiModel:      "test-model",
		ConverterCommand: converter,
		ConverterModule:  "@ant/html2pptx",
		RequestTimeout:   time.Minute,
		OutputDir:        t.TempDir(),
	}
	mgr, err := builder.BuildManager(context.Background(), cfg, failingClient{})
	require.NoError(t, err)

	appCtx := builder.NewAppContext(cfg, mgr)
	runners, err := builder.BuildRunners(&appCtx)
	require.NoError(t, err)

	store := session.NewStore(cfg.SessionBaseDir(), time.Hour)
	return New(cfg, pipeline.NewDeck(runners), store), store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

var validRequest = map[string]any{
	"topic":           "Solar Energy",
	"tone":            "professional",
	"target_audience": "engineers",
	"slide_count":     5,
	"color_palette":   "green",
}

func generate(t *testing.T, h http.Handler) responses.GenerateResponse {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/generate", validRequest)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp responses.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHTTPServer_CoreRoutes(t *testing.T) {
	srv, _ := newTestServer(t, "true")

	w := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	generate(t, srv.Handler())
	w = doJSON(t, srv.Handler(), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deck_outline_requests_total")
	assert.Contains(t, w.Body.String(), `deck_outline_failures_total{stage="transport"}`)
}

func TestHTTPServer_Generate(t *testing.T) {
	srv, store := newTestServer(t, "true")

	t.Run("バックエンドが失敗してもフォールバックを返す", func(t *testing.T) {
		resp := generate(t, srv.Handler())

		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, "fallback", resp.Source)
		assert.Equal(t, 6, resp.SlideCount)
		require.NotNil(t, resp.Outline)
		assert.Equal(t, "Solar Energy", resp.Outline.Title)

		sess, err := store.Get(resp.SessionID)
		require.NoError(t, err)
		assert.DirExists(t, sess.WorkDir)
	})

	t.Run("必須項目が欠けている", func(t *testing.T) {
		body := map[string]any{}
		for k, v := range validRequest {
			body[k] = v
		}
		delete(body, "color_palette")

		w := doJSON(t, srv.Handler(), http.MethodPost, "/api/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required field: color_palette")
	})

	t.Run("本文がJSONでない", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPServer_ConvertAndDownload(t *testing.T) {
	srv, store := newTestServer(t, "true")
	h := srv.Handler()
	gen := generate(t, h)

	t.Run("未知のセッション", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/convert/unknown", map[string]any{"outline": gen.Outline})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid session ID")
	})

	t.Run("アウトラインなし", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/convert/"+gen.SessionID, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No outline provided")
	})

	t.Run("変換してダウンロードする", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/convert/"+gen.SessionID, map[string]any{"outline": gen.Outline})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp responses.ConvertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "solar_energy_presentation.pptx", resp.Filename)
		assert.Equal(t, "/api/download/"+gen.SessionID+"/solar_energy_presentation.pptx", resp.DownloadURL)

		// スタブのコンバーターはファイルを作らないので、ここで用意します。
		sess, err := store.Get(gen.SessionID)
		require.NoError(t, err)
		assert.Equal(t, resp.Filename, filepath.Base(sess.DeckPath))
		require.NoError(t, os.WriteFile(filepath.Join(sess.WorkDir, resp.Filename), []byte("pptx"), 0o644))

		w = doJSON(t, h, http.MethodGet, resp.DownloadURL, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pptx", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Disposition"), resp.Filename)
	})

	t.Run("存在しないファイル", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/download/"+gen.SessionID+"/missing.pptx", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("未知のセッションのダウンロード", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/download/unknown/x.pptx", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPServer_ConvertFailure(t *testing.T) {
	srv, _ := newTestServer(t, "false")
	gen := generate(t, srv.Handler())

	w := doJSON(t, srv.Handler(), http.MethodPost, "/api/convert/"+gen.SessionID, map[string]any{"outline": gen.Outline})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to convert presentation")
}

func TestHTTPServer_Cleanup(t *testing.T) {
	srv, store := newTestServer(t, "true")
	h := srv.Handler()
	gen := generate(t, h)

	sess, err := store.Get(gen.SessionID)
	require.NoError(t, err)

	w := doJSON(t, h, http.MethodPost, "/api/cleanup/"+gen.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.NoDirExists(t, sess.WorkDir)

	t.Run("削除済みのセッションは 400", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/cleanup/"+gen.SessionID, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid session ID"}`, w.Body.String())
	})

	t.Run("存在しないセッションは 400", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/cleanup/no-such-session", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid session ID"}`, w.Body.String())
	})

	w = doJSON(t, h, http.MethodPost, "/api/convert/"+gen.SessionID, map[string]any{"outline": gen.Outline})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
