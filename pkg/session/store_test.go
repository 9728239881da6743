package session

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/shouni/go-deck-kit/pkg/domain"
)

func TestStore(t *testing.T) {
	req := domain.PresentationRequest{Topic: "Go", ColorPalette: "green", SlideCount: 3}
	outline := &domain.Outline{Title: "Go"}

	t.Run("作成と取得", func(t *testing.T) {
		s := NewStore(t.TempDir(), time.Hour)
		sess, err := s.Create(req, outline)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if sess.ID == "" {
			t.Fatal("ID が空です")
		}
		if _, err := os.Stat(sess.WorkDir); err != nil {
			t.Errorf("作業ディレクトリが作成されていません: %v", err)
		}

		got, err := s.Get(sess.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Request.ColorPalette != "green" || got.Outline.Title != "Go" {
			t.Errorf("取得したセッションが不正です: %+v", got)
		}
	})

	t.Run("存在しないセッション", func(t *testing.T) {
		s := NewStore(t.TempDir(), time.Hour)
		if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("ErrNotFound を期待しましたが %v でした", err)
		}
		if err := s.AttachDeck("missing", "x.pptx"); !errors.Is(err, ErrNotFound) {
			t.Errorf("ErrNotFound を期待しましたが %v でした", err)
		}
	})

	t.Run("デッキとアウトラインの記録", func(t *testing.T) {
		s := NewStore(t.TempDir(), time.Hour)
		sess, _ := s.Create(req, outline)

		if err := s.AttachOutline(sess.ID, &domain.Outline{Title: "Edited"}); err != nil {
			t.Fatal(err)
		}
		if err := s.AttachDeck(sess.ID, "deck.pptx"); err != nil {
			t.Fatal(err)
		}
		got, _ := s.Get(sess.ID)
		if got.DeckPath != "deck.pptx" || got.Outline.Title != "Edited" {
			t.Errorf("更新が反映されていません: %+v", got)
		}
	})

	t.Run("削除は作業ディレクトリも消し、2回目は ErrNotFound", func(t *testing.T) {
		s := NewStore(t.TempDir(), time.Hour)
		sess, _ := s.Create(req, outline)

		if err := s.Delete(sess.ID); err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if err := s.Delete(sess.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("2回目の削除で ErrNotFound を期待しましたが %v でした", err)
		}

		if _, err := s.Get(sess.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("削除後に取得できてしまいます: %v", err)
		}
		if _, err := os.Stat(sess.WorkDir); !os.IsNotExist(err) {
			t.Errorf("作業ディレクトリが残っています: %v", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d", s.Len())
		}
	})

	t.Run("存在しない ID の削除は ErrNotFound", func(t *testing.T) {
		s := NewStore(t.TempDir(), time.Hour)
		if err := s.Delete("unknown"); !errors.Is(err, ErrNotFound) {
			t.Errorf("ErrNotFound を期待しましたが %v でした", err)
		}
	})

	t.Run("期限切れで取得できなくなる", func(t *testing.T) {
		s := NewStore(t.TempDir(), 20*time.Millisecond)
		sess, _ := s.Create(req, outline)
		time.Sleep(50 * time.Millisecond)
		if _, err := s.Get(sess.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("期限切れのセッションが取得できます: %v", err)
		}
	})
}
