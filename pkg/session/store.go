package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/shouni/go-deck-kit/pkg/domain"
)

// ErrNotFound は指定された ID のセッションが存在しない場合に返されます。
var ErrNotFound = errors.New("セッションが見つかりません")

// Session は1回の生成から変換・ダウンロードまでの状態を保持します。
type Session struct {
	ID        string
	Request   domain.PresentationRequest
	Outline   *domain.Outline
	WorkDir   string
	DeckPath  string
	CreatedAt time.Time
}

// Store は TTL 付きのセッション保管庫です。期限切れや削除の際に作業ディレクトリも片付けます。
type Store struct {
	items   *cache.Cache
	baseDir string
	ttl     time.Duration
	mu      sync.Mutex
}

// NewStore は Store を初期化します。baseDir の下にセッションごとの作業ディレクトリを作ります。
func NewStore(baseDir string, ttl time.Duration) *Store {
	s := &Store{
		items:   cache.New(ttl, ttl/2+time.Second),
		baseDir: baseDir,
		ttl:     ttl,
	}
	s.items.OnEvicted(func(id string, v any) {
		if sess, ok := v.(*Session); ok {
			removeWorkDir(sess)
		}
	})
	return s
}

// Create は新しいセッションを作成して保存します。
func (s *Store) Create(req domain.PresentationRequest, outline *domain.Outline) (*Session, error) {
	id := uuid.NewString()
	workDir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("セッションの作業ディレクトリの作成に失敗しました: %w", err)
	}

	sess := &Session{
		ID:        id,
		Request:   req,
		Outline:   outline,
		WorkDir:   workDir,
		CreatedAt: time.Now(),
	}
	s.items.Set(id, sess, cache.DefaultExpiration)

	slog.Info("セッションを作成しました", "session_id", id, "work_dir", workDir)
	return sess, nil
}

// Get はセッションのコピーを返します。存在しない場合は ErrNotFound を返します。
func (s *Store) Get(id string) (Session, error) {
	v, ok := s.items.Get(id)
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return *v.(*Session), nil
}

// AttachOutline はセッションのアウトラインを差し替え、有効期限を延長します。
func (s *Store) AttachOutline(id string, outline *domain.Outline) error {
	return s.update(id, func(sess *Session) {
		sess.Outline = outline
	})
}

// AttachDeck は生成したデッキのパスを記録し、有効期限を延長します。
func (s *Store) AttachDeck(id, deckPath string) error {
	return s.update(id, func(sess *Session) {
		sess.DeckPath = deckPath
	})
}

// Delete はセッションと作業ディレクトリを削除します。存在しない ID の場合は ErrNotFound を返します。
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	// 作業ディレクトリは OnEvicted で削除します。
	s.items.Delete(id)
	return nil
}

// Len は保持しているセッション数を返します。期限切れで未回収のものも含みます。
func (s *Store) Len() int {
	return s.items.ItemCount()
}

func (s *Store) update(id string, fn func(*Session)) error {
	v, ok := s.items.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess := v.(*Session)

	s.mu.Lock()
	fn(sess)
	s.mu.Unlock()

	s.items.Set(id, sess, cache.DefaultExpiration)
	return nil
}

func removeWorkDir(sess *Session) {
	if sess.WorkDir == "" {
		return
	}
	if err := os.RemoveAll(sess.WorkDir); err != nil {
		slog.Warn("セッションの作業ディレクトリの削除に失敗しました", "session_id", sess.ID, "error", err)
		return
	}
	slog.Info("セッションを破棄しました", "session_id", sess.ID)
}
