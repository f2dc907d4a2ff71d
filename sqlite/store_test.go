package sqlite_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gitduk/rustdocs"
	"github.com/gitduk/rustdocs/mock"
	"github.com/gitduk/rustdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawConverter passes page bytes through as markdown unchanged.
func rawConverter() *mock.Converter {
	return &mock.Converter{
		ConvertFn: func(raw []byte) (*rustdocs.ConvertResult, error) {
			return &rustdocs.ConvertResult{Markdown: string(raw)}, nil
		},
	}
}

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func pagesProvider(pages []rustdocs.CrawlPage) *mock.CrawlProvider {
	return &mock.CrawlProvider{
		PagesFn: func(ctx context.Context, crateName string, fn func(rustdocs.CrawlPage) error) error {
			for _, page := range pages {
				if err := fn(page); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("miss returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(openDB(t), rawConverter())

		_, err := store.Load(context.Background(), "tokio", "sync::Mutex")

		assert.Equal(t, rustdocs.ENOTFOUND, rustdocs.ErrorCode(err))
	})

	t.Run("returns indexed content", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(openDB(t), &mock.Converter{
			ConvertFn: func(raw []byte) (*rustdocs.ConvertResult, error) {
				return &rustdocs.ConvertResult{Markdown: "# Mutex docs"}, nil
			},
		})

		err := store.Index(context.Background(), "tokio", pagesProvider([]rustdocs.CrawlPage{
			{ItemPath: "sync::Mutex", HTML: []byte("<html>mutex</html>")},
		}))
		require.NoError(t, err)

		content, err := store.Load(context.Background(), "tokio", "sync::Mutex")

		require.NoError(t, err)
		assert.Equal(t, "# Mutex docs", content)
	})
}

func TestStore_Search(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.Store {
		t.Helper()

		store := sqlite.NewStore(openDB(t), rawConverter())
		err := store.Index(context.Background(), "tokio", pagesProvider([]rustdocs.CrawlPage{
			{ItemPath: "", HTML: []byte("<html>root</html>")},
			{ItemPath: "sync", HTML: []byte("<html>sync</html>")},
			{ItemPath: "sync::Mutex", HTML: []byte("<html>mutex</html>")},
			{ItemPath: "time", HTML: []byte("<html>time</html>")},
		}))
		require.NoError(t, err)
		return store
	}

	t.Run("matches substrings and orders deterministically", func(t *testing.T) {
		t.Parallel()

		store := seed(t)

		matches, err := store.Search(context.Background(), "sync")

		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, rustdocs.SearchMatch{CrateName: "tokio", ItemPath: "sync"}, matches[0])
		assert.Equal(t, rustdocs.SearchMatch{CrateName: "tokio", ItemPath: "sync::Mutex"}, matches[1])
	})

	t.Run("matches across the crate prefix", func(t *testing.T) {
		t.Parallel()

		store := seed(t)

		matches, err := store.Search(context.Background(), "tokio::time")

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "time", matches[0].ItemPath)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		t.Parallel()

		store := seed(t)

		matches, err := store.Search(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("LIKE wildcards in the query are literal", func(t *testing.T) {
		t.Parallel()

		store := seed(t)

		matches, err := store.Search(context.Background(), "%")

		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestStore_Index(t *testing.T) {
	t.Parallel()

	t.Run("records listed child items for search", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(openDB(t), &mock.Converter{
			ConvertFn: func(raw []byte) (*rustdocs.ConvertResult, error) {
				return &rustdocs.ConvertResult{
					Markdown: "module docs",
					Items:    []string{"RwLock"},
				}, nil
			},
		})

		err := store.Index(context.Background(), "tokio", pagesProvider([]rustdocs.CrawlPage{
			{ItemPath: "sync", HTML: []byte("<html>sync</html>")},
		}))
		require.NoError(t, err)

		matches, err := store.Search(context.Background(), "RwLock")

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "sync::RwLock", matches[0].ItemPath)
	})

	t.Run("re-indexing replaces changed content", func(t *testing.T) {
		t.Parallel()

		content := "first"
		store := sqlite.NewStore(openDB(t), &mock.Converter{
			ConvertFn: func(raw []byte) (*rustdocs.ConvertResult, error) {
				return &rustdocs.ConvertResult{Markdown: content}, nil
			},
		})
		provider := pagesProvider([]rustdocs.CrawlPage{
			{ItemPath: "sync", HTML: []byte("<html>sync</html>")},
		})

		require.NoError(t, store.Index(context.Background(), "tokio", provider))

		content = "second"
		require.NoError(t, store.Index(context.Background(), "tokio", provider))

		got, err := store.Load(context.Background(), "tokio", "sync")
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("malformed pages are skipped, not fatal", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(openDB(t), &mock.Converter{
			ConvertFn: func(raw []byte) (*rustdocs.ConvertResult, error) {
				if string(raw) == "broken" {
					return nil, rustdocs.Errorf(rustdocs.EINVALID, "empty HTML input")
				}
				return &rustdocs.ConvertResult{Markdown: "ok"}, nil
			},
		})

		err := store.Index(context.Background(), "tokio", pagesProvider([]rustdocs.CrawlPage{
			{ItemPath: "bad", HTML: []byte("broken")},
			{ItemPath: "good", HTML: []byte("fine")},
		}))
		require.NoError(t, err)

		_, err = store.Load(context.Background(), "tokio", "bad")
		assert.Equal(t, rustdocs.ENOTFOUND, rustdocs.ErrorCode(err))

		got, err := store.Load(context.Background(), "tokio", "good")
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})

	t.Run("concurrent index requests share one crawl", func(t *testing.T) {
		t.Parallel()

		var crawls atomic.Int64
		release := make(chan struct{})

		store := sqlite.NewStore(openDB(t), rawConverter())
		provider := &mock.CrawlProvider{
			PagesFn: func(ctx context.Context, crateName string, fn func(rustdocs.CrawlPage) error) error {
				crawls.Add(1)
				<-release
				return fn(rustdocs.CrawlPage{ItemPath: "sync", HTML: []byte("<html>sync</html>")})
			},
		}

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.Index(context.Background(), "tokio", provider))
			}()
		}

		// Let all four invocations pile up behind the in-flight crawl
		// before releasing it.
		time.Sleep(100 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int64(1), crawls.Load())
	})
}
