package htmltomarkdown_test

import (
	"testing"

	"github.com/gitduk/rustdocs"
	"github.com/gitduk/rustdocs/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rustdocPage = `<!DOCTYPE html>
<html>
<head><title>tokio::sync - Rust</title></head>
<body>
<nav class="sidebar"><a href="../index.html">tokio</a></nav>
<section id="main-content">
  <h1>Module <a class="mod" href="#">sync</a></h1>
  <div class="docblock"><p>Synchronization primitives for use in asynchronous contexts.</p></div>
  <h2>Structs</h2>
  <ul class="item-table">
    <li><div class="item-name"><a class="struct" href="struct.Mutex.html">Mutex</a></div></li>
    <li><div class="item-name"><a class="struct" href="struct.RwLock.html">RwLock</a></div></li>
  </ul>
</section>
</body>
</html>`

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts the main content region to markdown", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()

		result, err := c.Convert([]byte(rustdocPage))

		require.NoError(t, err)
		assert.Contains(t, result.Markdown, "Synchronization primitives")
		assert.Contains(t, result.Markdown, "Structs")
	})

	t.Run("strips navigation chrome", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()

		result, err := c.Convert([]byte(rustdocPage))

		require.NoError(t, err)
		assert.NotContains(t, result.Markdown, "../index.html")
	})

	t.Run("extracts the page's item listing", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()

		result, err := c.Convert([]byte(rustdocPage))

		require.NoError(t, err)
		assert.Equal(t, []string{"Mutex", "RwLock"}, result.Items)
	})

	t.Run("deduplicates repeated item names", func(t *testing.T) {
		t.Parallel()

		page := `<section id="main-content">
			<ul class="item-table">
				<li><div class="item-name"><a href="a.html">Mutex</a></div></li>
				<li><div class="item-name"><a href="b.html">Mutex</a></div></li>
			</ul>
		</section>`

		c := htmltomarkdown.NewConverter()

		result, err := c.Convert([]byte(page))

		require.NoError(t, err)
		assert.Equal(t, []string{"Mutex"}, result.Items)
	})

	t.Run("falls back to content extraction without a rustdoc layout", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html>
<html>
<head><title>Some page</title></head>
<body>
<article>
  <h1>Plain page</h1>
  <p>This page has no rustdoc layout but carries enough prose content for
  the extractor to find. It keeps going for a couple of sentences so the
  body is not dismissed as boilerplate.</p>
</article>
</body>
</html>`

		c := htmltomarkdown.NewConverter()

		result, err := c.Convert([]byte(page))

		require.NoError(t, err)
		assert.Contains(t, result.Markdown, "no rustdoc layout")
		assert.Empty(t, result.Items)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()

		_, err := c.Convert([]byte("   "))

		assert.Equal(t, rustdocs.EINVALID, rustdocs.ErrorCode(err))
	})
}
