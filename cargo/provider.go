package cargo

import (
	"bytes"
	"context"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/gitduk/rustdocs"
	"github.com/gitduk/rustdocs/bloom"
	"golang.org/x/sync/errgroup"
)

// Crawl bounds. Rustdoc trees for large crates run to a few thousand pages.
const (
	expectedPages = 10000
	falsePositive = 0.001
	maxPages      = 5000
)

// DefaultConcurrency bounds parallel page reads within one crawl wave.
const DefaultConcurrency = 8

// Ensure LocalProvider implements rustdocs.CrawlProvider at compile time.
var _ rustdocs.CrawlProvider = (*LocalProvider)(nil)

// LocalProvider crawls a crate's `cargo doc` output under
// <workspaceRoot>/target/doc/<crate>. Starting from the crate's root
// index.html it follows intra-crate links breadth-first, deduplicating
// visited pages with a Bloom filter. Pages within a wave are read
// concurrently; the pages themselves are yielded in deterministic
// breadth-first order.
type LocalProvider struct {
	fs            rustdocs.FileSystem
	workspaceRoot string
	concurrency   int
}

// NewLocalProvider creates a LocalProvider bound to a filesystem and a
// Cargo workspace root.
func NewLocalProvider(fs rustdocs.FileSystem, workspaceRoot string) *LocalProvider {
	return &LocalProvider{
		fs:            fs,
		workspaceRoot: workspaceRoot,
		concurrency:   DefaultConcurrency,
	}
}

// loadedPage pairs a page's doc-tree-relative path with its contents.
type loadedPage struct {
	rel      string
	contents []byte
}

// Pages walks the crate's documentation tree. The crate root page must
// exist; later pages that fail to load are skipped, since rustdoc trees
// routinely link to pages of other crates that are not present locally.
func (p *LocalProvider) Pages(ctx context.Context, crateName string, fn func(rustdocs.CrawlPage) error) error {
	docRoot := path.Join(p.workspaceRoot, "target", "doc", crateName)

	seen := bloom.NewFilter(expectedPages, falsePositive)
	seen.Add("index.html")
	wave := []string{"index.html"}
	visited := 0

	for len(wave) > 0 && visited < maxPages {
		if len(wave) > maxPages-visited {
			wave = wave[:maxPages-visited]
		}

		loaded, err := p.loadWave(ctx, docRoot, wave)
		if err != nil {
			return err
		}

		if visited == 0 && len(loaded) == 0 {
			return rustdocs.Errorf(rustdocs.ENOTFOUND, "no local docs found for crate %q", crateName)
		}

		var next []string
		for _, page := range loaded {
			visited++

			if err := fn(rustdocs.CrawlPage{
				ItemPath: pageItemPath(page.rel),
				HTML:     page.contents,
			}); err != nil {
				return err
			}

			for _, link := range pageLinks(page.rel, page.contents) {
				if seen.Test(link) {
					continue
				}
				seen.Add(link)
				next = append(next, link)
			}
		}

		wave = next
	}

	return nil
}

// loadWave reads one breadth-first wave of pages concurrently, preserving
// the wave's order and dropping pages that cannot be read.
func (p *LocalProvider) loadWave(ctx context.Context, docRoot string, wave []string) ([]loadedPage, error) {
	results := make([][]byte, len(wave))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, rel := range wave {
		g.Go(func() error {
			contents, err := p.fs.Load(gctx, path.Join(docRoot, rel))
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				return nil // unreadable page, skip
			}
			mu.Lock()
			results[i] = contents
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	loaded := make([]loadedPage, 0, len(wave))
	for i, rel := range wave {
		if results[i] == nil {
			continue
		}
		loaded = append(loaded, loadedPage{rel: rel, contents: results[i]})
	}
	return loaded, nil
}

// pageLinks extracts the intra-crate page paths linked from a page,
// normalized relative to the doc tree root, in a deterministic order.
func pageLinks(fromRel string, contents []byte) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(contents))
	if err != nil {
		return nil
	}

	fromDir := path.Dir(fromRel)
	set := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if rel, ok := normalizeLink(fromDir, href); ok {
			set[rel] = struct{}{}
		}
	})

	links := make([]string, 0, len(set))
	for rel := range set {
		links = append(links, rel)
	}
	sort.Strings(links)
	return links
}

// normalizeLink resolves an href against the linking page's directory and
// reports whether it stays inside the crate's doc tree.
func normalizeLink(fromDir, href string) (string, bool) {
	if href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "/") ||
		strings.Contains(href, "://") {
		return "", false
	}

	if idx := strings.IndexAny(href, "#?"); idx != -1 {
		href = href[:idx]
	}
	if !strings.HasSuffix(href, ".html") {
		return "", false
	}

	rel := path.Join(fromDir, href)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// pageItemPath derives the "::"-joined item path a page documents from its
// doc-tree-relative path. Directory pages (index.html) document modules;
// item pages encode their kind and name in the file name, e.g.
// "sync/struct.Mutex.html" documents "sync::Mutex".
func pageItemPath(rel string) string {
	dir, file := path.Split(rel)

	segments := strings.FieldsFunc(dir, func(r rune) bool { return r == '/' })

	if file != "index.html" {
		name := strings.TrimSuffix(file, ".html")
		if idx := strings.LastIndex(name, "."); idx != -1 {
			name = name[idx+1:]
		}
		if name != "" {
			segments = append(segments, name)
		}
	}

	return strings.Join(segments, rustdocs.PathSeparator)
}
