// Package htmltomarkdown converts rustdoc HTML pages to markdown.
//
// Rustdoc wraps the documentation proper in a #main-content region
// surrounded by navigation chrome. The converter isolates that region with
// goquery, collects the page's item listing for the search index, and
// renders markdown with html-to-markdown. Pages without a rustdoc layout
// fall back to trafilatura boilerplate-removal extraction.
package htmltomarkdown

import (
	"bytes"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/gitduk/rustdocs"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// chromeSelector matches rustdoc page furniture that carries no
// documentation content.
const chromeSelector = "script, style, noscript, nav, button, " +
	".sidebar, .mobile-topbar, .search-form, .out-of-band, " +
	".src-link, .rightside, #copy-path, .sub-heading .srclink"

// Ensure Converter implements rustdocs.Converter at compile time.
var _ rustdocs.Converter = (*Converter)(nil)

// Converter converts rustdoc HTML to markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a rustdoc page into markdown plus the item names the
// page lists.
func (c *Converter) Convert(raw []byte) (*rustdocs.ConvertResult, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, rustdocs.Errorf(rustdocs.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	main := doc.Find("#main-content").First()
	if main.Length() == 0 {
		return c.convertFallback(raw)
	}

	items := extractItems(main)

	main.Find(chromeSelector).Remove()

	contentHTML, err := goquery.OuterHtml(main)
	if err != nil {
		return nil, err
	}

	markdown, err := c.conv.ConvertString(contentHTML)
	if err != nil {
		return nil, err
	}

	return &rustdocs.ConvertResult{Markdown: markdown, Items: items}, nil
}

// convertFallback handles pages without a rustdoc layout by extracting the
// main content with trafilatura before converting. No item listing is
// recoverable from such pages.
func (c *Converter) convertFallback(raw []byte) (*rustdocs.ConvertResult, error) {
	result, err := trafilatura.Extract(bytes.NewReader(raw), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}

	contentHTML := ""
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	markdown, err := c.conv.ConvertString(contentHTML)
	if err != nil {
		return nil, err
	}

	return &rustdocs.ConvertResult{Markdown: markdown}, nil
}

// extractItems collects the item names listed on a rustdoc page (modules,
// structs, traits, functions) in document order, without duplicates.
func extractItems(main *goquery.Selection) []string {
	var items []string
	seen := make(map[string]struct{})

	main.Find(".item-table .item-name a, dl.item-table dt a").Each(func(_ int, a *goquery.Selection) {
		name := a.Text()
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		items = append(items, name)
	})

	return items
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
