// Package resolve implements documentation resolution with fallback and
// index dispatch. A lookup tries the persistent store, then locally built
// `cargo doc` output, then docs.rs, in that order; the first two stages
// fall through on a miss, the remote stage is terminal.
package resolve

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gitduk/rustdocs"
)

// DefaultDocsHost is the remote documentation host.
const DefaultDocsHost = "https://docs.rs"

// snippetLimit bounds the body excerpt carried by a StatusError.
const snippetLimit = 512

var _ rustdocs.DocResolver = (*Resolver)(nil)

// Resolver composes the store, local build lookup, and remote fetch into
// one ordered fallback chain. Stages never race; ordering is strictly
// sequential within a resolution.
type Resolver struct {
	Store      rustdocs.Store
	FileSystem rustdocs.FileSystem
	Fetcher    rustdocs.Fetcher
	Converter  rustdocs.Converter

	// WorkspaceRoot is the Cargo workspace root, if one was discovered.
	// Empty skips the local build lookup stage.
	WorkspaceRoot string

	// DocsHost overrides the remote host. Defaults to DefaultDocsHost.
	DocsHost string
}

// Resolve produces documentation text for the request.
func (r *Resolver) Resolve(ctx context.Context, req rustdocs.LookupRequest) (*rustdocs.Resolution, error) {
	// A store hit short-circuits; any store failure falls through.
	if text, err := r.Store.Load(ctx, req.CrateName, req.ItemPathString()); err == nil {
		return &rustdocs.Resolution{Source: rustdocs.SourceLocal, Text: text}, nil
	}

	if res, err := r.resolveLocal(ctx, req); err != nil {
		return nil, err
	} else if res != nil {
		return res, nil
	}

	return r.resolveRemote(ctx, req)
}

// resolveLocal reads the crate's local `cargo doc` output. A missing
// workspace root or an unreadable file is a miss, reported as (nil, nil);
// a conversion failure is terminal.
func (r *Resolver) resolveLocal(ctx context.Context, req rustdocs.LookupRequest) (*rustdocs.Resolution, error) {
	if r.WorkspaceRoot == "" {
		return nil, nil
	}

	segments := []string{r.WorkspaceRoot, "target", "doc", req.CrateName}
	if len(req.ItemPath) > 0 {
		segments = append(segments, req.ItemPath...)
	}
	segments = append(segments, "index.html")
	docPath := path.Join(segments...)

	contents, err := r.FileSystem.Load(ctx, docPath)
	if err != nil {
		return nil, nil
	}

	result, err := r.Converter.Convert(contents)
	if err != nil {
		return nil, fmt.Errorf("converting local docs for %q: %w", req.CrateName, err)
	}

	return &rustdocs.Resolution{Source: rustdocs.SourceLocal, Text: result.Markdown}, nil
}

// resolveRemote fetches the item's page from docs.rs. Any failure here is
// terminal for the whole resolution.
func (r *Resolver) resolveRemote(ctx context.Context, req rustdocs.LookupRequest) (*rustdocs.Resolution, error) {
	host := r.DocsHost
	if host == "" {
		host = DefaultDocsHost
	}

	url := fmt.Sprintf("%s/%s/latest/%s/%s",
		host, req.CrateName, req.CrateName, strings.Join(req.ItemPath, "/"))

	resp, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		snippet := string(resp.Body)
		if len(snippet) > snippetLimit {
			snippet = snippet[:snippetLimit]
		}
		return nil, &rustdocs.StatusError{StatusCode: resp.StatusCode, Snippet: snippet}
	}

	result, err := r.Converter.Convert(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("converting docs.rs response for %q: %w", req.CrateName, err)
	}

	return &rustdocs.Resolution{Source: rustdocs.SourceDocsRs, Text: result.Markdown}, nil
}
