package rustdocs

import "strings"

// IndexFlag is the reserved argument token that switches an invocation into
// index mode. The token that follows it names the crate to index.
const IndexFlag = "--index"

// PathSeparator separates item path segments in a command argument.
const PathSeparator = "::"

// LookupRequest asks for the documentation of a single item within a crate.
// An empty ItemPath addresses the crate root.
type LookupRequest struct {
	CrateName string
	ItemPath  []string
}

// ItemPathString returns the item path segments joined by the path
// separator, or the empty string for a crate-root lookup.
func (r LookupRequest) ItemPathString() string {
	return strings.Join(r.ItemPath, PathSeparator)
}

// IndexRequest asks for a crate's local build output to be crawled into the
// store.
type IndexRequest struct {
	CrateName string
}

// CommandRequest is the parsed form of a command argument: exactly one of
// Lookup or Index is set.
type CommandRequest struct {
	Lookup *LookupRequest
	Index  *IndexRequest
}

// ParseArgument parses the raw slash-command argument into a lookup or an
// index request.
//
// The argument is split on whitespace. The reserved "--index" token consumes
// the following token as the crate to index and switches the invocation into
// index mode. All remaining tokens are concatenated without separators and
// split on "::"; the first segment is the crate name, the rest the item
// path. Item paths never legitimately contain spaces, so dropping the
// original whitespace is lossless in practice.
func ParseArgument(argument string) (*CommandRequest, error) {
	tokens := strings.Fields(argument)
	if len(tokens) == 0 {
		return nil, Errorf(EINVALID, "missing crate name")
	}

	var itemPath strings.Builder
	var indexCrate string

	for i := 0; i < len(tokens); i++ {
		if tokens[i] == IndexFlag {
			if i+1 >= len(tokens) {
				return nil, Errorf(EINVALID, "no crate name provided to %s", IndexFlag)
			}
			i++
			indexCrate = tokens[i]
			continue
		}
		itemPath.WriteString(tokens[i])
	}

	if indexCrate != "" {
		return &CommandRequest{Index: &IndexRequest{CrateName: indexCrate}}, nil
	}

	segments := strings.Split(itemPath.String(), PathSeparator)
	if segments[0] == "" {
		return nil, Errorf(EINVALID, "missing crate name")
	}

	return &CommandRequest{
		Lookup: &LookupRequest{
			CrateName: segments[0],
			ItemPath:  segments[1:],
		},
	}, nil
}
