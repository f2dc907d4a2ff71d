package rustdocs

// ConvertResult holds the outcome of converting a rustdoc page to markdown.
type ConvertResult struct {
	// Markdown is the converted documentation text.
	Markdown string

	// Items are the item names listed on the page (modules, structs,
	// traits, functions), used to seed the store's search index.
	Items []string
}

// Converter converts raw rustdoc HTML to markdown.
type Converter interface {
	Convert(raw []byte) (*ConvertResult, error)
}
