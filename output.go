package rustdocs

// Source identifies where a resolved documentation text came from. It is a
// closed set: there are exactly two sources by design.
type Source string

// Documentation sources.
const (
	// SourceLocal marks docs sourced from the store or local `cargo doc`
	// output.
	SourceLocal Source = "local"

	// SourceDocsRs marks docs fetched from docs.rs.
	SourceDocsRs Source = "docs.rs"
)

// Resolution is the outcome of a successful lookup: the documentation text
// and its provenance. It lives for a single invocation and is never
// persisted.
type Resolution struct {
	Source Source
	Text   string
}

// SectionDescriptor carries render-agnostic metadata about an output
// section. A UI adapter may turn it into a widget; this package attaches no
// behavior to it.
type SectionDescriptor struct {
	Source    Source
	CrateName string
	ItemPath  string // "::"-joined, empty for a crate-root lookup
	Indexed   bool   // true for index confirmations
}

// OutputSection marks a contiguous byte range of the output text.
type OutputSection struct {
	Start      int
	End        int
	Descriptor SectionDescriptor
}

// CommandOutput is the final result of a command invocation.
type CommandOutput struct {
	Text              string
	Sections          []OutputSection
	RunCommandsInText bool
}

// NewCommandOutput assembles a CommandOutput with the single section every
// successful command produces: one span covering the entire text. Embedded
// command execution is always disabled.
func NewCommandOutput(text string, desc SectionDescriptor) *CommandOutput {
	return &CommandOutput{
		Text: text,
		Sections: []OutputSection{{
			Start:      0,
			End:        len(text),
			Descriptor: desc,
		}},
		RunCommandsInText: false,
	}
}
