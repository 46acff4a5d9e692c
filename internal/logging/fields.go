package logging

// Field names for structured logging.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldInput   = "input"
	FieldOutput  = "output"
	FieldFormat  = "format"
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Deck statistics.
	FieldSlides  = "slides"
	FieldHeaders = "headers"
	FieldLines   = "lines"
	FieldTitle   = "title"
	FieldElapsed = "elapsed"

	// Parser options.
	FieldTabWidth   = "tab_width"
	FieldCodeIndent = "code_indent"
)
