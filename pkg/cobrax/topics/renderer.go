package topics

// Renderer turns a topic file into terminal output. format is the file
// extension including the dot, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, _ string) string {
	return content
}
