package topics

// Renderer formats raw topic content for terminal display. The format
// argument is the source file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer passes content through untouched.
type PlainRenderer struct{}

// Render returns the content unchanged.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
