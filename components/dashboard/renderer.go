package dashboard

import "io"

// Renderer renders a named template with the given data. When an out writer
// is supplied the rendered document is also streamed into it; the string
// return always carries the full result.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}
