package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const htmxScript = `<script src="https://unpkg.com/htmx.org@2.0.4"></script>`

// Document is the HTML page wrapping the shell.
func Document(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` + htmxScript + `</head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
