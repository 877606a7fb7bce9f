// Package pages holds the shell's header, document and the pages it routes to.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Route names used by the header links.
const (
	HomeRoute    = "home"
	AboutRoute   = "about"
	ContactRoute = "contact"
)

// Home renders the landing page.
func Home() templ.Component {
	return static(`<section class="home"><h1>Home</h1><p>Welcome to the home page.</p></section>`)
}

// About renders the about page.
func About() templ.Component {
	return static(`<section class="about"><h1>About</h1><p>This site is a small page shell with three pages.</p></section>`)
}

// Contact renders the contact page for person. An empty person renders the generic page.
func Contact(person string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := `<p>Get in touch.</p>`
		if person != "" {
			body = `<p>Get in touch with <span class="person">` + templ.EscapeString(person) + `</span>.</p>`
		}
		_, err := io.WriteString(w, `<section class="contact"><h1>Contact</h1>`+body+`</section>`)
		return err
	})
}

func static(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}
