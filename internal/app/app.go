// Package app declares the site's routes and assembles the shell.
package app

import (
	"log/slog"

	"github.com/a-h/templ"

	"github.com/jackielii/pageshell"
	"github.com/jackielii/pageshell/pages"
)

// Routes declares the site's routes in priority order. The root route must stay
// Exact: a Prefix "/" would match every path and hide the routes after it.
func Routes(person string) (*pageshell.RouteTable, error) {
	return pageshell.NewRouteTable(
		pageshell.Route("/", pageshell.Exact, pages.HomeRoute, home, pageshell.WithTitle("Home")),
		pageshell.Route("/about", pageshell.Prefix, pages.AboutRoute, about, pageshell.WithTitle("About")),
		pageshell.Route("/contact", pageshell.Prefix, pages.ContactRoute, contact,
			pageshell.WithTitle("Contact"), pageshell.WithInput(person)),
	)
}

// New builds the shell. person is passed to the contact page on every render.
func New(person string, options ...pageshell.Option) (*pageshell.Shell, error) {
	table, err := Routes(person)
	if err != nil {
		return nil, err
	}
	options = append([]pageshell.Option{
		pageshell.WithDocument(pages.Document),
		pageshell.WithLogger(slog.Default()),
	}, options...)
	return pageshell.New(table, pages.Header(), options...)
}

func home(any) templ.Component  { return pages.Home() }
func about(any) templ.Component { return pages.About() }

func contact(input any) templ.Component {
	person, _ := input.(string)
	return pages.Contact(person)
}
