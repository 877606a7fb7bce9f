package pages

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/jackielii/pageshell"
)

// Brand is the site name shown in the header.
const Brand = "Page Shell"

var navLinks = []struct {
	route string
	label string
}{
	{HomeRoute, "Home"},
	{AboutRoute, "About"},
	{ContactRoute, "Contact"},
}

// Header renders the brand and a link per page. It must be rendered by a shell,
// which supplies the route table the links are resolved from. Links to routes the
// table does not declare are left out.
func Header() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if pageshell.RoutesFrom(ctx) == nil {
			return errors.New("header: rendered outside a shell")
		}
		var sb strings.Builder
		sb.WriteString(`<header class="header"><a class="brand" href="/">` + Brand + `</a><nav>`)
		for _, l := range navLinks {
			href, err := pageshell.URLFor(ctx, l.route)
			if err != nil {
				continue
			}
			href = templ.EscapeString(href)
			sb.WriteString(`<a href="` + href + `" hx-get="` + href + `" hx-target="#` + pageshell.PageRegionID +
				`" hx-swap="outerHTML" hx-push-url="true">` + l.label + `</a>`)
		}
		sb.WriteString(`</nav></header>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}
