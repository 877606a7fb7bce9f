package pageshell

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"
)

type testComponent struct {
	content string
}

func (t testComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := w.Write([]byte(t.content))
	return err
}

func textPage(content string) PageFunc {
	return func(any) templ.Component {
		return testComponent{content: content}
	}
}

// inputPage renders its static input, or "no input" when the route has none.
func inputPage(input any) templ.Component {
	if input == nil {
		return testComponent{content: "no input"}
	}
	s, _ := input.(string)
	return testComponent{content: "hello " + s}
}

var errBroken = errors.New("broken page")

func brokenPage(any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "partial output")
		return errBroken
	})
}

func siteTable() *RouteTable {
	return MustRouteTable(
		Route("/", Exact, "home", textPage("home page")),
		Route("/about", Prefix, "about", textPage("about page")),
		Route("/contact", Prefix, "contact", inputPage, WithInput("Joel")),
	)
}
