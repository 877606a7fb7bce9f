package pageshell

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

// PageRegionID is the id of the element holding the selected page.
const PageRegionID = "page"

// isPartial reports whether the request only wants the page region swapped in.
// Boosted navigation swaps the whole body, so it gets the full document.
func isPartial(r *http.Request) bool {
	if !htmx.IsHTMX(r) || htmx.IsBoosted(r) {
		return false
	}
	target, ok := htmx.GetTarget(r)
	if !ok {
		return false
	}
	return strings.TrimPrefix(target, "#") == PageRegionID
}
