package pageshell

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes formats the table in priority order, one route per line.
func PrintRoutes(t *RouteTable) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for i, e := range t.entries {
		input := "-"
		if e.HasInput() {
			input = fmt.Sprintf("%v", e.Input)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, e.Mode, e.Pattern, e.Name, input)
	}
	_ = tw.Flush()
	for _, sh := range t.Shadowed() {
		sb.WriteString("warning: " + sh.String() + "\n")
	}
	return sb.String()
}
