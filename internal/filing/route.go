package filing

import (
	"sort"
	"strings"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

// IsBlank reports whether a line holds nothing but whitespace, quotes and
// delimiters. Blank lines are dropped before routing.
func IsBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == Delimiter[0], c == '"', c == '\'':
		case strings.IndexByte(asciiSpace, c) >= 0:
		default:
			return false
		}
	}
	return true
}

// Probe returns the line with delimiters and quotes removed, upper-cased
// (ASCII only). It drives the embedded-header filter and the 8.0 shim.
func Probe(line string) string {
	b := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == Delimiter[0], c == '"', c == '\'':
			continue
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		b = append(b, c)
	}
	return string(b)
}

// IsEmbeddedHeader reports whether a probed line is a header line. Header
// lines that reappear inside a filing are dropped.
func IsEmbeddedHeader(probe string) bool {
	return strings.HasPrefix(probe, headerSignature) || strings.HasPrefix(probe, "F3")
}

// Router maps record type prefixes to schedule layouts.
type Router struct {
	routes []schema.Definition
}

// NewRouter builds a router over the registered schedule layouts. Longer
// prefixes are tried first so SC1/ and SC2/ never fall into SC/.
func NewRouter() *Router {
	routes := schema.ByGroup(schema.GroupSchedule)
	sort.SliceStable(routes, func(i, j int) bool {
		if len(routes[i].Prefix) != len(routes[j].Prefix) {
			return len(routes[i].Prefix) > len(routes[j].Prefix)
		}
		return routes[i].Prefix < routes[j].Prefix
	})
	return &Router{routes: routes}
}

// Route returns the layout for a record type, or false when the record
// belongs in review.
func (r *Router) Route(rowType string) (schema.Definition, bool) {
	for _, def := range r.routes {
		if strings.HasPrefix(rowType, def.Prefix) {
			return def, true
		}
	}
	return schema.Definition{}, false
}

// Prefixes returns the prefixes in match order.
func (r *Router) Prefixes() []string {
	out := make([]string, len(r.routes))
	for i, def := range r.routes {
		out[i] = def.Prefix
	}
	return out
}
