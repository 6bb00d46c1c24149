package render

import "strings"

// recognizedColors is the closed set of node color names accepted by the
// shipped renderers. The list covers the X11/SVG names shared by Graphviz
// and the common plotting libraries, so diagram definitions stay portable
// across rendering backends.
var recognizedColors = map[string]struct{}{
	"white":       {},
	"black":       {},
	"red":         {},
	"green":       {},
	"blue":        {},
	"yellow":      {},
	"cyan":        {},
	"magenta":     {},
	"orange":      {},
	"pink":        {},
	"purple":      {},
	"brown":       {},
	"gray":        {},
	"grey":        {},
	"gold":        {},
	"ivory":       {},
	"beige":       {},
	"coral":       {},
	"crimson":     {},
	"khaki":       {},
	"lavender":    {},
	"lime":        {},
	"navy":        {},
	"olive":       {},
	"orchid":      {},
	"plum":        {},
	"salmon":      {},
	"silver":      {},
	"tan":         {},
	"teal":        {},
	"tomato":      {},
	"turquoise":   {},
	"violet":      {},
	"wheat":       {},
	"aliceblue":   {},
	"lightblue":   {},
	"lightcyan":   {},
	"lightgray":   {},
	"lightgrey":   {},
	"lightgreen":  {},
	"lightpink":   {},
	"lightyellow": {},
	"darkblue":    {},
	"darkgray":    {},
	"darkgrey":    {},
	"darkgreen":   {},
	"darkorange":  {},
	"darkred":     {},
	"darkviolet":  {},
	"skyblue":     {},
	"steelblue":   {},
	"seagreen":    {},
	"slategray":   {},
	"slategrey":   {},
}

// DefaultNodeColor is used when a diagram carries no color hint.
const DefaultNodeColor = "white"

// IsRecognizedColor reports whether name is in the closed color set.
// Matching is case-insensitive; the empty string is not recognized.
func IsRecognizedColor(name string) bool {
	_, ok := recognizedColors[strings.ToLower(name)]
	return ok
}
