package components

import "strings"

type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of inline CSS declarations.
type Style []Declaration

func (s Style) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}

var LayoutStyle = Style{
	{"margin", "2rem"},
	{"padding", "2rem"},
	{"border", "1px solid #000"},
}

var LinkStyle = Style{
	{"margin-right", "15px"},
}
