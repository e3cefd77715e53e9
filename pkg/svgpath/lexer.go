package svgpath

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PathLexer defines the lexical structure of SVG path data.
// A command letter doubles as the relative/absolute switch
// (lowercase = relative, uppercase = absolute).
var PathLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Command letters, including the curve/arc family we carry as opaque
	{Name: "Command", Pattern: `[MmLlHhVvCcSsQqTtAaZz]`},

	// Floating-point parameter: "10", "-.5", "2.", "1.e2", "0.4e2"
	{Name: "Number", Pattern: `[-+]?(?:[0-9]*\.[0-9]+|[0-9]+\.?)(?:[eE][-+]?[0-9]+)?`},

	// Parameter separators
	{Name: "Sep", Pattern: `[\s,]+`},

	// Anything else lexes as a junk run so a malformed parameter cannot
	// desynchronize the command stream
	{Name: "Junk", Pattern: `[^\s,MmLlHhVvCcSsQqTtAaZz]+`},
})
