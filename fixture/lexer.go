package fixture

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the textual problem-fixture format: not PDDL, just enough
// structure (types/constants/predicates/actions/methods/init blocks, plus a
// small logical expression grammar) to drive the preinstantiation pipeline
// from tests, the REPL and the CLI without a full PDDL parser in scope.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"String", `"[^"]*"`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_-]*`, nil},
		{"Punctuation", `[{}()<,:]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
