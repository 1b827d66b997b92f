package fixture

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"pddlcore/internal/pddlerrors"
)

// ParseString parses fixture source held in memory, tagging errors with name
// (typically the originating file path, or "<string>" for ad hoc input).
func ParseString(name, source string) (*Fixture, error) {
	parser, err := participle.Build[Fixture](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		return nil, fmt.Errorf("fixture: parser build failed: %w", err)
	}

	f, err := parser.ParseString(name, source)
	if err != nil {
		reportParseError(source, err)
		return nil, err
	}
	return f, nil
}

// ParseFile reads and parses a fixture file from disk.
func ParseFile(path string) (*Fixture, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// reportParseError prints a parse failure through the same Reporter the
// preinstantiation pipeline uses for its own errors, so a fixture syntax
// error and a pipeline structural error look like one family of diagnostics
// on screen rather than two unrelated styles.
func reportParseError(src string, err error) {
	participleErr, ok := err.(participle.Error)
	if !ok {
		fmt.Println(color.RedString("unexpected parse failure: %s", err))
		return
	}

	at := participleErr.Position()
	sourceLines := strings.Split(src, "\n")
	if at.Line <= 0 || at.Line > len(sourceLines) {
		fmt.Println(color.RedString("parse failure at unresolvable position: %s", err))
		return
	}

	offendingLine := sourceLines[at.Line-1]
	fmt.Print(pddlerrors.NewReporter().FormatSyntaxError(at.Filename, offendingLine, at.Line, at.Column, participleErr.Message()))
}
