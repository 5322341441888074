package loader

import (
	"strings"

	"github.com/aledsdavies/inkrt/ink"
)

// decodeString implements the string-token rule. Dispatch is by exact
// literal match or caret prefix; any other string is ill-formed at this
// position. The loader never silently coerces an unrecognized token.
func decodeString(path []string, s string) (ink.RuntimeObject, error) {
	if strings.HasPrefix(s, "^") {
		return ink.NewStringValue(s[1:]), nil
	}

	switch s {
	case "\n":
		return ink.NewStringValue("\n"), nil
	case "<>":
		return ink.Glue{Kind: ink.GlueBidirectional}, nil
	case "G<":
		return ink.Glue{Kind: ink.GlueLeft}, nil
	case "G>":
		return ink.Glue{Kind: ink.GlueRight}, nil
	case "void":
		return ink.Void{}, nil
	}

	if cmd, ok := ink.ParseControlCommand(s); ok {
		return cmd, nil
	}

	return nil, newParseError(path, "unrecognized string token %q", s)
}
