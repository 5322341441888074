package loader

import (
	"encoding/json"
	"strings"

	"github.com/aledsdavies/inkrt/ink"
)

// decodeNumber implements the scalar number rule: a JSON number with no
// fractional part or exponent becomes Value::Int (narrowed to i32); any
// number with a fractional part or exponent becomes Value::Float (narrowed
// to f32). The distinction is made on the literal's lexical form, not its
// numeric value, by decoding through json.Number.
func decodeNumber(path []string, raw json.RawMessage) (ink.RuntimeObject, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, wrapParseError(path, err, "malformed JSON number")
	}

	lex := n.String()
	if strings.ContainsAny(lex, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return nil, wrapParseError(path, err, "malformed JSON float")
		}
		return ink.NewFloatValue(float32(f)), nil
	}

	i, err := n.Int64()
	if err != nil {
		return nil, wrapParseError(path, err, "malformed JSON integer")
	}
	return ink.NewIntValue(int32(i)), nil
}

func decodeInt32(path []string, raw json.RawMessage) (int32, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, wrapParseError(path, err, "expected integer")
	}
	i, err := n.Int64()
	if err != nil {
		return 0, wrapParseError(path, err, "expected integer")
	}
	return int32(i), nil
}

func decodeUint32(path []string, raw json.RawMessage) (uint32, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, wrapParseError(path, err, "expected unsigned integer")
	}
	i, err := n.Int64()
	if err != nil || i < 0 {
		return 0, newParseError(path, "expected non-negative integer, got %q", n.String())
	}
	return uint32(i), nil
}

func decodeUint8(path []string, raw json.RawMessage) (uint8, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, wrapParseError(path, err, "expected small unsigned integer")
	}
	i, err := n.Int64()
	if err != nil || i < 0 || i > 255 {
		return 0, newParseError(path, "expected integer in [0,255], got %q", n.String())
	}
	return uint8(i), nil
}

func decodeBool(path []string, raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, wrapParseError(path, err, "expected boolean")
	}
	return b, nil
}
