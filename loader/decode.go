package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aledsdavies/inkrt/ink"
	"github.com/aledsdavies/inkrt/ipath"
)

// rawEntry is one key/value pair of a JSON object, kept in source order.
// encoding/json's map[string]interface{} loses key order, which first-key
// dispatch depends on, so objects are buffered into rawEntry slices instead
// of maps: a parser that can't peek the next key buffers the object's
// entries first, then dispatches on the first one.
type rawEntry struct {
	key string
	raw json.RawMessage
}

// firstKeyShapes is the set of keys that discriminate a tagged RuntimeObject
// shape. Any object whose first key is not in this set is a
// container-trailer instead.
var firstKeyShapes = map[string]bool{
	"^->": true, "^var": true, "->": true, "f()": true, "->t->": true,
	"x()": true, "*": true, "VAR?": true, "CNT?": true, "VAR=": true,
	"temp=": true, "#": true, "list": true,
}

// sniffKind returns the leading significant byte of a raw JSON value:
// '{', '[', '"', 't'/'f', 'n', or a digit/'-' for numbers.
func sniffKind(raw json.RawMessage) (byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, fmt.Errorf("empty JSON value")
	}
	return trimmed[0], nil
}

// decodeValue dispatches a single JSON value to the strict grammar.
func decodeValue(path []string, raw json.RawMessage) (ink.RuntimeObject, error) {
	kind, err := sniffKind(raw)
	if err != nil {
		return nil, wrapParseError(path, err, "malformed JSON value")
	}

	switch {
	case kind == '[':
		return decodeArray(path, raw)
	case kind == '{':
		return decodeObject(path, raw)
	case kind == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrapParseError(path, err, "malformed JSON string")
		}
		return decodeString(path, s)
	case kind == 'n':
		return ink.Null{}, nil
	case kind == 't' || kind == 'f':
		return nil, newParseError(path, "unexpected boolean literal at this position")
	default:
		return decodeNumber(path, raw)
	}
}

// decodeArray implements the array rule: a Container whose content is the
// elements in order, except a final trailer map (folded) or a final null
// (discarded sentinel).
func decodeArray(path []string, raw json.RawMessage) (ink.RuntimeObject, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, wrapParseError(path, err, "malformed JSON array")
	}

	c := ink.NewContainer()
	if len(elems) == 0 {
		return c, nil
	}

	last := elems[len(elems)-1]
	lastKind, err := sniffKind(last)
	if err != nil {
		return nil, wrapParseError(extend(path, lastIndex(elems)), err, "malformed trailing element")
	}

	body := elems
	var trailer *[]rawEntry

	switch {
	case lastKind == 'n':
		// Sentinel: "no trailer". Discard it, rest are ordinary children.
		body = elems[:len(elems)-1]
	case lastKind == '{':
		entries, isTrailer, terr := classifyTrailer(extend(path, lastIndex(elems)), last)
		if terr != nil {
			return nil, terr
		}
		if isTrailer {
			body = elems[:len(elems)-1]
			trailer = &entries
		}
		// else: ordinary tagged object, falls through to the loop below.
	}

	for i, e := range body {
		childPath := extend(path, fmt.Sprintf("%d", i))
		obj, err := decodeValue(childPath, e)
		if err != nil {
			return nil, err
		}
		c.AddChild(obj)
	}

	if trailer != nil {
		if err := applyTrailer(extend(path, lastIndex(elems)), c, *trailer); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func lastIndex(elems []json.RawMessage) string {
	return fmt.Sprintf("%d", len(elems)-1)
}

// classifyTrailer buffers an object's entries in order and reports whether
// it is a container-trailer (first key not one of the tagged shapes) or an
// ordinary tagged object that merely happens to be the array's last element.
func classifyTrailer(path []string, raw json.RawMessage) ([]rawEntry, bool, error) {
	entries, err := readRawObject(path, raw)
	if err != nil {
		return nil, false, err
	}
	if len(entries) > 0 && firstKeyShapes[entries[0].key] {
		return nil, false, nil
	}
	return entries, true, nil
}

// applyTrailer folds a container-trailer's "#n", "#f", and named-child
// entries into c. Named sub-containers are appended after c's existing
// positional content, in the order their keys appear in the trailer map.
func applyTrailer(path []string, c *ink.Container, entries []rawEntry) error {
	for _, e := range entries {
		switch {
		case e.key == "#n":
			name, err := decodeJSONString(extend(path, e.key), e.raw)
			if err != nil {
				return err
			}
			c.SetName(name)

		case e.key == "#f":
			flags, err := decodeUint8(extend(path, e.key), e.raw)
			if err != nil {
				return err
			}
			c.SetCountFlags(flags)

		case strings.HasPrefix(e.key, "#"):
			return newParseError(extend(path, e.key), "unrecognized container-trailer directive %q", e.key)

		default:
			childPath := extend(path, e.key)
			obj, err := decodeValue(childPath, e.raw)
			if err != nil {
				return err
			}
			sub, ok := obj.(*ink.Container)
			if !ok {
				return newParseError(childPath, "named child %q must deserialize to a container", e.key)
			}
			sub.SetName(e.key)
			c.AddChild(sub)
		}
	}
	return nil
}

// readRawObject buffers a JSON object's entries in source order.
func readRawObject(path []string, raw json.RawMessage) ([]rawEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, wrapParseError(path, err, "malformed JSON object")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, newParseError(path, "expected JSON object")
	}

	var entries []rawEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, wrapParseError(path, err, "malformed object key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, newParseError(path, "object key must be a string, got %v", keyTok)
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, wrapParseError(extend(path, key), err, "malformed object value")
		}
		entries = append(entries, rawEntry{key: key, raw: val})
	}

	if _, err := dec.Token(); err != nil {
		return nil, wrapParseError(path, err, "malformed JSON object")
	}
	return entries, nil
}

func decodeJSONString(path []string, raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", wrapParseError(path, err, "expected string")
	}
	return s, nil
}

// mustParsePathString parses a textual path, surfacing a ParseError when the
// text is empty or otherwise unparsable.
func mustParsePathString(path []string, text string) (ipath.Path, error) {
	p, ok := ipath.Parse(text)
	if !ok {
		return ipath.Path{}, newParseError(path, "unparsable path %q", text)
	}
	return p, nil
}
