package loader

import (
	"github.com/aledsdavies/inkrt/ink"
)

// decodeObject implements the object (map) rule: the first key
// discriminates the shape. Objects whose first key matches none of the
// tagged shapes are container-trailers, which only ever appear as the final
// element of an array (decodeArray handles that case before ever calling
// decodeObject); encountering one here means it's miscontextualized.
func decodeObject(path []string, rawMsg []byte) (ink.RuntimeObject, error) {
	entries, err := readRawObject(path, rawMsg)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, newParseError(path, "empty object is not a valid value here")
	}

	first := entries[0]
	switch first.key {
	case "^->":
		return decodeDivertTargetValue(path, entries)
	case "^var":
		return decodeVariablePointerValue(path, entries)
	case "->":
		return decodePlainDivert(path, entries)
	case "f()":
		return decodeFunctionDivert(path, entries)
	case "->t->":
		return decodeTunnelDivert(path, entries)
	case "x()":
		return decodeExternalDivert(path, entries)
	case "*":
		return decodeChoicePoint(path, entries)
	case "VAR?":
		return decodeVariableReference(path, entries)
	case "CNT?":
		return decodeReadCount(path, entries)
	case "VAR=":
		return decodeGlobalAssignment(path, entries)
	case "temp=":
		return decodeTempAssignment(path, entries)
	case "#":
		return decodeTag(path, entries)
	case "list":
		return nil, newParseError(path, "list values are not yet implemented")
	default:
		return nil, newParseError(path, "object with first key %q is a container-trailer and may only appear as an array's final element", first.key)
	}
}

// matchTrailing walks entries[1:] against an ordered list of allowed
// optional keys, returning the raw value for each that is present. A key
// appearing out of the given order, or any key not in allowed, is ill-formed.
func matchTrailing(path []string, entries []rawEntry, allowed []string) (map[string][]byte, error) {
	found := make(map[string][]byte)
	ai := 0
	for _, e := range entries[1:] {
		for ai < len(allowed) && allowed[ai] != e.key {
			ai++
		}
		if ai >= len(allowed) {
			return nil, newParseError(extend(path, e.key), "unexpected key %q in this position", e.key)
		}
		found[e.key] = e.raw
		ai++
	}
	return found, nil
}

func decodeDivertTargetValue(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	if _, err := matchTrailing(path, entries, nil); err != nil {
		return nil, err
	}
	text, err := decodeJSONString(extend(path, "^->"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	p, err := mustParsePathString(path, text)
	if err != nil {
		return nil, err
	}
	return ink.NewDivertTargetValue(p), nil
}

func decodeVariablePointerValue(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	rest, err := matchTrailing(path, entries, []string{"ci"})
	if err != nil {
		return nil, err
	}
	name, err := decodeJSONString(extend(path, "^var"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	ci := int32(-1)
	if raw, ok := rest["ci"]; ok {
		ci, err = decodeInt32(extend(path, "ci"), raw)
		if err != nil {
			return nil, err
		}
	}
	return ink.NewVariablePointerValue(name, ci), nil
}

func decodePlainDivert(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	rest, err := matchTrailing(path, entries, []string{"var", "c"})
	if err != nil {
		return nil, err
	}
	text, err := decodeJSONString(extend(path, "->"), entries[0].raw)
	if err != nil {
		return nil, err
	}

	isVar := false
	if raw, ok := rest["var"]; ok {
		if isVar, err = decodeBool(extend(path, "var"), raw); err != nil {
			return nil, err
		}
	}

	var target ink.Target
	if isVar {
		target = ink.NameTarget(text)
	} else {
		p, err := mustParsePathString(path, text)
		if err != nil {
			return nil, err
		}
		target = ink.PathTarget(p)
	}

	d := &ink.Divert{Target: &target, PushType: ink.PushNone}
	if raw, ok := rest["c"]; ok {
		if d.IsConditional, err = decodeBool(extend(path, "c"), raw); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func decodeFunctionDivert(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	rest, err := matchTrailing(path, entries, []string{"c"})
	if err != nil {
		return nil, err
	}
	text, err := decodeJSONString(extend(path, "f()"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	p, err := mustParsePathString(path, text)
	if err != nil {
		return nil, err
	}
	target := ink.PathTarget(p)
	d := ink.NewFunctionDivert(target)
	if raw, ok := rest["c"]; ok {
		if d.IsConditional, err = decodeBool(extend(path, "c"), raw); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func decodeTunnelDivert(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	rest, err := matchTrailing(path, entries, []string{"c"})
	if err != nil {
		return nil, err
	}
	text, err := decodeJSONString(extend(path, "->t->"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	p, err := mustParsePathString(path, text)
	if err != nil {
		return nil, err
	}
	d := ink.NewTunnelDivert(ink.PathTarget(p))
	if raw, ok := rest["c"]; ok {
		if d.IsConditional, err = decodeBool(extend(path, "c"), raw); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func decodeExternalDivert(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	rest, err := matchTrailing(path, entries, []string{"exArgs", "c"})
	if err != nil {
		return nil, err
	}
	name, err := decodeJSONString(extend(path, "x()"), entries[0].raw)
	if err != nil {
		return nil, err
	}

	var externalArgs *uint32
	if raw, ok := rest["exArgs"]; ok {
		n, err := decodeUint32(extend(path, "exArgs"), raw)
		if err != nil {
			return nil, err
		}
		externalArgs = &n
	}

	d := ink.NewExternalDivert(name, externalArgs)
	if raw, ok := rest["c"]; ok {
		if d.IsConditional, err = decodeBool(extend(path, "c"), raw); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func decodeChoicePoint(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	rest, err := matchTrailing(path, entries, []string{"flg"})
	if err != nil {
		return nil, err
	}
	text, err := decodeJSONString(extend(path, "*"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	p, err := mustParsePathString(path, text)
	if err != nil {
		return nil, err
	}

	var flags uint8
	if raw, ok := rest["flg"]; ok {
		if flags, err = decodeUint8(extend(path, "flg"), raw); err != nil {
			return nil, err
		}
	}
	return ink.NewChoicePointFromFlags(&p, flags), nil
}

func decodeVariableReference(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	if _, err := matchTrailing(path, entries, nil); err != nil {
		return nil, err
	}
	name, err := decodeJSONString(extend(path, "VAR?"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	return ink.VariableReference{Name: name}, nil
}

func decodeReadCount(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	if _, err := matchTrailing(path, entries, nil); err != nil {
		return nil, err
	}
	text, err := decodeJSONString(extend(path, "CNT?"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	p, err := mustParsePathString(path, text)
	if err != nil {
		return nil, err
	}
	return ink.ReadCount{TargetPath: p}, nil
}

func decodeGlobalAssignment(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	rest, err := matchTrailing(path, entries, []string{"re"})
	if err != nil {
		return nil, err
	}
	name, err := decodeJSONString(extend(path, "VAR="), entries[0].raw)
	if err != nil {
		return nil, err
	}

	re := false
	if raw, ok := rest["re"]; ok {
		if re, err = decodeBool(extend(path, "re"), raw); err != nil {
			return nil, err
		}
	}
	return ink.VariableAssignment{Name: name, IsGlobal: true, IsNewDeclaration: !re}, nil
}

func decodeTempAssignment(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	if _, err := matchTrailing(path, entries, nil); err != nil {
		return nil, err
	}
	name, err := decodeJSONString(extend(path, "temp="), entries[0].raw)
	if err != nil {
		return nil, err
	}
	return ink.VariableAssignment{Name: name, IsGlobal: false, IsNewDeclaration: true}, nil
}

func decodeTag(path []string, entries []rawEntry) (ink.RuntimeObject, error) {
	if _, err := matchTrailing(path, entries, nil); err != nil {
		return nil, err
	}
	text, err := decodeJSONString(extend(path, "#"), entries[0].raw)
	if err != nil {
		return nil, err
	}
	return ink.Tag{Text: text}, nil
}
