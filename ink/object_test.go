package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlCommandRoundTrip(t *testing.T) {
	tokens := []string{
		"ev", "/ev", "out", "du", "pop", "~ret", "->->", "str", "/str", "nop",
		"choiceCnt", "turns", "readc", "rnd", "srnd", "visit", "seq",
		"thread", "done", "end", "listInt", "range",
	}

	seen := make(map[ControlCommand]bool)
	for _, tok := range tokens {
		cmd, ok := ParseControlCommand(tok)
		assert.True(t, ok, "token %q should parse", tok)
		assert.Equal(t, tok, cmd.String(), "round trip for %q", tok)
		assert.False(t, seen[cmd], "command %v mapped from more than one token", cmd)
		seen[cmd] = true
	}
	assert.Len(t, seen, 22)
}

func TestParseControlCommandUnknown(t *testing.T) {
	_, ok := ParseControlCommand("not-a-command")
	assert.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	a := NewIntValue(42)
	b := NewIntValue(42)
	c := NewIntValue(7)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestChoicePointFlagsRoundTrip(t *testing.T) {
	// Scenario S6: flg=18 (0x12) = hasStartContent | onceOnly
	cp := NewChoicePointFromFlags(nil, 18)
	assert.False(t, cp.HasCondition)
	assert.True(t, cp.HasStartContent)
	assert.False(t, cp.HasChoiceOnlyContent)
	assert.False(t, cp.IsInvisibleDefault)
	assert.True(t, cp.OnceOnly)
	assert.Equal(t, uint8(18), cp.Flags())
}

func TestDivertInvariants(t *testing.T) {
	plain := NewDivert(mustParsePath(t, "0.s"))
	assert.Equal(t, PushNone, plain.PushType)
	assert.False(t, plain.PushesToStack)

	fn := NewFunctionDivert(NameTarget("f"))
	assert.Equal(t, PushFunction, fn.PushType)
	assert.True(t, fn.PushesToStack)

	tunnel := NewTunnelDivert(PathTarget(mustParsePath(t, "0.t")))
	assert.Equal(t, PushTunnel, tunnel.PushType)
	assert.True(t, tunnel.PushesToStack)

	args := uint32(5)
	ext := NewExternalDivert("ext", &args)
	assert.Equal(t, PushFunction, ext.PushType)
	assert.False(t, ext.PushesToStack)
	assert.True(t, ext.IsExternal)
	assert.Equal(t, &args, ext.ExternalArgs)
}
