package ink

// ControlCommand is an opcode interpreted by the Story façade and carried
// verbatim by the core. The 22 variants and their JSON tokens are fixed by
// the ink wire format.
type ControlCommand int

const (
	CmdEvalStart ControlCommand = iota
	CmdEvalEnd
	CmdEvalOutput
	CmdDuplicate
	CmdPopEvaluatedValue
	CmdPopFunction
	CmdPopTunnel
	CmdBeginString
	CmdEndString
	CmdNoOp
	CmdChoiceCount
	CmdTurnsSince
	CmdReadCount
	CmdRandom
	CmdSeedRandom
	CmdVisitIndex
	CmdSequenceShuffleIndex
	CmdStartThread
	CmdDone
	CmdEnd
	CmdListFromInt
	CmdListRange
)

func (ControlCommand) isRuntimeObject() {}

// controlCommandTokens is the canonical token table: load direction is
// token->command via this table inverted once at package init; display
// direction (String) is this table directly.
var controlCommandTokens = [...]string{
	CmdEvalStart:            "ev",
	CmdEvalEnd:              "/ev",
	CmdEvalOutput:           "out",
	CmdDuplicate:            "du",
	CmdPopEvaluatedValue:    "pop",
	CmdPopFunction:          "~ret",
	CmdPopTunnel:            "->->",
	CmdBeginString:          "str",
	CmdEndString:            "/str",
	CmdNoOp:                 "nop",
	CmdChoiceCount:          "choiceCnt",
	CmdTurnsSince:           "turns",
	CmdReadCount:            "readc",
	CmdRandom:               "rnd",
	CmdSeedRandom:           "srnd",
	CmdVisitIndex:           "visit",
	CmdSequenceShuffleIndex: "seq",
	CmdStartThread:          "thread",
	CmdDone:                 "done",
	CmdEnd:                  "end",
	CmdListFromInt:          "listInt",
	CmdListRange:            "range",
}

var tokenToControlCommand = func() map[string]ControlCommand {
	m := make(map[string]ControlCommand, len(controlCommandTokens))
	for cmd, tok := range controlCommandTokens {
		m[tok] = ControlCommand(cmd)
	}
	return m
}()

// String returns the command's wire token, the reverse of ParseControlCommand.
func (c ControlCommand) String() string {
	if int(c) < 0 || int(c) >= len(controlCommandTokens) {
		return "ControlCommand(?)"
	}
	return controlCommandTokens[c]
}

// ParseControlCommand looks up the command for a literal JSON string token.
// ok is false for any string that is not one of the 22 recognized tokens.
func ParseControlCommand(token string) (ControlCommand, bool) {
	c, ok := tokenToControlCommand[token]
	return c, ok
}
