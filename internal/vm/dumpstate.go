package vm

import "github.com/davecgh/go-spew/spew"

// DumpState renders the stack and memory for human inspection under
// --debug, the same role go-spew plays in the geth forks' state-dump
// tooling: a readable recursive dump instead of a one-line %+v.
func DumpState(rs *RunState) string {
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true}
	return cfg.Sdump(struct {
		PC     int
		Stack  []interface{}
		Memory []byte
	}{
		PC:     rs.PC,
		Stack:  wordsToInterfaces(rs.Stack.Data()),
		Memory: rs.Memory.Data(),
	})
}

func wordsToInterfaces[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i, v := range items {
		out[i] = v
	}
	return out
}
