package doctor

import "github.com/valerio/go-dmg/dmg/cpu"

// historyDepth is how many instructions a mismatch report looks back.
const historyDepth = 5

// Entry is one checked instruction: the state the CPU was in before
// executing it, and the log line it was checked against.
type Entry struct {
	Line        int
	Instruction string
	State       cpu.Snapshot
}

// ring keeps the last historyDepth entries, overwriting the oldest.
type ring struct {
	slots [historyDepth]Entry
	head  int
	count int
}

func (r *ring) push(e Entry) {
	r.slots[r.head] = e
	r.head = (r.head + 1) % historyDepth
	if r.count < historyDepth {
		r.count++
	}
}

// entries returns the buffered history oldest first.
func (r *ring) entries() []Entry {
	out := make([]Entry, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, r.slots[(r.head-r.count+i+historyDepth)%historyDepth])
	}
	return out
}
