package evergreen

import (
	"context"
	"sync"
)

type commandKind uint8

const (
	commandToggle commandKind = iota
	commandLights
	commandWish
)

// command is one queued inbound operation.
type command struct {
	kind     commandKind
	on       bool
	userText string
	blessing string
}

// Inbox queues inbound operations from other goroutines. The Engine drains it
// at the start of each Step, so nothing changes mid-evaluation. Safe for
// concurrent use.
type Inbox struct {
	mu    sync.Mutex
	queue []command
}

// ToggleAssembly queues a target flip.
func (in *Inbox) ToggleAssembly() {
	in.push(command{kind: commandToggle})
}

// SetLightsEnabled queues a lights change.
func (in *Inbox) SetLightsEnabled(on bool) {
	in.push(command{kind: commandLights, on: on})
}

// SubmitWish queues a completed wish.
func (in *Inbox) SubmitWish(userText, blessing string) {
	in.push(command{kind: commandWish, userText: userText, blessing: blessing})
}

// GrantWish asks b for a blessing, falling back to a canned one, and queues
// the completed wish. It blocks for as long as b does; run it on its own
// goroutine from a frame loop.
func (in *Inbox) GrantWish(ctx context.Context, b Blesser, userText string) {
	in.SubmitWish(userText, BlessOrFallback(ctx, b, userText))
}

// Len returns the number of queued operations.
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

func (in *Inbox) push(c command) {
	in.mu.Lock()
	in.queue = append(in.queue, c)
	in.mu.Unlock()
}

// drain moves every queued command into buf (reset to length 0) and returns it.
func (in *Inbox) drain(buf []command) []command {
	in.mu.Lock()
	buf = append(buf[:0], in.queue...)
	in.queue = in.queue[:0]
	in.mu.Unlock()
	return buf
}
