package evergreen

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action   string `json:"action"`
	On       bool   `json:"on,omitempty"`
	Text     string `json:"text,omitempty"`
	Blessing string `json:"blessing,omitempty"`
	Slot     int    `json:"slot,omitempty"`
	Frames   int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences inbound operations across frames for automated
// runs. Attach to an Engine via SetScript.
//
// Supported actions: "toggle", "lights" (on), "wish" (text, blessing),
// "select" (slot), "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// Selected records the result of every "select" step in order.
	Selected []SlotSelection
}

// SlotSelection is the outcome of one scripted select.
type SlotSelection struct {
	Slot  SlotID
	Wish  Wish
	Found bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "toggle", "lights", "wish", "select", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches a ScriptRunner. Its step runs at the start of every
// Step, after the inbox drains and before the driver ticks.
func (e *Engine) SetScript(r *ScriptRunner) {
	e.script = r
}

// Done reports whether every step has executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step executes at most one action per frame.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "toggle":
		e.ToggleAssembly()
	case "lights":
		e.SetLightsEnabled(st.On)
	case "wish":
		e.SubmitWish(st.Text, st.Blessing)
	case "select":
		w, ok := e.SelectSlot(SlotID(st.Slot))
		r.Selected = append(r.Selected, SlotSelection{Slot: SlotID(st.Slot), Wish: w, Found: ok})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
