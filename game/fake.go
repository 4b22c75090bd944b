package game

import (
	"errors"
	"slices"

	"github.com/meghashyamc/asteroids2d/geometry"
)

// ScriptedInput replays a fixed sequence of command sets, one per Poll. Once
// the script runs out it reports no controls, or starts over when looping.
type ScriptedInput struct {
	script []Commands
	next   int
	loop   bool
}

func NewScriptedInput(script ...Commands) *ScriptedInput {
	return &ScriptedInput{script: script}
}

// Repeat returns cmds n times, for building scripts
func Repeat(cmds Commands, n int) []Commands {
	out := make([]Commands, n)
	for i := range out {
		out[i] = cmds
	}
	return out
}

func (s *ScriptedInput) Loop() *ScriptedInput {
	s.loop = true
	return s
}

func (s *ScriptedInput) Poll() Commands {
	if s.next >= len(s.script) {
		if !s.loop || len(s.script) == 0 {
			return 0
		}
		s.next = 0
	}
	cmds := s.script[s.next]
	s.next++
	return cmds
}

type DrawKind string

const (
	DrawClear   DrawKind = "clear"
	DrawLines   DrawKind = "lines"
	DrawRect    DrawKind = "rect"
	DrawText    DrawKind = "text"
	DrawPolygon DrawKind = "polygon"
	DrawPresent DrawKind = "present"
)

type DrawCall struct {
	Kind   DrawKind
	Points []geometry.Point
	Rect   [4]int
	Text   string
	Colour RGB
}

var ErrInjected = errors.New("injected renderer failure")

// RecordingRenderer keeps every draw call of the current frame. Setting FailOn
// makes calls of that kind return ErrInjected.
type RecordingRenderer struct {
	Calls  []DrawCall
	Frames int
	FailOn DrawKind
}

func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{}
}

func (r *RecordingRenderer) record(call DrawCall) error {
	r.Calls = append(r.Calls, call)
	if r.FailOn != "" && r.FailOn == call.Kind {
		return ErrInjected
	}
	return nil
}

// Clear starts a new frame and forgets the previous one's calls
func (r *RecordingRenderer) Clear(colour RGB) {
	r.Calls = r.Calls[:0]
	r.Calls = append(r.Calls, DrawCall{Kind: DrawClear, Colour: colour})
}

func (r *RecordingRenderer) DrawLines(points []geometry.Point, colour RGB) error {
	return r.record(DrawCall{Kind: DrawLines, Points: slices.Clone(points), Colour: colour})
}

func (r *RecordingRenderer) FillRect(x, y, w, h int, colour RGB) error {
	return r.record(DrawCall{Kind: DrawRect, Rect: [4]int{x, y, w, h}, Colour: colour})
}

func (r *RecordingRenderer) DrawText(text string, colour RGB, x, y int) error {
	return r.record(DrawCall{Kind: DrawText, Text: text, Rect: [4]int{x, y, 0, 0}, Colour: colour})
}

func (r *RecordingRenderer) FillPolygon(vertices []geometry.Point, colour RGB) error {
	return r.record(DrawCall{Kind: DrawPolygon, Points: slices.Clone(vertices), Colour: colour})
}

func (r *RecordingRenderer) Present() error {
	if err := r.record(DrawCall{Kind: DrawPresent}); err != nil {
		return err
	}
	r.Frames++
	return nil
}

func (r *RecordingRenderer) Count(kind DrawKind) int {
	n := 0
	for _, call := range r.Calls {
		if call.Kind == kind {
			n++
		}
	}
	return n
}

func (r *RecordingRenderer) Texts() []string {
	var texts []string
	for _, call := range r.Calls {
		if call.Kind == DrawText {
			texts = append(texts, call.Text)
		}
	}
	return texts
}
