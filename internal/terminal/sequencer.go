package terminal

import "time"

const (
	StartDelay   = 800 * time.Millisecond
	DefaultDelay = 40 * time.Millisecond
	CommandPause = 300 * time.Millisecond
	OutputPause  = 80 * time.Millisecond
)

type Line struct {
	Prompt string
	Text   string
	Output bool
	Cursor bool
}

type phase int

const (
	phaseWaiting phase = iota
	phaseTyping
	phasePause
	phaseDone
)

// Sequencer replays a script against a virtual clock. The host calls
// Advance with the elapsed time and renders Lines.
type Sequencer struct {
	script []Entry
	index  int
	lines  []Line
	phase  phase
	wait   time.Duration
	typed  int
}

func NewSequencer(script []Entry) *Sequencer {
	s := &Sequencer{script: script, phase: phaseWaiting, wait: StartDelay}
	if len(script) == 0 {
		s.phase = phaseDone
	}
	return s
}

func (s *Sequencer) Advance(dt time.Duration) {
	for s.phase != phaseDone {
		if dt < s.wait {
			s.wait -= dt
			return
		}
		dt -= s.wait
		s.wait = 0
		s.step()
	}
}

// step performs whatever is due once the current wait has elapsed.
func (s *Sequencer) step() {
	switch s.phase {
	case phaseWaiting, phasePause:
		s.begin()
	case phaseTyping:
		e := s.script[s.index]
		text := []rune(e.Text)
		if s.typed < len(text) {
			s.typed++
			s.lines[len(s.lines)-1].Text = string(text[:s.typed])
			s.wait = delayOf(e)
			return
		}
		s.index++
		s.phase, s.wait = phasePause, CommandPause
	}
}

// begin appends the line for the current entry.
func (s *Sequencer) begin() {
	if s.index >= len(s.script) {
		s.phase = phaseDone
		return
	}

	e := s.script[s.index]
	if !e.IsCommand() {
		s.lines = append(s.lines, Line{Text: e.Output, Output: true})
		s.index++
		s.phase, s.wait = phasePause, OutputPause
		return
	}

	s.lines = append(s.lines, Line{Prompt: e.Prompt})
	if e.Cursor && e.Text == "" {
		s.lines[len(s.lines)-1].Cursor = true
		s.phase = phaseDone
		return
	}
	s.typed = 0
	s.phase, s.wait = phaseTyping, delayOf(e)
}

func delayOf(e Entry) time.Duration {
	if e.Delay <= 0 {
		return DefaultDelay
	}
	return e.Delay
}

func (s *Sequencer) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Sequencer) Done() bool { return s.phase == phaseDone }

func (s *Sequencer) CursorVisible() bool {
	return len(s.lines) > 0 && s.lines[len(s.lines)-1].Cursor
}

// Duration is how long the script takes until the sequencer is done.
func Duration(script []Entry) time.Duration {
	if len(script) == 0 {
		return 0
	}
	total := StartDelay
	for _, e := range script {
		switch {
		case !e.IsCommand():
			total += OutputPause
		case e.Cursor && e.Text == "":
			return total
		default:
			total += time.Duration(len([]rune(e.Text))+1)*delayOf(e) + CommandPause
		}
	}
	return total
}
