package input

// Idle is a Source with no input at all
type Idle struct{}

// PollEvents implements Source
func (Idle) PollEvents() []Event { return nil }

// Held implements Source
func (Idle) Held() KeySet { return nil }

// limited ends a source with Quit after a fixed number of polls
type limited struct {
	Source
	remaining int
}

// Limit returns a Source that forwards src for n polls and then reports
// Quit on every poll. n <= 0 returns src unchanged.
func Limit(src Source, n int) Source {
	if n <= 0 {
		return src
	}
	return &limited{Source: src, remaining: n}
}

func (l *limited) PollEvents() []Event {
	if l.remaining <= 0 {
		return []Event{QuitEvent()}
	}
	l.remaining--
	return l.Source.PollEvents()
}
