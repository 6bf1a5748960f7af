package timerange

// State is the start/end text pair and the slider of one session. Whichever
// side was edited last wins and the other side is derived from it.
//
// Transitions return a new State and never modify the receiver.
type State struct {
	Duration  int       `json:"duration"`
	StartText string    `json:"start_text"`
	EndText   string    `json:"end_text"`
	Slider    TimeRange `json:"slider"`
}

// NewState selects the whole video.
func NewState(duration int) State {
	s := State{
		Duration:  duration,
		StartText: Zero,
		EndText:   Format(duration),
	}
	return s.syncSlider()
}

// Reset reinitialises the state when a video with a different duration is
// loaded and keeps the user's selection otherwise.
func (s State) Reset(duration int) State {
	if s.EndText == "" || s.Duration != duration {
		return NewState(duration)
	}
	return s
}

// EditStart applies a start field edit. A start at or past the end is pulled
// back to one second before the end.
func (s State) EditStart(text string) State {
	start := Fix(text)
	st := mustParse(start, 0)
	ed := mustParse(s.EndText, s.Duration)

	if st >= ed {
		start = Format(ed - 1)
	}

	s.StartText = start
	return s.syncSlider()
}

// EditEnd applies an end field edit. An end past the duration is clamped to
// the duration, an end at or before the start is pushed to one second after it.
func (s State) EditEnd(text string) State {
	end := Fix(text)
	st := mustParse(s.StartText, 0)
	ed := mustParse(end, s.Duration)

	if ed > s.Duration {
		end = Format(s.Duration)
	} else if st >= ed {
		end = Format(st + 1)
	}

	s.EndText = end
	return s.syncSlider()
}

// MoveSlider applies a slider drag and rewrites both text fields from it.
func (s State) MoveSlider(lo, hi int) State {
	lo, hi = clamp(lo, 0, s.Duration), clamp(hi, 0, s.Duration)
	if lo > hi {
		lo, hi = hi, lo
	}

	s.Slider = TimeRange{Start: lo, End: hi}
	s.StartText = Format(lo)
	s.EndText = Format(hi)
	return s
}

// Range is the window currently shown in the text fields.
func (s State) Range() TimeRange {
	return TimeRange{
		Start: mustParse(s.StartText, 0),
		End:   mustParse(s.EndText, s.Duration),
	}
}

func (s State) syncSlider() State {
	s.Slider = s.Range()
	return s
}

func mustParse(text string, fallback int) int {
	v, err := Parse(text)
	if err != nil {
		return fallback
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
