package timerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState(125)

	assert.Equal(t, "00:00:00", s.StartText)
	assert.Equal(t, "00:02:05", s.EndText)
	assert.Equal(t, TimeRange{Start: 0, End: 125}, s.Slider)
}

func TestStateReset(t *testing.T) {
	s := NewState(100).EditStart("00:00:10")

	assert.Equal(t, s, s.Reset(100), "same duration keeps the selection")

	reloaded := s.Reset(200)
	assert.Equal(t, NewState(200), reloaded)

	assert.Equal(t, NewState(0), State{}.Reset(0))
}

func TestEditEndHugeValueClampsToDuration(t *testing.T) {
	s := NewState(30).EditEnd("99999999999999999999")

	assert.Equal(t, "00:00:30", s.EndText)
	assert.Equal(t, TimeRange{Start: 0, End: 30}, s.Range())
}

func TestEditStart(t *testing.T) {
	tests := []struct {
		name       string
		end        string
		in         string
		wantStart  string
		wantSlider TimeRange
	}{
		{name: "plain", end: "00:01:00", in: "0:30", wantStart: "00:00:30", wantSlider: TimeRange{30, 60}},
		{name: "equal to end", end: "00:01:00", in: "00:01:00", wantStart: "00:00:59", wantSlider: TimeRange{59, 60}},
		{name: "past end", end: "00:01:00", in: "5:00", wantStart: "00:00:59", wantSlider: TimeRange{59, 60}},
		{name: "garbage", end: "00:01:00", in: "abc", wantStart: "00:00:00", wantSlider: TimeRange{0, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(120).EditEnd(tt.end).EditStart(tt.in)

			assert.Equal(t, tt.wantStart, s.StartText)
			assert.Equal(t, tt.end, s.EndText)
			assert.Equal(t, tt.wantSlider, s.Slider)
		})
	}
}

func TestEditStartDoesNotMutateReceiver(t *testing.T) {
	s := NewState(60)
	_ = s.EditStart("00:00:20")

	assert.Equal(t, Zero, s.StartText)
}

func TestEditEnd(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		in         string
		wantEnd    string
		wantSlider TimeRange
	}{
		{name: "plain", start: "00:00:10", in: "0:50", wantEnd: "00:00:50", wantSlider: TimeRange{10, 50}},
		{name: "beyond duration", start: "00:00:10", in: "10:00", wantEnd: "00:02:00", wantSlider: TimeRange{10, 120}},
		{name: "before start", start: "00:00:30", in: "00:00:05", wantEnd: "00:00:31", wantSlider: TimeRange{30, 31}},
		{name: "equal to start", start: "00:00:30", in: "30", wantEnd: "00:00:31", wantSlider: TimeRange{30, 31}},
		{name: "garbage", start: "00:00:30", in: "x:y", wantEnd: "00:00:31", wantSlider: TimeRange{30, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(120).EditStart(tt.start).EditEnd(tt.in)

			assert.Equal(t, tt.start, s.StartText)
			assert.Equal(t, tt.wantEnd, s.EndText)
			assert.Equal(t, tt.wantSlider, s.Slider)
		})
	}
}

func TestMoveSlider(t *testing.T) {
	s := NewState(120).MoveSlider(15, 75)
	assert.Equal(t, "00:00:15", s.StartText)
	assert.Equal(t, "00:01:15", s.EndText)
	assert.Equal(t, TimeRange{15, 75}, s.Range())

	s = NewState(120).MoveSlider(200, -3)
	assert.Equal(t, TimeRange{0, 120}, s.Slider)
	assert.Equal(t, "00:00:00", s.StartText)
	assert.Equal(t, "00:02:00", s.EndText)
}

func TestLastWriterWins(t *testing.T) {
	s := NewState(300).MoveSlider(10, 20).EditEnd("00:04:00")
	assert.Equal(t, TimeRange{10, 240}, s.Slider)

	s = s.MoveSlider(50, 60)
	assert.Equal(t, "00:00:50", s.StartText)
	assert.Equal(t, "00:01:00", s.EndText)
}

func TestZeroDurationIsNotGuarded(t *testing.T) {
	s := NewState(0).EditStart("00:00:00")

	assert.Equal(t, TimeRange{0, 0}, s.Range())
	assert.False(t, s.Range().Valid(s.Duration))
}
