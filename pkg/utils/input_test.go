package utils

import (
	"reflect"
	"testing"
)

func TestDiffTouchesBegan(t *testing.T) {
	got := DiffTouches(map[int]int{}, map[int]int{3: 120, 1: 80})
	want := []TouchSample{
		{ID: 1, Y: 80, Phase: TouchBegan},
		{ID: 3, Y: 120, Phase: TouchBegan},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiffTouches() = %v, want %v", got, want)
	}
}

func TestDiffTouchesMovedAndEnded(t *testing.T) {
	previous := map[int]int{1: 80, 2: 200, MouseTouchID: 50}
	current := map[int]int{1: 60, MouseTouchID: 50}

	got := DiffTouches(previous, current)
	want := []TouchSample{
		{ID: 1, Y: 60, Phase: TouchMoved},
		{ID: 2, Y: 200, Phase: TouchEnded},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiffTouches() = %v, want %v", got, want)
	}
}

func TestDiffTouchesNoChange(t *testing.T) {
	positions := map[int]int{1: 10}
	if got := DiffTouches(positions, positions); len(got) != 0 {
		t.Errorf("Expected no samples, got %v", got)
	}
	if got := DiffTouches(nil, nil); len(got) != 0 {
		t.Errorf("Expected no samples for empty frames, got %v", got)
	}
}

func TestNewInputPoller(t *testing.T) {
	p := NewInputPoller()
	if p.lastY == nil {
		t.Fatal("Expected lastY to be initialized")
	}
	if p.EmulateTouchWithMouse {
		t.Error("Expected mouse emulation to be off by default")
	}
}
