package world

import (
	"testing"

	"github.com/vovakirdan/coastrun/internal/config"
)

func TestCameraClamp(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Lead: 0.3, Smoothing: 6}, 960, 6000)
	tests := []struct {
		playerX float64
		want    float64
	}{
		{0, 0},
		{100, 0},
		{1288, 1000},
		{5900, 5040},
		{99999, 5040},
	}
	for _, tt := range tests {
		cam.Snap(tt.playerX)
		if cam.Offset != tt.want {
			t.Errorf("Snap(%v) offset = %v, want %v", tt.playerX, cam.Offset, tt.want)
		}
	}
}

func TestCameraFollowSmooths(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Lead: 0.3, Smoothing: 6}, 960, 6000)
	cam.Follow(2288, 1.0/60)
	if cam.Offset <= 0 || cam.Offset >= 2000 {
		t.Fatalf("first follow offset = %v, want strictly between 0 and 2000", cam.Offset)
	}
	for i := 0; i < 600; i++ {
		cam.Follow(2288, 1.0/60)
	}
	if d := 2000 - cam.Offset; d > 0.01 || d < -0.01 {
		t.Errorf("offset = %v, want to converge on 2000", cam.Offset)
	}
	cam.Follow(2288, 5)
	if d := 2000 - cam.Offset; d > 1e-9 || d < -1e-9 {
		t.Errorf("large dt should snap, got %v", cam.Offset)
	}
}

func TestCameraShortLevel(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Lead: 0.3, Smoothing: 6}, 960, 500)
	cam.Snap(400)
	if cam.Offset != 0 {
		t.Errorf("level shorter than the screen should pin the camera at 0, got %v", cam.Offset)
	}
}

func TestCameraVisibility(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Lead: 0.3, Smoothing: 6}, 960, 6000)
	cam.Offset = 1000
	if !cam.Visible(1500, 0) || cam.Visible(2100, 0) || !cam.Visible(2100, 200) {
		t.Error("visibility window wrong")
	}
	if cam.Behind(900, 200) || !cam.Behind(799, 200) {
		t.Error("cull window wrong")
	}
}
