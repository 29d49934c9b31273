package imaging

import (
	"errors"
	"testing"
)

func TestApplyWindow_MapsBandToGrayRange(t *testing.T) {
	tests := []struct {
		name string
		hu   float64
		want uint8
	}{
		{"window floor", -1000, 0},
		{"window ceiling", 2000, 255},
		{"midpoint truncates down", 500, 127},
		{"water", 0, 85},
		{"below floor clips", -2000, 0},
		{"above ceiling clips", 3000, 255},
		{"just below ceiling", 1999, 254},
		{"just above floor", -999, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ApplyWindow([][]float64{{tt.hu}}, DefaultWindowMin, DefaultWindowMax)
			if err != nil {
				t.Fatalf("ApplyWindow() error = %v", err)
			}
			if got := img.GrayAt(0, 0).Y; got != tt.want {
				t.Errorf("ApplyWindow(%g) = %d, want %d", tt.hu, got, tt.want)
			}
		})
	}
}

func TestApplyWindow_CustomBand(t *testing.T) {
	img, err := ApplyWindow([][]float64{{0, 50, 100}}, 0, 100)
	if err != nil {
		t.Fatalf("ApplyWindow() error = %v", err)
	}
	for i, want := range []uint8{0, 127, 255} {
		if got := img.GrayAt(i, 0).Y; got != want {
			t.Errorf("pixel %d = %d, want %d", i, got, want)
		}
	}
}

func TestApplyWindow_Monotonic(t *testing.T) {
	hu := [][]float64{{-1200, -1000, -500, 0, 500, 1000, 1500, 2000, 2200}}
	img, err := ApplyWindow(hu, DefaultWindowMin, DefaultWindowMax)
	if err != nil {
		t.Fatalf("ApplyWindow() error = %v", err)
	}
	prev := img.GrayAt(0, 0).Y
	for x := 1; x < len(hu[0]); x++ {
		cur := img.GrayAt(x, 0).Y
		if cur < prev {
			t.Errorf("pixel %d = %d decreased below %d", x, cur, prev)
		}
		prev = cur
	}
}

func TestApplyWindow_PreservesLayout(t *testing.T) {
	hu := [][]float64{
		{-1000, -1000, -1000},
		{-1000, -1000, 2000},
	}
	img, err := ApplyWindow(hu, DefaultWindowMin, DefaultWindowMax)
	if err != nil {
		t.Fatalf("ApplyWindow() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %dx%d, want 3x2", b.Dx(), b.Dy())
	}
	if got := img.GrayAt(2, 1).Y; got != 255 {
		t.Errorf("pixel (2,1) = %d, want 255", got)
	}
	if got := img.GrayAt(2, 0).Y; got != 0 {
		t.Errorf("pixel (2,0) = %d, want 0", got)
	}
}

func TestApplyWindow_RejectsDegenerateBand(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"equal bounds", 100, 100},
		{"inverted bounds", 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ApplyWindow([][]float64{{0}}, tt.min, tt.max)
			if img != nil {
				t.Errorf("ApplyWindow() image = %v, want nil on error", img)
			}
			var winErr *InvalidWindowError
			if !errors.As(err, &winErr) {
				t.Fatalf("ApplyWindow() error = %v, want *InvalidWindowError", err)
			}
			if winErr.Min != tt.min || winErr.Max != tt.max {
				t.Errorf("error bounds = [%g, %g], want [%g, %g]", winErr.Min, winErr.Max, tt.min, tt.max)
			}
		})
	}
}

func TestApplyWindow_EmptyInput(t *testing.T) {
	img, err := ApplyWindow(nil, DefaultWindowMin, DefaultWindowMax)
	if err != nil {
		t.Fatalf("ApplyWindow() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 0 || b.Dy() != 0 {
		t.Errorf("bounds = %dx%d, want 0x0", b.Dx(), b.Dy())
	}
}
