package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Interval != 100*time.Millisecond {
		t.Errorf("Interval = %v, want 100ms", cfg.Interval)
	}
	if cfg.ResizeMargin != 10 {
		t.Errorf("ResizeMargin = %d, want 10", cfg.ResizeMargin)
	}
	if cfg.CircleDiameter != 15 || cfg.DotDiameter != 5 || cfg.PenWidth != 2 {
		t.Errorf("overlay defaults wrong: %g %g %g", cfg.CircleDiameter, cfg.DotDiameter, cfg.PenWidth)
	}
	if cfg.HotkeyPause != "Ctrl+Alt+P" {
		t.Errorf("HotkeyPause = %q, want Ctrl+Alt+P", cfg.HotkeyPause)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CAPTURE_REGION", "10, 20, 640, 480")
	t.Setenv("INTERVAL_MS", "50")
	t.Setenv("RESIZE_MARGIN", "8")
	t.Setenv("ENABLE_FILE_LOGGING", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Region.X != 10 || cfg.Region.Y != 20 || cfg.Region.Width != 640 || cfg.Region.Height != 480 {
		t.Errorf("Region = %+v, want {10 20 640 480}", cfg.Region)
	}
	if cfg.Interval != 50*time.Millisecond {
		t.Errorf("Interval = %v, want 50ms", cfg.Interval)
	}
	if cfg.ResizeMargin != 8 {
		t.Errorf("ResizeMargin = %d, want 8", cfg.ResizeMargin)
	}
	if !cfg.EnableFileLogging {
		t.Error("expected file logging to be enabled")
	}
}

func TestLoadRejectsBadRegion(t *testing.T) {
	cases := []string{"1,2,3", "a,b,c,d", "0,0,-10,10", "0,0,100,0"}
	for _, v := range cases {
		t.Setenv("CAPTURE_REGION", v)
		if _, err := Load(); err == nil {
			t.Errorf("Load accepted CAPTURE_REGION=%q", v)
		}
	}
}

func TestInvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("INTERVAL_MS", "soon")
	t.Setenv("RESIZE_MARGIN", "0")
	t.Setenv("PEN_WIDTH", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Interval != 100*time.Millisecond {
		t.Errorf("Interval = %v, want default 100ms", cfg.Interval)
	}
	if cfg.ResizeMargin != 10 {
		t.Errorf("ResizeMargin = %d, want default 10", cfg.ResizeMargin)
	}
	if cfg.PenWidth != 2 {
		t.Errorf("PenWidth = %g, want default 2", cfg.PenWidth)
	}
}
