package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"screen-mirror/screenshot"
)

type Config struct {
	Display           int
	Region            screenshot.Region // zero value means "use Display bounds"
	Interval          time.Duration
	ResizeMargin      int
	CircleDiameter    float64
	DotDiameter       float64
	PenWidth          float64
	EnableFileLogging bool
	HotkeyPause       string
	HotkeySnapshot    string
	SnapshotDir       string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or executable directory
	envPaths := []string{".env"}

	// If running as executable, also try the executable's directory
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		envPaths = append(envPaths, filepath.Join(execDir, ".env"))
	}

	// Try to load .env file (ignore errors if file doesn't exist)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	region, err := parseRegion(os.Getenv("CAPTURE_REGION"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Display:           getEnvInt("CAPTURE_DISPLAY", 0),
		Region:            region,
		Interval:          time.Duration(getEnvInt("INTERVAL_MS", 100)) * time.Millisecond,
		ResizeMargin:      getEnvInt("RESIZE_MARGIN", 10),
		CircleDiameter:    getEnvFloat("CIRCLE_DIAMETER", 15),
		DotDiameter:       getEnvFloat("DOT_DIAMETER", 5),
		PenWidth:          getEnvFloat("PEN_WIDTH", 2),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		HotkeyPause:       getEnvWithDefault("HOTKEY_PAUSE", "Ctrl+Alt+P"),
		HotkeySnapshot:    getEnvWithDefault("HOTKEY_SNAPSHOT", "Ctrl+Alt+S"),
		SnapshotDir:       getEnvWithDefault("SNAPSHOT_DIR", "."),
	}

	if cfg.Interval < 0 {
		cfg.Interval = 0
	}
	if cfg.ResizeMargin < 1 {
		log.Printf("RESIZE_MARGIN must be at least 1, using default 10")
		cfg.ResizeMargin = 10
	}

	return cfg, nil
}

// parseRegion parses "x,y,w,h". An empty value selects whole-display capture
// and returns the zero Region; a malformed or non-positive-size value is a
// configuration error, not something to discover at capture time.
func parseRegion(s string) (screenshot.Region, error) {
	if s == "" {
		return screenshot.Region{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return screenshot.Region{}, fmt.Errorf("CAPTURE_REGION must be \"x,y,w,h\", got %q", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return screenshot.Region{}, fmt.Errorf("CAPTURE_REGION has invalid number %q: %v", p, err)
		}
		vals[i] = n
	}
	region := screenshot.Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if err := region.Validate(); err != nil {
		return screenshot.Region{}, err
	}
	return region, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Printf("Invalid %s=%q, using default %g", key, value, defaultValue)
		return defaultValue
	}
	return f
}
