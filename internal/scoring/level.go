package scoring

import (
	"fmt"
	"strings"
)

// Level is the qualitative risk label attached to every analyzer result.
type Level string

const (
	LevelUnknown  Level = "UNKNOWN"
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// String returns the upper-case label.
func (l Level) String() string {
	return string(l)
}

// Rank orders levels so the most severe compares greatest. Unknown ranks lowest.
func (l Level) Rank() int {
	switch l {
	case LevelLow:
		return 1
	case LevelMedium:
		return 2
	case LevelHigh:
		return 3
	case LevelCritical:
		return 4
	default:
		return 0
	}
}

// ParseLevel converts a case-insensitive label into a Level.
func ParseLevel(value string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(value))) {
	case LevelLow:
		return LevelLow, nil
	case LevelMedium:
		return LevelMedium, nil
	case LevelHigh:
		return LevelHigh, nil
	case LevelCritical:
		return LevelCritical, nil
	}
	return LevelUnknown, fmt.Errorf("unknown risk level %q", value)
}

// Highest returns the most severe level in levels, or LevelLow when none are given.
func Highest(levels ...Level) Level {
	highest := LevelLow
	for _, l := range levels {
		if l.Rank() > highest.Rank() {
			highest = l
		}
	}
	return highest
}
