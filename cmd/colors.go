package cmd

import (
	"strings"

	"github.com/fatih/color"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

var (
	colorSuccess  = color.New(color.FgGreen).SprintFunc()
	colorInfo     = color.New(color.FgCyan).SprintFunc()
	colorWarn     = color.New(color.FgYellow).SprintFunc()
	colorError    = color.New(color.FgRed).SprintFunc()
	colorCritical = color.New(color.FgRed, color.Bold).SprintFunc()
)

func formatStatusWithColor(status string) string {
	switch strings.ToLower(status) {
	case "ok", "success", "pass":
		return colorSuccess(status)
	case "error", "fail", "failed":
		return colorError(status)
	default:
		return status
	}
}

func passFail(ok bool) string {
	if ok {
		return formatStatusWithColor("PASS")
	}
	return formatStatusWithColor("FAIL")
}

// formatRiskWithColor colours a risk label where higher is worse.
func formatRiskWithColor(level scoring.Level) string {
	s := string(level)
	switch level {
	case scoring.LevelCritical:
		return colorCritical(s)
	case scoring.LevelHigh:
		return colorError(s)
	case scoring.LevelMedium:
		return colorWarn(s)
	case scoring.LevelLow:
		return colorSuccess(s)
	default:
		return colorInfo(s)
	}
}

// formatCapabilityWithColor colours a label where higher is better.
func formatCapabilityWithColor(level scoring.Level) string {
	s := string(level)
	switch level {
	case scoring.LevelHigh:
		return colorSuccess(s)
	case scoring.LevelMedium:
		return colorWarn(s)
	case scoring.LevelLow:
		return colorError(s)
	default:
		return colorInfo(s)
	}
}
