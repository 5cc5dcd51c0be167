package models

import (
	"errors"
	"fmt"
	"strings"
)

type AnalysisMode string

const (
	ModeQuickScan        AnalysisMode = "Quick Scan"
	ModeDetailedAnalysis AnalysisMode = "Detailed Analysis"
	ModeATSOptimization  AnalysisMode = "ATS Optimization"
)

// DefaultAnalysisMode is used when the client sends no analysis type.
const DefaultAnalysisMode = ModeQuickScan

var ErrUnknownAnalysisMode = errors.New("unknown analysis mode")

// AnalysisModes lists every supported mode in display order.
func AnalysisModes() []AnalysisMode {
	return []AnalysisMode{ModeQuickScan, ModeDetailedAnalysis, ModeATSOptimization}
}

// ParseAnalysisMode maps the raw form value to a mode. Matching is exact;
// surrounding whitespace is ignored and an empty value yields the default.
func ParseAnalysisMode(raw string) (AnalysisMode, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DefaultAnalysisMode, nil
	}

	mode := AnalysisMode(value)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAnalysisMode, value)
	}
	return mode, nil
}

func (m AnalysisMode) Valid() bool {
	switch m {
	case ModeQuickScan, ModeDetailedAnalysis, ModeATSOptimization:
		return true
	}
	return false
}

func (m AnalysisMode) String() string {
	return string(m)
}
