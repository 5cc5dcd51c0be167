package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisMode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    AnalysisMode
		wantErr bool
	}{
		{name: "quick scan", raw: "Quick Scan", want: ModeQuickScan},
		{name: "detailed analysis", raw: "Detailed Analysis", want: ModeDetailedAnalysis},
		{name: "ats optimization", raw: "ATS Optimization", want: ModeATSOptimization},
		{name: "empty defaults to quick scan", raw: "", want: ModeQuickScan},
		{name: "whitespace trimmed", raw: "  Detailed Analysis ", want: ModeDetailedAnalysis},
		{name: "case sensitive", raw: "quick scan", wantErr: true},
		{name: "unknown", raw: "Deep Dive", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnalysisMode(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownAnalysisMode)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalysisModes(t *testing.T) {
	modes := AnalysisModes()
	assert.Len(t, modes, 3)
	for _, m := range modes {
		assert.True(t, m.Valid(), m.String())
	}
	assert.False(t, AnalysisMode("Other").Valid())
}
