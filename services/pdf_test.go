package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportBytes(t *testing.T) {
	data, err := GenerateFallback("JFK", "LAX", "2023-07-15", "2023-07-18")
	require.NoError(t, err)

	pdfBytes, err := GenerateReportBytes(ReportData{
		Origin:      "JFK",
		Destination: "LAX",
		StartDate:   "2023-07-15",
		EndDate:     "2023-07-18",
		DataSource:  SourceLabelFallback,
		Analysis:    Analyze(data),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
}

func TestGenerateReportBytes_EmptyAnalysis(t *testing.T) {
	pdfBytes, err := GenerateReportBytes(ReportData{
		Origin:     "JFK",
		StartDate:  "2023-07-15",
		EndDate:    "2023-07-18",
		DataSource: SourceLabelFallback,
		Analysis:   Analyze(nil),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
