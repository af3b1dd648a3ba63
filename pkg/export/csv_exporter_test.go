package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()
	data := Dataset{
		Headers: []string{"email", "full_name", "monday_start"},
		Rows: []map[string]string{
			{"email": "ana@acme.test", "full_name": "Ana Ruiz", "monday_start": "09:00"},
			{"email": "luis@acme.test", "full_name": "Luis Vega"},
		},
	}

	out, err := exporter.Render(data)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, data.Headers, records[0])
	require.Equal(t, "09:00", records[1][2])
	require.Equal(t, "", records[2][2])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()
	_, err := exporter.Render(Dataset{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()
	data := Dataset{
		Headers: []string{"day", "start", "end"},
		Rows: []map[string]string{
			{"day": "monday", "start": "09:00", "end": "17:00"},
		},
	}

	out, err := exporter.Render(data, "weekly schedule")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "%PDF"))
}
