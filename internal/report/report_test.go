package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joaopnk/ignite-timer/internal/models"
	"github.com/joaopnk/ignite-timer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rsc.io/pdf"
)

var reportStart = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func sampleHistory() []models.Cycle {
	return []models.Cycle{
		testutil.NewCycle().WithID(1).WithTask("Write docs").WithMinutes(25).
			StartedAt(reportStart).FinishedAfter(25 * time.Minute).Build(),
		testutil.NewCycle().WithID(2).WithTask("Review").WithMinutes(30).
			StartedAt(reportStart.Add(30 * time.Minute)).InterruptedAfter(10*time.Minute + 30*time.Second).Build(),
		testutil.NewCycle().WithID(3).WithTask("Plan").WithMinutes(5).
			StartedAt(reportStart.Add(time.Hour)).Build(),
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleHistory())
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Finished)
	assert.Equal(t, 1, sum.Interrupted)
	assert.Equal(t, 1, sum.Active)
	assert.Equal(t, 35*time.Minute+30*time.Second, sum.Focused)
	assert.Equal(t, "1 finished · 1 interrupted · 35m focused", sum.String())
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.Total)
	assert.Equal(t, "No cycles yet", sum.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{25 * time.Minute, "25m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleHistory(), reportStart))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	r, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 1, r.NumPage())
}

func TestExportPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := ExportPDF(dir, sampleHistory(), reportStart)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "report_2024-03-04_090000.pdf", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportPDFRemovesPartialFileOnFailure(t *testing.T) {
	original := writeReport
	t.Cleanup(func() { writeReport = original })
	renderErr := errors.New("render failed")
	writeReport = func(w io.Writer, _ []models.Cycle, _ time.Time) error {
		_, _ = w.Write([]byte("%PDF-1.3 truncated"))
		return renderErr
	}

	dir := t.TempDir()
	path, err := ExportPDF(dir, sampleHistory(), reportStart)
	require.ErrorIs(t, err, renderErr)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial report left on disk")
}
