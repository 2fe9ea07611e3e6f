package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterSelectionPersists(t *testing.T) {
	svc := NewPrinterService(t.TempDir())

	assert.Empty(t, svc.SelectedPrinter())

	require.NoError(t, svc.SetPrinter("EPSON TM-T20III"))
	assert.Equal(t, "EPSON TM-T20III", svc.SelectedPrinter())

	require.NoError(t, svc.ClearPrinter())
	assert.Empty(t, svc.SelectedPrinter())

	// clearing twice is harmless
	assert.NoError(t, svc.ClearPrinter())
}

func TestVirtualPrintersRejected(t *testing.T) {
	svc := NewPrinterService(t.TempDir())

	assert.Error(t, svc.SetPrinter(""))
	assert.Error(t, svc.SetPrinter("Microsoft Print to PDF"))
	assert.Error(t, svc.SetPrinter("microsoft xps document writer v2"))
	assert.Error(t, svc.SetPrinter("Fax"))

	assert.True(t, svc.IsVirtualPrinter("OneNote (Desktop)"))
	assert.False(t, svc.IsVirtualPrinter("EPSON TM-T20III"))
}
