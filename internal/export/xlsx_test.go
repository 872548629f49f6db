package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profesores.xlsx")

	header := []string{"Id", "Nombre", "Correo"}
	rows := [][]string{
		{"PROF-1", "Ana", "ana@uni.edu"},
		{"PROF-2", "Luis"},
	}
	require.NoError(t, WriteXLSX(path, "Profesores", header, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Profesores")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, header, got[0])
	assert.Equal(t, []string{"PROF-1", "Ana", "ana@uni.edu"}, got[1])
	assert.Equal(t, "Luis", got[2][1])
}

func TestWriteXLSX_EmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacio.xlsx")
	require.NoError(t, WriteXLSX(path, "Datos", []string{"Id"}, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Datos")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestWriteXLSX_BadPathFails(t *testing.T) {
	err := WriteXLSX(filepath.Join(t.TempDir(), "no", "such", "dir.xlsx"),
		"Datos", []string{"Id"}, nil)
	assert.Error(t, err)
}
