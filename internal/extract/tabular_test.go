package extract

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fvillarroel/cobertor-bot/constants"
)

func workbookBytes(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestTabularExtractWorkbook(t *testing.T) {
	data := workbookBytes(t, "Pedidos", [][]any{
		{"Código", "Cuartel", "Hileras", "Largo (m)", "Prioridad"},
		{"COB-001", "15", 8, 120.5, "ALTA"},
	})

	e := NewTabularExtractor(nil)
	records := e.Extract("pedidos.xlsx", data)
	require.Len(t, records, 1)

	rec := records[0]
	require.NotNil(t, rec.CodigoCobertor)
	assert.Equal(t, "COB-001", *rec.CodigoCobertor)
	require.NotNil(t, rec.Cuartel)
	assert.Equal(t, "15", *rec.Cuartel)
	require.NotNil(t, rec.Hileras)
	assert.Equal(t, 8, *rec.Hileras)
	require.NotNil(t, rec.LargoMetros)
	assert.InDelta(t, 120.5, *rec.LargoMetros, 0.001)
	assert.Equal(t, string(constants.PriorityHigh), rec.Prioridad)
	assert.True(t, rec.Urgente)
	assert.Equal(t, constants.OriginTabularAttachment, rec.Origen)
}

func TestTabularExtractSkipsRowsWithoutIdentity(t *testing.T) {
	data := workbookBytes(t, "Hoja1", [][]any{
		{"codigo", "cuartel", "hileras"},
		{"", "", 10},
		{"COB-002", "", nil},
		{"", "22", nil},
	})

	records := NewTabularExtractor(nil).Extract("datos.xlsx", data)
	require.Len(t, records, 2)
	assert.Equal(t, "COB-002", *records[0].CodigoCobertor)
	assert.Nil(t, records[0].Cuartel)
	assert.Equal(t, "22", *records[1].Cuartel)
	assert.Nil(t, records[1].CodigoCobertor)
}

func TestTabularExtractCoercion(t *testing.T) {
	data := workbookBytes(t, "Hoja1", [][]any{
		{"codigo", "hileras", "largo"},
		{"COB-003", "10.0", "120,5"},
		{"COB-004", "no aplica", "n/a"},
	})

	records := NewTabularExtractor(nil).Extract("datos.xlsx", data)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Hileras)
	assert.Equal(t, 10, *records[0].Hileras)
	require.NotNil(t, records[0].LargoMetros)
	assert.InDelta(t, 120.5, *records[0].LargoMetros, 0.001)

	// coercion failures become nulls, never dropped rows
	assert.Nil(t, records[1].Hileras)
	assert.Nil(t, records[1].LargoMetros)
}

func TestTabularExtractCSV(t *testing.T) {
	csv := "codigo,cuartel,prioridad\nCOB-010,7,baja\n"
	records := NewTabularExtractor(nil).Extract("export.csv", []byte(csv))
	require.Len(t, records, 1)
	assert.Equal(t, "COB-010", *records[0].CodigoCobertor)
	assert.Equal(t, string(constants.PriorityLow), records[0].Prioridad)
	assert.False(t, records[0].Urgente)
}

func TestTabularExtractCSVLatin1(t *testing.T) {
	// "código" and "cuartel" header with a Latin-1 encoded ó (0xF3)
	csv := append([]byte("c\xf3digo,cuartel\n"), []byte("COB-011,9\n")...)
	records := NewTabularExtractor(nil).Extract("export.csv", csv)
	require.Len(t, records, 1)
	assert.Equal(t, "COB-011", *records[0].CodigoCobertor)
}

func TestTabularExtractUnsupportedExtension(t *testing.T) {
	records := NewTabularExtractor(nil).Extract("foto.png", []byte{0x89, 0x50})
	assert.Empty(t, records)
}

func TestTabularExtractCorruptWorkbook(t *testing.T) {
	records := NewTabularExtractor(nil).Extract("roto.xlsx", []byte("this is not a zip"))
	assert.Empty(t, records)
}

func TestResolveColumnsFirstMatchWins(t *testing.T) {
	cols := resolveColumns([]string{"Código Cobertor", "codigo alternativo", "Sector", "Filas"})
	assert.Equal(t, 0, cols["codigo"])
	assert.Equal(t, 2, cols["cuartel"])
	assert.Equal(t, 3, cols["hileras"])
	_, ok := cols["prioridad"]
	assert.False(t, ok)
}
