package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Priority
	}{
		{"empty defaults to normal", "", PriorityNormal},
		{"alta", "ALTA", PriorityHigh},
		{"english high", "high", PriorityHigh},
		{"urgente keyword", "muy urgente", PriorityHigh},
		{"baja", "Baja", PriorityLow},
		{"english low", "low", PriorityLow},
		{"unknown label", "media", PriorityNormal},
		{"high beats low", "baja pero urgente", PriorityHigh},
		{"whitespace trimmed", "  alta  ", PriorityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePriority(tt.raw))
		})
	}
}

func TestSubjectIsUrgent(t *testing.T) {
	assert.True(t, SubjectIsUrgent("URGENTE: cobertor cuartel 15"))
	assert.True(t, SubjectIsUrgent("pedido crítico"))
	assert.False(t, SubjectIsUrgent("cotización cobertores"))
	assert.False(t, SubjectIsUrgent(""))
}

func TestFormatForFilename(t *testing.T) {
	assert.Equal(t, FormatTabular, FormatForFilename("pedido.XLSX"))
	assert.Equal(t, FormatTabular, FormatForFilename("datos.csv"))
	assert.Equal(t, FormatDocument, FormatForFilename("orden.pdf"))
	assert.Equal(t, AttachmentFormat(""), FormatForFilename("foto.png"))
	assert.Equal(t, AttachmentFormat(""), FormatForFilename("sin_extension"))
}
