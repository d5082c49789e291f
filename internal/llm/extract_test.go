package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvillarroel/cobertor-bot/constants"
)

type cannedGenerator struct {
	response string
	err      error
	prompt   string
}

func (g *cannedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, g.err
}

func TestExtractTaskPlainJSON(t *testing.T) {
	gen := &cannedGenerator{response: `{
		"codigo_cobertor": "COB-001",
		"cuartel": "15",
		"hileras": 8,
		"largo_metros": 120.5,
		"prioridad": "alta",
		"descripcion": "Solicitud de cobertor",
		"notas": "Cliente Manantiales"
	}`}

	rec, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "texto del email", "asunto")
	require.NoError(t, err)
	assert.Equal(t, "COB-001", *rec.CodigoCobertor)
	assert.Equal(t, "15", *rec.Cuartel)
	assert.Equal(t, 8, *rec.Hileras)
	assert.InDelta(t, 120.5, *rec.LargoMetros, 0.001)
	assert.Equal(t, string(constants.PriorityHigh), rec.Prioridad)
	assert.True(t, rec.Urgente)
	assert.Equal(t, constants.OriginNarrativeText, rec.Origen)
}

func TestExtractTaskCodeFences(t *testing.T) {
	fenced := "```json\n{\"codigo_cobertor\": \"COB-002\", \"prioridad\": \"normal\"}\n```"
	bare := `{"codigo_cobertor": "COB-002", "prioridad": "normal"}`

	recFenced, err := NewExtractor(&cannedGenerator{response: fenced}, nil).ExtractTask(context.Background(), "t", "s")
	require.NoError(t, err)
	recBare, err := NewExtractor(&cannedGenerator{response: bare}, nil).ExtractTask(context.Background(), "t", "s")
	require.NoError(t, err)

	assert.Equal(t, recBare, recFenced)
}

func TestExtractTaskSurroundingProse(t *testing.T) {
	gen := &cannedGenerator{response: "Claro, aquí está el JSON:\n{\"cuartel\": \"22\"}\nEspero que sirva."}
	rec, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "t", "s")
	require.NoError(t, err)
	assert.Equal(t, "22", *rec.Cuartel)
}

func TestExtractTaskNullLiterals(t *testing.T) {
	gen := &cannedGenerator{response: `{
		"codigo_cobertor": "null",
		"cuartel": "",
		"hileras": null,
		"largo_metros": "null",
		"prioridad": null
	}`}
	rec, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "t", "s")
	require.NoError(t, err)
	assert.Nil(t, rec.CodigoCobertor)
	assert.Nil(t, rec.Cuartel)
	assert.Nil(t, rec.Hileras)
	assert.Nil(t, rec.LargoMetros)
	assert.Equal(t, string(constants.PriorityNormal), rec.Prioridad)
	assert.False(t, rec.Urgente)
}

func TestExtractTaskNumericStrings(t *testing.T) {
	gen := &cannedGenerator{response: `{"hileras": "8.0", "largo_metros": "120.5", "cuartel": "3"}`}
	rec, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "t", "s")
	require.NoError(t, err)
	assert.Equal(t, 8, *rec.Hileras)
	assert.InDelta(t, 120.5, *rec.LargoMetros, 0.001)
}

func TestExtractTaskLengthCaps(t *testing.T) {
	gen := &cannedGenerator{response: `{"cuartel": "1", "descripcion": "` + strings.Repeat("d", 300) + `", "notas": "` + strings.Repeat("n", 900) + `"}`}
	rec, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "t", "s")
	require.NoError(t, err)
	assert.Len(t, *rec.Descripcion, MaxDescripcionLen)
	assert.Len(t, *rec.Notas, MaxNotasLen)
}

func TestExtractTaskCapKeepsRuneBoundary(t *testing.T) {
	// 3-byte runes make the byte cap land mid-rune
	gen := &cannedGenerator{response: `{"cuartel": "1", "descripcion": "` + strings.Repeat("€", 40) + `"}`}
	rec, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "t", "s")
	require.NoError(t, err)
	require.NotNil(t, rec.Descripcion)
	assert.True(t, utf8.ValidString(*rec.Descripcion))
	assert.LessOrEqual(t, len(*rec.Descripcion), MaxDescripcionLen)
}

func TestExtractTaskUnparseableIsNoData(t *testing.T) {
	gen := &cannedGenerator{response: "lo siento, no puedo ayudar con eso"}
	_, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "t", "s")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExtractTaskTransportErrorPropagates(t *testing.T) {
	boom := errors.New("status 429")
	gen := &cannedGenerator{err: boom}
	_, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "t", "s")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestExtractTaskCleansBeforePrompting(t *testing.T) {
	gen := &cannedGenerator{response: `{"cuartel": "1"}`}
	_, err := NewExtractor(gen, nil).ExtractTask(context.Background(), "ruido\n-----Original Message-----\nCONTENIDO REAL", "asunto")
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "CONTENIDO REAL")
	assert.NotContains(t, gen.prompt, "ruido")
}

func TestRepairJSONTruncated(t *testing.T) {
	// response cut off mid-prose after the object
	out := repairJSON(`{"cuartel": "5"} y además`)
	assert.Equal(t, `{"cuartel": "5"}`, out)
}
