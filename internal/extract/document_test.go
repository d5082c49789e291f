package extract

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvillarroel/cobertor-bot/constants"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = args
	return f.stdout, f.stderr, f.err
}

func newDocExtractor(r Runner) *DocumentTextExtractor {
	e := NewDocumentTextExtractor(DocumentConfig{}, nil)
	e.runner = r
	return e
}

func TestDocumentExtractProducesNarrativeRecord(t *testing.T) {
	r := &fakeRunner{stdout: []byte("Solicito cobertor COB-011 para cuartel 3\fsegunda página")}
	e := newDocExtractor(r)

	records := e.Extract(context.Background(), "orden.pdf", []byte("%PDF-1.7"))
	require.Len(t, records, 1)

	rec := records[0]
	assert.True(t, rec.NeedsNarrative)
	assert.Equal(t, constants.OriginDocumentAttachment, rec.Origen)
	assert.Contains(t, rec.FullText, "COB-011")
	assert.Contains(t, rec.FullText, "segunda página")

	assert.Equal(t, "pdftotext", r.name)
	require.NotEmpty(t, r.args)
	assert.Equal(t, "-layout", r.args[0])
	assert.Equal(t, "-", r.args[len(r.args)-1])

	// the temp file passed to the tool must be gone afterwards
	tmpPath := r.args[len(r.args)-2]
	assert.True(t, strings.Contains(tmpPath, "cb-doc-"))
	_, statErr := os.Stat(tmpPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDocumentExtractEmptyText(t *testing.T) {
	r := &fakeRunner{stdout: []byte("  \n\f \n")}
	e := newDocExtractor(r)

	records := e.Extract(context.Background(), "escaneo.pdf", []byte("%PDF"))
	assert.Nil(t, records)
}

func TestDocumentExtractToolFailure(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit status 1"), stderr: []byte("Syntax Error: bad xref")}
	e := newDocExtractor(r)

	records := e.Extract(context.Background(), "corrupto.pdf", []byte("no es pdf"))
	assert.Nil(t, records)
}

func TestDocumentExtractCustomBinary(t *testing.T) {
	r := &fakeRunner{stdout: []byte("texto")}
	e := NewDocumentTextExtractor(DocumentConfig{Pdftotext: "/usr/local/bin/pdftotext"}, nil)
	e.runner = r

	records := e.Extract(context.Background(), "doc.pdf", []byte("%PDF"))
	require.Len(t, records, 1)
	assert.Equal(t, "/usr/local/bin/pdftotext", r.name)
}
