package extract

import (
	"github.com/fvillarroel/cobertor-bot/constants"
)

// TaskRecord is the canonical record every extraction path produces.
// Pointer fields are nil when the source simply did not carry the value.
type TaskRecord struct {
	CodigoCobertor *string
	Cuartel        *string
	Hileras        *int
	LargoMetros    *float64
	Prioridad      string
	Descripcion    *string
	Notas          *string
	Urgente        bool
	Origen         constants.Origin

	// NeedsNarrative marks records whose structured fields could not be
	// read directly and must go through the narrative extractor. FullText
	// carries the raw text for that pass.
	NeedsNarrative bool
	FullText       string
}

// HasCoreFields reports whether the record carries at least one of the
// fields that identify a concrete piece of work.
func (r TaskRecord) HasCoreFields() bool {
	return r.CodigoCobertor != nil || r.Cuartel != nil
}
