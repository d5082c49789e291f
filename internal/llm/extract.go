package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/constants"
	"github.com/fvillarroel/cobertor-bot/internal/extract"
)

// Extractor turns free email text into one task record via the reasoning
// call. Extraction is all-or-nothing per call: either a full record comes
// back or ErrNoData does, never a partial one.
type Extractor struct {
	gen    Generator
	logger *slog.Logger
}

func NewExtractor(gen Generator, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{gen: gen, logger: logger}
}

// ExtractTask cleans the text, runs the reasoning call and normalizes the
// response into a task record with origin narrative_text. Transport errors
// from the Generator propagate as-is; unusable responses map to ErrNoData.
func (e *Extractor) ExtractTask(ctx context.Context, text, subject string) (extract.TaskRecord, error) {
	rid := uuid.New().String()
	start := time.Now()

	cleaned := CleanEmailText(text)
	prompt := BuildPrompt(subject, cleaned)

	e.logger.Info("llm.extract.start",
		"req_id", rid,
		"subject", subject,
		"text_len", len(text),
		"cleaned_len", len(cleaned),
	)

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		e.logger.Error("llm.extract.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.TaskRecord{}, err
	}

	payload := repairJSON(raw)

	schema := BuildTaskJSONSchema()
	if err := ValidateJSONAgainstSchema(schema, []byte(payload)); err != nil {
		e.logger.Warn("llm.extract.invalid_response",
			"req_id", rid, "error", err, "content", truncateStr(raw, 512),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.TaskRecord{}, ErrNoData
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		e.logger.Warn("llm.extract.parse_failed",
			"req_id", rid, "error", err, "content", truncateStr(raw, 512),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.TaskRecord{}, ErrNoData
	}

	rec := normalizeFields(fields)

	e.logger.Info("llm.extract.ok",
		"req_id", rid,
		"codigo", strPtrVal(rec.CodigoCobertor),
		"cuartel", strPtrVal(rec.Cuartel),
		"prioridad", rec.Prioridad,
		"urgente", rec.Urgente,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// repairJSON recovers a bare JSON object from a response that ignored the
// formatting instruction: code fences are stripped, then the text is sliced
// from the first '{' to the last '}'.
func repairJSON(text string) string {
	if strings.Contains(text, "```json") {
		parts := strings.SplitN(text, "```json", 2)
		text = strings.SplitN(parts[1], "```", 2)[0]
	} else if strings.Contains(text, "```") {
		parts := strings.SplitN(text, "```", 3)
		if len(parts) >= 2 {
			text = parts[1]
		}
	}

	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "{") {
		if start := strings.Index(text, "{"); start != -1 {
			text = text[start:]
		}
	}
	if !strings.HasSuffix(text, "}") {
		if end := strings.LastIndex(text, "}"); end != -1 {
			text = text[:end+1]
		}
	}
	return text
}

// normalizeFields clamps and coerces every field regardless of what the
// model returned. Empty strings and the literal "null" become nil.
func normalizeFields(fields map[string]any) extract.TaskRecord {
	prioridad := constants.NormalizePriority(rawString(fields["prioridad"]))

	return extract.TaskRecord{
		CodigoCobertor: normString(fields["codigo_cobertor"], 0),
		Cuartel:        normString(fields["cuartel"], 0),
		Hileras:        normInt(fields["hileras"]),
		LargoMetros:    normFloat(fields["largo_metros"]),
		Prioridad:      string(prioridad),
		Descripcion:    normString(fields["descripcion"], MaxDescripcionLen),
		Notas:          normString(fields["notas"], MaxNotasLen),
		Urgente:        prioridad == constants.PriorityHigh,
		Origen:         constants.OriginNarrativeText,
	}
}

func rawString(v any) string {
	s, _ := v.(string)
	return s
}

func normString(v any, maxLen int) *string {
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return nil
	}
	if maxLen > 0 {
		s = capBytes(s, maxLen)
	}
	return &s
}

// normInt coerces through float first so "8.0" still lands as 8.
func normInt(v any) *int {
	f := normFloat(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func normFloat(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return &t
	case string:
		s := strings.TrimSpace(t)
		if s == "" || s == "null" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func strPtrVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
