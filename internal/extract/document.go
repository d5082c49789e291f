package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fvillarroel/cobertor-bot/constants"
)

// DocumentConfig configures the external text extraction tool.
type DocumentConfig struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
}

// DocumentTextExtractor pulls the full text out of page-based documents.
// It never produces structured fields itself; the text is handed to the
// narrative extractor downstream.
type DocumentTextExtractor struct {
	cfg    DocumentConfig
	runner Runner
	logger *slog.Logger
}

func NewDocumentTextExtractor(cfg DocumentConfig, logger *slog.Logger) *DocumentTextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &DocumentTextExtractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract returns at most one record carrying the document's full text,
// flagged for narrative extraction. An empty or unreadable document yields
// an empty result, not an error for the caller.
func (e *DocumentTextExtractor) Extract(ctx context.Context, filename string, data []byte) []TaskRecord {
	text, pages, err := e.documentText(ctx, filename, data)
	if err != nil {
		e.logger.Error("document text extraction failed", "filename", filename, "error", err)
		return nil
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("document produced no text", "filename", filename, "pages", pages)
		return nil
	}
	e.logger.Debug("document processed", "filename", filename, "pages", pages, "chars", len(text))
	return []TaskRecord{{
		FullText:       text,
		NeedsNarrative: true,
		Origen:         constants.OriginDocumentAttachment,
	}}
}

func (e *DocumentTextExtractor) documentText(ctx context.Context, filename string, data []byte) (string, int, error) {
	tmp, err := os.CreateTemp("", "cb-doc-*"+filepath.Ext(filename))
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if rerr := os.Remove(tmp.Name()); rerr != nil {
			e.logger.Warn("temp file cleanup failed", "path", tmp.Name(), "error", rerr)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", 0, err
	}
	if err := tmp.Close(); err != nil {
		return "", 0, err
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", tmp.Name(), "-")
	if err != nil {
		return "", 0, fmt.Errorf("pdftotext: %w (stderr: %s)", err, truncate(string(errb), 512))
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return text, pages, nil
}
