package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/fvillarroel/cobertor-bot/constants"
)

// columnSynonyms maps each canonical field to the header fragments that
// identify it. Matching is substring on the trimmed, lower-cased header;
// the first column that matches wins.
var columnSynonyms = map[string][]string{
	"codigo":    {"codigo", "código", "codigo_cobertor", "cod", "code"},
	"cuartel":   {"cuartel", "quartel", "sector", "campo"},
	"hileras":   {"hileras", "hilera", "rows", "filas"},
	"largo":     {"largo", "largo_metros", "largo (m)", "metros", "length"},
	"prioridad": {"prioridad", "priority", "urgencia", "nivel"},
}

// TabularExtractor turns spreadsheet-like attachments into task records.
type TabularExtractor struct {
	logger *slog.Logger
}

func NewTabularExtractor(logger *slog.Logger) *TabularExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &TabularExtractor{logger: logger}
}

// Extract dispatches on file extension. Unsupported extensions and parse
// failures both yield an empty result; neither is fatal to the caller.
func (e *TabularExtractor) Extract(filename string, data []byte) []TaskRecord {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	switch ext {
	case "xlsx", "xls":
		recs, err := e.extractWorkbook(filename, data)
		if err != nil {
			e.logger.Error("workbook parse failed", "filename", filename, "error", err)
			return nil
		}
		return recs
	case "csv":
		recs, err := e.extractCSV(filename, data)
		if err != nil {
			e.logger.Error("csv parse failed", "filename", filename, "error", err)
			return nil
		}
		return recs
	default:
		e.logger.Warn("unsupported tabular extension", "filename", filename, "ext", ext)
		return nil
	}
}

func (e *TabularExtractor) extractWorkbook(filename string, data []byte) ([]TaskRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("workbook close failed", "filename", filename, "error", cerr)
		}
	}()

	var records []TaskRecord
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			// a broken sheet degrades to zero rows, the rest still count
			e.logger.Warn("sheet read failed", "filename", filename, "sheet", sheet, "error", err)
			continue
		}
		recs := e.extractRows(rows, sheet)
		e.logger.Debug("sheet processed", "filename", filename, "sheet", sheet, "records", len(recs))
		records = append(records, recs...)
	}
	return records, nil
}

func (e *TabularExtractor) extractCSV(filename string, data []byte) ([]TaskRecord, error) {
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		// field emails regularly carry cp1252/ISO-8859-1 exports
		e.logger.Debug("csv is not utf-8, decoding as latin-1", "filename", filename)
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	rows, err := readCSVRows(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return e.extractRows(rows, filename), nil
}

func readCSVRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

// extractRows applies header resolution and per-row coercion to one sheet.
// Rows carrying neither a code nor a sector are dropped.
func (e *TabularExtractor) extractRows(rows [][]string, source string) []TaskRecord {
	if len(rows) < 2 {
		return nil
	}

	cols := resolveColumns(rows[0])
	if len(cols) == 0 {
		return nil
	}

	var records []TaskRecord
	for i, row := range rows[1:] {
		codigo := cellString(row, colIdx(cols, "codigo"))
		cuartel := cellString(row, colIdx(cols, "cuartel"))
		if codigo == nil && cuartel == nil {
			continue
		}

		prioridad := constants.NormalizePriority(deref(cellString(row, colIdx(cols, "prioridad"))))
		desc := fmt.Sprintf("Registro de %s", source)
		notas := fmt.Sprintf("Fila %d", i+2)

		records = append(records, TaskRecord{
			CodigoCobertor: codigo,
			Cuartel:        cuartel,
			Hileras:        cellInt(row, colIdx(cols, "hileras")),
			LargoMetros:    cellFloat(row, colIdx(cols, "largo")),
			Prioridad:      string(prioridad),
			Descripcion:    &desc,
			Notas:          &notas,
			Urgente:        prioridad == constants.PriorityHigh,
			Origen:         constants.OriginTabularAttachment,
		})
	}
	return records
}

func colIdx(cols map[string]int, field string) int {
	idx, ok := cols[field]
	if !ok {
		return -1
	}
	return idx
}

// resolveColumns maps canonical field names to column indexes. Missing
// fields are simply absent from the map and stay null for every row.
func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for field, variations := range columnSynonyms {
		for idx, name := range header {
			norm := strings.ToLower(strings.TrimSpace(name))
			matched := false
			for _, v := range variations {
				if strings.Contains(norm, v) {
					matched = true
					break
				}
			}
			if matched {
				cols[field] = idx
				break
			}
		}
	}
	return cols
}

func cellString(row []string, idx int) *string {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	s := strings.TrimSpace(row[idx])
	if s == "" {
		return nil
	}
	return &s
}

// cellInt coerces through float first so "10.0" still parses.
func cellInt(row []string, idx int) *int {
	f := cellFloat(row, idx)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func cellFloat(row []string, idx int) *float64 {
	s := cellString(row, idx)
	if s == nil {
		return nil
	}
	// tolerate comma decimal separators from regional spreadsheets
	v := strings.ReplaceAll(*s, ",", ".")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
