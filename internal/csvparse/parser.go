package csvparse

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pennypilot/pennypilot/internal/bankformat"
	"github.com/pennypilot/pennypilot/internal/common"
	"github.com/pennypilot/pennypilot/internal/model"
)

// maxRetainedErrors caps how many row-level errors a parse reports back.
const maxRetainedErrors = 5

// Result is the outcome of one CSV parse.
type Result struct {
	Rows        []model.ParsedRow
	Errors      []string
	Detected    DetectedColumns
	FormatLabel string
	Profile     *bankformat.Profile
}

// ParseCSV parses raw CSV text into normalized rows. Policy: try a bank
// profile first (user-supplied, else auto-detected), fall back to generic
// column detection, then to a maximally permissive generic profile. The
// first attempt yielding at least one row wins; when every tier fails the
// generic attempt's result is returned so the caller can surface its
// diagnostics.
func ParseCSV(csvText string, userProfile *bankformat.Profile) Result {
	records := readRecords(csvText)

	profile := userProfile
	if profile == nil {
		profile = bankformat.DetectFormat(csvText)
	}

	if profile != nil {
		res := parseWithProfile(records, profile)
		if len(res.Rows) > 0 {
			return res
		}
		slog.Debug("bank profile parse yielded no rows, trying generic detection",
			"profile", profile.ID)
	}

	generic := parseWithDetection(records)
	if len(generic.Rows) > 0 {
		return generic
	}

	slog.Debug("generic detection yielded no rows, trying permissive profile")
	permissive := parseWithProfile(records, bankformat.GenericProfile())
	if len(permissive.Rows) > 0 {
		return permissive
	}

	slog.Warn("all parse attempts yielded no rows",
		"errors", len(generic.Errors))
	// A header-only file can resolve columns positionally and produce no
	// rows and no row errors; the caller still needs a diagnostic.
	if len(generic.Errors) == 0 {
		generic.Errors = append(generic.Errors, common.ErrEmptyFile.Error())
	}
	return generic
}

func parseWithProfile(records [][]string, profile *bankformat.Profile) Result {
	res := Result{Profile: profile, FormatLabel: profile.Name}

	headerIdx, ok := findHeader(records, profile.SkipRows)
	if !ok {
		res.Errors = append(res.Errors, common.ErrEmptyFile.Error())
		return res
	}

	layout, resolved := LayoutFromProfile(profile, records[headerIdx])
	res.Detected = layout.Columns
	if !resolved {
		res.Errors = append(res.Errors, common.ErrInsufficientColumns.Error())
		return res
	}

	res.Rows, res.Errors = parseRows(records, headerIdx, layout)
	return res
}

func parseWithDetection(records [][]string) Result {
	res := Result{FormatLabel: "Generic (auto-detected)"}

	headerIdx, ok := findHeader(records, 0)
	if !ok {
		res.Errors = append(res.Errors, common.ErrEmptyFile.Error())
		return res
	}

	layout := LayoutFromDetection(records[headerIdx])
	res.Detected = layout.Columns
	if !layout.Viable() {
		res.Errors = append(res.Errors, common.ErrInsufficientColumns.Error())
		return res
	}

	res.Rows, res.Errors = parseRows(records, headerIdx, layout)
	return res
}

func parseRows(records [][]string, headerIdx int, layout Layout) ([]model.ParsedRow, []string) {
	var rows []model.ParsedRow
	var errs []string

	for i := headerIdx + 1; i < len(records); i++ {
		cells := records[i]
		if recordEmpty(cells) {
			continue
		}
		// Some exports repeat the header mid-file when paginated.
		if isHeaderRecord(cells) {
			continue
		}

		row, err := ParseRow(cells, layout, i+1)
		if err != nil {
			if len(errs) < maxRetainedErrors {
				errs = append(errs, err.Error())
			}
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs
}

// findHeader locates the header record: the first record at or after skip
// with at least two cells matching known header keywords. When nothing
// qualifies the first non-empty record is assumed to be the header.
func findHeader(records [][]string, skip int) (int, bool) {
	const scanLimit = 10

	firstNonEmpty := -1
	scanned := 0
	for i := skip; i < len(records) && scanned < scanLimit; i++ {
		if recordEmpty(records[i]) {
			continue
		}
		if firstNonEmpty < 0 {
			firstNonEmpty = i
		}
		if isHeaderRecord(records[i]) {
			return i, true
		}
		scanned++
	}
	if firstNonEmpty >= 0 {
		return firstNonEmpty, true
	}
	return 0, false
}

// Compact keyword set used to tell a header line from a data line.
var headerCellKeywords = []string{
	"date", "amount", "description", "balance", "reference", "type",
	"debit", "credit", "narrative", "memo", "details", "value",
	"payee", "merchant", "category", "paid out", "paid in",
}

// isHeaderRecord reports whether a record looks like a header: two or more
// cells matching known header keywords and no numeric cells. The numeric
// guard keeps data rows like "DIRECT DEBIT,100.00" from being skipped.
func isHeaderRecord(cells []string) bool {
	for _, cell := range cells {
		if looksNumeric(cell) {
			return false
		}
	}

	matches := 0
	for _, cell := range cells {
		lower := strings.ToLower(strings.TrimSpace(cell))
		if lower == "" {
			continue
		}
		for _, kw := range headerCellKeywords {
			if strings.Contains(lower, kw) {
				matches++
				break
			}
		}
	}
	return matches >= 2
}

func looksNumeric(cell string) bool {
	s := stripCurrency(strings.Trim(strings.TrimSpace(cell), "()"))
	if s == "" || s == "-" || s == "+" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func recordEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// readRecords reads all CSV records, tolerating ragged row lengths and bare
// quotes. Records that still fail to parse are skipped rather than aborting
// the file.
func readRecords(csvText string) [][]string {
	r := csv.NewReader(strings.NewReader(csvText))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Debug("skipping unreadable CSV line", "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}
