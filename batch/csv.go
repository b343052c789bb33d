package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/raroc/cashflow"
)

// CSVSource reads loan records from a headed CSV file. Required
// columns: id, principal, annual_rate, term, pd_rating, lgd_grade.
// Optional columns: frequency, ftp_rate, discount_rate, nii, nii_months,
// nie, ead, reference. Unknown columns are ignored; missing optional
// values fall back to the run defaults. Rates are fractions (0.06 = 6%).
type CSVSource struct {
	f    *os.File
	r    *csv.Reader
	cols map[string]int
	line int
}

// OpenCSV opens path and reads its header row.
func OpenCSV(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open loans csv: %w", err)
	}

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "principal", "annual_rate", "term", "pd_rating", "lgd_grade"} {
		if _, ok := cols[required]; !ok {
			f.Close()
			return nil, fmt.Errorf("loans csv: missing required column %q", required)
		}
	}

	return &CSVSource{f: f, r: r, cols: cols, line: 1}, nil
}

func (s *CSVSource) Next() (Record, bool, error) {
	row, err := s.r.Read()
	if err == io.EOF {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("read loans csv: %w", err)
	}
	s.line++

	rec, err := s.parse(row)
	if err != nil {
		return Record{}, false, fmt.Errorf("loans csv line %d: %w", s.line, err)
	}
	return rec, true, nil
}

func (s *CSVSource) Close() error { return s.f.Close() }

func (s *CSVSource) parse(row []string) (Record, error) {
	get := func(name string) string {
		i, ok := s.cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := Record{
		ID:        get("id"),
		Reference: get("reference"),
	}
	if rec.ID == "" {
		return Record{}, fmt.Errorf("empty id")
	}

	var err error
	if rec.Loan.Principal, err = parseFloat(get("principal"), "principal"); err != nil {
		return Record{}, err
	}
	if rec.Loan.AnnualRate, err = parseFloat(get("annual_rate"), "annual_rate"); err != nil {
		return Record{}, err
	}
	if rec.Loan.Term, err = parseInt(get("term"), "term"); err != nil {
		return Record{}, err
	}
	if v := get("frequency"); v != "" {
		if rec.Loan.Frequency, err = parseInt(v, "frequency"); err != nil {
			return Record{}, err
		}
	}
	if rec.Loan.PDRating, err = parseInt(get("pd_rating"), "pd_rating"); err != nil {
		return Record{}, err
	}
	rec.Loan.LGDGrade = strings.ToUpper(get("lgd_grade"))

	if rec.FTPRate, err = parseOptFloat(get("ftp_rate"), "ftp_rate"); err != nil {
		return Record{}, err
	}
	if rec.DiscountRate, err = parseOptFloat(get("discount_rate"), "discount_rate"); err != nil {
		return Record{}, err
	}
	if rec.EADOverride, err = parseOptFloat(get("ead"), "ead"); err != nil {
		return Record{}, err
	}

	// Fee streams: a flat nii amount, optionally limited to the first
	// nii_months periods; nie is flat for the whole term.
	if v := get("nii"); v != "" {
		fee, err := parseFloat(v, "nii")
		if err != nil {
			return Record{}, err
		}
		if m := get("nii_months"); m != "" {
			months, err := parseInt(m, "nii_months")
			if err != nil {
				return Record{}, err
			}
			rec.NonInterestIncome = cashflow.FlatStreamUntil(fee, months, rec.Loan.Term)
		} else {
			rec.NonInterestIncome = cashflow.Flat(fee)
		}
	}
	if v := get("nie"); v != "" {
		amt, err := parseFloat(v, "nie")
		if err != nil {
			return Record{}, err
		}
		rec.NonInterestExpense = cashflow.Flat(amt)
	}

	return rec, nil
}

func parseFloat(v, name string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, v)
	}
	return f, nil
}

func parseInt(v, name string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, v)
	}
	return n, nil
}

func parseOptFloat(v, name string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := parseFloat(v, name)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
