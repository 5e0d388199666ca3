package outputs

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ModuleView is how an output page loads a module's files by default.
type ModuleView struct {
	Filter    string
	Recursive bool
}

var moduleViews = map[string]ModuleView{
	"valuation":           {Filter: "SBA_without_Equity"},
	"liability_analytics": {Filter: "Parsed_LiabilityOutput_Scenario"},
	"risk_analytics":      {Filter: "Parsed_Scenario"},
	"saa":                 {Filter: "Parsed_"},
}

// ModuleFilter returns the default file filter for a module.
func ModuleFilter(module string) (ModuleView, bool) {
	v, ok := moduleViews[module]
	return v, ok
}

// Marker files every complete valuation output folder holds.
var requiredOutputs = []string{
	"IncomeStatement_SPDA_S0_0_",
	"DetailOutput_SPDA_S0_0_",
	"BalanceSheet_SPDA_S0_0_",
}

// IsValidOutputFolder reports whether names, a folder listing, holds at
// least three files including the income statement, detail output and
// balance sheet of scenario 0.
func IsValidOutputFolder(names []string) bool {
	if len(names) < 3 {
		return false
	}
	for _, marker := range requiredOutputs {
		found := false
		for _, n := range names {
			if strings.Contains(n, marker) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// GroupAndSumByYear sums monthly values into yearly buckets of 12. A
// trailing partial year is summed as is.
func GroupAndSumByYear(monthly []float64) []float64 {
	years := make([]float64, 0, (len(monthly)+11)/12)
	for i, v := range monthly {
		if i%12 == 0 {
			years = append(years, 0)
		}
		years[len(years)-1] += v
	}
	return years
}

// EveryNth keeps the elements at 1-based positions n, 2n, 3n and so on.
// n below 1 yields nothing.
func EveryNth[T any](values []T, n int) []T {
	if n < 1 {
		return nil
	}
	out := make([]T, 0, len(values)/n)
	for i := n - 1; i < len(values); i += n {
		out = append(out, values[i])
	}
	return out
}

// Column returns the numbers under header, which must be in the first row.
// Blank cells read as 0.
func (f CSVFile) Column(header string) ([]float64, error) {
	if len(f.Data) == 0 {
		return nil, fmt.Errorf("%w: %s in empty file %s", ErrColumnNotFound, header, f.Name)
	}
	col := slices.Index(f.Data[0], header)
	if col < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrColumnNotFound, header, f.Name)
	}

	values := make([]float64, 0, len(f.Data)-1)
	for i, row := range f.Data[1:] {
		cell := ""
		if col < len(row) {
			cell = strings.TrimSpace(row[col])
		}
		if cell == "" {
			values = append(values, 0)
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", f.Name, i+2, err)
		}
		values = append(values, v)
	}
	return values, nil
}
