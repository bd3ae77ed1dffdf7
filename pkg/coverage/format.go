package coverage

import (
	"fmt"
	"math"
	"strconv"
)

// Percent scales a 0-1 rate to a percentage with two decimals, 0.8734 becomes "87.34".
// The binary value of rate*100 is rounded, so 0.87345 becomes "87.34".
// Non finite rates are written as nan, inf and -inf.
func Percent(rate float64) string {
	value := rate * 100
	switch {
	case math.IsNaN(value):
		return "nan"
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// TotalDescription formats the description for a cobertura report
func TotalDescription(lineRate, branchRate float64) string {
	return fmt.Sprintf("line: %s%% branch: %s%%", Percent(lineRate), Percent(branchRate))
}

// DiffDescription formats the description for a diff summary report
func DiffDescription(summary *DiffSummary) string {
	return fmt.Sprintf("change: %s, statements: %s", summary.Cover, summary.Stmts)
}
