package coverage

import (
	"strconv"
	"strings"

	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/tidwall/gjson"
)

const (
	totalKey  = "total"
	coverKey  = "Cover"
	stmtsKey  = "Stmts"
	missKey   = "Miss"
	summaryID = "diff summary"
)

// DiffSummary holds the totals of a pycobertura diff json report.
// Strings like "+3.33%" and integers are kept verbatim, floats always carry a fraction
// or an exponent (12.0, 1e+16) and booleans are written True and False.
type DiffSummary struct {
	Cover string
	Stmts string
	Miss  string
}

// ParseDiffSummary extracts the total summary from a diff json report
func ParseDiffSummary(data []byte) (*DiffSummary, error) {
	if !gjson.ValidBytes(data) {
		return nil, errs.ErrInvalidJSON
	}
	total := gjson.GetBytes(data, totalKey)
	if !total.IsObject() {
		return nil, errs.ErrFieldNotFound(totalKey, summaryID)
	}

	cover, err := requiredField(total, coverKey)
	if err != nil {
		return nil, err
	}
	stmts, err := requiredField(total, stmtsKey)
	if err != nil {
		return nil, err
	}
	return &DiffSummary{
		Cover: cover,
		Stmts: stmts,
		Miss:  formatValue(total.Get(missKey)),
	}, nil
}

func requiredField(total gjson.Result, key string) (string, error) {
	value := total.Get(key)
	if !value.Exists() || value.Type == gjson.Null {
		return "", errs.ErrFieldNotFound(totalKey+"."+key, summaryID)
	}
	return formatValue(value), nil
}

func formatValue(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return value.Str
	case gjson.True:
		return "True"
	case gjson.False:
		return "False"
	case gjson.Number:
		if strings.ContainsAny(value.Raw, ".eE") {
			return formatFloat(value.Num)
		}
		return value.Raw
	case gjson.Null:
		return ""
	default:
		return value.Raw
	}
}

// formatFloat writes the shortest repr of f, in fixed notation for decimal
// exponents in [-4, 16) and in scientific notation otherwise.
func formatFloat(f float64) string {
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}
