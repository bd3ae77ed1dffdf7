package coverage

import (
	"testing"

	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiffSummary(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *DiffSummary
		wantErr string
	}{
		{
			"Numeric totals",
			`{"total": {"Cover": 12, "Stmts": 345, "Miss": -4}}`,
			&DiffSummary{Cover: "12", Stmts: "345", Miss: "-4"},
			"",
		},
		{
			"String totals",
			`{"files": [], "total": {"Cover": "+3.33%", "Stmts": "+5"}}`,
			&DiffSummary{Cover: "+3.33%", Stmts: "+5"},
			"",
		},
		{
			"Float totals keep their fraction",
			`{"total": {"Cover": 12.0, "Stmts": 3.5e2, "Miss": 0.00012}}`,
			&DiffSummary{Cover: "12.0", Stmts: "350.0", Miss: "0.00012"},
			"",
		},
		{
			"Large and tiny floats use an exponent",
			`{"total": {"Cover": 1e16, "Stmts": 0.00001}}`,
			&DiffSummary{Cover: "1e+16", Stmts: "1e-05"},
			"",
		},
		{
			"Booleans and big integers",
			`{"total": {"Cover": true, "Stmts": 12345678901234567890, "Miss": false}}`,
			&DiffSummary{Cover: "True", Stmts: "12345678901234567890", Miss: "False"},
			"",
		},
		{"Invalid json", `{"total": `, nil, errs.ErrInvalidJSON.Error()},
		{"Missing total", `{"files": []}`, nil, "field total not found in diff summary"},
		{"Total is not an object", `{"total": 3}`, nil, "field total not found in diff summary"},
		{"Missing cover", `{"total": {"Stmts": 345}}`, nil, "field total.Cover not found in diff summary"},
		{"Null statements", `{"total": {"Cover": 1, "Stmts": null}}`, nil, "field total.Stmts not found in diff summary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDiffSummary([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
