package testutils

// Various constant defined for to obtain dummy data for tests
const (
	CoberturaReportPath   = "/testutils/testdata/coverage.xml"           // CoberturaReportPath points to a cobertura report with line-rate 0.8734 and branch-rate 0.6123
	CoberturaCountersPath = "/testutils/testdata/coverage-counters.xml"  // CoberturaCountersPath points to a cobertura report without root rates
	CoberturaNaNPath      = "/testutils/testdata/coverage-nan.xml"       // CoberturaNaNPath points to an empty cobertura report with line-rate NaN
	DiffSummaryPath       = "/testutils/testdata/coverage.diff.json"     // DiffSummaryPath points to a pycobertura diff json report
	DiffSummaryStringPath = "/testutils/testdata/coverage-str.diff.json" // DiffSummaryStringPath points to a diff json report with string totals
	ApplicationConfigPath = "/testutils/testdata/sample_config.json"     // ApplicationConfigPath points to a config file for StatusConfig
)
