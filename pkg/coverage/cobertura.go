package coverage

import (
	"encoding/xml"
	"io"
	"regexp"
	"strconv"
)

var conditionCoverageRegex = regexp.MustCompile(`\((\d+)/(\d+)\)`)

// Cobertura is the subset of a cobertura xml report needed to compute rates
type Cobertura struct {
	XMLName         xml.Name  `xml:"coverage"`
	LineRateAttr    string    `xml:"line-rate,attr"`
	BranchRateAttr  string    `xml:"branch-rate,attr"`
	LinesCovered    string    `xml:"lines-covered,attr"`
	LinesValid      string    `xml:"lines-valid,attr"`
	BranchesCovered string    `xml:"branches-covered,attr"`
	BranchesValid   string    `xml:"branches-valid,attr"`
	Version         string    `xml:"version,attr"`
	Packages        []Package `xml:"packages>package"`
}

// Package is a cobertura package
type Package struct {
	Name    string  `xml:"name,attr"`
	Classes []Class `xml:"classes>class"`
}

// Class is a cobertura class, usually one per source file
type Class struct {
	Name     string `xml:"name,attr"`
	Filename string `xml:"filename,attr"`
	Lines    []Line `xml:"lines>line"`
}

// Line is a single instrumented source line
type Line struct {
	Number            int    `xml:"number,attr"`
	Hits              int64  `xml:"hits,attr"`
	Branch            bool   `xml:"branch,attr"`
	ConditionCoverage string `xml:"condition-coverage,attr"`
}

// ParseCobertura decodes a cobertura xml report
func ParseCobertura(r io.Reader) (*Cobertura, error) {
	report := new(Cobertura)
	if err := xml.NewDecoder(r).Decode(report); err != nil {
		return nil, err
	}
	return report, nil
}

// LineRate returns the line-rate of the report, between 0 and 1.
// Reports without the root attribute fall back to the line counters, then to the per-line hits.
func (c *Cobertura) LineRate() (float64, error) {
	if c.LineRateAttr != "" {
		return strconv.ParseFloat(c.LineRateAttr, 64)
	}
	if c.LinesValid != "" {
		return ratio(c.LinesCovered, c.LinesValid)
	}
	var covered, valid int64
	c.eachLine(func(l Line) {
		valid++
		if l.Hits > 0 {
			covered++
		}
	})
	return rate(covered, valid), nil
}

// BranchRate returns the branch-rate of the report, between 0 and 1.
func (c *Cobertura) BranchRate() (float64, error) {
	if c.BranchRateAttr != "" {
		return strconv.ParseFloat(c.BranchRateAttr, 64)
	}
	if c.BranchesValid != "" {
		return ratio(c.BranchesCovered, c.BranchesValid)
	}
	var covered, valid int64
	var parseErr error
	c.eachLine(func(l Line) {
		if !l.Branch || parseErr != nil {
			return
		}
		lineCovered, lineValid, err := parseConditionCoverage(l.ConditionCoverage)
		if err != nil {
			parseErr = err
			return
		}
		covered += lineCovered
		valid += lineValid
	})
	if parseErr != nil {
		return 0, parseErr
	}
	return rate(covered, valid), nil
}

func (c *Cobertura) eachLine(fn func(l Line)) {
	for _, p := range c.Packages {
		for _, cl := range p.Classes {
			for _, l := range cl.Lines {
				fn(l)
			}
		}
	}
}

// parseConditionCoverage parses values like "50% (1/2)"
func parseConditionCoverage(value string) (covered, valid int64, err error) {
	match := conditionCoverageRegex.FindStringSubmatch(value)
	if match == nil {
		return 0, 0, nil
	}
	if covered, err = strconv.ParseInt(match[1], 10, 64); err != nil {
		return 0, 0, err
	}
	if valid, err = strconv.ParseInt(match[2], 10, 64); err != nil {
		return 0, 0, err
	}
	return covered, valid, nil
}

func ratio(covered, valid string) (float64, error) {
	v, err := strconv.ParseInt(valid, 10, 64)
	if err != nil {
		return 0, err
	}
	c := int64(0)
	if covered != "" {
		if c, err = strconv.ParseInt(covered, 10, 64); err != nil {
			return 0, err
		}
	}
	return rate(c, v), nil
}

func rate(covered, valid int64) float64 {
	if valid == 0 {
		return 0
	}
	return float64(covered) / float64(valid)
}
