package errs

import (
	"fmt"
	"strings"
)

// Err represents structure of a custom error
type Err struct {
	Code    string
	Message string
}

func (e Err) Error() string {
	return fmt.Sprintf("%s : %s ", e.Code, e.Message)
}

// Error represents a plain error message.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

// APIStatusError is returned when the git provider answers with a non 2xx status.
type APIStatusError struct {
	StatusCode int
	Body       string
}

func (e *APIStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("non 2xx status code %d", e.StatusCode)
	}
	return fmt.Sprintf("non 2xx status code %d: %s", e.StatusCode, e.Body)
}

// ErrAPIStatus returns an APIStatusError for the given status code and response body.
func ErrAPIStatus(statusCode int, body []byte) error {
	return &APIStatusError{StatusCode: statusCode, Body: strings.TrimSpace(string(body))}
}

// ErrUnsupportedReport is returned when the coverage file extension is neither cobertura xml nor diff json.
func ErrUnsupportedReport(ext, path string) error {
	return New(fmt.Sprintf("unsupported coverage file type %q for %s", ext, path))
}

// ErrUnsupportedTarget is returned when the publish target is unknown.
func ErrUnsupportedTarget(target string) error {
	return New(fmt.Sprintf("unsupported status target %q", target))
}

// ErrInvalidRepository is returned when the repository is not in owner/name form.
func ErrInvalidRepository(repository string) error {
	return New(fmt.Sprintf("repository %q must be of the form owner/name", repository))
}

// ErrFieldNotFound is returned when a required key is missing from a coverage report.
func ErrFieldNotFound(field, path string) error {
	return New(fmt.Sprintf("field %s not found in %s", field, path))
}

// ErrAmbiguousCoverageFile is returned when a glob resolves to more than one file.
func ErrAmbiguousCoverageFile(pattern string, matches []string) error {
	return New(fmt.Sprintf("pattern %s matched %d files: %s", pattern, len(matches), strings.Join(matches, ", ")))
}

// ErrVldCfg function return error with code ERR::CNF::FLD::VLD
func ErrVldCfg(errs []string) Err {
	return Err{
		Code:    "ERR::CNF::FLD::VLD",
		Message: fmt.Sprintf("Validation errors :  \n%s", strings.Join(errs, "\n"))}
}

// ErrCoverageParse function returns error with code ERR::COV::PARSE
func ErrCoverageParse(path string, err error) Err {
	return Err{
		Code:    "ERR::COV::PARSE",
		Message: fmt.Sprintf("Unable to parse coverage file %s :  %v", path, err)}
}

// ErrJSONMar function returns error with code "ERR::JSON::MAR"
func ErrJSONMar(err string) Err {
	return Err{
		Code:    "ERR::JSON::MAR",
		Message: fmt.Sprintf("Error marshaling JSON:  \n%s", err)}
}

var (
	// ErrInvalidLoggerInstance is returned when logger instance is not supported.
	ErrInvalidLoggerInstance = New("Invalid logger instance")
	// ErrCoverageFileNotFound is returned when the coverage file or glob matches nothing.
	ErrCoverageFileNotFound = New("coverage file not found")
	// ErrCoverageFileIsDir is returned when the coverage path points to a directory.
	ErrCoverageFileIsDir = New("coverage file is a directory")
	// ErrInvalidJSON is returned when a diff summary is not valid json.
	ErrInvalidJSON = New("invalid json document")
	// ErrMissingToken is returned when no token was found in the environment.
	ErrMissingToken = New("missing api token, set GITHUB_TOKEN")
)
