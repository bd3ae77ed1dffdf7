package urlmanager

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/LambdaTest/coverage-status/pkg/errs"
)

// SplitRepository splits an owner/name repository slug
func SplitRepository(repository string) (owner, name string, err error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errs.ErrInvalidRepository(repository)
	}
	return parts[0], parts[1], nil
}

func repoURL(apiURL, repository string) (string, error) {
	owner, name, err := SplitRepository(repository)
	if err != nil {
		return "", err
	}
	if _, err := url.ParseRequestURI(apiURL); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/repos/%s/%s", strings.TrimSuffix(apiURL, "/"), url.PathEscape(owner), url.PathEscape(name)), nil
}

// GetStatusURL returns the commit statuses url for given repository and commit
func GetStatusURL(apiURL, repository, sha string) (string, error) {
	base, err := repoURL(apiURL, repository)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/statuses/%s", base, url.PathEscape(sha)), nil
}

// GetCheckRunURL returns the check-runs url for given repository
func GetCheckRunURL(apiURL, repository string) (string, error) {
	base, err := repoURL(apiURL, repository)
	if err != nil {
		return "", err
	}
	return base + "/check-runs", nil
}
