package usecase

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// LogoObjectKey derives the storage key for a team logo from its source
// URL: the sport prefix plus the final path segment. The same URL always
// yields the same key, so retried uploads land on the same object.
func LogoObjectKey(sportPrefix, logoURL string) (string, error) {
	sportPrefix = strings.Trim(strings.TrimSpace(sportPrefix), "/")
	if sportPrefix == "" {
		return "", fmt.Errorf("%w: sport prefix is required", ErrInvalidInput)
	}

	parsed, err := url.Parse(strings.TrimSpace(logoURL))
	if err != nil {
		return "", fmt.Errorf("%w: logo url %q: %v", ErrInvalidInput, logoURL, err)
	}

	base := path.Base(parsed.Path)
	if base == "" || base == "." || base == "/" {
		return "", fmt.Errorf("%w: logo url %q has no file name", ErrInvalidInput, logoURL)
	}

	return sportPrefix + "/" + base, nil
}
