package panel

import (
	"fmt"
	"net/url"
	"strings"
)

// BaseURL derives the panel API base from the configured hostname string.
// The hostname may carry a scheme and a path ("https://panel.example.com/api");
// the path is trimmed of surrounding separators and suffixed with exactly
// one, so joining a relative resource path can never produce a doubled or
// missing slash. An empty hostname yields an empty base, meaning the host is
// not linked to a panel.
func BaseURL(hostname string) (string, error) {
	hostname = strings.TrimSpace(hostname)
	if hostname == "" {
		return "", nil
	}

	raw := hostname
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse panel hostname: %w", err)
	}

	scheme := parsed.Scheme
	if scheme == "" {
		scheme = "http"
	}

	host := parsed.Host
	if host == "" {
		return "", fmt.Errorf("panel hostname %q has no host", hostname)
	}

	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		path += "/"
	}

	return fmt.Sprintf("%s://%s/%s", scheme, host, path), nil
}
