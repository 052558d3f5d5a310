package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes to the
// catalog DSN unless the caller already set it. Some postgres
// poolers reject binary results on prepared statements.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	params := parsed.Query()
	if params.Get("disable_prepared_binary_result") != "" {
		return raw
	}

	params.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = params.Encode()

	return parsed.String()
}

// dbNameFromURL extracts the database name for the otel db.name
// attribute. Handles both URL-style and key=value DSNs.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		if name := strings.Trim(strings.TrimPrefix(token, "dbname="), `"'`); name != "" {
			return name
		}
	}

	return ""
}
