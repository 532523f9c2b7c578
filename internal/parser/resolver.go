package parser

import "strings"

// ResolveColumn finds the raw header matching a logical field.
// Aliases are tried in priority order, headers in file order; matching
// is case-insensitive on trimmed text. Returns "" when no alias
// matches any header — callers treat that as "field absent" and apply
// the record-level default.
func ResolveColumn(headers []string, logicalField string) string {
	aliases, ok := columnAliases[logicalField]
	if !ok {
		return ""
	}
	for _, alias := range aliases {
		want := strings.ToLower(strings.TrimSpace(alias))
		for _, h := range headers {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				return h
			}
		}
	}
	return ""
}

// ResolveColumns resolves every logical field against one header row.
// Unresolved fields are present in the map with an empty value, so the
// mapping doubles as the column-detection report.
func ResolveColumns(headers []string) map[string]string {
	mapping := make(map[string]string, len(columnAliases))
	for _, field := range LogicalFields() {
		mapping[field] = ResolveColumn(headers, field)
	}
	return mapping
}
