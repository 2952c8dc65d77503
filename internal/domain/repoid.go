package domain

import "strings"

// RepoIDFromRemote derives a stable "owner/name" identifier from a git
// remote URL. Works for both SSH and HTTPS forms; returns "" when nothing
// usable remains.
func RepoIDFromRemote(url string) string {
	id := strings.TrimSuffix(strings.TrimSpace(url), ".git")
	if id == "" {
		return ""
	}

	if idx := strings.Index(id, "://"); idx >= 0 {
		id = id[idx+3:]
	}
	if idx := strings.Index(id, "@"); idx >= 0 {
		id = id[idx+1:]
	}
	id = strings.ReplaceAll(id, ":", "/")

	parts := strings.Split(strings.Trim(id, "/"), "/")
	if len(parts) >= 3 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, "/")
}
