package harvest

// Sanitizer narrows arbitrary page markup to a content-safe subset.
type Sanitizer interface {
	// Sanitize removes unsafe subtrees, unwraps unknown tags,
	// whitelists attributes, and resolves img/a URLs against baseURL
	// when it is non-empty. Malformed input yields a best-effort
	// (possibly empty) result, never an error.
	Sanitize(rawHTML, baseURL string) (string, error)
}
