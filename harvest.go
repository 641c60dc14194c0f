// Package harvest extracts and sanitizes structured content from raw
// HTML harvested by an external crawler. It narrows arbitrary markup to
// a content-safe subset, collects image metadata, and locates the most
// likely official document (PDF) link on a page.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// yaml/, slog/).
package harvest
