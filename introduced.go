// Package introduced answers "which MATLAB release introduced this
// function?" by scraping the version metadata embedded in the MathWorks
// online documentation. It locates the documentation page for a function
// name through a fallback chain (direct URL guesses, then a scoped web
// search), extracts the "Introduced before/in R20yyx" phrase along with
// any rename annotation, and classifies names with no page at all against
// the local installation.
//
// This package contains domain types, interfaces, and the pipeline logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, google/).
package introduced
