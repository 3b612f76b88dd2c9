// Package goquery implements fact extraction from MathWorks documentation
// pages using github.com/PuerkitoBio/goquery for markup traversal and
// fixed marker patterns for the text facts.
package goquery

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/introduced"
)

// Marker patterns for the two text facts. Each fact has exactly one
// pattern so a markup-format change on the site touches one line here.
var (
	// versionPattern matches the introduction phrase, e.g.
	// "Introduced before R2006a" or "Introduced in R2014b".
	versionPattern = regexp.MustCompile(`Introduced\s+\w+\s+R20\d\d[ab]`)

	// renamePattern matches the rename annotation, capturing the prior
	// name and the release the rename happened in.
	renamePattern = regexp.MustCompile(`(?i)renamed\s+from\s+([A-Za-z]\w*)\s+in\s+(R20\d\d[ab])`)
)

// Ensure Extractor implements introduced.FactExtractor at compile time.
var _ introduced.FactExtractor = (*Extractor)(nil)

// Extractor extracts the introduction version, rename annotation, and
// canonical name from a documentation page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs all fact extractions over the page. Absent markers yield
// zero values; only unparseable content is an error.
func (e *Extractor) Extract(html string) (introduced.Facts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return introduced.Facts{}, introduced.Errorf(introduced.EINVALID, "failed to parse HTML: %v", err)
	}

	text := collapseWhitespace(doc.Text())

	facts := introduced.Facts{
		Version:       versionPattern.FindString(text),
		CanonicalName: canonicalName(doc),
	}

	if m := renamePattern.FindStringSubmatch(text); m != nil {
		facts.Rename = &introduced.Rename{OldName: m[1], Version: m[2]}
	}

	return facts, nil
}

// canonicalName recovers the function's current name from the page's
// canonical link: the final path segment, stripped of its .html suffix.
func canonicalName(doc *goquery.Document) string {
	href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	if !ok || href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if !strings.HasSuffix(base, ".html") {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(base, ".html"))
}

// collapseWhitespace normalizes runs of whitespace to single spaces so the
// marker patterns match across element boundaries and formatting.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
