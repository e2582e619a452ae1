package parsers

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestCompanyLocatorJSONLDWinsOverTextPattern(t *testing.T) {
	// Structured metadata beats a conflicting plain-text match.
	html := `<html><head>
		<script type="application/ld+json">{"hiringOrganization":{"name":"Acme Robotics"}}</script>
		</head><body><p>company: Wrong Co</p></body></html>`

	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "Acme Robotics", locator.resolve(parseDoc(t, html)))
}

func TestCompanyLocatorJSONLDArrayAndDirectKeys(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">[{"@type":"WebPage"},{"companyName":"Globex"}]</script>
		</head><body></body></html>`

	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "Globex", locator.resolve(parseDoc(t, html)))
}

func TestCompanyLocatorMalformedJSONLDFallsThrough(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{not json</script>
		</head><body><div class="jobs-unified-top-card__company-name">Initech</div></body></html>`

	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "Initech", locator.resolve(parseDoc(t, html)))
}

func TestCompanyLocatorSelectorLengthBounds(t *testing.T) {
	long := strings.Repeat("x", 120)
	html := `<html><body>
		<div class="jobs-unified-top-card__company-name">` + long + `</div>
		<p>employer: Hooli</p></body></html>`

	// An overlong selector hit is discarded; the chain continues to the
	// text pattern step.
	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "Hooli", locator.resolve(parseDoc(t, html)))
}

func TestCompanyLocatorMetaSiteSuffixStripped(t *testing.T) {
	html := `<html><head>
		<meta property="og:site_name" content="Initech | LinkedIn Jobs">
		</head><body></body></html>`

	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "Initech", locator.resolve(parseDoc(t, html)))
}

func TestCompanyLocatorTitleSplit(t *testing.T) {
	html := `<html><head>
		<title>Software Engineer - Hooli | LinkedIn</title>
		</head><body></body></html>`

	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "Hooli", locator.resolve(parseDoc(t, html)))
}

func TestCompanyLocatorTextPatternNoiseRejected(t *testing.T) {
	html := `<html><body>
		<p>company: LinkedIn Talent Solutions</p>
		<p>employer: Acme Staffing</p></body></html>`

	// The first pattern match carries the site name and is rejected;
	// the next pattern still gets its turn.
	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "Acme Staffing", locator.resolve(parseDoc(t, html)))
}

func TestCompanyLocatorAllStepsMiss(t *testing.T) {
	html := `<html><body><p>a posting with no company signals</p></body></html>`

	locator := newCompanyLocator("LinkedIn", linkedInCompanySelectors)
	assert.Equal(t, "", locator.resolve(parseDoc(t, html)))
}
