package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFetchesContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
}

func TestURLRejectsInvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURLReportsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.Error(t, err)
	// The body is still returned alongside the status error.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractMainTextPrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>site navigation</nav>
		<div class="job-description">We are hiring engineers.</div>
		<footer>legal footer</footer>
	</body></html>`

	text, err := ExtractMainText(html, []string{".job-description"})
	require.NoError(t, err)
	assert.Equal(t, "We are hiring engineers.", text)
}

func TestExtractMainTextRemovesNoise(t *testing.T) {
	html := `<html><body>
		<div id="jobDescriptionText">
			Build data pipelines.
			<form>apply here</form>
			<div class="eeo-statement">equal opportunity text</div>
		</div>
	</body></html>`

	text, err := ExtractMainText(html, []string{"#jobDescriptionText"}, SiteNoiseSelectors(SiteIndeed)...)
	require.NoError(t, err)
	assert.Contains(t, text, "Build data pipelines.")
	assert.NotContains(t, text, "apply here")
	assert.NotContains(t, text, "equal opportunity")
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>plain posting text</p></body></html>`

	text, err := ExtractMainText(html, []string{".missing-selector"})
	require.NoError(t, err)
	assert.Equal(t, "plain posting text", text)
}

func TestPostingSkipsBrowserWhenContentIsLong(t *testing.T) {
	long := make([]byte, 0, MinContentLength+100)
	for i := 0; i < MinContentLength+100; i++ {
		long = append(long, 'x')
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>` + string(long) + `</main></body></html>`))
	}))
	defer srv.Close()

	result, err := Posting(context.Background(), srv.URL, &Options{
		Timeout:         DefaultTimeout,
		UserAgent:       DefaultUserAgent,
		BrowserFallback: false,
	})
	require.NoError(t, err)
	assert.False(t, result.Rendered)
	assert.GreaterOrEqual(t, len(result.Text), MinContentLength)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
