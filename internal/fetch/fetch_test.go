package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPostingText_UsesJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">
			<h1>Senior  Backend   Engineer</h1>
			<p>Build services in Go.</p>
		</div>
		<footer>© 2026</footer>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Backend Engineer")
	assert.Contains(t, text, "Build services in Go.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "© 2026")
}

func TestExtractPostingText_FallsBackToBody(t *testing.T) {
	text, err := ExtractPostingText(`<html><body><p>Just a posting.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Just a posting.", text)
}

func TestCleanText(t *testing.T) {
	input := "Line one  \r\n\r\n\r\n   Line   two\t here\n\n"
	assert.Equal(t, "Line one\nLine two here", CleanText(input))
}

func TestJobPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><p>Go engineer wanted.</p></main></body></html>`))
	}))
	defer server.Close()

	text, err := JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Go engineer wanted.", text)
}

func TestJobPosting_Errors(t *testing.T) {
	_, err := JobPosting(context.Background(), "not-a-url")
	assert.Error(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err = JobPosting(context.Background(), server.URL)
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}
