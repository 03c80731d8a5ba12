package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsPage = `<html><body>
<div class="newsdateblock">
  <h2><a href="/news/100">Distro 1.0 released</a></h2>
  <span class="time">14.05.2024</span>
</div>
<div class="newsdateblock">
  <h2><a href="/news/101">Editor 2.0 released</a></h2>
  <span class="time">15.05.2024</span>
</div>
</body></html>`

func pageConfig(siteURL string) NewsPageConfig {
	return NewsPageConfig{
		Name:       "TestPage",
		SiteURL:    siteURL,
		PagePath:   "/news",
		TitleSel:   `div.newsdateblock h2 a[href*="/news/"]`,
		DateSel:    "div.newsdateblock span.time",
		DateLayout: "02.01.2006",
		DateZone:   moscowTZ,
	}
}

func TestNewsPageParser_FetchAndParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news", r.URL.Path)
		w.Write([]byte(newsPage))
	}))
	defer srv.Close()

	parser := NewNewsPageParser(pageConfig(srv.URL), testOptions())

	posts, err := parser.FetchAndParse(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "Distro 1.0 released", posts[0].Title)
	assert.Equal(t, srv.URL+"/news/100", posts[0].URL)
	require.NotNil(t, posts[0].Timestamp)
	// 14.05.2024 00:00 MSK is 13.05.2024 21:00 UTC.
	assert.Equal(t, time.Date(2024, 5, 13, 21, 0, 0, 0, time.UTC), posts[0].Timestamp.UTC())
}

func TestNewsPageParser_CountMismatchIsParseError(t *testing.T) {
	page := `<html><body>
	<div class="newsdateblock"><h2><a href="/news/100">Only title</a></h2></div>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	parser := NewNewsPageParser(pageConfig(srv.URL), testOptions())

	_, err := parser.FetchAndParse(context.Background())
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestNewsPageParser_SourceErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	parser := NewNewsPageParser(pageConfig(srv.URL), testOptions())

	_, err := parser.FetchAndParse(context.Background())
	require.Error(t, err)

	var srcErr *SourceError
	assert.ErrorAs(t, err, &srcErr)
}
