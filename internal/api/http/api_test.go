package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/stretchr/testify/suite"

	"url-shortener/internal/service"
	"url-shortener/internal/shortcode"
	"url-shortener/internal/storage"
)

// APITestSuite exercises the full request path: router, handlers, service
// and the real in-memory store, with no mocks.
type APITestSuite struct {
	suite.Suite
	server *httptest.Server
	e      *httpexpect.Expect
}

func (suite *APITestSuite) SetupTest() {
	logger := httplog.NewLogger("", httplog.Options{Writer: io.Discard})
	store := storage.NewMappingStore()
	urlSvc := service.NewURLService(store, shortcode.DefaultLength)

	suite.server = httptest.NewServer(NewRouter(logger, urlSvc, "http://localhost:8080", shortcode.DefaultLength))
	suite.e = httpexpect.Default(suite.T(), suite.server.URL)
}

func (suite *APITestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *APITestSuite) shorten(rawURL string) string {
	resp := suite.e.POST("/api/shorten").
		WithJSON(map[string]string{"url": rawURL}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()

	code := resp.Value("short_code").String().Raw()
	resp.HasValue("short_url", "http://localhost:8080/"+code)
	suite.True(shortcode.Valid(code, shortcode.DefaultLength), "bad code %q", code)

	return code
}

func (suite *APITestSuite) TestShortenRedirectStats() {
	code := suite.shorten("www.example.com")

	suite.e.GET("/" + code).
		WithRedirectPolicy(httpexpect.DontFollowRedirects).
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("https://www.example.com")

	suite.e.GET("/api/stats/"+code).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		HasValue("url", "https://www.example.com").
		HasValue("short_code", code).
		HasValue("clicks", 1).
		ContainsKey("created_at")
}

func (suite *APITestSuite) TestClicksMatchRedirects() {
	const k = 5

	code := suite.shorten("https://example.com/path")

	for i := 0; i < k; i++ {
		suite.e.GET("/" + code).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusFound)
	}

	suite.e.GET("/api/stats/"+code).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		HasValue("clicks", k)
}

func (suite *APITestSuite) TestDistinctCodesForSameURL() {
	seen := make(map[string]struct{})

	for i := 0; i < 5; i++ {
		code := suite.shorten("https://example.com")

		_, dup := seen[code]
		suite.False(dup, "duplicate code %q", code)
		seen[code] = struct{}{}
	}
}

func (suite *APITestSuite) TestUnknownCode() {
	suite.e.GET("/abcdef").
		WithRedirectPolicy(httpexpect.DontFollowRedirects).
		Expect().
		Status(http.StatusNotFound)

	suite.e.GET("/api/stats/abcdef").
		Expect().
		Status(http.StatusNotFound)
}

func (suite *APITestSuite) TestMetricsExposed() {
	suite.e.GET("/").
		Expect().
		Status(http.StatusOK)

	suite.e.GET("/metrics").
		Expect().
		Status(http.StatusOK).
		Text().Contains("http_requests_total")
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
