package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podlauncher/internal/auth"
	"podlauncher/internal/catalog"
	"podlauncher/internal/config"
	"podlauncher/internal/handler"
	"podlauncher/internal/model"
	"podlauncher/internal/service"
	"podlauncher/internal/view"
)

func newServer(t *testing.T, tokens *auth.TokenService) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Renderer = view.NewRenderer()

	svc := service.NewLaunchService(catalog.Default(), service.Options{})
	Register(e, &config.Config{RateLimit: 100}, tokens,
		handler.NewFormHandler(svc, tokens, handler.CookieOptions{TTL: time.Hour}),
		handler.NewManifestHandler(svc, tokens),
	)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	e := newServer(t, auth.NewTokenService("secret", time.Minute))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_FormGetAndPost(t *testing.T) {
	e := newServer(t, auth.NewTokenService("secret", time.Minute))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader("gaspard=jdoe&email=jdoe%40epfl.ch&uid=1&gid=2&num_gpu=0"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nvidia.com/gpu: 0")
	assert.Len(t, rec.Result().Cookies(), 4)
}

func TestRouter_DownloadRoundTrip(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Minute)
	e := newServer(t, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/manifest",
		strings.NewReader(`{"gaspard":"jdoe","email":"jdoe@epfl.ch","uid":1234,"gid":5678,"num_gpu":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var plan handler.ManifestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))

	rec = serve(e, httptest.NewRequest(http.MethodGet, plan.DownloadURL, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, plan.Manifest, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `filename="launch.yaml"`)
	assert.Equal(t, "application/yaml", rec.Header().Get(echo.HeaderContentType))
}

func TestRouter_DownloadRejectsBadTokens(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Minute)
	e := newServer(t, tokens)

	forged, err := auth.NewTokenService("other", time.Minute).Issue(model.LaunchRequest{
		Profile: model.Profile{Gaspard: "jdoe", Email: "jdoe@epfl.ch", UID: 1, GID: 2},
	})
	require.NoError(t, err)

	for name, target := range map[string]string{
		"missing": "/launch.yaml",
		"garbage": "/launch.yaml?token=abc",
		"forged":  "/launch.yaml?token=" + forged,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(e, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
		})
	}
}

func TestRouter_DownloadRevalidatesClaims(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Minute)
	e := newServer(t, tokens)

	token, err := tokens.Issue(model.LaunchRequest{Profile: model.Profile{Gaspard: "jdoe"}})
	require.NoError(t, err)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/launch.yaml?token="+token, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_UID")
}

func TestRouter_Images(t *testing.T) {
	e := newServer(t, auth.NewTokenService("secret", time.Minute))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/images", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), catalog.DefaultImage)
}

func TestRouter_ManifestPayloadValidation(t *testing.T) {
	e := newServer(t, auth.NewTokenService("secret", time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/api/manifest",
		strings.NewReader(`{"gaspard":"`+strings.Repeat("a", 300)+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}
