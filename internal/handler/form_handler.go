package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"podlauncher/internal/auth"
	"podlauncher/internal/errors"
	"podlauncher/internal/model"
	"podlauncher/internal/service"
	"podlauncher/internal/session"
	"podlauncher/internal/view"
)

// Form field names.
const (
	fieldDockerImage = "docker_image"
	fieldNumGPU      = "num_gpu"
)

// CookieOptions control how the profile is written back to the browser.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// FormHandler serves the launch form. Every request is one full render pass:
// read cookies, apply submitted values, write cookies back, validate, render.
type FormHandler struct {
	svc     service.LaunchService
	tokens  *auth.TokenService
	cookies CookieOptions
	now     func() time.Time
}

// NewFormHandler creates the form handler.
func NewFormHandler(svc service.LaunchService, tokens *auth.TokenService, cookies CookieOptions) *FormHandler {
	return &FormHandler{svc: svc, tokens: tokens, cookies: cookies, now: time.Now}
}

// Show renders the form, and the launch instructions when the form is valid.
func (h *FormHandler) Show(c echo.Context) error {
	store := session.NewCookieStore(c, h.cookies.Secure)
	stored := session.LoadProfile(store, c.Logger())

	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req := h.svc.Prepare(requestFromForm(c, params, stored))

	// stored on every pass, valid or not
	session.SaveProfile(store, req.Profile, h.cookies.TTL, h.now())

	data := view.FormData{
		Request:      req,
		Images:       h.svc.Catalog().Images(),
		AdminDataURL: h.svc.AdminDataURL(req.EmailPrefix()),
	}

	plan, err := h.svc.Generate(req)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode >= http.StatusInternalServerError {
			c.Logger().Errorf("generate launch plan: %v", err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		data.Error = httpErr.Message
		return c.Render(http.StatusOK, view.FormPage, data)
	}

	token, err := h.tokens.Issue(plan.Request)
	if err != nil {
		c.Logger().Errorf("issue download token: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create download link")
	}
	data.Plan = plan
	data.DownloadURL = downloadURL(token)
	return c.Render(http.StatusOK, view.FormPage, data)
}

// requestFromForm overlays submitted values on the stored profile.
func requestFromForm(c echo.Context, params url.Values, stored model.Profile) model.LaunchRequest {
	req := model.LaunchRequest{
		Profile:      stored,
		MachineSetup: model.MachineSetup{NumGPU: model.DefaultNumGPU},
	}
	if v, ok := formValue(params, session.KeyGaspard); ok {
		req.Gaspard = v
	}
	if v, ok := formValue(params, session.KeyEmail); ok {
		req.Email = v
	}
	if v, ok := formValue(params, session.KeyUID); ok {
		req.UID = formInt(c, session.KeyUID, v, 0)
	}
	if v, ok := formValue(params, session.KeyGID); ok {
		req.GID = formInt(c, session.KeyGID, v, 0)
	}
	if v, ok := formValue(params, fieldDockerImage); ok {
		req.DockerImage = v
	}
	if v, ok := formValue(params, fieldNumGPU); ok {
		req.NumGPU = formInt(c, fieldNumGPU, v, model.DefaultNumGPU)
	}
	return req
}

func formValue(params url.Values, key string) (string, bool) {
	values, ok := params[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// formInt parses a numeric input; empty or malformed input yields def.
func formInt(c echo.Context, key, v string, def int) int {
	if v == "" {
		return def
	}
	n, err := session.ParseInt(v)
	if err != nil {
		c.Logger().Warnf("ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}

func downloadURL(token string) string {
	return "/" + model.ManifestFileName + "?" + url.Values{"token": {token}}.Encode()
}
