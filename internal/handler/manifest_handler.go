package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podlauncher/internal/auth"
	"podlauncher/internal/catalog"
	"podlauncher/internal/errors"
	"podlauncher/internal/model"
	"podlauncher/internal/service"
)

// ManifestHandler exposes manifest generation as a JSON API and serves downloads.
type ManifestHandler struct {
	svc    service.LaunchService
	tokens *auth.TokenService
}

// NewManifestHandler creates a new manifest handler.
func NewManifestHandler(svc service.LaunchService, tokens *auth.TokenService) *ManifestHandler {
	return &ManifestHandler{svc: svc, tokens: tokens}
}

// ManifestRequest is the JSON form payload.
type ManifestRequest struct {
	Gaspard     string `json:"gaspard" validate:"max=253" example:"jdoe"`
	Email       string `json:"email" validate:"max=254" example:"jdoe@epfl.ch"`
	UID         int    `json:"uid" example:"1234"`
	GID         int    `json:"gid" example:"5678"`
	DockerImage string `json:"docker_image" example:"ic-registry.epfl.ch/mlo/pagliard-base-v2"`
	// NumGPU defaults to 1 when omitted.
	NumGPU *float64 `json:"num_gpu,omitempty" example:"1"`
}

// ManifestResponse is a generated launch plan.
type ManifestResponse struct {
	model.LaunchPlan
	AdminDataURL string `json:"admin_data_url"`
	DownloadURL  string `json:"download_url"`
}

// ImagesResponse lists the selectable images.
type ImagesResponse struct {
	Images  []catalog.Image `json:"images"`
	Default string          `json:"default"`
}

func (r ManifestRequest) toLaunchRequest() model.LaunchRequest {
	numGPU := model.DefaultNumGPU
	if r.NumGPU != nil {
		numGPU = int(*r.NumGPU)
	}
	return model.LaunchRequest{
		Profile: model.Profile{
			Gaspard: r.Gaspard,
			Email:   r.Email,
			UID:     r.UID,
			GID:     r.GID,
		},
		MachineSetup: model.MachineSetup{
			DockerImage: r.DockerImage,
			NumGPU:      numGPU,
		},
	}
}

// GenerateManifest godoc
// @Summary Generate a launch manifest
// @Description Validates the form values and renders launch.yaml with the companion shell commands. Nothing is stored.
// @Tags manifest
// @Accept json
// @Produce json
// @Param request body ManifestRequest true "Form values"
// @Success 200 {object} ManifestResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /manifest [post]
func (h *ManifestHandler) GenerateManifest(c echo.Context) error {
	var req ManifestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_REQUEST",
		})
	}

	plan, err := h.svc.Generate(req.toLaunchRequest())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode >= http.StatusInternalServerError {
			c.Logger().Errorf("generate launch plan: %v", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token, err := h.tokens.Issue(plan.Request)
	if err != nil {
		c.Logger().Errorf("issue download token: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to create download link",
			Code:  "TOKEN_FAILED",
		})
	}

	return c.JSON(http.StatusOK, ManifestResponse{
		LaunchPlan:   *plan,
		AdminDataURL: h.svc.AdminDataURL(plan.EmailPrefix),
		DownloadURL:  downloadURL(token),
	})
}

// ListImages godoc
// @Summary List selectable Docker images
// @Tags manifest
// @Produce json
// @Success 200 {object} ImagesResponse
// @Router /images [get]
func (h *ManifestHandler) ListImages(c echo.Context) error {
	images := h.svc.Catalog()
	return c.JSON(http.StatusOK, ImagesResponse{
		Images:  images.Images(),
		Default: images.First(),
	})
}

// Download serves launch.yaml, regenerated from the signed token the
// middleware put on the context.
func (h *ManifestHandler) Download(c echo.Context) error {
	claims, err := auth.ClaimsFromToken(c.Get("user"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_TOKEN",
		})
	}

	plan, err := h.svc.Generate(claims.Request)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+model.ManifestFileName+`"`)
	return c.Blob(http.StatusOK, "application/yaml", []byte(plan.Manifest))
}
