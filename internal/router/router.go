package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"podlauncher/internal/auth"
	"podlauncher/internal/config"
	"podlauncher/internal/errors"
	"podlauncher/internal/handler"
	"podlauncher/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	formHandler *handler.FormHandler,
	manifestHandler *handler.ManifestHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The form is one render pass per request, whether loaded or submitted.
	e.GET("/", formHandler.Show)
	e.POST("/", formHandler.Show)

	e.GET("/"+model.ManifestFileName, manifestHandler.Download, echojwt.WithConfig(echojwt.Config{
		SigningKey:    tokens.Secret(),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		TokenLookup:   "query:token",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.LaunchClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "download link is invalid or expired",
				Code:  "INVALID_TOKEN",
			})
		},
	}))

	api := e.Group("/api")
	api.POST("/manifest", manifestHandler.GenerateManifest)
	api.GET("/images", manifestHandler.ListImages)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
