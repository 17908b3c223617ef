package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"

	"podlauncher/docs"
	"podlauncher/internal/auth"
	"podlauncher/internal/catalog"
	"podlauncher/internal/config"
	"podlauncher/internal/handler"
	"podlauncher/internal/router"
	"podlauncher/internal/service"
	"podlauncher/internal/view"
)

// @title Interactive Pod Launcher API
// @version 1.0
// @description Generates Run:ai job manifests and shell commands for interactive GPU pods.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))
	e.Use(middleware.RequestID())
	e.Renderer = view.NewRenderer()

	images, err := catalog.Load(cfg.ImageCatalogFile)
	if err != nil {
		log.Fatalf("image catalog: %v", err)
	}
	if cfg.TokenSecret == "change-me" {
		log.Println("TOKEN_SECRET is not set, download links are signed with the default secret")
	}

	launchService := service.NewLaunchService(images, service.Options{
		FSGroup:      cfg.FSGroup,
		NotebookPort: cfg.NotebookPort,
		AdminDataURL: cfg.AdminDataURL,
	})
	tokenService := auth.NewTokenService(cfg.TokenSecret, cfg.DownloadTokenTTL)

	formHandler := handler.NewFormHandler(launchService, tokenService, handler.CookieOptions{
		TTL:    cfg.CookieTTL,
		Secure: cfg.CookieSecure,
	})
	manifestHandler := handler.NewManifestHandler(launchService, tokenService)

	router.Register(e, cfg, tokenService, formHandler, manifestHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	log.Printf("Serving %d image(s); swagger documentation available at http://%s/swagger/index.html",
		len(images.Images()), docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func logLevel(name string) glog.Lvl {
	switch strings.ToLower(name) {
	case "debug":
		return glog.DEBUG
	case "warn":
		return glog.WARN
	case "error":
		return glog.ERROR
	case "off":
		return glog.OFF
	default:
		return glog.INFO
	}
}
