package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"podlauncher/internal/catalog"
	"podlauncher/internal/errors"
	"podlauncher/internal/manifest"
	"podlauncher/internal/model"
)

// Options are the cluster settings the generated manifest depends on.
type Options struct {
	FSGroup      int
	NotebookPort int
	// AdminDataURL is a format string with one %s for the email prefix.
	AdminDataURL string
}

// LaunchService is the form controller logic, independent of HTTP.
type LaunchService interface {
	// Prepare normalizes free-text fields and fills the machine-setup defaults.
	Prepare(req model.LaunchRequest) model.LaunchRequest
	// Validate reports the first invalid field only.
	Validate(req model.LaunchRequest) error
	// Generate prepares, validates and renders the launch plan.
	Generate(req model.LaunchRequest) (*model.LaunchPlan, error)
	// AdminDataURL links to the page listing the UID and GID of prefix, or "" for an empty prefix.
	AdminDataURL(prefix string) string
	Catalog() *catalog.Catalog
}

type launchService struct {
	catalog  *catalog.Catalog
	opts     Options
	validate *validator.Validate
}

// NewLaunchService builds a LaunchService over an image catalog.
func NewLaunchService(images *catalog.Catalog, opts Options) LaunchService {
	if opts.FSGroup == 0 {
		opts.FSGroup = manifest.DefaultFSGroup
	}
	if opts.NotebookPort == 0 {
		opts.NotebookPort = manifest.DefaultNotebookPort
	}
	return &launchService{catalog: images, opts: opts, validate: validator.New()}
}

func (s *launchService) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *launchService) Prepare(req model.LaunchRequest) model.LaunchRequest {
	req.Profile = req.Profile.Normalize()
	req.DockerImage = strings.TrimSpace(req.DockerImage)
	if req.DockerImage == "" {
		req.DockerImage = s.catalog.First()
	}
	return req
}

func (s *launchService) Validate(req model.LaunchRequest) error {
	switch {
	case req.Gaspard == "":
		return errors.ErrInvalidGaspard
	case req.UID <= 0:
		return errors.ErrInvalidUID
	case req.GID <= 0:
		return errors.ErrInvalidGID
	case req.EmailPrefix() == "":
		return errors.ErrInvalidEmail
	}
	if err := s.validate.Struct(req.MachineSetup); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidGPUCount, err)
	}
	if !s.catalog.Contains(req.DockerImage) {
		return errors.ErrUnknownImage
	}
	return nil
}

func (s *launchService) Generate(req model.LaunchRequest) (*model.LaunchPlan, error) {
	req = s.Prepare(req)
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	jobName := manifest.JobName(req.Gaspard)
	if err := manifest.ValidateJobName(jobName); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidJobName, err)
	}

	doc, err := manifest.Render(manifest.Params{
		Gaspard:      req.Gaspard,
		EmailPrefix:  req.EmailPrefix(),
		UID:          req.UID,
		GID:          req.GID,
		FSGroup:      s.opts.FSGroup,
		DockerImage:  req.DockerImage,
		NumGPU:       req.NumGPU,
		NotebookPort: s.opts.NotebookPort,
	})
	if err != nil {
		return nil, err
	}
	if _, err := manifest.Decode([]byte(doc)); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidManifest, err)
	}

	return &model.LaunchPlan{
		Request:     req,
		EmailPrefix: req.EmailPrefix(),
		JobName:     jobName,
		Manifest:    doc,
		Commands:    manifest.BuildCommands(jobName, model.ManifestFileName, s.opts.NotebookPort),
	}, nil
}

func (s *launchService) AdminDataURL(prefix string) string {
	if prefix == "" || s.opts.AdminDataURL == "" {
		return ""
	}
	return fmt.Sprintf(s.opts.AdminDataURL, url.PathEscape(prefix))
}
