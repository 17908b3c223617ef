package catalog

import (
	"fmt"
	"os"
	"slices"

	"github.com/google/go-containerregistry/pkg/name"
	"gopkg.in/yaml.v3"
)

// DefaultImage is the image offered when no catalog file is configured.
const DefaultImage = "ic-registry.epfl.ch/mlo/pagliard-base-v2"

// Image is one selectable container image.
type Image struct {
	Reference   string `json:"reference" yaml:"reference"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Catalog is the fixed, ordered set of images the form offers.
type Catalog struct {
	images []Image
}

type catalogFile struct {
	Images []Image `yaml:"images"`
}

// Default returns the built-in single-image catalog.
func Default() *Catalog {
	return &Catalog{images: []Image{{Reference: DefaultImage, Description: "MLO base image"}}}
}

// New builds a catalog and checks every reference.
func New(images []Image) (*Catalog, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("catalog: no images")
	}
	seen := map[string]bool{}
	for _, img := range images {
		if _, err := name.ParseReference(img.Reference); err != nil {
			return nil, fmt.Errorf("catalog: image %q: %w", img.Reference, err)
		}
		if seen[img.Reference] {
			return nil, fmt.Errorf("catalog: duplicate image %q", img.Reference)
		}
		seen[img.Reference] = true
	}
	return &Catalog{images: slices.Clone(images)}, nil
}

// Load reads a YAML catalog file of the form
//
//	images:
//	  - reference: registry/repo:tag
//	    description: text
//
// An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(f.Images)
}

// Images returns the catalog in display order.
func (c *Catalog) Images() []Image {
	return slices.Clone(c.images)
}

// First returns the image preselected in the form.
func (c *Catalog) First() string {
	return c.images[0].Reference
}

// Contains reports whether ref is selectable.
func (c *Catalog) Contains(ref string) bool {
	return slices.ContainsFunc(c.images, func(img Image) bool { return img.Reference == ref })
}
