package manifest

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// Cluster constants baked into every job.
const (
	DefaultFSGroup      = 11169
	DefaultNotebookPort = 8888
	DataVolume          = "mlodata1"
	DataMountPath       = "/mlodata1"
	DataClaim           = "runai-pv-mlodata1"
)

//go:embed templates/launch.yaml.tmpl
var templateFS embed.FS

var launchTemplate = template.Must(template.ParseFS(templateFS, "templates/launch.yaml.tmpl"))

// Params are the values interpolated into the job template.
type Params struct {
	Gaspard      string
	EmailPrefix  string
	UID          int
	GID          int
	FSGroup      int
	DockerImage  string
	NumGPU       int
	NotebookPort int
}

type templateData struct {
	Params
	JobName       string
	DataVolume    string
	DataMountPath string
	DataClaim     string
}

// JobName is the name of the job created for gaspard.
func JobName(gaspard string) string {
	return gaspard + "-interactive"
}

// Render fills the job template. Zero FSGroup and NotebookPort take the defaults.
func Render(p Params) (string, error) {
	if p.FSGroup == 0 {
		p.FSGroup = DefaultFSGroup
	}
	if p.NotebookPort == 0 {
		p.NotebookPort = DefaultNotebookPort
	}
	var buf bytes.Buffer
	err := launchTemplate.ExecuteTemplate(&buf, "launch.yaml.tmpl", templateData{
		Params:        p,
		JobName:       JobName(p.Gaspard),
		DataVolume:    DataVolume,
		DataMountPath: DataMountPath,
		DataClaim:     DataClaim,
	})
	if err != nil {
		return "", fmt.Errorf("render manifest: %w", err)
	}
	return buf.String(), nil
}
