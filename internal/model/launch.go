package model

// DefaultNumGPU is the GPU count offered when the user has not chosen one.
const DefaultNumGPU = 1

// ManifestFileName is the name under which the manifest is downloaded.
const ManifestFileName = "launch.yaml"

// MachineSetup describes the pod the user wants.
type MachineSetup struct {
	DockerImage string `json:"docker_image"`
	NumGPU      int    `json:"num_gpu" validate:"gte=0"`
}

// LaunchRequest is everything the form collects.
type LaunchRequest struct {
	Profile
	MachineSetup
}

// Commands are the shell commands shown next to the manifest.
type Commands struct {
	Apply        string `json:"apply"`
	ListPods     string `json:"list_pods"`
	Exec         string `json:"exec"`
	PortForward  string `json:"port_forward"`
	NotebookURL  string `json:"notebook_url"`
	ManifestFile string `json:"manifest_file"`
}

// LaunchPlan is the result of a successful generation.
type LaunchPlan struct {
	Request     LaunchRequest `json:"request"`
	EmailPrefix string        `json:"email_prefix"`
	JobName     string        `json:"job_name"`
	Manifest    string        `json:"manifest"`
	Commands    Commands      `json:"commands"`
}
