package manifest

import (
	"fmt"

	"podlauncher/internal/model"
)

// BuildCommands returns the shell commands that go with a job manifest.
// The first pod replica of a RunaiJob is named <job>-0-0.
func BuildCommands(jobName, fileName string, notebookPort int) model.Commands {
	if notebookPort == 0 {
		notebookPort = DefaultNotebookPort
	}
	return model.Commands{
		Apply:        fmt.Sprintf("kubectl apply -f %s", fileName),
		ListPods:     "kubectl get pods",
		Exec:         fmt.Sprintf("runai bash %s", jobName),
		PortForward:  fmt.Sprintf("kubectl port-forward %s-0-0 %d:%d", jobName, notebookPort, notebookPort),
		NotebookURL:  fmt.Sprintf("http://localhost:%d", notebookPort),
		ManifestFile: fileName,
	}
}
