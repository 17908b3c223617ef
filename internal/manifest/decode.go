package manifest

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation"
	"sigs.k8s.io/yaml"
)

const (
	// APIVersion and Kind identify a Run:ai job document.
	APIVersion = "run.ai/v1"
	Kind       = "RunaiJob"

	// GPUResource is the extended resource name of NVIDIA GPUs.
	GPUResource corev1.ResourceName = "nvidia.com/gpu"
)

// Job is the subset of the RunaiJob schema that launch.yaml uses.
type Job struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec JobSpec `json:"spec"`
}

// JobSpec is the spec of a RunaiJob.
type JobSpec struct {
	Ports    []corev1.ServicePort   `json:"ports,omitempty"`
	Template corev1.PodTemplateSpec `json:"template"`
}

// Decode parses a manifest strictly: unknown fields are errors.
func Decode(doc []byte) (*Job, error) {
	var job Job
	if err := yaml.UnmarshalStrict(doc, &job); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if job.APIVersion != APIVersion || job.Kind != Kind {
		return nil, fmt.Errorf("decode manifest: unexpected type %s/%s", job.APIVersion, job.Kind)
	}
	if len(job.Spec.Template.Spec.Containers) == 0 {
		return nil, fmt.Errorf("decode manifest: no containers")
	}
	return &job, nil
}

// ValidateJobName checks that name can be used as a resource name.
func ValidateJobName(name string) error {
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return fmt.Errorf("job name %q: %s", name, strings.Join(errs, "; "))
	}
	return nil
}

// GPULimit returns the GPU limit of the first container.
func (j *Job) GPULimit() int64 {
	q, ok := j.Spec.Template.Spec.Containers[0].Resources.Limits[GPUResource]
	if !ok {
		return 0
	}
	return q.Value()
}
