package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podlauncher/internal/catalog"
	apperrors "podlauncher/internal/errors"
	"podlauncher/internal/model"
)

func newTestService(t *testing.T) LaunchService {
	t.Helper()
	return NewLaunchService(catalog.Default(), Options{AdminDataURL: "https://people.epfl.ch/%s/admindata"})
}

func validRequest() model.LaunchRequest {
	return model.LaunchRequest{
		Profile: model.Profile{Gaspard: "jdoe", Email: "jdoe@epfl.ch", UID: 1234, GID: 5678},
		MachineSetup: model.MachineSetup{
			DockerImage: "ic-registry.epfl.ch/mlo/pagliard-base-v2",
			NumGPU:      2,
		},
	}
}

func TestLaunchService_Prepare(t *testing.T) {
	svc := newTestService(t)

	got := svc.Prepare(model.LaunchRequest{
		Profile:      model.Profile{Gaspard: " Foo.Bar ", Email: " Foo.Bar@EPFL.CH "},
		MachineSetup: model.MachineSetup{NumGPU: 1},
	})

	assert.Equal(t, "foo.bar", got.Gaspard)
	assert.Equal(t, "foo.bar@epfl.ch", got.Email)
	assert.Equal(t, catalog.DefaultImage, got.DockerImage)
	assert.Equal(t, 1, got.NumGPU)
}

func TestLaunchService_Validate_FirstFailureOnly(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name   string
		mutate func(*model.LaunchRequest)
		want   error
	}{
		{"valid", func(*model.LaunchRequest) {}, nil},
		{"everything missing", func(r *model.LaunchRequest) { *r = model.LaunchRequest{} }, apperrors.ErrInvalidGaspard},
		{"missing gaspard", func(r *model.LaunchRequest) { r.Gaspard = "" }, apperrors.ErrInvalidGaspard},
		{"missing uid and gid", func(r *model.LaunchRequest) { r.UID, r.GID = 0, 0 }, apperrors.ErrInvalidUID},
		{"negative uid", func(r *model.LaunchRequest) { r.UID = -1 }, apperrors.ErrInvalidUID},
		{"missing gid and email", func(r *model.LaunchRequest) { r.GID, r.Email = 0, "" }, apperrors.ErrInvalidGID},
		{"missing email", func(r *model.LaunchRequest) { r.Email = "" }, apperrors.ErrInvalidEmail},
		{"email without prefix", func(r *model.LaunchRequest) { r.Email = "@epfl.ch" }, apperrors.ErrInvalidEmail},
		{"negative gpus", func(r *model.LaunchRequest) { r.NumGPU = -1 }, apperrors.ErrInvalidGPUCount},
		{"zero gpus", func(r *model.LaunchRequest) { r.NumGPU = 0 }, nil},
		{"unknown image", func(r *model.LaunchRequest) { r.DockerImage = "docker.io/library/ubuntu" }, apperrors.ErrUnknownImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := svc.Validate(req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestLaunchService_Generate(t *testing.T) {
	svc := newTestService(t)

	plan, err := svc.Generate(validRequest())
	require.NoError(t, err)

	assert.Equal(t, "jdoe", plan.EmailPrefix)
	assert.Equal(t, "jdoe-interactive", plan.JobName)
	for _, want := range []string{
		"name: jdoe-interactive",
		"runAsUser: 1234",
		"runAsGroup: 5678",
		"fsGroup: 11169",
		"nvidia.com/gpu: 2",
		"image: ic-registry.epfl.ch/mlo/pagliard-base-v2",
	} {
		assert.Contains(t, plan.Manifest, want)
	}
	assert.Equal(t, "kubectl apply -f launch.yaml", plan.Commands.Apply)
	assert.Equal(t, "kubectl get pods", plan.Commands.ListPods)
	assert.Equal(t, "runai bash jdoe-interactive", plan.Commands.Exec)
	assert.Equal(t, "kubectl port-forward jdoe-interactive-0-0 8888:8888", plan.Commands.PortForward)
}

func TestLaunchService_Generate_NormalizesFirst(t *testing.T) {
	svc := newTestService(t)
	req := validRequest()
	req.Gaspard = "  JDoe "
	req.Email = " JDoe@EPFL.ch"
	req.DockerImage = ""

	plan, err := svc.Generate(req)
	require.NoError(t, err)

	assert.Equal(t, "jdoe", plan.Request.Gaspard)
	assert.Equal(t, "jdoe@epfl.ch", plan.Request.Email)
	assert.Equal(t, catalog.DefaultImage, plan.Request.DockerImage)
	assert.Contains(t, plan.Manifest, "name: jdoe-interactive")
}

func TestLaunchService_Generate_InvalidJobName(t *testing.T) {
	svc := newTestService(t)
	req := validRequest()
	req.Gaspard = "j doe"

	_, err := svc.Generate(req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidJobName)
}

func TestLaunchService_Generate_ValidationError(t *testing.T) {
	svc := newTestService(t)
	req := validRequest()
	req.GID = 0

	plan, err := svc.Generate(req)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, apperrors.ErrInvalidGID)
}

func TestLaunchService_Generate_CustomOptions(t *testing.T) {
	svc := NewLaunchService(catalog.Default(), Options{FSGroup: 4242, NotebookPort: 9000})

	plan, err := svc.Generate(validRequest())
	require.NoError(t, err)

	assert.Contains(t, plan.Manifest, "fsGroup: 4242")
	assert.Equal(t, "kubectl port-forward jdoe-interactive-0-0 9000:9000", plan.Commands.PortForward)
}

func TestLaunchService_AdminDataURL(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "https://people.epfl.ch/jane.doe/admindata", svc.AdminDataURL("jane.doe"))
	assert.Equal(t, "", svc.AdminDataURL(""))
	assert.Equal(t, "https://people.epfl.ch/a%2Fb/admindata", svc.AdminDataURL("a/b"))
}
