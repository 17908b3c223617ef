package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Normalize(t *testing.T) {
	p := Profile{Gaspard: " Foo.Bar ", Email: "\tJane.Doe@EPFL.ch \n", UID: 7, GID: 8}.Normalize()

	assert.Equal(t, "foo.bar", p.Gaspard)
	assert.Equal(t, "jane.doe@epfl.ch", p.Email)
	assert.Equal(t, 7, p.UID)
	assert.Equal(t, 8, p.GID)
}

func TestProfile_EmailPrefix(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane.doe@epfl.ch", "jane.doe"},
		{"", ""},
		{"jdoe", "jdoe"},
		{"@epfl.ch", ""},
		{"a@b@c", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, Profile{Email: tt.email}.EmailPrefix())
		})
	}
}
