package utils_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/studiosim-go/pkg/utils"
)

func TestGenerateEntityID_Format(t *testing.T) {
	id := utils.GenerateEntityID("staff", "Maya Chen")

	assert.True(t, strings.HasPrefix(id, "staff-maya-chen-"))
	assert.Len(t, id, len("staff-maya-chen-")+8)
}

func TestGenerateEntityID_Unique(t *testing.T) {
	a := utils.GenerateEntityID("project", "Demo")
	b := utils.GenerateEntityID("project", "Demo")

	assert.NotEqual(t, a, b)
}

func TestGenerateEntityID_EmptyName(t *testing.T) {
	id := utils.GenerateEntityID("project", "!!!")

	assert.True(t, strings.HasPrefix(id, "project-"))
	assert.Len(t, id, len("project-")+8)
}

func TestEntityID_UsesSuppliedUUID(t *testing.T) {
	id := uuid.MustParse("a3f8e2b1-0000-4000-8000-000000000000")

	assert.Equal(t, "staff-maya-chen-a3f8e2b1", utils.EntityID("staff", "Maya Chen", id))
	assert.Equal(t, "project-a3f8e2b1", utils.EntityID("project", "", id))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Maya Chen", "maya-chen"},
		{"  Neon   Nights!! ", "neon-nights"},
		{"Track 07", "track-07"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.Slugify(tt.in))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, utils.Clamp(-5, 0, 100))
	assert.Equal(t, 100, utils.Clamp(140, 0, 100))
	assert.Equal(t, 42, utils.Clamp(42, 0, 100))
	assert.Equal(t, 1.0, utils.ClampFloat(1.3, 0, 1))
	assert.Equal(t, 0.0, utils.ClampFloat(-0.1, 0, 1))
}
