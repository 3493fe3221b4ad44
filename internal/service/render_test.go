package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicleagent/internal/model"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer()

	msg, err := renderer.Render(model.SurfaceTable, map[string]any{
		"columns": []string{"ID", "Make"},
		"rows":    []any{},
	})
	require.NoError(t, err)

	assert.Equal(t, model.ActionBeginRendering, msg.Action)
	assert.Equal(t, model.SurfaceTable, msg.SurfaceType)

	_, err = uuid.Parse(msg.SurfaceID)
	assert.NoError(t, err, "surface id should be a valid UUID")
}

func TestRenderer_Render_FreshIDPerSurface(t *testing.T) {
	renderer := NewRenderer()
	data := map[string]any{"content": "hello"}

	first, err := renderer.Render(model.SurfaceMarkdown, data)
	require.NoError(t, err)
	second, err := renderer.Render(model.SurfaceMarkdown, data)
	require.NoError(t, err)

	assert.NotEqual(t, first.SurfaceID, second.SurfaceID)
}

func TestRenderer_Render_RejectsInvalidMessage(t *testing.T) {
	renderer := NewRenderer()

	_, err := renderer.Render("hologram", map[string]any{})
	assert.Error(t, err)

	_, err = renderer.Render(model.SurfaceTable, nil)
	assert.Error(t, err)
}

func TestPadCompareIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"empty gets both defaults", []string{}, []string{"1", "2"}},
		{"single id gets the missing default", []string{"3"}, []string{"3", "1"}},
		{"present default is skipped", []string{"1"}, []string{"1", "2"}},
		{"second default already present", []string{"2"}, []string{"2", "1"}},
		{"two ids untouched", []string{"3", "4"}, []string{"3", "4"}},
		{"more than two untouched", []string{"3", "4", "5"}, []string{"3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadCompareIDs(tt.ids))
		})
	}
}
