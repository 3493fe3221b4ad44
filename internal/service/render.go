package service

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"vehicleagent/internal/model"
)

// Renderer shapes operation results into validated UI surface messages.
type Renderer struct{}

// NewRenderer creates a new surface renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render builds the first-display message for a new surface: the action is
// always beginRendering and the surface id is freshly generated. The
// message is validated before it is returned; a validation failure is a
// renderer bug and propagates instead of producing a partial message.
func (r *Renderer) Render(surfaceType string, data map[string]any) (*model.SurfaceMessage, error) {
	msg := &model.SurfaceMessage{
		Action:      model.ActionBeginRendering,
		SurfaceID:   uuid.NewString(),
		SurfaceType: surfaceType,
		Data:        data,
	}

	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("surface message failed validation: %w", err)
	}
	return msg, nil
}

// PadCompareIDs fills a short id list with the fixed catalog defaults "1"
// then "2" (skipping any already present) until two ids are available.
// This is a documented deterministic fallback, not a suggestion heuristic.
func PadCompareIDs(ids []string) []string {
	if len(ids) >= 2 {
		return ids
	}
	if !slices.Contains(ids, "1") {
		ids = append(ids, "1")
	}
	if !slices.Contains(ids, "2") && len(ids) < 2 {
		ids = append(ids, "2")
	}
	return ids
}
