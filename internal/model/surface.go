package model

import "fmt"

// Actions understood by the generative-UI client.
const (
	ActionBeginRendering  = "beginRendering"
	ActionSurfaceUpdate   = "surfaceUpdate"
	ActionDataModelUpdate = "dataModelUpdate"
	ActionDeleteSurface   = "deleteSurface"
)

// Surface types the renderer can emit.
const (
	SurfaceTable          = "table"
	SurfaceCardComparison = "card-comparison"
	SurfaceBookingForm    = "booking-form"
	SurfaceMarkdown       = "markdown"
)

var validActions = map[string]bool{
	ActionBeginRendering:  true,
	ActionSurfaceUpdate:   true,
	ActionDataModelUpdate: true,
	ActionDeleteSurface:   true,
}

var validSurfaceTypes = map[string]bool{
	SurfaceTable:          true,
	SurfaceCardComparison: true,
	SurfaceBookingForm:    true,
	SurfaceMarkdown:       true,
}

// SurfaceMessage is the unit exchanged with the rendering client.
// Every outbound message must pass Validate before it leaves the process.
type SurfaceMessage struct {
	Action      string         `json:"action"`
	SurfaceID   string         `json:"surfaceId"`
	SurfaceType string         `json:"surfaceType"`
	Data        map[string]any `json:"data"`
}

// Validate checks the message against the UI schema: all four fields are
// required, action and surfaceType must be members of the known enums.
// The internal shape of Data is not constrained at this layer.
func (m *SurfaceMessage) Validate() error {
	if !validActions[m.Action] {
		return fmt.Errorf("invalid surface action: %q", m.Action)
	}
	if m.SurfaceID == "" {
		return fmt.Errorf("surfaceId is required")
	}
	if !validSurfaceTypes[m.SurfaceType] {
		return fmt.Errorf("invalid surface type: %q", m.SurfaceType)
	}
	if m.Data == nil {
		return fmt.Errorf("data object is required")
	}
	return nil
}
