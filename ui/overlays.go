package ui

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayHUD       OverlayID = "hud"
	OverlayControls  OverlayID = "controls"
	OverlayInspector OverlayID = "inspector"
	OverlayTrends    OverlayID = "trends"
	OverlayPerf      OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display (e.g., "H")
	Category    string      // Grouping ("view" or "debug")
	Default     bool        // Enabled at startup
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// defaultOverlays are registered by NewOverlayRegistry, in display order.
var defaultOverlays = []OverlayDescriptor{
	{ID: OverlayHUD, Name: "HUD", Description: "Title, frame rate and particle counts",
		Key: rl.KeyH, KeyLabel: "H", Category: "view", Default: true},
	{ID: OverlayControls, Name: "Controls", Description: "Overlay toggles and field tuning sliders",
		Key: rl.KeyC, KeyLabel: "C", Category: "view"},
	{ID: OverlayInspector, Name: "Inspector", Description: "Click a particle to inspect it",
		Key: rl.KeyI, KeyLabel: "I", Category: "debug"},
	{ID: OverlayTrends, Name: "Trends", Description: "Telemetry graphs over recent windows",
		Key: rl.KeyT, KeyLabel: "T", Category: "debug", Exclusive: []OverlayID{OverlayPerf}},
	{ID: OverlayPerf, Name: "Performance", Description: "Frame phase timings",
		Key: rl.KeyP, KeyLabel: "P", Category: "debug", Exclusive: []OverlayID{OverlayTrends}},
}

// OverlayRegistry tracks which overlays are shown.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	index       map[OverlayID]int
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry holding the default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{
		index:   make(map[OverlayID]int),
		enabled: make(map[OverlayID]bool),
	}
	for _, desc := range defaultOverlays {
		r.Register(desc)
	}
	return r
}

// Register adds an overlay, or replaces one with the same ID.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if i, ok := r.index[desc.ID]; ok {
		r.descriptors[i] = desc
	} else {
		r.index[desc.ID] = len(r.descriptors)
		r.descriptors = append(r.descriptors, desc)
	}
	r.enabled[desc.ID] = desc.Default
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled sets an overlay's state. Enabling one turns off the overlays
// listed in its Exclusive set. Unknown IDs are ignored.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.Get(id)
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if !enabled {
		return
	}
	for _, other := range desc.Exclusive {
		r.enabled[other] = false
	}
}

// IsEnabled returns whether an overlay is shown.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns an overlay descriptor by ID.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return OverlayDescriptor{}, false
	}
	return r.descriptors[i], true
}

// ByCategory returns the overlays of one category in registration order.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var out []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			out = append(out, desc)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	for _, desc := range r.descriptors {
		if !slices.Contains(cats, desc.Category) {
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// Len returns the number of registered overlays.
func (r *OverlayRegistry) Len() int {
	return len(r.descriptors)
}
