package debugui

import (
	"github.com/plus3/skiff/ecs"
)

type ObjectBrowser struct {
	cache             *ObjectBrowserCache
	selectedID        ecs.UUID
	filterText        string
	collidableOnly    bool
	maxObjectsPerPage int
	currentPage       int
}

type ComponentInspector struct {
	selectedID ecs.UUID
}

type PassStatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
