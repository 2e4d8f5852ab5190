package analytics

import "github.com/tbourn/chatlens/internal/domain"

// Aliases keep call sites short; the shapes live in domain.
type (
	Stats         = domain.Stats
	SenderCount   = domain.SenderCount
	SenderShare   = domain.SenderShare
	TimelinePoint = domain.TimelinePoint
	CategoryCount = domain.CategoryCount
	Heatmap       = domain.Heatmap
)
