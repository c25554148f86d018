package models

// Occupancy represents how full a calendar day is
type Occupancy string

const (
	// OccupancyEmpty indicates no slots are booked on the day
	OccupancyEmpty Occupancy = "empty"

	// OccupancyHalf indicates at least one but not all slots are booked
	OccupancyHalf Occupancy = "half"

	// OccupancyFull indicates every slot in the daily window is booked
	OccupancyFull Occupancy = "full"
)

// TileMarker represents the visual marker drawn on a month-view day tile
type TileMarker string

const (
	// TileMarkerNone indicates the tile gets no marker
	TileMarkerNone TileMarker = "none"

	// TileMarkerPartial indicates the tile is highlighted as partially booked
	TileMarkerPartial TileMarker = "partial"

	// TileMarkerFull indicates the tile is highlighted as fully booked
	TileMarkerFull TileMarker = "full"
)
