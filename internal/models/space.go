package models

import "time"

// Room zones: the eight compass directions plus "center".
const (
	ZoneNorth     = "north"
	ZoneNortheast = "northeast"
	ZoneEast      = "east"
	ZoneSoutheast = "southeast"
	ZoneSouth     = "south"
	ZoneSouthwest = "southwest"
	ZoneWest      = "west"
	ZoneNorthwest = "northwest"
	ZoneCenter    = "center"
)

// Zones lists all valid room zones.
var Zones = []string{
	ZoneNorth, ZoneNortheast, ZoneEast, ZoneSoutheast,
	ZoneSouth, ZoneSouthwest, ZoneWest, ZoneNorthwest,
	ZoneCenter,
}

// IsValidZone reports whether z is one of the nine room zones.
func IsValidZone(z string) bool {
	for _, zone := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// SpaceDB represents a space row in the database
type SpaceDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`           // Owning user
	PlotSize    string    `json:"plot_size" db:"plot_size"`       // Free text with unit, e.g. "30x40 ft"
	RoomType    string    `json:"room_type" db:"room_type"`       // Apartment, house, ...
	Orientation string    `json:"orientation" db:"orientation"`   // Facing direction of the space
	FloorNumber int       `json:"floor_number" db:"floor_number"` // 0 for ground floor
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// RoomDB represents a room row in the database
type RoomDB struct {
	ID       int64  `json:"id" db:"id"`               // Primary key
	SpaceID  int64  `json:"space_id" db:"space_id"`   // Owning space
	RoomName string `json:"room_name" db:"room_name"` // Free-text name
	RoomZone string `json:"room_zone" db:"room_zone"` // One of the nine zones
}

// RoomInput is a room entry as submitted by a client, before persistence.
type RoomInput struct {
	Name string `json:"name" validate:"notblank"`
	Zone string `json:"zone" validate:"required,room_zone"`
}

// SpaceWithRooms is a space together with its full room set, as returned by
// the read side.
type SpaceWithRooms struct {
	SpaceDB
	RoomCount int      `json:"room_count"`
	Rooms     []RoomDB `json:"rooms"`
}
