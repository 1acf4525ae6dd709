package model

// Theme is a bookable escape room.  It corresponds to a row in the
// `themes` table.  Themes are created and deleted by admins; there is
// no update.
type Theme struct {
	ID          uint64 // themes.id
	Name        string // themes.name
	Description string // themes.description
	Thumbnail   string // themes.thumbnail
}
