// Package model defines domain entities used by services and repositories.
package model

// Location is the geographic position of a label or note. Value type, no identity.
type Location struct {
	Lat float64 // latitude, -90..90
	Lng float64 // longitude, -180..180
}

// Label is a named, colored map marker owned by exactly one user.
// ID is assigned by the remote store on creation and never changes.
type Label struct {
	ID       string
	Name     string
	Color    string // display color, e.g. "#ffffff"
	Location Location
}

// Note is a geolocated memo. LabelID is a weak reference to a Label of the
// same owner; empty means unlabeled. The referenced Label may no longer
// exist — that is not an error, grouping treats such notes separately.
type Note struct {
	ID            string
	Content       string
	NotifyEnabled bool
	LabelID       string // "" = unlabeled
	Location      Location
	UpdatedAt     int64 // epoch seconds, assigned by the store on every write
}

// User is an account record. ID is assigned by the remote store on creation.
type User struct {
	ID        string
	Nickname  string
	CreatedAt int64 // epoch seconds, assigned by the store on creation
}

// NoteListItem is one group of notes sharing a labelID. Label is nil both
// for the unlabeled group and for a group whose label was deleted; the two
// are distinguished by the LabelID retained on the grouped notes.
type NoteListItem struct {
	Label *Label
	Notes []Note
}

// NoteList is the derived, per-owner grouped view of all notes.
// Invariant: Count equals the total number of notes across all groups.
type NoteList struct {
	Count  int
	Groups []NoteListItem
}
