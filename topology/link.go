package topology

import "github.com/google/uuid"

// Link is an undirected binding between two named interfaces on two
// devices. It may reference a non-existent device or interface — the
// model does not enforce referential integrity on construction, so
// every consumer must handle missing lookups gracefully.
type Link struct {
	ID         string
	Device1ID  string
	Interface1 string
	Device2ID  string
	Interface2 string
	Bandwidth  int
	Delay      int
}

// NewLink constructs a link with the default bandwidth/delay the UI
// layer assigns to a freshly drawn cable.
func NewLink(device1ID, interface1, device2ID, interface2 string) *Link {
	return &Link{
		ID:         uuid.NewString(),
		Device1ID:  device1ID,
		Interface1: interface1,
		Device2ID:  device2ID,
		Interface2: interface2,
		Bandwidth:  1000,
		Delay:      1,
	}
}
