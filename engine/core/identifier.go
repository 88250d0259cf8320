package core

import "fmt"

// Identifiers hands out native object names the way a driver does: zero is
// never a valid name and released names become available again.
type Identifiers struct {
	owners []interface{}
}

func NewIdentifiers(capacity int) *Identifiers {
	// slot 0 is reserved as the invalid name
	return &Identifiers{
		owners: make([]interface{}, 1, capacity+1),
	}
}

func (ids *Identifiers) Acquire(owner interface{}) uint32 {
	length := uint32(len(ids.owners))
	for i := uint32(1); i < length; i++ {
		// Existing free spot. Take it.
		if ids.owners[i] == nil {
			ids.owners[i] = owner
			return i
		}
	}

	// No existing free slots, push a new one.
	ids.owners = append(ids.owners, owner)
	return uint32(len(ids.owners) - 1)
}

// Owner returns whatever was registered with the id, or nil.
func (ids *Identifiers) Owner(id uint32) interface{} {
	if id == 0 || id >= uint32(len(ids.owners)) {
		return nil
	}
	return ids.owners[id]
}

func (ids *Identifiers) Release(id uint32) error {
	if id == 0 || id >= uint32(len(ids.owners)) {
		return fmt.Errorf("release of id %d out of range (max=%d): %w", id, len(ids.owners)-1, ErrUnknownIdentifier)
	}
	if ids.owners[id] == nil {
		return fmt.Errorf("release of id %d which is not live: %w", id, ErrUnknownIdentifier)
	}
	ids.owners[id] = nil
	return nil
}

// Live counts the ids currently owned.
func (ids *Identifiers) Live() int {
	n := 0
	for _, o := range ids.owners[1:] {
		if o != nil {
			n++
		}
	}
	return n
}
