package gpu

import (
	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// Object is the ownership core shared by every wrapper.
type Object struct {
	id      uint32
	flags   metadata.ObjectFlag
	kind    string
	deleter func(uint32) error
}

func newObject(kind string, id uint32, flags metadata.ObjectFlag, deleter func(uint32) error) Object {
	return Object{id: id, flags: flags, kind: kind, deleter: deleter}
}

// ID returns the native name, or metadata.InvalidID once released or destroyed.
func (o *Object) ID() uint32 {
	return o.id
}

func (o *Object) Flags() metadata.ObjectFlag {
	return o.flags
}

// Owned reports whether Destroy would delete the native object.
func (o *Object) Owned() bool {
	return o.id != metadata.InvalidID && o.flags.Has(metadata.ObjectFlagDeleteOnDestruction)
}

// Release returns the native name and clears ownership without deleting
// anything. A second call returns metadata.InvalidID.
func (o *Object) Release() uint32 {
	id := o.id
	if id != metadata.InvalidID {
		core.LogDebug("%s %d released", o.kind, id)
	}
	o.id = metadata.InvalidID
	o.flags = 0
	return id
}

// Destroy deletes the native object if this wrapper owns it. Released and
// borrowed wrappers are left untouched. Calling it twice is a no-op.
func (o *Object) Destroy() error {
	id, owned := o.id, o.Owned()
	o.id = metadata.InvalidID
	o.flags = 0
	if !owned {
		return nil
	}
	core.LogDebug("%s %d destroyed", o.kind, id)
	return o.deleter(id)
}
