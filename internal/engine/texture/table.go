// Package texture decodes scene textures and tracks the tag-to-slot table
// used to address them from draw calls.
package texture

import (
	"errors"
	"fmt"
)

// MaxSlots is the number of texture units available to scene textures.
const MaxSlots = 16

var (
	// ErrTableFull is returned when all MaxSlots slots are taken.
	ErrTableFull = errors.New("texture table full")
	// ErrDuplicateTag is returned when a tag is registered twice.
	ErrDuplicateTag = errors.New("texture tag already registered")
)

// Slot pairs a tag with a backend texture ID.
type Slot struct {
	Tag string
	ID  uint32
}

// Table is a fixed-capacity list of texture slots. Slot i is bound to
// texture unit i, so registration order is significant.
type Table struct {
	slots  [MaxSlots]Slot
	loaded int
}

// Register stores id under tag in the next free slot and returns the slot.
func (t *Table) Register(tag string, id uint32) (int, error) {
	if t.FindSlot(tag) >= 0 {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	if t.loaded >= MaxSlots {
		return -1, fmt.Errorf("%w: cannot register %q", ErrTableFull, tag)
	}
	slot := t.loaded
	t.slots[slot] = Slot{Tag: tag, ID: id}
	t.loaded++
	return slot, nil
}

// FindID returns the texture ID registered under tag.
func (t *Table) FindID(tag string) (uint32, bool) {
	if i := t.FindSlot(tag); i >= 0 {
		return t.slots[i].ID, true
	}
	return 0, false
}

// FindSlot returns the slot index of tag, or -1 if it is not loaded.
// Only loaded slots are scanned; the first match wins.
func (t *Table) FindSlot(tag string) int {
	for i := 0; i < t.loaded; i++ {
		if t.slots[i].Tag == tag {
			return i
		}
	}
	return -1
}

// Len returns the number of loaded slots.
func (t *Table) Len() int {
	return t.loaded
}

// Slots returns a copy of the loaded slots in unit order.
func (t *Table) Slots() []Slot {
	return append([]Slot(nil), t.slots[:t.loaded]...)
}

// Reset forgets every slot.
func (t *Table) Reset() {
	t.slots = [MaxSlots]Slot{}
	t.loaded = 0
}
