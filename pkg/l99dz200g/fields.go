package l99dz200g

import (
	"fmt"
	"math/bits"
)

// Kind tells the accessors how a field may be used.
type Kind uint8

const (
	// ControlField is a writable bit range in a control register or CFR.
	ControlField Kind = iota
	// StatusFlag is a latched one-bit condition, cleared by read-and-clear
	// on its own register and mask.
	StatusFlag
	// StatusFlagClearElsewhere is a status flag whose clear is a list of
	// read-and-clear accesses, possibly to other registers.
	StatusFlagClearElsewhere
	// StatusValue is a read-only multi-bit value (counters, ADC readings, states).
	StatusValue
)

func (k Kind) String() string {
	switch k {
	case ControlField:
		return "control"
	case StatusFlag:
		return "flag"
	case StatusFlagClearElsewhere:
		return "flag(clear-elsewhere)"
	case StatusValue:
		return "value"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ClearOp is one read-and-clear access.
type ClearOp struct {
	Reg  Register
	Mask uint32
}

// Field describes where an Item lives.
type Field struct {
	Item  Item
	Name  string
	Reg   Register
	Mask  uint32 // in register position
	Pos   uint8
	Kind  Kind
	Clear []ClearOp
}

// Width is the number of bits in the field.
func (f Field) Width() int {
	return bits.OnesCount32(f.Mask)
}

// Max is the largest right-aligned value the field holds.
func (f Field) Max() uint32 {
	return f.Mask >> f.Pos
}

// Encode shifts a right-aligned value into register position.
func (f Field) Encode(v uint32) (uint32, error) {
	if v > f.Max() {
		return 0, fmt.Errorf("%w: %s holds 0..%d, got %d", ErrValueRange, f.Name, f.Max(), v)
	}
	return v << f.Pos, nil
}

// Decode extracts the right-aligned field value from register contents.
func (f Field) Decode(reg uint32) uint32 {
	return (reg & f.Mask) >> f.Pos
}

func (f Field) clears() []ClearOp {
	if f.Kind == StatusFlagClearElsewhere {
		return f.Clear
	}
	return []ClearOp{{f.Reg, f.Mask}}
}

// Lookup returns the table entry for item.
func Lookup(item Item) (Field, bool) {
	if item == itemNone || item >= numItems {
		return Field{}, false
	}
	return fields[item], true
}

// Items returns every item of the given kind in table order.
func Items(kinds ...Kind) []Item {
	var items []Item
	for i := itemNone + 1; i < numItems; i++ {
		if len(kinds) == 0 {
			items = append(items, i)
			continue
		}
		for _, k := range kinds {
			if fields[i].Kind == k {
				items = append(items, i)
				break
			}
		}
	}
	return items
}

func (i Item) String() string {
	if f, ok := Lookup(i); ok {
		return f.Name
	}
	return fmt.Sprintf("Item(%d)", uint16(i))
}

func lookupKind(item Item, want ...Kind) (Field, error) {
	f, ok := Lookup(item)
	if !ok {
		return Field{}, invalid("item", item)
	}
	for _, k := range want {
		if f.Kind == k {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %s is a %s field", ErrInvalidSelector, f.Name, f.Kind)
}

// SetField writes a right-aligned value into a control field with a
// read-modify-write of its register.
func (d *Device) SetField(item Item, value uint32) error {
	d.mu.Lock()
	err := d.setField(item, value)
	d.mu.Unlock()
	return err
}

func (d *Device) setField(item Item, value uint32) error {
	f, err := lookupKind(item, ControlField)
	if err != nil {
		return err
	}
	v, err := f.Encode(value)
	if err != nil {
		return err
	}
	return d.modifyControl(f.Reg, f.Mask, v)
}

// SetFlag sets or clears a one-bit control field.
func (d *Device) SetFlag(item Item, on bool) error {
	var v uint32
	if on {
		v = 1
	}
	return d.SetField(item, v)
}

// Field reads any table entry and returns it right-aligned.
func (d *Device) Field(item Item) (uint32, error) {
	d.mu.Lock()
	v, err := d.field(item)
	d.mu.Unlock()
	return v, err
}

func (d *Device) field(item Item) (uint32, error) {
	f, ok := Lookup(item)
	if !ok {
		return 0, invalid("item", item)
	}
	reg, err := d.readRegister(f.Reg)
	if err != nil {
		return 0, err
	}
	return f.Decode(reg), nil
}

// Flag reads a status flag. A set bit reports Fail, a clear bit OK.
// Unknown items return an ErrInvalidSelector error rather than Fail.
func (d *Device) Flag(item Item) (Status, error) {
	d.mu.Lock()
	s, err := d.flag(item)
	d.mu.Unlock()
	return s, err
}

func (d *Device) flag(item Item) (Status, error) {
	f, err := lookupKind(item, StatusFlag, StatusFlagClearElsewhere)
	if err != nil {
		return OK, err
	}
	reg, err := d.readRegister(f.Reg)
	if err != nil {
		return OK, err
	}
	return statusOf(reg&f.Mask != 0), nil
}

// CheckFlag returns a *FaultError when item is asserted.
func (d *Device) CheckFlag(item Item) error {
	s, err := d.Flag(item)
	if err != nil {
		return err
	}
	if s == Fail {
		return &FaultError{Item: item}
	}
	return nil
}

// ClearFlag clears one latched status flag.
func (d *Device) ClearFlag(item Item) error {
	f, err := lookupKind(item, StatusFlag, StatusFlagClearElsewhere)
	if err != nil {
		return err
	}
	d.mu.Lock()
	err = d.clearOps(f.clears())
	d.mu.Unlock()
	return err
}

// ClearGroup clears every flag of a status group, register by register
// in the group's order.
func (d *Device) ClearGroup(g Group) error {
	ops, ok := groups[g]
	if !ok {
		return invalid("group", g)
	}
	d.mu.Lock()
	err := d.clearOps(ops)
	d.mu.Unlock()
	return err
}

func (d *Device) clearOps(ops []ClearOp) error {
	for _, op := range ops {
		if _, err := d.readClear(op.Reg, op.Mask); err != nil {
			return err
		}
	}
	return nil
}

// Faults reads the registers behind items once each and returns the
// asserted flags.
func (d *Device) Faults(items ...Item) ([]Item, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.faults(items)
}

func (d *Device) faults(items []Item) ([]Item, error) {
	var (
		cache    = make(map[Register]uint32)
		asserted []Item
	)
	for _, item := range items {
		f, err := lookupKind(item, StatusFlag, StatusFlagClearElsewhere)
		if err != nil {
			return asserted, err
		}
		reg, ok := cache[f.Reg]
		if !ok {
			if reg, err = d.readRegister(f.Reg); err != nil {
				return asserted, err
			}
			cache[f.Reg] = reg
			if _, err = d.checkWatchdog(); err != nil {
				return asserted, err
			}
		}
		if reg&f.Mask != 0 {
			asserted = append(asserted, item)
		}
	}
	return asserted, nil
}
