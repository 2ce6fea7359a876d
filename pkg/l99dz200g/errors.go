package l99dz200g

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidSelector is returned when an item, group, output or channel
	// identifier is not recognized by the operation it was passed to.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrRegisterNotWritable is returned for write and read-modify-write
	// transactions aimed at a status or unmapped register.
	ErrRegisterNotWritable = errors.New("register is not writable")

	// ErrValueRange is returned when a value does not fit its field.
	ErrValueRange = errors.New("value out of range")

	// ErrShortTransfer is returned when the transport moved fewer bytes than a full frame.
	ErrShortTransfer = fmt.Errorf("short spi transfer: %w", io.ErrUnexpectedEOF)

	// ErrNotInitialized is returned when the device has no transport.
	ErrNotInitialized = errors.New("device not initialized")
)

// TransportError wraps a physical layer failure. The register contents
// affected by the failed transaction are unknown.
type TransportError struct {
	Op  Opcode
	Reg uint8
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("spi %s 0x%02X: %v", e.Op, e.Reg, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FaultError reports a status flag asserted by the device.
type FaultError struct {
	Item Item
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("device fault: %s", e.Item)
}

// IsFault reports whether err carries a device fault.
func IsFault(err error) bool {
	var fe *FaultError
	return errors.As(err, &fe)
}

// IsTransport reports whether err carries a physical layer failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func invalid(kind string, v any) error {
	return fmt.Errorf("%w: %s %v", ErrInvalidSelector, kind, v)
}
