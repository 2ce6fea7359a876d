package l99dz200g

import (
	"errors"
	"fmt"
)

func (d *Device) setCSLow() error {
	if d.cfg.ChipSelect != SoftwareCS {
		return nil
	}
	return d.spi.SetCS(false)
}

func (d *Device) setCSHigh() error {
	if d.cfg.ChipSelect != SoftwareCS {
		return nil
	}
	return d.spi.SetCS(true)
}

// exchange performs one chip select bracketed transfer and caches the
// global status byte from rx[0]. rx must be as long as tx.
func (d *Device) exchange(op Opcode, addr uint8, tx, rx []byte) error {
	if d.spi == nil {
		return ErrNotInitialized
	}

	if err := d.setCSLow(); err != nil {
		return d.transportErr(op, addr, err)
	}

	n, err := d.spi.Exchange(tx, rx)
	if err == nil && n != len(tx) {
		err = fmt.Errorf("%w: expected %d bytes, got %d", ErrShortTransfer, len(tx), n)
	}

	if err = errors.Join(err, d.setCSHigh()); err != nil {
		return d.transportErr(op, addr, err)
	}

	d.gsb = GlobalStatus(rx[0])

	d.log.Trace().
		Stringer("op", op).
		Uint8("reg", addr).
		Hex("tx", tx).
		Hex("rx", rx).
		Stringer("gsb", d.gsb).
		Msg("spi")

	return nil
}

func (d *Device) transportErr(op Opcode, addr uint8, err error) error {
	d.log.Error().Err(err).Stringer("op", op).Uint8("reg", addr).Msg("spi exchange failed")
	return &TransportError{Op: op, Reg: addr, Err: err}
}

// transact sends one 4-byte frame and returns the 24-bit response payload.
func (d *Device) transact(op Opcode, addr uint8, payload uint32) (uint32, error) {
	tx, rx := getFrame(), getFrame()
	defer putFrame(tx)
	defer putFrame(rx)

	f := NewFrame(op, addr, payload)
	copy(tx, f[:])

	if err := d.exchange(op, addr, tx, rx); err != nil {
		return 0, err
	}

	return UnpackPayload(rx[1:]), nil
}
