package l99dz200g

import "fmt"

// WriteControl writes v to a control register.
func (d *Device) WriteControl(reg Register, v uint32) error {
	d.mu.Lock()
	err := d.writeControl(reg, v)
	d.mu.Unlock()
	return err
}

// ReadRegister reads the 24-bit contents of any register.
func (d *Device) ReadRegister(reg Register) (uint32, error) {
	d.mu.Lock()
	v, err := d.readRegister(reg)
	d.mu.Unlock()
	return v, err
}

// ModifyControl replaces the bits of reg selected by mask with the same
// bits of data. It is a read followed by a write; if the read fails
// nothing is written.
func (d *Device) ModifyControl(reg Register, mask, data uint32) error {
	d.mu.Lock()
	err := d.modifyControl(reg, mask, data)
	d.mu.Unlock()
	return err
}

// ReadClear clears the latched bits of reg selected by mask and returns
// the contents reported by the device during the same transaction.
func (d *Device) ReadClear(reg Register, mask uint32) (uint32, error) {
	d.mu.Lock()
	v, err := d.readClear(reg, mask)
	d.mu.Unlock()
	return v, err
}

// ReadROM reads one device information byte.
func (d *Device) ReadROM(addr uint8) (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if addr > addrMask {
		return 0, invalid("rom address", fmt.Sprintf("0x%02X", addr))
	}

	n := d.cfg.ROMFrameSize
	tx, rx := make([]byte, n), make([]byte, n)
	tx[0] = EncodeHeader(OpDeviceInfo, addr)

	if err := d.exchange(OpDeviceInfo, addr, tx, rx); err != nil {
		return 0, err
	}
	return rx[n-1], nil
}

// ResetControlRegisters returns every control register to its power-on
// default. The device treats a device information access to the CFR
// address as the reset command.
func (d *Device) ResetControlRegisters() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.transact(OpDeviceInfo, uint8(CFR), 0); err != nil {
		return err
	}
	d.regLW = [NumRegisters]uint32{}
	d.log.Info().Msg("control registers reset")
	return nil
}

// ClearAllStatus clears every latched status register with one
// read-and-clear access to the CFR address.
func (d *Device) ClearAllStatus() error {
	d.mu.Lock()
	_, err := d.readClear(CFR, 0)
	d.mu.Unlock()
	return err
}

func (d *Device) LastReadRegister(reg Register) uint32 {
	d.mu.RLock()
	v := d.regLR[reg&addrMask]
	d.mu.RUnlock()
	return v
}

func (d *Device) LastWrittenRegister(reg Register) uint32 {
	d.mu.RLock()
	v := d.regLW[reg&addrMask]
	d.mu.RUnlock()
	return v
}

// Registers returns the last read contents of every mapped register.
func (d *Device) Registers() map[Register]uint32 {
	d.mu.RLock()
	r := make(map[Register]uint32, len(AllRegisters))
	for _, reg := range AllRegisters {
		r[reg] = d.regLR[reg]
	}
	d.mu.RUnlock()
	return r
}

func (d *Device) ReadAllRegisters() (registers map[Register]uint32, err error) {
	d.mu.Lock()
	err = d.readAllRegisters()
	if err == nil {
		registers = make(map[Register]uint32, len(AllRegisters))
		for _, reg := range AllRegisters {
			registers[reg] = d.regLR[reg]
		}
	}
	d.mu.Unlock()
	return
}

// readAllRegisters services the watchdog between reads; 35 transactions
// can outlast the shortest trigger interval on a slow bus.
func (d *Device) readAllRegisters() error {
	for _, reg := range AllRegisters {
		if _, err := d.readRegister(reg); err != nil {
			return err
		}
		if _, err := d.checkWatchdog(); err != nil {
			return err
		}
	}
	return nil
}

func validAddress(reg Register) error {
	if reg >= NumRegisters {
		return invalid("register address", fmt.Sprintf("0x%02X", uint8(reg)))
	}
	return nil
}

func (d *Device) writable(reg Register) error {
	if err := validAddress(reg); err != nil {
		return err
	}
	if !d.cfg.SkipWritableCheck && !IsWritable(reg) {
		return fmt.Errorf("%w: %s", ErrRegisterNotWritable, reg)
	}
	return nil
}

// writeControl writes a single register [reg], with the given value.
func (d *Device) writeControl(reg Register, v uint32) error {
	if err := d.writable(reg); err != nil {
		return err
	}

	v &= FullRegMask
	if _, err := d.transact(OpWrite, uint8(reg), v); err != nil {
		return err
	}

	d.regLW[reg] = v
	return nil
}

// readRegister reads a single register [reg].
func (d *Device) readRegister(reg Register) (uint32, error) {
	if err := validAddress(reg); err != nil {
		return 0, err
	}

	v, err := d.transact(OpRead, uint8(reg), 0)
	if err != nil {
		return 0, err
	}

	d.regLR[reg] = v
	return v, nil
}

func (d *Device) modifyControl(reg Register, mask, data uint32) error {
	if err := d.writable(reg); err != nil {
		return err
	}

	cur, err := d.readRegister(reg)
	if err != nil {
		return fmt.Errorf("modify %s: %w", reg, err)
	}

	return d.writeControl(reg, (cur&^mask)|(data&mask))
}

// toggleControl flips the bits of reg selected by mask.
func (d *Device) toggleControl(reg Register, mask uint32) error {
	if err := d.writable(reg); err != nil {
		return err
	}

	cur, err := d.readRegister(reg)
	if err != nil {
		return fmt.Errorf("toggle %s: %w", reg, err)
	}

	return d.writeControl(reg, cur^mask)
}

func (d *Device) readClear(reg Register, mask uint32) (uint32, error) {
	if err := validAddress(reg); err != nil {
		return 0, err
	}

	v, err := d.transact(OpReadClear, uint8(reg), mask)
	if err != nil {
		return 0, err
	}

	d.regLR[reg] = v
	return v, nil
}
