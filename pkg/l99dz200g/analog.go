package l99dz200g

import "fmt"

// ThermalCluster selects one of the six on-die temperature sensors.
type ThermalCluster uint8

const (
	Cluster1 ThermalCluster = iota + 1
	Cluster2
	Cluster3
	Cluster4
	Cluster5
	Cluster6
)

var clusterItems = map[ThermalCluster]Item{
	Cluster1: SR7_TEMP_CL1,
	Cluster2: SR7_TEMP_CL2,
	Cluster3: SR8_TEMP_CL3,
	Cluster4: SR8_TEMP_CL4,
	Cluster5: SR9_TEMP_CL5,
	Cluster6: SR9_TEMP_CL6,
}

func (c ThermalCluster) String() string {
	return fmt.Sprintf("CL%d", uint8(c))
}

// SupplyPin selects a supply voltage measured by the device ADC.
type SupplyPin uint8

const (
	PinVS SupplyPin = iota
	PinVSReg
	PinVWU
)

var supplyItems = map[SupplyPin]Item{
	PinVS:    SR11_VS,
	PinVSReg: SR10_VSREG,
	PinVWU:   SR11_VWU,
}

func (p SupplyPin) String() string {
	switch p {
	case PinVS:
		return "VS"
	case PinVSReg:
		return "VSREG"
	case PinVWU:
		return "VWU"
	default:
		return fmt.Sprintf("SupplyPin(%d)", uint8(p))
	}
}

// sample reads item AnalogSamples times and returns the integer average.
// The watchdog is serviced after every read.
func (d *Device) sample(item Item) (uint32, error) {
	var sum uint32
	for i := 0; i < AnalogSamples; i++ {
		v, err := d.field(item)
		if err != nil {
			return 0, err
		}
		sum += v
		if _, err = d.checkWatchdog(); err != nil {
			return 0, err
		}
	}
	return sum / AnalogSamples, nil
}

// ThermalClusterTemp returns the averaged temperature of a thermal cluster
// in degrees Celsius.
func (d *Device) ThermalClusterTemp(c ThermalCluster) (float64, error) {
	item, ok := clusterItems[c]
	if !ok {
		return 0, invalid("thermal cluster", c)
	}

	d.mu.Lock()
	avg, err := d.sample(item)
	d.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return ADCTemp(avg), nil
}

// PinVoltage returns the averaged voltage of a supply pin.
func (d *Device) PinVoltage(p SupplyPin) (float64, error) {
	item, ok := supplyItems[p]
	if !ok {
		return 0, invalid("supply pin", p)
	}

	d.mu.Lock()
	avg, err := d.sample(item)
	d.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return ADCVolts(avg), nil
}
