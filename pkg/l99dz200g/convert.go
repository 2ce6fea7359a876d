package l99dz200g

import "fmt"

// PWMDutyCode maps a 0..100 percent duty cycle onto the 10-bit duty
// register, rounding down: 50% is 511 and 100% is 1023.
func PWMDutyCode(percent uint8) (uint32, error) {
	if percent > 100 {
		return 0, fmt.Errorf("%w: duty cycle %d%% above 100%%", ErrValueRange, percent)
	}
	return uint32(percent) * PWMDutyMax / 100, nil
}

// PWMDutyPercent is the inverse of PWMDutyCode, rounded down.
func PWMDutyPercent(code uint32) uint8 {
	if code > PWMDutyMax {
		code = PWMDutyMax
	}
	return uint8(code * 100 / PWMDutyMax)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v > hi:
		return hi
	case v < lo:
		return lo
	default:
		return v
	}
}

// VSCode converts a supply-referenced voltage to the 10-bit ADC scale used
// by the VLED and early-warning thresholds. The voltage is clamped to 0..limit.
func VSCode(volts, limit float64) uint32 {
	return uint32((clamp(volts, 0, limit) * 1024) / VAINVS)
}

// ADCVolts converts a 10-bit supply ADC reading to volts.
func ADCVolts(code uint32) float64 {
	return VAINVS * float64(code) / 1024
}

// ADCTemp converts a 10-bit thermal cluster reading to degrees Celsius.
func ADCTemp(code uint32) float64 {
	return 350.0 - (0.488 * float64(code))
}

// ECVMax returns the electrochromic control ceiling for the CFR ECV_HV
// setting.
func ECVMax(high bool) float64 {
	if high {
		return ECVHighMax
	}
	return ECVLowMax
}

// ECVCode converts a target electrochromic voltage to the 6-bit EC_VALUE.
func ECVCode(volts float64, high bool) uint32 {
	vmax, full := ECVMax(high), fields[CR11_EC_VALUE].Max()
	return uint32(uint8((clamp(volts, 0, vmax)*float64(full))/vmax)) & full
}

// ECVVolts converts an EC_VALUE back to volts.
func ECVVolts(code uint32, high bool) float64 {
	full := fields[CR11_EC_VALUE].Max()
	return ECVMax(high) * float64(code&full) / float64(full)
}

// SlewCode maps a slew-rate current percentage to the 5-bit HB_SLEW value.
// Anything at or below 100/SlewMax percent is the slowest setting.
func SlewCode(percent uint8) uint8 {
	switch {
	case percent >= 100:
		return SlewMax - 1
	case percent > 100/SlewMax:
		return uint8((float64(SlewMax)*float64(percent))/100) - 1
	default:
		return 0
	}
}
