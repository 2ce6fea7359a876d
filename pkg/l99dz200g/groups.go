package l99dz200g

import "fmt"

// Group is a set of related status flags cleared together.
type Group uint8

const (
	GroupSPI Group = iota
	GroupVoltage
	GroupShortCircuit
	GroupOpenLoad
	GroupThermalShutdown
	GroupThermalWarning
	GroupOvercurrent
	GroupBridgeA
	GroupBridgeB
	GroupLIN
	GroupCAN
	GroupForcedSleep
	GroupMisc
	GroupWakeUp
	GroupWatchdog
	GroupDeviceState
	numGroups
)

var groupNames = [numGroups]string{
	GroupSPI:             "spi",
	GroupVoltage:         "voltage",
	GroupShortCircuit:    "short-circuit",
	GroupOpenLoad:        "open-load",
	GroupThermalShutdown: "thermal-shutdown",
	GroupThermalWarning:  "thermal-warning",
	GroupOvercurrent:     "overcurrent",
	GroupBridgeA:         "bridge-a",
	GroupBridgeB:         "bridge-b",
	GroupLIN:             "lin",
	GroupCAN:             "can",
	GroupForcedSleep:     "forced-sleep",
	GroupMisc:            "misc",
	GroupWakeUp:          "wake-up",
	GroupWatchdog:        "watchdog",
	GroupDeviceState:     "device-state",
}

func (g Group) String() string {
	if g < numGroups {
		return groupNames[g]
	}
	return fmt.Sprintf("Group(%d)", uint8(g))
}

// Groups lists every status group.
func Groups() []Group {
	gs := make([]Group, 0, numGroups)
	for g := Group(0); g < numGroups; g++ {
		gs = append(gs, g)
	}
	return gs
}

// clearOf builds one read-and-clear access covering items, which must all
// live in reg.
func clearOf(reg Register, items ...Item) ClearOp {
	op := ClearOp{Reg: reg}
	for _, i := range items {
		if fields[i].Reg != reg {
			panic(fmt.Sprintf("%s is not in %s", fields[i].Name, reg))
		}
		op.Mask |= fields[i].Mask
	}
	return op
}

// groups orders the clears of each group. Registers are cleared in the
// listed sequence.
var groups = map[Group][]ClearOp{
	GroupSPI: {
		clearOf(SR2, SR2_SPI_INV_CMD),
	},
	GroupVoltage: {
		clearOf(SR2, SR2_VS_UV, SR2_VS_OV, SR2_VSREG_UV, SR2_VSREG_OV, SR2_VSREG_EW,
			SR2_V1_FAIL, SR2_V2_FAIL, SR2_V2_SC, SR2_CP_LOW),
		clearOf(SR1, SR1_V1_UV),
	},
	GroupShortCircuit: {
		clearOf(SR4, SR4_OUT1H_SHORT, SR4_OUT1L_SHORT, SR4_OUT2H_SHORT, SR4_OUT2L_SHORT,
			SR4_OUT3H_SHORT, SR4_OUT3L_SHORT, SR4_OUT6H_SHORT, SR4_OUT6L_SHORT),
		clearOf(SR5, SR5_DS_MON_HEAT),
	},
	GroupOpenLoad: {
		clearOf(SR5, SR5_OUT1H_OL, SR5_OUT1L_OL, SR5_OUT2H_OL, SR5_OUT2L_OL, SR5_OUT3H_OL,
			SR5_OUT3L_OL, SR5_OUT6H_OL, SR5_OUT6L_OL, SR5_OUT7_OL, SR5_OUT8_OL,
			SR5_OUT9_OL, SR5_OUT10_OL, SR5_OUT13_OL, SR5_OUT14_OL, SR5_OUT15_OL,
			SR5_OUTGH_OL, SR5_OUTECV_OL),
	},
	GroupThermalShutdown: {
		clearOf(SR1, SR1_TSD2),
		clearOf(SR6, SR6_TSD_CL1, SR6_TSD_CL2, SR6_TSD_CL3, SR6_TSD_CL4, SR6_TSD_CL5, SR6_TSD_CL6),
	},
	GroupThermalWarning: {
		clearOf(SR6, SR6_TW_CL1, SR6_TW_CL2, SR6_TW_CL3, SR6_TW_CL4, SR6_TW_CL5, SR6_TW_CL6),
		clearOf(SR2, SR2_TW),
	},
	GroupOvercurrent: {
		clearOf(SR3, SR3_OUT1H_OCTHX, SR3_OUT1L_OCTHX, SR3_OUT2H_OCTHX, SR3_OUT2L_OCTHX,
			SR3_OUT3H_OCTHX, SR3_OUT3L_OCTHX, SR3_OUT6H_OCTHX, SR3_OUT6L_OCTHX,
			SR3_OUT7_OCTHX, SR3_OUT8_OCTHX, SR3_OUT9_OCTHX, SR3_OUT10_OCTHX,
			SR3_OUT13_OCTHX, SR3_OUT14_OCTHX, SR3_OUT15_OCTHX,
			SR3_LSA_FSO_OC, SR3_LSB_FSO_OC),
		clearOf(SR5, SR5_ECV_OC),
	},
	GroupBridgeA: {
		clearOf(SR2, SR2_DS_MON_LS1_A, SR2_DS_MON_LS2_A, SR2_DS_MON_HS1_A, SR2_DS_MON_HS2_A),
	},
	GroupBridgeB: {
		clearOf(SR3, SR3_DS_MON_LS1_B, SR3_DS_MON_LS2_B, SR3_DS_MON_HS1_B, SR3_DS_MON_HS2_B),
	},
	GroupLIN: {
		clearOf(SR2, SR2_LIN_PERM_REC, SR2_LIN_TXD_DOM, SR2_LIN_PERM_DOM),
	},
	GroupCAN: {
		clearOf(SR2, SR2_CAN_SUP_LOW, SR2_CAN_TXD_DOM, SR2_CAN_PERM_DOM, SR2_CAN_PERM_REC, SR2_CAN_RXD_REC),
		clearOf(SR12, SR12_CANTO),
	},
	GroupForcedSleep: {
		clearOf(SR1, SR1_F_SLEEP_WDC, SR1_F_SLEEP_TSD),
	},
	GroupMisc: {
		clearOf(SR1, SR1_SGND_LOSS, SR1_VSPOR),
	},
	GroupWakeUp: {
		clearOf(SR1, SR1_WK_TIMER, SR1_WK_LIN, SR1_WK_CAN, SR1_WK_WU, SR1_WK_VS_OV),
		clearOf(SR12, SR12_CAN_WUP),
	},
	GroupWatchdog: {
		clearOf(SR1, SR1_WD_FAIL),
	},
	GroupDeviceState: {
		clearOf(SR1, SR1_DEV_STATE),
	},
}

// GroupClears returns a copy of the ordered clears for g.
func GroupClears(g Group) ([]ClearOp, bool) {
	ops, ok := groups[g]
	if !ok {
		return nil, false
	}
	return append([]ClearOp(nil), ops...), true
}
