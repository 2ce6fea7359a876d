package l99dz200g

// Item names one bit field of the register map. Names follow the
// datasheet: register, then field.
type Item uint16

// Register fields
//
//goland:noinspection GoSnakeCaseUsage
const (
	itemNone Item = iota
	// CR1
	CR1_WU_EN
	CR1_WU_PU
	CR1_WU_FILTER
	CR1_TMR_NINT_SEL
	CR1_TMR_NINT_EN
	CR1_LIN_WU_EN
	CR1_CAN_WU_EN
	CR1_CAN_TOUT_IRQ
	CR1_CAN_RXEN
	CR1_CAN_TXEN
	CR1_CAN_TRXRDY
	CR1_HENA
	CR1_HENB
	CR1_V2_MODE
	CR1_STBY
	CR1_TRIG

	// CR2
	CR2_T1_RESTART
	CR2_T1_DIR
	CR2_T1_ON
	CR2_T1_PER
	CR2_T2_RESTART
	CR2_T2_DIR
	CR2_T2_ON
	CR2_T2_PER
	CR2_LIN_RX_ONLY
	CR2_LIN_TXD_TO_EN
	CR2_CAN_LOOP_EN
	CR2_CAN_PNW_EN
	CR2_V1_RST_LEV
	CR2_WD_TIME

	// CR3
	CR3_VSREG_LOCK
	CR3_VS_LOCK
	CR3_VSREG_OVSHD
	CR3_VSREG_UVSHD
	CR3_VS_OVSHD
	CR3_VS_UVSHD
	CR3_VSREG_EW

	// CR4
	CR4_HS_OUT1
	CR4_LS_OUT1
	CR4_HS_OUT2
	CR4_LS_OUT2
	CR4_HS_OUT3
	CR4_LS_OUT3
	CR4_HS_OUT6
	CR4_LS_OUT6

	// CR5
	CR5_HS_OUT7
	CR5_HS_OUT8
	CR5_HS_OUT10
	CR5_GH

	// CR6
	CR6_HS_OUT9
	CR6_HS_OUT13
	CR6_HS_OUT14
	CR6_HS_OUT15

	// CR7
	CR7_OUT1_OCR
	CR7_OUT2_OCR
	CR7_OUT3_OCR
	CR7_OUT6_OCR
	CR7_OUT7_OCR
	CR7_OUT8_OCR
	CR7_OUT15_OCR
	CR7_OUT1_SHORT
	CR7_OUT2_SHORT
	CR7_OUT3_SHORT
	CR7_OUT6_SHORT
	CR7_CM_DIR
	CR7_CM_SEL

	// CR8
	CR8_OUT1_OCR_THX_EN
	CR8_OUT2_OCR_THX_EN
	CR8_OUT3_OCR_THX_EN
	CR8_OUT6_OCR_THX_EN
	CR8_OUT7_OCR_THX_EN
	CR8_OUT8_OCR_THX_EN
	CR8_OUT15_OCR_THX_EN
	CR8_OUT7_OCR_TON
	CR8_OUT8_OCR_TON
	CR8_OUT15_OCR_TON
	CR8_OUT1236_OCR_TON
	CR8_OUT7_OCR_FREQ
	CR8_OUT8_OCR_FREQ
	CR8_OUT15_OCR_FREQ
	CR8_OUT1236_OCR_FREQ

	// CR9
	CR9_OUT8_RDSON
	CR9_OUT7_RDSON
	CR9_OUT1_6_RDSON
	CR9_OUT9_CCM_EN
	CR9_OUT8_CCM_EN
	CR9_OUT7_CCM_EN
	CR9_OUT15_OL
	CR9_OUT14_OL
	CR9_OUT13_OL
	CR9_OUT10_OL
	CR9_OUT9_OL
	CR9_OUT15_OC
	CR9_OUT14_OC
	CR9_OUT13_OC
	CR9_OUT10_OC
	CR9_OUT9_OC

	// CR10
	CR10_HB_DS_DIAG
	CR10_HB_A_DIR
	CR10_HB_B_SD2
	CR10_HB_B_SDS2
	CR10_HB_B_SD1
	CR10_HB_B_SDS1
	CR10_HB_A_SD2
	CR10_HB_A_SDS2
	CR10_HB_A_SD1
	CR10_HB_A_SDS1
	CR10_HB_CCPT
	CR10_HB_OLTH_HI
	CR10_HB_OLH1L2
	CR10_HB_OLH2L1
	CR10_HB_SLEW

	// CR11
	CR11_GHOL_EN
	CR11_GH_TH
	CR11_ECV_LS
	CR11_ECV_OCR
	CR11_EC_ON
	CR11_EC_VALUE

	// CR12
	CR12_PWM1_FREQ
	CR12_PWM2_FREQ
	CR12_PWM3_FREQ
	CR12_PWM4_FREQ
	CR12_PWM5_FREQ
	CR12_PWM6_FREQ
	CR12_PWM7_FREQ

	// CR13
	CR13_PWM1_DC
	CR13_PWM2_DC

	// CR14
	CR14_PWM3_DC
	CR14_PWM4_DC

	// CR15
	CR15_PWM5_DC
	CR15_PWM6_DC

	// CR16
	CR16_PWM7_DC

	// CR17
	CR17_OUT7_AUTOCOMP
	CR17_OUT7_VLED
	CR17_OUT8_AUTOCOMP
	CR17_OUT8_VLED

	// CR18
	CR18_OUT9_AUTOCOMP
	CR18_OUT9_VLED
	CR18_OUT10_AUTOCOMP
	CR18_OUT10_VLED

	// CR19
	CR19_OUT13_AUTOCOMP
	CR19_OUT13_VLED
	CR19_OUT14_AUTOCOMP
	CR19_OUT14_VLED

	// CR20
	CR20_OUT15_AUTOCOMP
	CR20_OUT15_VLED

	// CR21
	CR21_HB_DS_DIAG
	CR21_HB_B_DIR
	CR21_HB_CCPT
	CR21_HB_OLTH_HI
	CR21_HB_OLH1L2
	CR21_HB_OLH2L1
	CR21_HB_SLEW

	// CR22
	CR22_GEN_MODE_EN
	CR22_DEBUG_EXIT
	CR22_CP_OFF
	CR22_ICMP
	CR22_WDOG_EN

	// CFR
	CFR_WU_CFG
	CFR_LIN_WU_CFG
	CFR_LIN_HS_EN
	CFR_TSD_CFG
	CFR_ECV_HV
	CFR_V2_CFG
	CFR_ICMP_CFG_EN
	CFR_WD_CFG_EN
	CFR_MASK_OL_HS
	CFR_MASK_OL_LS
	CFR_MASK_TW
	CFR_MASK_EC_OL
	CFR_MASK_OL
	CFR_MASK_SPIE
	CFR_MASK_PLE
	CFR_MASK_GW
	CFR_CP_OFF_EN
	CFR_CP_LOW_CFG
	CFR_CP_DITH_DIS
	CFR_FS_FORCED
	CFR_DM_HB_A
	CFR_DM_HB_B
	CFR_WDC

	// SR1
	SR1_VSPOR
	SR1_WD_FAIL
	SR1_F_SLEEP_WDC
	SR1_F_SLEEP_TSD
	SR1_TSD1
	SR1_TSD2
	SR1_DEV_STATE
	SR1_WDC_FAIL_CNT
	SR1_V1_RESTART_CNT
	SR1_V1_UV
	SR1_DEBUG_MODE
	SR1_WK_TIMER
	SR1_WK_LIN
	SR1_WK_CAN
	SR1_WK_WU
	SR1_SGND_LOSS
	SR1_WU_PIN_STATE
	SR1_WK_VS_OV

	// SR2
	SR2_VS_UV
	SR2_VS_OV
	SR2_VSREG_UV
	SR2_VSREG_OV
	SR2_VSREG_EW
	SR2_V1_FAIL
	SR2_V2_FAIL
	SR2_V2_SC
	SR2_TW
	SR2_CP_LOW
	SR2_SPI_CLK_CNT
	SR2_SPI_INV_CMD
	SR2_DS_MON_LS1_A
	SR2_DS_MON_LS2_A
	SR2_DS_MON_HS1_A
	SR2_DS_MON_HS2_A
	SR2_CAN_SUP_LOW
	SR2_CAN_TXD_DOM
	SR2_CAN_PERM_DOM
	SR2_CAN_PERM_REC
	SR2_CAN_RXD_REC
	SR2_LIN_PERM_REC
	SR2_LIN_TXD_DOM
	SR2_LIN_PERM_DOM

	// SR3
	SR3_LSA_FSO_OC
	SR3_LSB_FSO_OC
	SR3_DS_MON_LS1_B
	SR3_DS_MON_LS2_B
	SR3_DS_MON_HS1_B
	SR3_DS_MON_HS2_B
	SR3_OUT15_OCTHX
	SR3_OUT14_OCTHX
	SR3_OUT13_OCTHX
	SR3_OUT10_OCTHX
	SR3_OUT9_OCTHX
	SR3_OUT8_OCTHX
	SR3_OUT7_OCTHX
	SR3_OUT6L_OCTHX
	SR3_OUT6H_OCTHX
	SR3_OUT3L_OCTHX
	SR3_OUT3H_OCTHX
	SR3_OUT2L_OCTHX
	SR3_OUT2H_OCTHX
	SR3_OUT1L_OCTHX
	SR3_OUT1H_OCTHX

	// SR4
	SR4_OUT6L_SHORT
	SR4_OUT6H_SHORT
	SR4_OUT3L_SHORT
	SR4_OUT3H_SHORT
	SR4_OUT2L_SHORT
	SR4_OUT2H_SHORT
	SR4_OUT1L_SHORT
	SR4_OUT1H_SHORT
	SR4_OUT15_OCRAL
	SR4_OUT8_OCRAL
	SR4_OUT7_OCRAL
	SR4_OUT6L_OCRAL
	SR4_OUT6H_OCRAL
	SR4_OUT3L_OCRAL
	SR4_OUT3H_OCRAL
	SR4_OUT2L_OCRAL
	SR4_OUT2H_OCRAL
	SR4_OUT1L_OCRAL
	SR4_OUT1H_OCRAL

	// SR5
	SR5_ECV_OC
	SR5_DS_MON_HEAT
	SR5_OUTECV_OL
	SR5_OUTGH_OL
	SR5_OUT15_OL
	SR5_OUT14_OL
	SR5_OUT13_OL
	SR5_OUT10_OL
	SR5_OUT9_OL
	SR5_OUT8_OL
	SR5_OUT7_OL
	SR5_OUT6L_OL
	SR5_OUT6H_OL
	SR5_OUT3L_OL
	SR5_OUT3H_OL
	SR5_OUT2L_OL
	SR5_OUT2H_OL
	SR5_OUT1L_OL
	SR5_OUT1H_OL

	// SR6
	SR6_WD_TMR_STATE
	SR6_ECV_VNR
	SR6_ECV_VHI
	SR6_TW_CL6
	SR6_TW_CL5
	SR6_TW_CL4
	SR6_TW_CL3
	SR6_TW_CL2
	SR6_TW_CL1
	SR6_TSD_CL6
	SR6_TSD_CL5
	SR6_TSD_CL4
	SR6_TSD_CL3
	SR6_TSD_CL2
	SR6_TSD_CL1

	// SR7
	SR7_TEMP_CL1
	SR7_TEMP_CL2

	// SR8
	SR8_TEMP_CL3
	SR8_TEMP_CL4

	// SR9
	SR9_TEMP_CL5
	SR9_TEMP_CL6

	// SR10
	SR10_VSREG

	// SR11
	SR11_VS
	SR11_VWU

	// SR12
	SR12_CAN_WUP
	SR12_CANTO
	SR12_CAN_SILENT

	numItems
)

var fields = [numItems]Field{
	CR1_WU_EN:        {CR1_WU_EN, "CR1_WU_EN", CR1, 0x400000, 22, ControlField, nil},
	CR1_WU_PU:        {CR1_WU_PU, "CR1_WU_PU", CR1, 0x100000, 20, ControlField, nil},
	CR1_WU_FILTER:    {CR1_WU_FILTER, "CR1_WU_FILTER", CR1, 0x030000, 16, ControlField, nil},
	CR1_TMR_NINT_SEL: {CR1_TMR_NINT_SEL, "CR1_TMR_NINT_SEL", CR1, 0x008000, 15, ControlField, nil},
	CR1_TMR_NINT_EN:  {CR1_TMR_NINT_EN, "CR1_TMR_NINT_EN", CR1, 0x004000, 14, ControlField, nil},
	CR1_LIN_WU_EN:    {CR1_LIN_WU_EN, "CR1_LIN_WU_EN", CR1, 0x002000, 13, ControlField, nil},
	CR1_CAN_WU_EN:    {CR1_CAN_WU_EN, "CR1_CAN_WU_EN", CR1, 0x001000, 12, ControlField, nil},
	CR1_CAN_TOUT_IRQ: {CR1_CAN_TOUT_IRQ, "CR1_CAN_TOUT_IRQ", CR1, 0x000800, 11, ControlField, nil},
	CR1_CAN_RXEN:     {CR1_CAN_RXEN, "CR1_CAN_RXEN", CR1, 0x000400, 10, ControlField, nil},
	CR1_CAN_TXEN:     {CR1_CAN_TXEN, "CR1_CAN_TXEN", CR1, 0x000200, 9, ControlField, nil},
	CR1_CAN_TRXRDY:   {CR1_CAN_TRXRDY, "CR1_CAN_TRXRDY", CR1, 0x000100, 8, ControlField, nil},
	CR1_HENA:         {CR1_HENA, "CR1_HENA", CR1, 0x000080, 7, ControlField, nil},
	CR1_HENB:         {CR1_HENB, "CR1_HENB", CR1, 0x000040, 6, ControlField, nil},
	CR1_V2_MODE:      {CR1_V2_MODE, "CR1_V2_MODE", CR1, 0x000030, 4, ControlField, nil},
	CR1_STBY:         {CR1_STBY, "CR1_STBY", CR1, 0x00000E, 1, ControlField, nil},
	CR1_TRIG:         {CR1_TRIG, "CR1_TRIG", CR1, 0x000001, 0, ControlField, nil},

	CR2_T1_RESTART:    {CR2_T1_RESTART, "CR2_T1_RESTART", CR2, 0x800000, 23, ControlField, nil},
	CR2_T1_DIR:        {CR2_T1_DIR, "CR2_T1_DIR", CR2, 0x400000, 22, ControlField, nil},
	CR2_T1_ON:         {CR2_T1_ON, "CR2_T1_ON", CR2, 0x380000, 19, ControlField, nil},
	CR2_T1_PER:        {CR2_T1_PER, "CR2_T1_PER", CR2, 0x070000, 16, ControlField, nil},
	CR2_T2_RESTART:    {CR2_T2_RESTART, "CR2_T2_RESTART", CR2, 0x008000, 15, ControlField, nil},
	CR2_T2_DIR:        {CR2_T2_DIR, "CR2_T2_DIR", CR2, 0x004000, 14, ControlField, nil},
	CR2_T2_ON:         {CR2_T2_ON, "CR2_T2_ON", CR2, 0x003800, 11, ControlField, nil},
	CR2_T2_PER:        {CR2_T2_PER, "CR2_T2_PER", CR2, 0x000700, 8, ControlField, nil},
	CR2_LIN_RX_ONLY:   {CR2_LIN_RX_ONLY, "CR2_LIN_RX_ONLY", CR2, 0x000080, 7, ControlField, nil},
	CR2_LIN_TXD_TO_EN: {CR2_LIN_TXD_TO_EN, "CR2_LIN_TXD_TO_EN", CR2, 0x000040, 6, ControlField, nil},
	CR2_CAN_LOOP_EN:   {CR2_CAN_LOOP_EN, "CR2_CAN_LOOP_EN", CR2, 0x000020, 5, ControlField, nil},
	CR2_CAN_PNW_EN:    {CR2_CAN_PNW_EN, "CR2_CAN_PNW_EN", CR2, 0x000010, 4, ControlField, nil},
	CR2_V1_RST_LEV:    {CR2_V1_RST_LEV, "CR2_V1_RST_LEV", CR2, 0x00000C, 2, ControlField, nil},
	CR2_WD_TIME:       {CR2_WD_TIME, "CR2_WD_TIME", CR2, 0x000003, 0, ControlField, nil},

	CR3_VSREG_LOCK:  {CR3_VSREG_LOCK, "CR3_VSREG_LOCK", CR3, 0x800000, 23, ControlField, nil},
	CR3_VS_LOCK:     {CR3_VS_LOCK, "CR3_VS_LOCK", CR3, 0x400000, 22, ControlField, nil},
	CR3_VSREG_OVSHD: {CR3_VSREG_OVSHD, "CR3_VSREG_OVSHD", CR3, 0x200000, 21, ControlField, nil},
	CR3_VSREG_UVSHD: {CR3_VSREG_UVSHD, "CR3_VSREG_UVSHD", CR3, 0x100000, 20, ControlField, nil},
	CR3_VS_OVSHD:    {CR3_VS_OVSHD, "CR3_VS_OVSHD", CR3, 0x080000, 19, ControlField, nil},
	CR3_VS_UVSHD:    {CR3_VS_UVSHD, "CR3_VS_UVSHD", CR3, 0x040000, 18, ControlField, nil},
	CR3_VSREG_EW:    {CR3_VSREG_EW, "CR3_VSREG_EW", CR3, 0x0003FF, 0, ControlField, nil},

	CR4_HS_OUT1: {CR4_HS_OUT1, "CR4_HS_OUT1", CR4, 0x200000, 21, ControlField, nil},
	CR4_LS_OUT1: {CR4_LS_OUT1, "CR4_LS_OUT1", CR4, 0x100000, 20, ControlField, nil},
	CR4_HS_OUT2: {CR4_HS_OUT2, "CR4_HS_OUT2", CR4, 0x020000, 17, ControlField, nil},
	CR4_LS_OUT2: {CR4_LS_OUT2, "CR4_LS_OUT2", CR4, 0x010000, 16, ControlField, nil},
	CR4_HS_OUT3: {CR4_HS_OUT3, "CR4_HS_OUT3", CR4, 0x002000, 13, ControlField, nil},
	CR4_LS_OUT3: {CR4_LS_OUT3, "CR4_LS_OUT3", CR4, 0x001000, 12, ControlField, nil},
	CR4_HS_OUT6: {CR4_HS_OUT6, "CR4_HS_OUT6", CR4, 0x000002, 1, ControlField, nil},
	CR4_LS_OUT6: {CR4_LS_OUT6, "CR4_LS_OUT6", CR4, 0x000001, 0, ControlField, nil},

	CR5_HS_OUT7:  {CR5_HS_OUT7, "CR5_HS_OUT7", CR5, 0xF00000, 20, ControlField, nil},
	CR5_HS_OUT8:  {CR5_HS_OUT8, "CR5_HS_OUT8", CR5, 0x0F0000, 16, ControlField, nil},
	CR5_HS_OUT10: {CR5_HS_OUT10, "CR5_HS_OUT10", CR5, 0x000F00, 8, ControlField, nil},
	CR5_GH:       {CR5_GH, "CR5_GH", CR5, 0x000010, 4, ControlField, nil},

	CR6_HS_OUT9:  {CR6_HS_OUT9, "CR6_HS_OUT9", CR6, 0xF00000, 20, ControlField, nil},
	CR6_HS_OUT13: {CR6_HS_OUT13, "CR6_HS_OUT13", CR6, 0x0F0000, 16, ControlField, nil},
	CR6_HS_OUT14: {CR6_HS_OUT14, "CR6_HS_OUT14", CR6, 0x00F000, 12, ControlField, nil},
	CR6_HS_OUT15: {CR6_HS_OUT15, "CR6_HS_OUT15", CR6, 0x000F00, 8, ControlField, nil},

	CR7_OUT1_OCR:   {CR7_OUT1_OCR, "CR7_OUT1_OCR", CR7, 0x800000, 23, ControlField, nil},
	CR7_OUT2_OCR:   {CR7_OUT2_OCR, "CR7_OUT2_OCR", CR7, 0x400000, 22, ControlField, nil},
	CR7_OUT3_OCR:   {CR7_OUT3_OCR, "CR7_OUT3_OCR", CR7, 0x200000, 21, ControlField, nil},
	CR7_OUT6_OCR:   {CR7_OUT6_OCR, "CR7_OUT6_OCR", CR7, 0x100000, 20, ControlField, nil},
	CR7_OUT7_OCR:   {CR7_OUT7_OCR, "CR7_OUT7_OCR", CR7, 0x080000, 19, ControlField, nil},
	CR7_OUT8_OCR:   {CR7_OUT8_OCR, "CR7_OUT8_OCR", CR7, 0x040000, 18, ControlField, nil},
	CR7_OUT15_OCR:  {CR7_OUT15_OCR, "CR7_OUT15_OCR", CR7, 0x020000, 17, ControlField, nil},
	CR7_OUT1_SHORT: {CR7_OUT1_SHORT, "CR7_OUT1_SHORT", CR7, 0x001000, 12, ControlField, nil},
	CR7_OUT2_SHORT: {CR7_OUT2_SHORT, "CR7_OUT2_SHORT", CR7, 0x000800, 11, ControlField, nil},
	CR7_OUT3_SHORT: {CR7_OUT3_SHORT, "CR7_OUT3_SHORT", CR7, 0x000400, 10, ControlField, nil},
	CR7_OUT6_SHORT: {CR7_OUT6_SHORT, "CR7_OUT6_SHORT", CR7, 0x000200, 9, ControlField, nil},
	CR7_CM_DIR:     {CR7_CM_DIR, "CR7_CM_DIR", CR7, 0x000030, 4, ControlField, nil},
	CR7_CM_SEL:     {CR7_CM_SEL, "CR7_CM_SEL", CR7, 0x00000F, 0, ControlField, nil},

	CR8_OUT1_OCR_THX_EN:  {CR8_OUT1_OCR_THX_EN, "CR8_OUT1_OCR_THX_EN", CR8, 0x800000, 23, ControlField, nil},
	CR8_OUT2_OCR_THX_EN:  {CR8_OUT2_OCR_THX_EN, "CR8_OUT2_OCR_THX_EN", CR8, 0x400000, 22, ControlField, nil},
	CR8_OUT3_OCR_THX_EN:  {CR8_OUT3_OCR_THX_EN, "CR8_OUT3_OCR_THX_EN", CR8, 0x200000, 21, ControlField, nil},
	CR8_OUT6_OCR_THX_EN:  {CR8_OUT6_OCR_THX_EN, "CR8_OUT6_OCR_THX_EN", CR8, 0x100000, 20, ControlField, nil},
	CR8_OUT7_OCR_THX_EN:  {CR8_OUT7_OCR_THX_EN, "CR8_OUT7_OCR_THX_EN", CR8, 0x080000, 19, ControlField, nil},
	CR8_OUT8_OCR_THX_EN:  {CR8_OUT8_OCR_THX_EN, "CR8_OUT8_OCR_THX_EN", CR8, 0x040000, 18, ControlField, nil},
	CR8_OUT15_OCR_THX_EN: {CR8_OUT15_OCR_THX_EN, "CR8_OUT15_OCR_THX_EN", CR8, 0x020000, 17, ControlField, nil},
	CR8_OUT7_OCR_TON:     {CR8_OUT7_OCR_TON, "CR8_OUT7_OCR_TON", CR8, 0x00C000, 14, ControlField, nil},
	CR8_OUT8_OCR_TON:     {CR8_OUT8_OCR_TON, "CR8_OUT8_OCR_TON", CR8, 0x003000, 12, ControlField, nil},
	CR8_OUT15_OCR_TON:    {CR8_OUT15_OCR_TON, "CR8_OUT15_OCR_TON", CR8, 0x000C00, 10, ControlField, nil},
	CR8_OUT1236_OCR_TON:  {CR8_OUT1236_OCR_TON, "CR8_OUT1236_OCR_TON", CR8, 0x000300, 8, ControlField, nil},
	CR8_OUT7_OCR_FREQ:    {CR8_OUT7_OCR_FREQ, "CR8_OUT7_OCR_FREQ", CR8, 0x0000C0, 6, ControlField, nil},
	CR8_OUT8_OCR_FREQ:    {CR8_OUT8_OCR_FREQ, "CR8_OUT8_OCR_FREQ", CR8, 0x000030, 4, ControlField, nil},
	CR8_OUT15_OCR_FREQ:   {CR8_OUT15_OCR_FREQ, "CR8_OUT15_OCR_FREQ", CR8, 0x00000C, 2, ControlField, nil},
	CR8_OUT1236_OCR_FREQ: {CR8_OUT1236_OCR_FREQ, "CR8_OUT1236_OCR_FREQ", CR8, 0x000003, 0, ControlField, nil},

	CR9_OUT8_RDSON:   {CR9_OUT8_RDSON, "CR9_OUT8_RDSON", CR9, 0x800000, 23, ControlField, nil},
	CR9_OUT7_RDSON:   {CR9_OUT7_RDSON, "CR9_OUT7_RDSON", CR9, 0x400000, 22, ControlField, nil},
	CR9_OUT1_6_RDSON: {CR9_OUT1_6_RDSON, "CR9_OUT1_6_RDSON", CR9, 0x200000, 21, ControlField, nil},
	CR9_OUT9_CCM_EN:  {CR9_OUT9_CCM_EN, "CR9_OUT9_CCM_EN", CR9, 0x100000, 20, ControlField, nil},
	CR9_OUT8_CCM_EN:  {CR9_OUT8_CCM_EN, "CR9_OUT8_CCM_EN", CR9, 0x080000, 19, ControlField, nil},
	CR9_OUT7_CCM_EN:  {CR9_OUT7_CCM_EN, "CR9_OUT7_CCM_EN", CR9, 0x040000, 18, ControlField, nil},
	CR9_OUT15_OL:     {CR9_OUT15_OL, "CR9_OUT15_OL", CR9, 0x004000, 14, ControlField, nil},
	CR9_OUT14_OL:     {CR9_OUT14_OL, "CR9_OUT14_OL", CR9, 0x002000, 13, ControlField, nil},
	CR9_OUT13_OL:     {CR9_OUT13_OL, "CR9_OUT13_OL", CR9, 0x001000, 12, ControlField, nil},
	CR9_OUT10_OL:     {CR9_OUT10_OL, "CR9_OUT10_OL", CR9, 0x000200, 9, ControlField, nil},
	CR9_OUT9_OL:      {CR9_OUT9_OL, "CR9_OUT9_OL", CR9, 0x000100, 8, ControlField, nil},
	CR9_OUT15_OC:     {CR9_OUT15_OC, "CR9_OUT15_OC", CR9, 0x000040, 6, ControlField, nil},
	CR9_OUT14_OC:     {CR9_OUT14_OC, "CR9_OUT14_OC", CR9, 0x000020, 5, ControlField, nil},
	CR9_OUT13_OC:     {CR9_OUT13_OC, "CR9_OUT13_OC", CR9, 0x000010, 4, ControlField, nil},
	CR9_OUT10_OC:     {CR9_OUT10_OC, "CR9_OUT10_OC", CR9, 0x000002, 1, ControlField, nil},
	CR9_OUT9_OC:      {CR9_OUT9_OC, "CR9_OUT9_OC", CR9, 0x000001, 0, ControlField, nil},

	CR10_HB_DS_DIAG: {CR10_HB_DS_DIAG, "CR10_HB_DS_DIAG", CR10, 0xE00000, 21, ControlField, nil},
	CR10_HB_A_DIR:   {CR10_HB_A_DIR, "CR10_HB_A_DIR", CR10, 0x100000, 20, ControlField, nil},
	CR10_HB_B_SD2:   {CR10_HB_B_SD2, "CR10_HB_B_SD2", CR10, 0x080000, 19, ControlField, nil},
	CR10_HB_B_SDS2:  {CR10_HB_B_SDS2, "CR10_HB_B_SDS2", CR10, 0x040000, 18, ControlField, nil},
	CR10_HB_B_SD1:   {CR10_HB_B_SD1, "CR10_HB_B_SD1", CR10, 0x020000, 17, ControlField, nil},
	CR10_HB_B_SDS1:  {CR10_HB_B_SDS1, "CR10_HB_B_SDS1", CR10, 0x010000, 16, ControlField, nil},
	CR10_HB_A_SD2:   {CR10_HB_A_SD2, "CR10_HB_A_SD2", CR10, 0x008000, 15, ControlField, nil},
	CR10_HB_A_SDS2:  {CR10_HB_A_SDS2, "CR10_HB_A_SDS2", CR10, 0x004000, 14, ControlField, nil},
	CR10_HB_A_SD1:   {CR10_HB_A_SD1, "CR10_HB_A_SD1", CR10, 0x002000, 13, ControlField, nil},
	CR10_HB_A_SDS1:  {CR10_HB_A_SDS1, "CR10_HB_A_SDS1", CR10, 0x001000, 12, ControlField, nil},
	CR10_HB_CCPT:    {CR10_HB_CCPT, "CR10_HB_CCPT", CR10, 0x000F00, 8, ControlField, nil},
	CR10_HB_OLTH_HI: {CR10_HB_OLTH_HI, "CR10_HB_OLTH_HI", CR10, 0x000080, 7, ControlField, nil},
	CR10_HB_OLH1L2:  {CR10_HB_OLH1L2, "CR10_HB_OLH1L2", CR10, 0x000040, 6, ControlField, nil},
	CR10_HB_OLH2L1:  {CR10_HB_OLH2L1, "CR10_HB_OLH2L1", CR10, 0x000020, 5, ControlField, nil},
	CR10_HB_SLEW:    {CR10_HB_SLEW, "CR10_HB_SLEW", CR10, 0x00001F, 0, ControlField, nil},

	CR11_GHOL_EN:  {CR11_GHOL_EN, "CR11_GHOL_EN", CR11, 0x020000, 17, ControlField, nil},
	CR11_GH_TH:    {CR11_GH_TH, "CR11_GH_TH", CR11, 0x01C000, 14, ControlField, nil},
	CR11_ECV_LS:   {CR11_ECV_LS, "CR11_ECV_LS", CR11, 0x002000, 13, ControlField, nil},
	CR11_ECV_OCR:  {CR11_ECV_OCR, "CR11_ECV_OCR", CR11, 0x001000, 12, ControlField, nil},
	CR11_EC_ON:    {CR11_EC_ON, "CR11_EC_ON", CR11, 0x000100, 8, ControlField, nil},
	CR11_EC_VALUE: {CR11_EC_VALUE, "CR11_EC_VALUE", CR11, 0x00003F, 0, ControlField, nil},

	CR12_PWM1_FREQ: {CR12_PWM1_FREQ, "CR12_PWM1_FREQ", CR12, 0xC00000, 22, ControlField, nil},
	CR12_PWM2_FREQ: {CR12_PWM2_FREQ, "CR12_PWM2_FREQ", CR12, 0x300000, 20, ControlField, nil},
	CR12_PWM3_FREQ: {CR12_PWM3_FREQ, "CR12_PWM3_FREQ", CR12, 0x0C0000, 18, ControlField, nil},
	CR12_PWM4_FREQ: {CR12_PWM4_FREQ, "CR12_PWM4_FREQ", CR12, 0x030000, 16, ControlField, nil},
	CR12_PWM5_FREQ: {CR12_PWM5_FREQ, "CR12_PWM5_FREQ", CR12, 0x00C000, 14, ControlField, nil},
	CR12_PWM6_FREQ: {CR12_PWM6_FREQ, "CR12_PWM6_FREQ", CR12, 0x003000, 12, ControlField, nil},
	CR12_PWM7_FREQ: {CR12_PWM7_FREQ, "CR12_PWM7_FREQ", CR12, 0x000C00, 10, ControlField, nil},

	CR13_PWM1_DC: {CR13_PWM1_DC, "CR13_PWM1_DC", CR13, 0x3FF000, 12, ControlField, nil},
	CR13_PWM2_DC: {CR13_PWM2_DC, "CR13_PWM2_DC", CR13, 0x0003FF, 0, ControlField, nil},

	CR14_PWM3_DC: {CR14_PWM3_DC, "CR14_PWM3_DC", CR14, 0x3FF000, 12, ControlField, nil},
	CR14_PWM4_DC: {CR14_PWM4_DC, "CR14_PWM4_DC", CR14, 0x0003FF, 0, ControlField, nil},

	CR15_PWM5_DC: {CR15_PWM5_DC, "CR15_PWM5_DC", CR15, 0x3FF000, 12, ControlField, nil},
	CR15_PWM6_DC: {CR15_PWM6_DC, "CR15_PWM6_DC", CR15, 0x0003FF, 0, ControlField, nil},

	CR16_PWM7_DC: {CR16_PWM7_DC, "CR16_PWM7_DC", CR16, 0x3FF000, 12, ControlField, nil},

	CR17_OUT7_AUTOCOMP: {CR17_OUT7_AUTOCOMP, "CR17_OUT7_AUTOCOMP", CR17, 0x400000, 22, ControlField, nil},
	CR17_OUT7_VLED:     {CR17_OUT7_VLED, "CR17_OUT7_VLED", CR17, 0x3FF000, 12, ControlField, nil},
	CR17_OUT8_AUTOCOMP: {CR17_OUT8_AUTOCOMP, "CR17_OUT8_AUTOCOMP", CR17, 0x000400, 10, ControlField, nil},
	CR17_OUT8_VLED:     {CR17_OUT8_VLED, "CR17_OUT8_VLED", CR17, 0x0003FF, 0, ControlField, nil},

	CR18_OUT9_AUTOCOMP:  {CR18_OUT9_AUTOCOMP, "CR18_OUT9_AUTOCOMP", CR18, 0x400000, 22, ControlField, nil},
	CR18_OUT9_VLED:      {CR18_OUT9_VLED, "CR18_OUT9_VLED", CR18, 0x3FF000, 12, ControlField, nil},
	CR18_OUT10_AUTOCOMP: {CR18_OUT10_AUTOCOMP, "CR18_OUT10_AUTOCOMP", CR18, 0x000400, 10, ControlField, nil},
	CR18_OUT10_VLED:     {CR18_OUT10_VLED, "CR18_OUT10_VLED", CR18, 0x0003FF, 0, ControlField, nil},

	CR19_OUT13_AUTOCOMP: {CR19_OUT13_AUTOCOMP, "CR19_OUT13_AUTOCOMP", CR19, 0x400000, 22, ControlField, nil},
	CR19_OUT13_VLED:     {CR19_OUT13_VLED, "CR19_OUT13_VLED", CR19, 0x3FF000, 12, ControlField, nil},
	CR19_OUT14_AUTOCOMP: {CR19_OUT14_AUTOCOMP, "CR19_OUT14_AUTOCOMP", CR19, 0x000400, 10, ControlField, nil},
	CR19_OUT14_VLED:     {CR19_OUT14_VLED, "CR19_OUT14_VLED", CR19, 0x0003FF, 0, ControlField, nil},

	CR20_OUT15_AUTOCOMP: {CR20_OUT15_AUTOCOMP, "CR20_OUT15_AUTOCOMP", CR20, 0x400000, 22, ControlField, nil},
	CR20_OUT15_VLED:     {CR20_OUT15_VLED, "CR20_OUT15_VLED", CR20, 0x3FF000, 12, ControlField, nil},

	CR21_HB_DS_DIAG: {CR21_HB_DS_DIAG, "CR21_HB_DS_DIAG", CR21, 0xE00000, 21, ControlField, nil},
	CR21_HB_B_DIR:   {CR21_HB_B_DIR, "CR21_HB_B_DIR", CR21, 0x100000, 20, ControlField, nil},
	CR21_HB_CCPT:    {CR21_HB_CCPT, "CR21_HB_CCPT", CR21, 0x000F00, 8, ControlField, nil},
	CR21_HB_OLTH_HI: {CR21_HB_OLTH_HI, "CR21_HB_OLTH_HI", CR21, 0x000080, 7, ControlField, nil},
	CR21_HB_OLH1L2:  {CR21_HB_OLH1L2, "CR21_HB_OLH1L2", CR21, 0x000040, 6, ControlField, nil},
	CR21_HB_OLH2L1:  {CR21_HB_OLH2L1, "CR21_HB_OLH2L1", CR21, 0x000020, 5, ControlField, nil},
	CR21_HB_SLEW:    {CR21_HB_SLEW, "CR21_HB_SLEW", CR21, 0x00001F, 0, ControlField, nil},

	CR22_GEN_MODE_EN: {CR22_GEN_MODE_EN, "CR22_GEN_MODE_EN", CR22, 0x000010, 4, ControlField, nil},
	CR22_DEBUG_EXIT:  {CR22_DEBUG_EXIT, "CR22_DEBUG_EXIT", CR22, 0x000008, 3, ControlField, nil},
	CR22_CP_OFF:      {CR22_CP_OFF, "CR22_CP_OFF", CR22, 0x000004, 2, ControlField, nil},
	CR22_ICMP:        {CR22_ICMP, "CR22_ICMP", CR22, 0x000002, 1, ControlField, nil},
	CR22_WDOG_EN:     {CR22_WDOG_EN, "CR22_WDOG_EN", CR22, 0x000001, 0, ControlField, nil},

	CFR_WU_CFG:      {CFR_WU_CFG, "CFR_WU_CFG", CFR, 0x800000, 23, ControlField, nil},
	CFR_LIN_WU_CFG:  {CFR_LIN_WU_CFG, "CFR_LIN_WU_CFG", CFR, 0x400000, 22, ControlField, nil},
	CFR_LIN_HS_EN:   {CFR_LIN_HS_EN, "CFR_LIN_HS_EN", CFR, 0x200000, 21, ControlField, nil},
	CFR_TSD_CFG:     {CFR_TSD_CFG, "CFR_TSD_CFG", CFR, 0x100000, 20, ControlField, nil},
	CFR_ECV_HV:      {CFR_ECV_HV, "CFR_ECV_HV", CFR, 0x080000, 19, ControlField, nil},
	CFR_V2_CFG:      {CFR_V2_CFG, "CFR_V2_CFG", CFR, 0x040000, 18, ControlField, nil},
	CFR_ICMP_CFG_EN: {CFR_ICMP_CFG_EN, "CFR_ICMP_CFG_EN", CFR, 0x020000, 17, ControlField, nil},
	CFR_WD_CFG_EN:   {CFR_WD_CFG_EN, "CFR_WD_CFG_EN", CFR, 0x010000, 16, ControlField, nil},
	CFR_MASK_OL_HS:  {CFR_MASK_OL_HS, "CFR_MASK_OL_HS", CFR, 0x008000, 15, ControlField, nil},
	CFR_MASK_OL_LS:  {CFR_MASK_OL_LS, "CFR_MASK_OL_LS", CFR, 0x004000, 14, ControlField, nil},
	CFR_MASK_TW:     {CFR_MASK_TW, "CFR_MASK_TW", CFR, 0x002000, 13, ControlField, nil},
	CFR_MASK_EC_OL:  {CFR_MASK_EC_OL, "CFR_MASK_EC_OL", CFR, 0x001000, 12, ControlField, nil},
	CFR_MASK_OL:     {CFR_MASK_OL, "CFR_MASK_OL", CFR, 0x000800, 11, ControlField, nil},
	CFR_MASK_SPIE:   {CFR_MASK_SPIE, "CFR_MASK_SPIE", CFR, 0x000400, 10, ControlField, nil},
	CFR_MASK_PLE:    {CFR_MASK_PLE, "CFR_MASK_PLE", CFR, 0x000200, 9, ControlField, nil},
	CFR_MASK_GW:     {CFR_MASK_GW, "CFR_MASK_GW", CFR, 0x000100, 8, ControlField, nil},
	CFR_CP_OFF_EN:   {CFR_CP_OFF_EN, "CFR_CP_OFF_EN", CFR, 0x000080, 7, ControlField, nil},
	CFR_CP_LOW_CFG:  {CFR_CP_LOW_CFG, "CFR_CP_LOW_CFG", CFR, 0x000040, 6, ControlField, nil},
	CFR_CP_DITH_DIS: {CFR_CP_DITH_DIS, "CFR_CP_DITH_DIS", CFR, 0x000020, 5, ControlField, nil},
	CFR_FS_FORCED:   {CFR_FS_FORCED, "CFR_FS_FORCED", CFR, 0x000010, 4, ControlField, nil},
	CFR_DM_HB_A:     {CFR_DM_HB_A, "CFR_DM_HB_A", CFR, 0x000004, 2, ControlField, nil},
	CFR_DM_HB_B:     {CFR_DM_HB_B, "CFR_DM_HB_B", CFR, 0x000002, 1, ControlField, nil},
	CFR_WDC:         {CFR_WDC, "CFR_WDC", CFR, 0x000001, 0, ControlField, nil},

	SR1_VSPOR:          {SR1_VSPOR, "SR1_VSPOR", SR1, 0x000001, 0, StatusFlag, nil},
	SR1_WD_FAIL:        {SR1_WD_FAIL, "SR1_WD_FAIL", SR1, 0x000002, 1, StatusFlag, nil},
	SR1_F_SLEEP_WDC:    {SR1_F_SLEEP_WDC, "SR1_F_SLEEP_WDC", SR1, 0x000004, 2, StatusFlag, nil},
	SR1_F_SLEEP_TSD:    {SR1_F_SLEEP_TSD, "SR1_F_SLEEP_TSD", SR1, 0x000008, 3, StatusFlag, nil},
	SR1_TSD1:           {SR1_TSD1, "SR1_TSD1", SR1, 0x000010, 4, StatusFlagClearElsewhere, []ClearOp{{SR6, 0x00003F}}},
	SR1_TSD2:           {SR1_TSD2, "SR1_TSD2", SR1, 0x000020, 5, StatusFlag, nil},
	SR1_DEV_STATE:      {SR1_DEV_STATE, "SR1_DEV_STATE", SR1, 0x0000C0, 6, StatusValue, nil},
	SR1_WDC_FAIL_CNT:   {SR1_WDC_FAIL_CNT, "SR1_WDC_FAIL_CNT", SR1, 0x000F00, 8, StatusValue, nil},
	SR1_V1_RESTART_CNT: {SR1_V1_RESTART_CNT, "SR1_V1_RESTART_CNT", SR1, 0x007000, 12, StatusValue, nil},
	SR1_V1_UV:          {SR1_V1_UV, "SR1_V1_UV", SR1, 0x008000, 15, StatusFlag, nil},
	SR1_DEBUG_MODE:     {SR1_DEBUG_MODE, "SR1_DEBUG_MODE", SR1, 0x010000, 16, StatusFlag, nil},
	SR1_WK_TIMER:       {SR1_WK_TIMER, "SR1_WK_TIMER", SR1, 0x020000, 17, StatusFlag, nil},
	SR1_WK_LIN:         {SR1_WK_LIN, "SR1_WK_LIN", SR1, 0x040000, 18, StatusFlag, nil},
	SR1_WK_CAN:         {SR1_WK_CAN, "SR1_WK_CAN", SR1, 0x080000, 19, StatusFlag, nil},
	SR1_WK_WU:          {SR1_WK_WU, "SR1_WK_WU", SR1, 0x100000, 20, StatusFlag, nil},
	SR1_SGND_LOSS:      {SR1_SGND_LOSS, "SR1_SGND_LOSS", SR1, 0x200000, 21, StatusFlag, nil},
	SR1_WU_PIN_STATE:   {SR1_WU_PIN_STATE, "SR1_WU_PIN_STATE", SR1, 0x400000, 22, StatusValue, nil},
	SR1_WK_VS_OV:       {SR1_WK_VS_OV, "SR1_WK_VS_OV", SR1, 0x800000, 23, StatusFlag, nil},

	SR2_VS_UV:        {SR2_VS_UV, "SR2_VS_UV", SR2, 0x000001, 0, StatusFlag, nil},
	SR2_VS_OV:        {SR2_VS_OV, "SR2_VS_OV", SR2, 0x000002, 1, StatusFlag, nil},
	SR2_VSREG_UV:     {SR2_VSREG_UV, "SR2_VSREG_UV", SR2, 0x000004, 2, StatusFlag, nil},
	SR2_VSREG_OV:     {SR2_VSREG_OV, "SR2_VSREG_OV", SR2, 0x000008, 3, StatusFlag, nil},
	SR2_VSREG_EW:     {SR2_VSREG_EW, "SR2_VSREG_EW", SR2, 0x000010, 4, StatusFlag, nil},
	SR2_V1_FAIL:      {SR2_V1_FAIL, "SR2_V1_FAIL", SR2, 0x000020, 5, StatusFlag, nil},
	SR2_V2_FAIL:      {SR2_V2_FAIL, "SR2_V2_FAIL", SR2, 0x000040, 6, StatusFlag, nil},
	SR2_V2_SC:        {SR2_V2_SC, "SR2_V2_SC", SR2, 0x000080, 7, StatusFlag, nil},
	SR2_TW:           {SR2_TW, "SR2_TW", SR2, 0x000100, 8, StatusFlagClearElsewhere, []ClearOp{{SR6, 0x003F00}, {SR2, 0x000100}}},
	SR2_CP_LOW:       {SR2_CP_LOW, "SR2_CP_LOW", SR2, 0x000200, 9, StatusFlag, nil},
	SR2_SPI_CLK_CNT:  {SR2_SPI_CLK_CNT, "SR2_SPI_CLK_CNT", SR2, 0x000400, 10, StatusFlag, nil},
	SR2_SPI_INV_CMD:  {SR2_SPI_INV_CMD, "SR2_SPI_INV_CMD", SR2, 0x000800, 11, StatusFlag, nil},
	SR2_DS_MON_LS1_A: {SR2_DS_MON_LS1_A, "SR2_DS_MON_LS1_A", SR2, 0x001000, 12, StatusFlag, nil},
	SR2_DS_MON_LS2_A: {SR2_DS_MON_LS2_A, "SR2_DS_MON_LS2_A", SR2, 0x002000, 13, StatusFlag, nil},
	SR2_DS_MON_HS1_A: {SR2_DS_MON_HS1_A, "SR2_DS_MON_HS1_A", SR2, 0x004000, 14, StatusFlag, nil},
	SR2_DS_MON_HS2_A: {SR2_DS_MON_HS2_A, "SR2_DS_MON_HS2_A", SR2, 0x008000, 15, StatusFlag, nil},
	SR2_CAN_SUP_LOW:  {SR2_CAN_SUP_LOW, "SR2_CAN_SUP_LOW", SR2, 0x010000, 16, StatusFlag, nil},
	SR2_CAN_TXD_DOM:  {SR2_CAN_TXD_DOM, "SR2_CAN_TXD_DOM", SR2, 0x020000, 17, StatusFlag, nil},
	SR2_CAN_PERM_DOM: {SR2_CAN_PERM_DOM, "SR2_CAN_PERM_DOM", SR2, 0x040000, 18, StatusFlag, nil},
	SR2_CAN_PERM_REC: {SR2_CAN_PERM_REC, "SR2_CAN_PERM_REC", SR2, 0x080000, 19, StatusFlag, nil},
	SR2_CAN_RXD_REC:  {SR2_CAN_RXD_REC, "SR2_CAN_RXD_REC", SR2, 0x100000, 20, StatusFlag, nil},
	SR2_LIN_PERM_REC: {SR2_LIN_PERM_REC, "SR2_LIN_PERM_REC", SR2, 0x200000, 21, StatusFlag, nil},
	SR2_LIN_TXD_DOM:  {SR2_LIN_TXD_DOM, "SR2_LIN_TXD_DOM", SR2, 0x400000, 22, StatusFlag, nil},
	SR2_LIN_PERM_DOM: {SR2_LIN_PERM_DOM, "SR2_LIN_PERM_DOM", SR2, 0x800000, 23, StatusFlag, nil},

	SR3_LSA_FSO_OC:   {SR3_LSA_FSO_OC, "SR3_LSA_FSO_OC", SR3, 0x000001, 0, StatusFlag, nil},
	SR3_LSB_FSO_OC:   {SR3_LSB_FSO_OC, "SR3_LSB_FSO_OC", SR3, 0x000002, 1, StatusFlag, nil},
	SR3_DS_MON_LS1_B: {SR3_DS_MON_LS1_B, "SR3_DS_MON_LS1_B", SR3, 0x000008, 3, StatusFlag, nil},
	SR3_DS_MON_LS2_B: {SR3_DS_MON_LS2_B, "SR3_DS_MON_LS2_B", SR3, 0x000010, 4, StatusFlag, nil},
	SR3_DS_MON_HS1_B: {SR3_DS_MON_HS1_B, "SR3_DS_MON_HS1_B", SR3, 0x000020, 5, StatusFlag, nil},
	SR3_DS_MON_HS2_B: {SR3_DS_MON_HS2_B, "SR3_DS_MON_HS2_B", SR3, 0x000040, 6, StatusFlag, nil},
	SR3_OUT15_OCTHX:  {SR3_OUT15_OCTHX, "SR3_OUT15_OCTHX", SR3, 0x000200, 9, StatusFlag, nil},
	SR3_OUT14_OCTHX:  {SR3_OUT14_OCTHX, "SR3_OUT14_OCTHX", SR3, 0x000400, 10, StatusFlag, nil},
	SR3_OUT13_OCTHX:  {SR3_OUT13_OCTHX, "SR3_OUT13_OCTHX", SR3, 0x000800, 11, StatusFlag, nil},
	SR3_OUT10_OCTHX:  {SR3_OUT10_OCTHX, "SR3_OUT10_OCTHX", SR3, 0x001000, 12, StatusFlag, nil},
	SR3_OUT9_OCTHX:   {SR3_OUT9_OCTHX, "SR3_OUT9_OCTHX", SR3, 0x002000, 13, StatusFlag, nil},
	SR3_OUT8_OCTHX:   {SR3_OUT8_OCTHX, "SR3_OUT8_OCTHX", SR3, 0x004000, 14, StatusFlag, nil},
	SR3_OUT7_OCTHX:   {SR3_OUT7_OCTHX, "SR3_OUT7_OCTHX", SR3, 0x008000, 15, StatusFlag, nil},
	SR3_OUT6L_OCTHX:  {SR3_OUT6L_OCTHX, "SR3_OUT6L_OCTHX", SR3, 0x010000, 16, StatusFlag, nil},
	SR3_OUT6H_OCTHX:  {SR3_OUT6H_OCTHX, "SR3_OUT6H_OCTHX", SR3, 0x020000, 17, StatusFlag, nil},
	SR3_OUT3L_OCTHX:  {SR3_OUT3L_OCTHX, "SR3_OUT3L_OCTHX", SR3, 0x040000, 18, StatusFlag, nil},
	SR3_OUT3H_OCTHX:  {SR3_OUT3H_OCTHX, "SR3_OUT3H_OCTHX", SR3, 0x080000, 19, StatusFlag, nil},
	SR3_OUT2L_OCTHX:  {SR3_OUT2L_OCTHX, "SR3_OUT2L_OCTHX", SR3, 0x100000, 20, StatusFlag, nil},
	SR3_OUT2H_OCTHX:  {SR3_OUT2H_OCTHX, "SR3_OUT2H_OCTHX", SR3, 0x200000, 21, StatusFlag, nil},
	SR3_OUT1L_OCTHX:  {SR3_OUT1L_OCTHX, "SR3_OUT1L_OCTHX", SR3, 0x400000, 22, StatusFlag, nil},
	SR3_OUT1H_OCTHX:  {SR3_OUT1H_OCTHX, "SR3_OUT1H_OCTHX", SR3, 0x800000, 23, StatusFlag, nil},

	SR4_OUT6L_SHORT: {SR4_OUT6L_SHORT, "SR4_OUT6L_SHORT", SR4, 0x000001, 0, StatusFlag, nil},
	SR4_OUT6H_SHORT: {SR4_OUT6H_SHORT, "SR4_OUT6H_SHORT", SR4, 0x000002, 1, StatusFlag, nil},
	SR4_OUT3L_SHORT: {SR4_OUT3L_SHORT, "SR4_OUT3L_SHORT", SR4, 0x000004, 2, StatusFlag, nil},
	SR4_OUT3H_SHORT: {SR4_OUT3H_SHORT, "SR4_OUT3H_SHORT", SR4, 0x000008, 3, StatusFlag, nil},
	SR4_OUT2L_SHORT: {SR4_OUT2L_SHORT, "SR4_OUT2L_SHORT", SR4, 0x000010, 4, StatusFlag, nil},
	SR4_OUT2H_SHORT: {SR4_OUT2H_SHORT, "SR4_OUT2H_SHORT", SR4, 0x000020, 5, StatusFlag, nil},
	SR4_OUT1L_SHORT: {SR4_OUT1L_SHORT, "SR4_OUT1L_SHORT", SR4, 0x000040, 6, StatusFlag, nil},
	SR4_OUT1H_SHORT: {SR4_OUT1H_SHORT, "SR4_OUT1H_SHORT", SR4, 0x000080, 7, StatusFlag, nil},
	SR4_OUT15_OCRAL: {SR4_OUT15_OCRAL, "SR4_OUT15_OCRAL", SR4, 0x002000, 13, StatusFlag, nil},
	SR4_OUT8_OCRAL:  {SR4_OUT8_OCRAL, "SR4_OUT8_OCRAL", SR4, 0x004000, 14, StatusFlag, nil},
	SR4_OUT7_OCRAL:  {SR4_OUT7_OCRAL, "SR4_OUT7_OCRAL", SR4, 0x008000, 15, StatusFlag, nil},
	SR4_OUT6L_OCRAL: {SR4_OUT6L_OCRAL, "SR4_OUT6L_OCRAL", SR4, 0x010000, 16, StatusFlag, nil},
	SR4_OUT6H_OCRAL: {SR4_OUT6H_OCRAL, "SR4_OUT6H_OCRAL", SR4, 0x020000, 17, StatusFlag, nil},
	SR4_OUT3L_OCRAL: {SR4_OUT3L_OCRAL, "SR4_OUT3L_OCRAL", SR4, 0x040000, 18, StatusFlag, nil},
	SR4_OUT3H_OCRAL: {SR4_OUT3H_OCRAL, "SR4_OUT3H_OCRAL", SR4, 0x080000, 19, StatusFlag, nil},
	SR4_OUT2L_OCRAL: {SR4_OUT2L_OCRAL, "SR4_OUT2L_OCRAL", SR4, 0x100000, 20, StatusFlag, nil},
	SR4_OUT2H_OCRAL: {SR4_OUT2H_OCRAL, "SR4_OUT2H_OCRAL", SR4, 0x200000, 21, StatusFlag, nil},
	SR4_OUT1L_OCRAL: {SR4_OUT1L_OCRAL, "SR4_OUT1L_OCRAL", SR4, 0x400000, 22, StatusFlag, nil},
	SR4_OUT1H_OCRAL: {SR4_OUT1H_OCRAL, "SR4_OUT1H_OCRAL", SR4, 0x800000, 23, StatusFlag, nil},

	SR5_ECV_OC:      {SR5_ECV_OC, "SR5_ECV_OC", SR5, 0x000001, 0, StatusFlag, nil},
	SR5_DS_MON_HEAT: {SR5_DS_MON_HEAT, "SR5_DS_MON_HEAT", SR5, 0x000002, 1, StatusFlag, nil},
	SR5_OUTECV_OL:   {SR5_OUTECV_OL, "SR5_OUTECV_OL", SR5, 0x000080, 7, StatusFlag, nil},
	SR5_OUTGH_OL:    {SR5_OUTGH_OL, "SR5_OUTGH_OL", SR5, 0x000100, 8, StatusFlag, nil},
	SR5_OUT15_OL:    {SR5_OUT15_OL, "SR5_OUT15_OL", SR5, 0x000200, 9, StatusFlag, nil},
	SR5_OUT14_OL:    {SR5_OUT14_OL, "SR5_OUT14_OL", SR5, 0x000400, 10, StatusFlag, nil},
	SR5_OUT13_OL:    {SR5_OUT13_OL, "SR5_OUT13_OL", SR5, 0x000800, 11, StatusFlag, nil},
	SR5_OUT10_OL:    {SR5_OUT10_OL, "SR5_OUT10_OL", SR5, 0x001000, 12, StatusFlag, nil},
	SR5_OUT9_OL:     {SR5_OUT9_OL, "SR5_OUT9_OL", SR5, 0x002000, 13, StatusFlag, nil},
	SR5_OUT8_OL:     {SR5_OUT8_OL, "SR5_OUT8_OL", SR5, 0x004000, 14, StatusFlag, nil},
	SR5_OUT7_OL:     {SR5_OUT7_OL, "SR5_OUT7_OL", SR5, 0x008000, 15, StatusFlag, nil},
	SR5_OUT6L_OL:    {SR5_OUT6L_OL, "SR5_OUT6L_OL", SR5, 0x010000, 16, StatusFlag, nil},
	SR5_OUT6H_OL:    {SR5_OUT6H_OL, "SR5_OUT6H_OL", SR5, 0x020000, 17, StatusFlag, nil},
	SR5_OUT3L_OL:    {SR5_OUT3L_OL, "SR5_OUT3L_OL", SR5, 0x040000, 18, StatusFlag, nil},
	SR5_OUT3H_OL:    {SR5_OUT3H_OL, "SR5_OUT3H_OL", SR5, 0x080000, 19, StatusFlag, nil},
	SR5_OUT2L_OL:    {SR5_OUT2L_OL, "SR5_OUT2L_OL", SR5, 0x100000, 20, StatusFlag, nil},
	SR5_OUT2H_OL:    {SR5_OUT2H_OL, "SR5_OUT2H_OL", SR5, 0x200000, 21, StatusFlag, nil},
	SR5_OUT1L_OL:    {SR5_OUT1L_OL, "SR5_OUT1L_OL", SR5, 0x400000, 22, StatusFlag, nil},
	SR5_OUT1H_OL:    {SR5_OUT1H_OL, "SR5_OUT1H_OL", SR5, 0x800000, 23, StatusFlag, nil},

	SR6_WD_TMR_STATE: {SR6_WD_TMR_STATE, "SR6_WD_TMR_STATE", SR6, 0xC00000, 22, StatusValue, nil},
	SR6_ECV_VNR:      {SR6_ECV_VNR, "SR6_ECV_VNR", SR6, 0x020000, 17, StatusFlag, nil},
	SR6_ECV_VHI:      {SR6_ECV_VHI, "SR6_ECV_VHI", SR6, 0x010000, 16, StatusFlag, nil},
	SR6_TW_CL6:       {SR6_TW_CL6, "SR6_TW_CL6", SR6, 0x002000, 13, StatusFlag, nil},
	SR6_TW_CL5:       {SR6_TW_CL5, "SR6_TW_CL5", SR6, 0x001000, 12, StatusFlag, nil},
	SR6_TW_CL4:       {SR6_TW_CL4, "SR6_TW_CL4", SR6, 0x000800, 11, StatusFlag, nil},
	SR6_TW_CL3:       {SR6_TW_CL3, "SR6_TW_CL3", SR6, 0x000400, 10, StatusFlag, nil},
	SR6_TW_CL2:       {SR6_TW_CL2, "SR6_TW_CL2", SR6, 0x000200, 9, StatusFlag, nil},
	SR6_TW_CL1:       {SR6_TW_CL1, "SR6_TW_CL1", SR6, 0x000100, 8, StatusFlag, nil},
	SR6_TSD_CL6:      {SR6_TSD_CL6, "SR6_TSD_CL6", SR6, 0x000020, 5, StatusFlag, nil},
	SR6_TSD_CL5:      {SR6_TSD_CL5, "SR6_TSD_CL5", SR6, 0x000010, 4, StatusFlag, nil},
	SR6_TSD_CL4:      {SR6_TSD_CL4, "SR6_TSD_CL4", SR6, 0x000008, 3, StatusFlag, nil},
	SR6_TSD_CL3:      {SR6_TSD_CL3, "SR6_TSD_CL3", SR6, 0x000004, 2, StatusFlag, nil},
	SR6_TSD_CL2:      {SR6_TSD_CL2, "SR6_TSD_CL2", SR6, 0x000002, 1, StatusFlag, nil},
	SR6_TSD_CL1:      {SR6_TSD_CL1, "SR6_TSD_CL1", SR6, 0x000001, 0, StatusFlag, nil},

	SR7_TEMP_CL1: {SR7_TEMP_CL1, "SR7_TEMP_CL1", SR7, 0x0003FF, 0, StatusValue, nil},
	SR7_TEMP_CL2: {SR7_TEMP_CL2, "SR7_TEMP_CL2", SR7, 0x3FF000, 12, StatusValue, nil},

	SR8_TEMP_CL3: {SR8_TEMP_CL3, "SR8_TEMP_CL3", SR8, 0x0003FF, 0, StatusValue, nil},
	SR8_TEMP_CL4: {SR8_TEMP_CL4, "SR8_TEMP_CL4", SR8, 0x3FF000, 12, StatusValue, nil},

	SR9_TEMP_CL5: {SR9_TEMP_CL5, "SR9_TEMP_CL5", SR9, 0x0003FF, 0, StatusValue, nil},
	SR9_TEMP_CL6: {SR9_TEMP_CL6, "SR9_TEMP_CL6", SR9, 0x3FF000, 12, StatusValue, nil},

	SR10_VSREG: {SR10_VSREG, "SR10_VSREG", SR10, 0x3FF000, 12, StatusValue, nil},

	SR11_VS:  {SR11_VS, "SR11_VS", SR11, 0x3FF000, 12, StatusValue, nil},
	SR11_VWU: {SR11_VWU, "SR11_VWU", SR11, 0x0003FF, 0, StatusValue, nil},

	SR12_CAN_WUP:    {SR12_CAN_WUP, "SR12_CAN_WUP", SR12, 0x000004, 2, StatusFlag, nil},
	SR12_CANTO:      {SR12_CANTO, "SR12_CANTO", SR12, 0x000008, 3, StatusFlag, nil},
	SR12_CAN_SILENT: {SR12_CAN_SILENT, "SR12_CAN_SILENT", SR12, 0x000020, 5, StatusFlag, nil},
}
