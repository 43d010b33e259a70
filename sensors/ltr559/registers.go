package ltr559

// The default I2C address of the LTR-559.
const Address = 0x23

// Register map for the Lite-On LTR-559ALS-01. Only the ALS side is used;
// the proximity channel is left in standby.
const (
	RegAlsControl     = 0x80
	RegAlsMeasRate    = 0x85
	RegPartID         = 0x86
	RegManufacturerID = 0x87
	RegAlsData        = 0x88 // CH1 low, CH1 high, CH0 low, CH0 high
	RegAlsPsStatus    = 0x8C
)

const (
	AlsControlActive  = 0x01
	AlsControlSWReset = 0x02
	AlsControlGain4X  = 0x02 << 2

	// 50ms integration time, 50ms repeat rate.
	AlsMeasRate50ms = 0x01 << 3

	PartNumber     = 0x09 // high nibble of RegPartID
	ManufacturerID = 0x05
)
