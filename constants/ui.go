package constants

// Machine layout on the 800x600 virtual surface
const (
	MachineWidthRatio  = 0.5 // Of surface width
	MachineHeightRatio = 0.9 // Of machine width
	MachineBottomInset = 20.0

	ReelWidth    = 77.0
	ReelSpacing  = 15.0
	ReelTopInset = 95.0 // From the top of the machine body

	BannerOffset   = 30.0 // JACKPOT text above the body
	HeartOffset    = 95.0 // Heart emblem above the body
	MegaWinOffset  = 30.0 // Below the top of the body
	TaglineOffset  = 70.0
	ArcDotCount    = 20
	ArcDotDistance = 8.0

	LeverGap    = 30.0
	LeverTop    = 80.0
	LeverHeight = 120.0
)

// Spin button
const (
	ButtonWidth        = 150.0
	ButtonHeight       = 40.0
	ButtonBottomOffset = 40.0
	ButtonLabel        = "SPIN"
)

// Text
const (
	JackpotText = "JACKPOT"
	MegaWinText = "MEGA WIN"
	TaglineText = "Make Bubu and Dudu fall in love"
	HelpText    = "space/click: spin  m: mute  q: quit"
)
