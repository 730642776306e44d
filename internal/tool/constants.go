package tool

// Drill timing
const (
	DefaultDrillSpeed = 1500
	drillBaseSeconds  = 5.0
	drillReferenceRPM = 3000.0
	drillMinRPMFactor = 0.5
	drillTimeDivisor  = 3.0
)

// Fixed and random action durations, in seconds
const (
	SawMinCutSeconds       = 3
	SawMaxCutSeconds       = 6
	ScrewdriverTurnSeconds = 5
	WrenchTurnSeconds      = 2
	HammerMinStrikes       = 2
	HammerMaxStrikes       = 5
	hammerDepthClasses     = 5
)

// MaxMarks caps how many marks one Mark Intervals pass may place
const MaxMarks = 10000

// depthLabels maps a strike depth class to its display label
var depthLabels = map[int]string{
	1: "1/4 in",
	2: "1/2 in",
	3: "3/4 in",
	4: "almost in",
	5: "fully driven",
}

// Activities named in damage messages
const (
	ActivityUse           = "use"
	ActivityStrike        = "strike"
	ActivityRemoveNails   = "remove nails"
	ActivityDrill         = "drill"
	ActivityCut           = "cut"
	ActivityTurnScrew     = "use" // same wording as ActivityUse, kept separate on purpose
	ActivityMeasure       = "measure"
	ActivityMarkIntervals = "mark intervals"
	ActivityTightenBolt   = "tighten bolts"
	ActivityLoosenBolt    = "loosen bolts"
)

// User-facing messages
const (
	MsgStrikeStart     = "Striking with the %s hammer..."
	MsgStrikeContinue  = "The nail is %s into the wood. Keep striking."
	MsgStrikeFinal     = "The nail is %s into the wood. Fully driven."
	MsgRemoveNails     = "Removing nails using the %s claw..."
	MsgRemoveNailsDone = "Done."

	MsgDrillStart     = "Drilling a hole with %s bit at %d RPM..."
	MsgDrillTick      = "Drilling... %d seconds remaining"
	MsgDrillDone      = "Hole drilled using %s bit!"
	MsgBitChanged     = "Drill bit changed to %s."
	MsgSpeedAdjusted  = "Speed adjusted to %d RPM."
	MsgSpeedPrompt    = "Enter new RPM (e.g. 500, 1000, 1500, 2000, 3000): "
	MsgRPMNotPositive = "RPM must be positive."
	MsgRPMNotNumeric  = "Invalid RPM input."

	MsgCutStart    = "Cutting wood with the %s blade..."
	MsgCutTick     = "Cutting... %[1]d seconds remaining with %[2]s blade."
	MsgCutDone     = "Wood cut using the %s blade!"
	MsgBladeChange = "Blade changed to %s Blade."

	MsgTurnStart    = "Tightening/Loosening with the %s tip..."
	MsgTurnTick     = "Tightening/Loosening... %[1]d seconds remaining with %[2]s tip."
	MsgTurnDone     = "Action completed using the %s tip!"
	MsgTipChanged   = "Tip changed to %s Tip."
	MsgMagnetized   = "The screwdriver is now Magnetized."
	MsgUnmagnetized = "The screwdriver is now Unmagnetized."

	MsgMeasured        = "Measuring wood... The length is %.2f meters."
	MsgIntervalPrompt  = "Enter the interval length to mark (in meters): "
	MsgMarkingStart    = "Marking intervals every %s meters."
	MsgMark            = "Mark %d: %s meters"
	MsgIntervalsMarked = "Intervals marked."
	MsgIntervalInvalid = "Invalid interval length. Please enter a value within the tape's length."
	MsgIntervalTooFine = "Interval too small. The tape fits at most %d marks."

	MsgTightenBoltStart = "Tightening a bolt with a %dmm wrench."
	MsgTightenBoltDone  = "Bolt tightened."
	MsgLoosenBoltStart  = "Loosening a bolt with a %dmm wrench."
	MsgLoosenBoltDone   = "Bolt loosened."
	MsgSizeChanged      = "Wrench size changed to %dmm."
	MsgRatcheting       = "The wrench is now set to Ratcheting mode."
	MsgNonRatcheting    = "The wrench is now set to Non-Ratcheting mode."

	MsgInvalidSelection = "Invalid selection."
	MsgRepaired         = "Repaired the %s %s. Durability is now full."
)
