package workshop

// Banners shown above each tool's use menu
const (
	BannerHammer      = "Using the %s made of %s, weighing %.1fkg, with a %d-inch handle."
	BannerDrill       = "Using the %.1fkg %s that is %s..."
	BannerSaw         = "Using the %s with %s blade..."
	BannerScrewdriver = "Using the %.1fkg %s with %s tip..."
	BannerTape        = "Using the %s made of %s, weighing %.1fkg, with a %sm length."
	BannerWrench      = "Using the %s (%dmm), Material: %s, Weight: %.1fkg"

	powerCordless = "cordless"
	powerCorded   = "corded"
)

// Menu titles
const (
	UseMenuTitleFormat  = "%s Use Menu"
	ToolMenuTitleFormat = "%s Menu"
	ToolboxTitle        = "Toolbox"
)

// Option pickers
const (
	PickBitsHeader   = "Available bits:"
	PickBitsPrompt   = "Select a bit (number): "
	PickBladesHeader = "Available blades:"
	PickBladesPrompt = "Select a blade (number): "
	PickTipsHeader   = "Available tips:"
	PickTipsPrompt   = "Select a tip (number): "
	PickSizesHeader  = "Available sizes:"
	PickSizesPrompt  = "Select a size (number): "

	labelPlain  = "%s"
	labelBlade  = "%s Blade"
	labelTip    = "%s Tip"
	labelSizeMM = "%dmm"
)

// Toolbox screen
const (
	ToolboxEntryFormat   = "%s (Durability: %d%%)"
	ToolboxHistoryFormat = "%s [%s]"
	ToolboxExitKey       = "0"
	ToolboxExitLabel     = "Exit"
	ToolboxPrompt        = "\nSelect a tool to manage: "
	ToolboxInvalid       = "Invalid option."
	ToolboxInvalidPause  = "Press Enter to try again..."
	MsgGoodbye           = "Goodbye!"
)

// Operator messages
const (
	MsgDamagedFormat      = "The %s is too damaged to %s. Please repair it."
	MsgStrikePromptFormat = "Press Enter to strike the nail (Strike #%d)... "
)

// Log messages
const (
	LogMsgActionPerformed = "Tool action performed"
	LogMsgActionRefused   = "Tool action refused, tool is broken"
	LogMsgInvalidInput    = "Invalid operator input"
	LogMsgToolRepaired    = "Tool repaired"
	LogMsgPublishFailed   = "Failed to publish tool event"
)
