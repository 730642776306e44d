package menu

// DefaultExitLabel is the label of the terminal menu entry
const DefaultExitLabel = "Back"

// User-facing messages
const (
	MsgPromptFormat        = "\nEnter your choice (1-%s): "
	MsgInvalidChoiceFormat = "Invalid choice. Please select a number from 1 to %s."
	MsgReturnToMenu        = "\nPress Enter to return to the menu..."
)

// Log messages
const (
	LogMsgInvalidChoice  = "Invalid menu choice"
	LogMsgOptionSelected = "Menu option selected"
)
