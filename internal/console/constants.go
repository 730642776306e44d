package console

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"

	clearSequence = "\033[H\033[2J"
)

// Prompts
const (
	MsgPressEnter = "Press Enter to continue..."
)
