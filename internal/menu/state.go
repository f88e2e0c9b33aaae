package menu

// State identifies a screen in the interactive session. The session
// loop holds exactly one State at a time and every handler returns the
// next one, so transitions stay explicit and testable.
type State int

const (
	// StateMainMenu shows the application header and the top-level choices.
	StateMainMenu State = iota
	// StateCategorySelect asks for discrete vs continuous.
	StateCategorySelect
	// StateDistributionSelect lists the distributions in the chosen category.
	StateDistributionSelect
	// StateParameterEntry collects and validates the parameters.
	StateParameterEntry
	// StateResultDisplay shows the computed result and asks to continue.
	StateResultDisplay
	// StateExit is the only terminal state, reached by explicit user request.
	StateExit
)

// String returns the state name for logs and diagnostics.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateCategorySelect:
		return "category_select"
	case StateDistributionSelect:
		return "distribution_select"
	case StateParameterEntry:
		return "parameter_entry"
	case StateResultDisplay:
		return "result_display"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}
