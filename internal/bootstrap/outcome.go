package bootstrap

// Outcome is the result of one pipeline step.
type Outcome int

const (
	// Success means the step did everything it set out to do.
	Success Outcome = iota
	// SoftFailure is reported but does not stop the run.
	SoftFailure
	// HardFailure aborts the run with a non-zero exit.
	HardFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case SoftFailure:
		return "soft-failure"
	case HardFailure:
		return "hard-failure"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name in run reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// State is a position in the linear pipeline. A run only ever moves forward.
type State int

const (
	Start State = iota
	PlatformDetected
	PrereqsChecked
	SubmodulesReady
	SdkChecked
	PlatformInstalled
	InstructionsShown
	End
)

var stateNames = [...]string{
	Start:             "start",
	PlatformDetected:  "platform-detected",
	PrereqsChecked:    "prereqs-checked",
	SubmodulesReady:   "submodules-ready",
	SdkChecked:        "sdk-checked",
	PlatformInstalled: "platform-installed",
	InstructionsShown: "instructions-shown",
	End:               "end",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText renders the state by name in run reports.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
