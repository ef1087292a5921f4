package project

// State is a position in the scaffolding state machine.
type State int

const (
	StateStart State = iota
	StateDirCreated
	StateNPMInit
	StateScriptsInjected
	StateConfigCopied
	StateMocksCopied
	StateDepsInstalled
	StateSrcCopied
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateStart:           "START",
	StateDirCreated:      "DIR_CREATED",
	StateNPMInit:         "NPM_INIT",
	StateScriptsInjected: "SCRIPTS_INJECTED",
	StateConfigCopied:    "CONFIG_COPIED",
	StateMocksCopied:     "MOCKS_COPIED",
	StateDepsInstalled:   "DEPS_INSTALLED",
	StateSrcCopied:       "SRC_COPIED",
	StateDone:            "DONE",
	StateFailed:          "FAILED",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
