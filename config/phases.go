package config

// PhaseID is the mutually exclusive gameplay phase of the play mode
type PhaseID int

const (
	PhaseIntro PhaseID = iota
	PhasePlaying
	PhaseDying
	PhaseEnded
)

var phaseNames = map[PhaseID]string{
	PhaseIntro:   "intro",
	PhasePlaying: "playing",
	PhaseDying:   "dying",
	PhaseEnded:   "ended",
}

func (p PhaseID) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// CanTransition reports whether moving from p to next respects the
// Intro -> Playing -> {Dying -> Ended | Ended} ordering.
func (p PhaseID) CanTransition(next PhaseID) bool {
	switch p {
	case PhaseIntro:
		return next == PhasePlaying
	case PhasePlaying:
		return next == PhaseDying || next == PhaseEnded
	case PhaseDying:
		return next == PhaseEnded
	}
	return false
}
