package beast

// State is the engine's state machine position.
type State int

const (
	StateIntro State = iota
	StatePlaying
	StateDying
	StateKilling
	StateHelp
	StateLevelComplete
	StateGameOver
	StateWon
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateKilling:
		return "killing"
	case StateHelp:
		return "help"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Active reports whether the level clock runs and beasts move. Dying and
// Killing only flash the board; play continues underneath.
func (s State) Active() bool {
	return s == StatePlaying || s == StateDying || s == StateKilling
}

// Beat counts ticks in a cycle of five. Beasts move on beat Five; the
// Dying and Killing flashes use their own beat count.
type Beat int

const (
	BeatOne Beat = iota + 1
	BeatTwo
	BeatThree
	BeatFour
	BeatFive
)

// Next returns the following beat, wrapping Five back to One.
func (b Beat) Next() Beat {
	if b >= BeatFive {
		return BeatOne
	}
	return b + 1
}

// HelpPage indexes the help screens.
type HelpPage int

const (
	HelpGeneral HelpPage = iota
	HelpBeasts
	HelpScoring

	helpPages
)

// Next returns the following page, wrapping around.
func (p HelpPage) Next() HelpPage {
	return (p + 1) % helpPages
}

// Prev returns the previous page, wrapping around.
func (p HelpPage) Prev() HelpPage {
	return (p + helpPages - 1) % helpPages
}
