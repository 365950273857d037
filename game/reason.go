package game

import "fmt"

// Reason enumerates why a submission was turned down. Exactly one reason is
// reported per failed submission: the first rule violated, in rule order.
type Reason int

const (
	ReasonEmpty Reason = iota
	ReasonTooShort
	ReasonSameAsRoot
	ReasonAlreadyUsed
	ReasonNotSpellable
	ReasonNotRecognized
)

func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonTooShort:
		return "too_short"
	case ReasonSameAsRoot:
		return "same_as_root"
	case ReasonAlreadyUsed:
		return "already_used"
	case ReasonNotSpellable:
		return "not_spellable"
	case ReasonNotRecognized:
		return "not_recognized"
	}
	return "unknown"
}

// Rejection is the expected-failure outcome of Submit. It is a value, not a
// fault: session state is untouched and the player may retry immediately.
// Callers unpack it with errors.As.
type Rejection struct {
	Word      string
	Root      string
	Reason    Reason
	MinLength int
}

// Title is the stable, user-facing headline for this rejection.
func (r *Rejection) Title() string {
	switch r.Reason {
	case ReasonEmpty:
		return "Empty word"
	case ReasonTooShort:
		return "Word too short"
	case ReasonSameAsRoot:
		return "Word is the root word"
	case ReasonAlreadyUsed:
		return "Word used already"
	case ReasonNotSpellable:
		return "Word not possible"
	case ReasonNotRecognized:
		return "Word not recognized"
	}
	return "Word rejected"
}

// Message is the stable, user-facing explanation for this rejection.
func (r *Rejection) Message() string {
	switch r.Reason {
	case ReasonEmpty:
		return "Actually enter a word"
	case ReasonTooShort:
		return fmt.Sprintf("Words must be at least %d letters long", r.MinLength)
	case ReasonSameAsRoot:
		return "You can't just use the root word!"
	case ReasonAlreadyUsed:
		return "Be more original"
	case ReasonNotSpellable:
		return fmt.Sprintf("You can't spell that word from '%s'!", r.Root)
	case ReasonNotRecognized:
		return "You can't just make them up, you know!"
	}
	return "That word was rejected"
}

func (r *Rejection) Error() string {
	return r.Title() + ": " + r.Message()
}
