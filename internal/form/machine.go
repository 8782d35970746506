package form

import "github.com/sandeepkv93/taskdash/internal/store"

type Phase int

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

type State struct {
	Phase Phase
	Draft Draft
	Err   error
}

func Initial() State {
	return State{Phase: Closed, Draft: NewDraft()}
}

func (s State) IsOpen() bool {
	return s.Phase == Open
}

type ActionKind int

const (
	ActionOpen ActionKind = iota
	ActionEdit
	ActionSubmit
	ActionCancel
	ActionEscape
)

type Action struct {
	Kind  ActionKind
	Draft Draft
}

func OpenAction() Action { return Action{Kind: ActionOpen} }

func EditAction(d Draft) Action { return Action{Kind: ActionEdit, Draft: d} }

func SubmitAction() Action { return Action{Kind: ActionSubmit} }

func CancelAction() Action { return Action{Kind: ActionCancel} }

func EscapeAction() Action { return Action{Kind: ActionEscape} }

// Transition applies a to s. The returned input is non-nil only when a
// submit succeeded and the caller must hand it to the store.
func Transition(s State, a Action) (State, *store.Input) {
	if s.Phase == Closed {
		if a.Kind == ActionOpen {
			return State{Phase: Open, Draft: NewDraft()}, nil
		}
		return s, nil
	}

	switch a.Kind {
	case ActionEdit:
		s.Draft = a.Draft
		return s, nil
	case ActionSubmit:
		in, err := Validate(s.Draft)
		if err != nil {
			s.Err = err
			return s, nil
		}
		return Initial(), &in
	case ActionCancel, ActionEscape:
		return Initial(), nil
	default:
		return s, nil
	}
}
