package entities

// ActionState is the mutating-action state of a quotation detail view.
// Any state other than Idle disables every mutating control of the view.
type ActionState string

const (
	ActionStateIdle         ActionState = "IDLE"
	ActionStateRegenerating ActionState = "REGENERATING"
	ActionStateConfirming   ActionState = "CONFIRMING"
)

func (s ActionState) IsIdle() bool {
	return s == "" || s == ActionStateIdle
}
