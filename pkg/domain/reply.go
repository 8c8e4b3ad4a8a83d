package domain

// Choice is a single selectable button: a human label and the opaque token
// the transport must echo back when the user picks it.
type Choice struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// Reply is the engine's outbound message: text plus an optional keyboard of
// choices grouped into rows. An empty Choices slice means plain text.
type Reply struct {
	Text    string     `json:"text"`
	Choices [][]Choice `json:"choices,omitempty"`
}

// AddRow appends one row of choices to the reply keyboard.
func (r *Reply) AddRow(choices ...Choice) {
	r.Choices = append(r.Choices, choices)
}

// HasChoices reports whether the reply carries a keyboard.
func (r Reply) HasChoices() bool {
	return len(r.Choices) > 0
}
