package domain

// IntentKind discriminates the three event shapes the transport can deliver.
type IntentKind string

const (
	// IntentCommand is a typed command, e.g. "/rate".
	IntentCommand IntentKind = "command"
	// IntentText is a free-text message.
	IntentText IntentKind = "text"
	// IntentChoice is a button click carrying an opaque token from a
	// bounded set offered in a previous reply.
	IntentChoice IntentKind = "choice"
)

// ChatKind classifies the conversation context an intent arrived from.
type ChatKind string

const (
	ChatPrivate ChatKind = "private"
	ChatGroup   ChatKind = "group"
)

// Chat identifies the conversation an intent belongs to.
type Chat struct {
	ID   string   `json:"id"`
	Kind ChatKind `json:"kind"`
}

// Intent is a normalized inbound event delivered by the transport collaborator.
// Exactly one of Command/Arg, Text, or Token is meaningful, selected by Kind.
type Intent struct {
	UserID  string     `json:"user_id"`
	Chat    Chat       `json:"chat"`
	Kind    IntentKind `json:"kind"`
	Command string     `json:"command,omitempty"`
	Arg     string     `json:"arg,omitempty"`
	Text    string     `json:"text,omitempty"`
	Token   string     `json:"token,omitempty"`
}

// NewCommand builds a command intent. The name is expected without the
// leading slash; Arg carries any trailing free text.
func NewCommand(userID string, chat Chat, name, arg string) Intent {
	return Intent{UserID: userID, Chat: chat, Kind: IntentCommand, Command: name, Arg: arg}
}

// NewText builds a free-text intent.
func NewText(userID string, chat Chat, body string) Intent {
	return Intent{UserID: userID, Chat: chat, Kind: IntentText, Text: body}
}

// NewChoice builds a choice intent from a token offered in a previous reply.
func NewChoice(userID string, chat Chat, token string) Intent {
	return Intent{UserID: userID, Chat: chat, Kind: IntentChoice, Token: token}
}

// Command names recognized by the engine. Inbound names may carry a
// leading slash or mixed casing; they are normalized before the access
// policy and dispatch, so these constants are the canonical forms.
const (
	CmdStart        = "start"
	CmdHelp         = "help"
	CmdLists        = "lists"
	CmdNewList      = "newlist"
	CmdAddItem      = "additem"
	CmdViewList     = "viewlist"
	CmdRate         = "rate"
	CmdRatings      = "ratings"
	CmdDeleteList   = "deletelist"
	CmdDeleteItem   = "deleteitem"
	CmdDeleteRating = "deleterating"
	CmdClearRatings = "clearratings"
	CmdCancel       = "cancel"
	CmdSkip         = "skip"
)
