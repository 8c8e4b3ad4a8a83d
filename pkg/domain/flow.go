package domain

// FlowKind names a multi-step conversation. Each kind's value equals its
// entry command name, so guidance replies can point at "/<kind>" and the
// engine can map an entry command straight to its flow.
type FlowKind string

const (
	FlowCreateList   FlowKind = "newlist"
	FlowAddItem      FlowKind = "additem"
	FlowViewList     FlowKind = "viewlist"
	FlowRateItem     FlowKind = "rate"
	FlowViewRatings  FlowKind = "ratings"
	FlowDeleteList   FlowKind = "deletelist"
	FlowDeleteItem   FlowKind = "deleteitem"
	FlowDeleteRating FlowKind = "deleterating"
	FlowClearRatings FlowKind = "clearratings"
)

// FlowStep is the current waiting position inside a flow. A flow with no
// stored context is terminal; there is no explicit terminal step.
type FlowStep string

const (
	StepAwaitListName     FlowStep = "await_list_name"
	StepAwaitListChoice   FlowStep = "await_list_choice"
	StepAwaitItemName     FlowStep = "await_item_name"
	StepAwaitItemChoice   FlowStep = "await_item_choice"
	StepAwaitScoreChoice  FlowStep = "await_score_choice"
	StepAwaitComment      FlowStep = "await_comment"
	StepAwaitRatingChoice FlowStep = "await_rating_choice"
	StepAwaitConfirm      FlowStep = "await_confirm"
)

// FlowContext is the transient per-user state of the active conversation.
// It accumulates the user's selections until the flow completes or is
// cancelled, at which point it is discarded.
type FlowContext struct {
	Kind FlowKind `json:"kind"`
	Step FlowStep `json:"step"`

	// Accumulated selections. Zero values mean "not chosen yet".
	List        string `json:"list,omitempty"`
	Item        string `json:"item,omitempty"`
	Score       int    `json:"score"`
	RatingIndex int    `json:"rating_index"`
	ClearAll    bool   `json:"clear_all,omitempty"`
}

// NewFlowContext starts a fresh context for the given flow at its first
// waiting step.
func NewFlowContext(kind FlowKind, step FlowStep) *FlowContext {
	return &FlowContext{Kind: kind, Step: step, RatingIndex: -1}
}

// Clone returns an independent copy of the context.
func (fc *FlowContext) Clone() *FlowContext {
	if fc == nil {
		return nil
	}
	cp := *fc
	return &cp
}
