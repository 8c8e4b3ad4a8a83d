package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rankery/rankery/internal/i18n"
	"github.com/rankery/rankery/pkg/domain"
	"github.com/rankery/rankery/pkg/observability"
)

// startFlow begins (or restarts) a flow for the user. Entry replaces any
// previous context, whatever its kind. Flows whose first selection step
// would offer an empty candidate set short-circuit to a guidance reply
// without creating a context.
func (e *Engine) startFlow(ctx context.Context, userID string, kind domain.FlowKind) (domain.Reply, error) {
	if kind == domain.FlowCreateList {
		fc := domain.NewFlowContext(kind, domain.StepAwaitListName)
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		return e.text(i18n.MsgCreateListPrompt), nil
	}

	// Every other flow starts by choosing one of the user's lists.
	lists := e.store.Lists(ctx, userID)
	if len(lists) == 0 {
		e.metrics.FlowEnded(string(kind), observability.OutcomeShortCircuit)
		return e.text(i18n.MsgNoListsYet), nil
	}

	fc := domain.NewFlowContext(kind, domain.StepAwaitListChoice)
	if err := e.flows.Save(ctx, userID, fc); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
	}

	reply := e.text(listPromptKey(kind))
	addNameKeyboard(&reply, kind, verbList, lists)
	return reply, nil
}

// listPromptKey maps a flow to its "choose a list" prompt.
func listPromptKey(kind domain.FlowKind) i18n.Key {
	switch kind {
	case domain.FlowAddItem:
		return i18n.MsgChooseListAdd
	case domain.FlowViewList:
		return i18n.MsgChooseListView
	case domain.FlowRateItem:
		return i18n.MsgChooseListRate
	case domain.FlowViewRatings:
		return i18n.MsgChooseListRatings
	case domain.FlowDeleteList:
		return i18n.MsgChooseListDelete
	case domain.FlowDeleteItem:
		return i18n.MsgChooseListDeleteItem
	case domain.FlowDeleteRating:
		return i18n.MsgChooseListDeleteRating
	case domain.FlowClearRatings:
		return i18n.MsgChooseListClear
	default:
		return i18n.MsgChooseListView
	}
}

// handleText routes free text to the step waiting for it: a list name, an
// item name, or a rating comment. Text in any other position is a
// protocol error that terminates the flow.
func (e *Engine) handleText(ctx context.Context, in domain.Intent) (domain.Reply, error) {
	fc, err := e.flows.Load(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveFlow) {
			return e.text(i18n.MsgIdleText), nil
		}
		return domain.Reply{}, fmt.Errorf("failed to load flow context: %w", err)
	}

	switch {
	case fc.Kind == domain.FlowCreateList && fc.Step == domain.StepAwaitListName:
		return e.createListNamed(ctx, in.UserID, fc, in.Text)
	case fc.Kind == domain.FlowAddItem && fc.Step == domain.StepAwaitItemName:
		return e.addItemNamed(ctx, in.UserID, fc, in.Text)
	case fc.Kind == domain.FlowRateItem && fc.Step == domain.StepAwaitComment:
		return e.finishRating(ctx, in.UserID, fc, in.Text)
	default:
		return e.abort(ctx, in.UserID, fc)
	}
}

// createListNamed completes the create-list flow. A duplicate name
// re-prompts in the same step.
func (e *Engine) createListNamed(ctx context.Context, userID string, fc *domain.FlowContext, name string) (domain.Reply, error) {
	if e.store.ListExists(ctx, userID, name) {
		return e.text(i18n.MsgDuplicateList, name), nil
	}
	e.store.CreateList(ctx, userID, name)
	if err := e.endFlow(ctx, userID, fc, observability.OutcomeCompleted); err != nil {
		return domain.Reply{}, err
	}
	return e.text(i18n.MsgListCreated, name), nil
}

// addItemNamed completes the add-item flow. A duplicate item re-prompts.
func (e *Engine) addItemNamed(ctx context.Context, userID string, fc *domain.FlowContext, item string) (domain.Reply, error) {
	if fc.List == "" {
		if err := e.endFlow(ctx, userID, fc, observability.OutcomeError); err != nil {
			return domain.Reply{}, err
		}
		return e.stale(domain.FlowAddItem), nil
	}
	if e.store.ItemExists(ctx, userID, fc.List, item) {
		return e.text(i18n.MsgDuplicateItem, item, fc.List), nil
	}
	e.store.AddItem(ctx, userID, fc.List, item)
	if err := e.endFlow(ctx, userID, fc, observability.OutcomeCompleted); err != nil {
		return domain.Reply{}, err
	}
	return e.text(i18n.MsgItemAdded, item, fc.List), nil
}

// finishRating stores the pending rating with the given comment (which may
// be empty, via /skip) and completes the rate flow.
func (e *Engine) finishRating(ctx context.Context, userID string, fc *domain.FlowContext, comment string) (domain.Reply, error) {
	ok := e.store.AddRating(ctx, userID, fc.List, fc.Item, domain.Rating{Score: fc.Score, Comment: comment})
	if !ok {
		// The item disappeared mid-flow or the context is damaged.
		if err := e.endFlow(ctx, userID, fc, observability.OutcomeError); err != nil {
			return domain.Reply{}, err
		}
		return e.stale(domain.FlowRateItem), nil
	}
	if err := e.endFlow(ctx, userID, fc, observability.OutcomeCompleted); err != nil {
		return domain.Reply{}, err
	}
	if comment == "" {
		return e.text(i18n.MsgRatedNoComment, fc.Item, fc.Score), nil
	}
	return e.text(i18n.MsgRatedWithComment, fc.Item, fc.Score, comment), nil
}

// skip completes the rate flow without a comment. Outside the comment
// step there is nothing to skip.
func (e *Engine) skip(ctx context.Context, in domain.Intent) (domain.Reply, error) {
	fc, err := e.flows.Load(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveFlow) {
			return e.text(i18n.MsgSkipNoFlow), nil
		}
		return domain.Reply{}, fmt.Errorf("failed to load flow context: %w", err)
	}
	if fc.Kind != domain.FlowRateItem || fc.Step != domain.StepAwaitComment {
		return e.text(i18n.MsgSkipNoFlow), nil
	}
	return e.finishRating(ctx, in.UserID, fc, "")
}
