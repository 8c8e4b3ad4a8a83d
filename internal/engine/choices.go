package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rankery/rankery/internal/i18n"
	"github.com/rankery/rankery/pkg/domain"
	"github.com/rankery/rankery/pkg/observability"
)

// handleChoice routes a button click to the active flow. A token for a
// flow that is no longer in progress gets a guidance reply pointing back
// at the entry command; a token the current step cannot accept is a
// protocol error that terminates the flow.
func (e *Engine) handleChoice(ctx context.Context, in domain.Intent) (domain.Reply, error) {
	kind, verb, value, ok := parseToken(in.Token)
	if !ok {
		e.logger.Warn("malformed choice token", "user", in.UserID, "token", in.Token)
		return e.text(i18n.MsgIdleText), nil
	}

	fc, err := e.flows.Load(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveFlow) {
			return e.stale(kind), nil
		}
		return domain.Reply{}, fmt.Errorf("failed to load flow context: %w", err)
	}
	if fc.Kind != kind {
		// A button from an earlier, replaced flow. The active flow is
		// left untouched.
		return e.stale(kind), nil
	}

	switch kind {
	case domain.FlowAddItem:
		return e.addItemChoice(ctx, in.UserID, fc, verb, value)
	case domain.FlowViewList:
		return e.viewListChoice(ctx, in.UserID, fc, verb, value)
	case domain.FlowRateItem:
		return e.rateChoice(ctx, in.UserID, fc, verb, value)
	case domain.FlowViewRatings:
		return e.viewRatingsChoice(ctx, in.UserID, fc, verb, value)
	case domain.FlowDeleteList:
		return e.deleteListChoice(ctx, in.UserID, fc, verb, value)
	case domain.FlowDeleteItem:
		return e.deleteItemChoice(ctx, in.UserID, fc, verb, value)
	case domain.FlowDeleteRating:
		return e.deleteRatingChoice(ctx, in.UserID, fc, verb, value)
	case domain.FlowClearRatings:
		return e.clearRatingsChoice(ctx, in.UserID, fc, verb, value)
	default:
		return e.abort(ctx, in.UserID, fc)
	}
}

func (e *Engine) addItemChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	if fc.Step != domain.StepAwaitListChoice || verb != verbList {
		return e.abort(ctx, userID, fc)
	}
	fc.List = value
	fc.Step = domain.StepAwaitItemName
	if err := e.flows.Save(ctx, userID, fc); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
	}
	return e.text(i18n.MsgItemPrompt, value), nil
}

func (e *Engine) viewListChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	if fc.Step != domain.StepAwaitListChoice || verb != verbList {
		return e.abort(ctx, userID, fc)
	}
	body := e.renderItems(ctx, userID, value)
	if err := e.endFlow(ctx, userID, fc, observability.OutcomeCompleted); err != nil {
		return domain.Reply{}, err
	}
	return domain.Reply{Text: body}, nil
}

func (e *Engine) viewRatingsChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	if fc.Step != domain.StepAwaitListChoice || verb != verbList {
		return e.abort(ctx, userID, fc)
	}
	body := e.renderRatings(ctx, userID, value)
	if err := e.endFlow(ctx, userID, fc, observability.OutcomeCompleted); err != nil {
		return domain.Reply{}, err
	}
	return domain.Reply{Text: body}, nil
}

func (e *Engine) rateChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	switch {
	case fc.Step == domain.StepAwaitListChoice && verb == verbList:
		items := e.store.ItemNames(ctx, userID, value)
		if len(items) == 0 {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeShortCircuit); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgEmptyList, value), nil
		}
		fc.List = value
		fc.Step = domain.StepAwaitItemChoice
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgChooseItemRate, value)
		addNameKeyboard(&reply, domain.FlowRateItem, verbItem, items)
		return reply, nil

	case fc.Step == domain.StepAwaitItemChoice && verb == verbItem:
		fc.Item = value
		fc.Step = domain.StepAwaitScoreChoice
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgScorePrompt, value)
		addScoreKeyboard(&reply)
		return reply, nil

	case fc.Step == domain.StepAwaitScoreChoice && verb == verbScore:
		score, err := strconv.Atoi(value)
		if err != nil || score < domain.MinScore || score > domain.MaxScore {
			return e.abort(ctx, userID, fc)
		}
		fc.Score = score
		fc.Step = domain.StepAwaitComment
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		return e.text(i18n.MsgCommentPrompt, fc.Item, score), nil

	default:
		return e.abort(ctx, userID, fc)
	}
}

func (e *Engine) deleteListChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	switch {
	case fc.Step == domain.StepAwaitListChoice && verb == verbList:
		fc.List = value
		fc.Step = domain.StepAwaitConfirm
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgConfirmDeleteList, value)
		e.addConfirmKeyboard(&reply, domain.FlowDeleteList, i18n.MsgBtnYesDeleteList, i18n.MsgBtnNoKeepList)
		return reply, nil

	case fc.Step == domain.StepAwaitConfirm && verb == verbConfirm:
		if value == confirmNo {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeCancelled); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgDeleteListCancelled), nil
		}
		ok := e.store.DeleteList(ctx, userID, fc.List)
		outcome := observability.OutcomeCompleted
		if !ok {
			outcome = observability.OutcomeError
		}
		if err := e.endFlow(ctx, userID, fc, outcome); err != nil {
			return domain.Reply{}, err
		}
		if !ok {
			return e.text(i18n.MsgDeleteListFailed, fc.List), nil
		}
		return e.text(i18n.MsgListDeleted, fc.List), nil

	default:
		return e.abort(ctx, userID, fc)
	}
}

func (e *Engine) deleteItemChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	switch {
	case fc.Step == domain.StepAwaitListChoice && verb == verbList:
		items := e.store.ItemNames(ctx, userID, value)
		if len(items) == 0 {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeShortCircuit); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgEmptyList, value), nil
		}
		fc.List = value
		fc.Step = domain.StepAwaitItemChoice
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgChooseItemDelete, value)
		addNameKeyboard(&reply, domain.FlowDeleteItem, verbItem, items)
		return reply, nil

	case fc.Step == domain.StepAwaitItemChoice && verb == verbItem:
		fc.Item = value
		fc.Step = domain.StepAwaitConfirm
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgConfirmDeleteItem, value, fc.List)
		e.addConfirmKeyboard(&reply, domain.FlowDeleteItem, i18n.MsgBtnYesDeleteItem, i18n.MsgBtnNoKeepItem)
		return reply, nil

	case fc.Step == domain.StepAwaitConfirm && verb == verbConfirm:
		if value == confirmNo {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeCancelled); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgDeleteItemCancelled), nil
		}
		ok := e.store.DeleteItem(ctx, userID, fc.List, fc.Item)
		outcome := observability.OutcomeCompleted
		if !ok {
			outcome = observability.OutcomeError
		}
		if err := e.endFlow(ctx, userID, fc, outcome); err != nil {
			return domain.Reply{}, err
		}
		if !ok {
			return e.text(i18n.MsgDeleteItemFailed, fc.Item), nil
		}
		return e.text(i18n.MsgItemDeleted, fc.Item, fc.List), nil

	default:
		return e.abort(ctx, userID, fc)
	}
}

// ratedItems filters a list down to the items that have at least one
// rating, preserving insertion order.
func (e *Engine) ratedItems(ctx context.Context, userID, list string) []string {
	var rated []string
	for _, item := range e.store.ItemNames(ctx, userID, list) {
		if len(e.store.Ratings(ctx, userID, list, item)) > 0 {
			rated = append(rated, item)
		}
	}
	return rated
}

func (e *Engine) deleteRatingChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	switch {
	case fc.Step == domain.StepAwaitListChoice && verb == verbList:
		rated := e.ratedItems(ctx, userID, value)
		if len(rated) == 0 {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeShortCircuit); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgNoRatedItems, value), nil
		}
		fc.List = value
		fc.Step = domain.StepAwaitItemChoice
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgChooseItemDeleteRating, value)
		addNameKeyboard(&reply, domain.FlowDeleteRating, verbItem, rated)
		return reply, nil

	case fc.Step == domain.StepAwaitItemChoice && verb == verbItem:
		ratings := e.store.Ratings(ctx, userID, fc.List, value)
		if len(ratings) == 0 {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeShortCircuit); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgNoRatedItems, fc.List), nil
		}
		fc.Item = value
		fc.Step = domain.StepAwaitRatingChoice
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgChooseRatingDelete, value)
		e.addRatingKeyboard(&reply, ratings)
		return reply, nil

	case fc.Step == domain.StepAwaitRatingChoice && verb == verbIndex:
		index, err := strconv.Atoi(value)
		if err != nil {
			return e.abort(ctx, userID, fc)
		}
		ratings := e.store.Ratings(ctx, userID, fc.List, fc.Item)
		if index < 0 || index >= len(ratings) {
			// The sequence changed since the keyboard was offered.
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeError); err != nil {
				return domain.Reply{}, err
			}
			return e.stale(domain.FlowDeleteRating), nil
		}
		fc.RatingIndex = index
		fc.ClearAll = false
		fc.Step = domain.StepAwaitConfirm
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		info := e.ratingInfo(ratings[index])
		reply := e.text(i18n.MsgConfirmDeleteRating, info, fc.Item)
		e.addConfirmKeyboard(&reply, domain.FlowDeleteRating, i18n.MsgBtnYesDeleteRating, i18n.MsgBtnNoKeepRating)
		return reply, nil

	case fc.Step == domain.StepAwaitRatingChoice && verb == verbAll:
		fc.ClearAll = true
		fc.RatingIndex = -1
		fc.Step = domain.StepAwaitConfirm
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgConfirmDeleteAll, fc.Item)
		e.addConfirmKeyboard(&reply, domain.FlowDeleteRating, i18n.MsgBtnYesDeleteAll, i18n.MsgBtnNoKeepRatings)
		return reply, nil

	case fc.Step == domain.StepAwaitConfirm && verb == verbConfirm:
		if value == confirmNo {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeCancelled); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgDeleteRatingCancelled), nil
		}
		var ok bool
		var done i18n.Key
		if fc.ClearAll {
			ok = e.store.ClearRatings(ctx, userID, fc.List, fc.Item)
			done = i18n.MsgAllRatingsDeleted
		} else {
			ok = e.store.DeleteRating(ctx, userID, fc.List, fc.Item, fc.RatingIndex)
			done = i18n.MsgRatingDeleted
		}
		outcome := observability.OutcomeCompleted
		if !ok {
			outcome = observability.OutcomeError
		}
		if err := e.endFlow(ctx, userID, fc, outcome); err != nil {
			return domain.Reply{}, err
		}
		if !ok {
			return e.text(i18n.MsgDeleteRatingFailed), nil
		}
		return e.text(done, fc.Item), nil

	default:
		return e.abort(ctx, userID, fc)
	}
}

func (e *Engine) clearRatingsChoice(ctx context.Context, userID string, fc *domain.FlowContext, verb, value string) (domain.Reply, error) {
	switch {
	case fc.Step == domain.StepAwaitListChoice && verb == verbList:
		rated := e.ratedItems(ctx, userID, value)
		if len(rated) == 0 {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeShortCircuit); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgNoRatedItems, value), nil
		}
		fc.List = value
		fc.Step = domain.StepAwaitItemChoice
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgChooseItemClear, value)
		addNameKeyboard(&reply, domain.FlowClearRatings, verbItem, rated)
		return reply, nil

	case fc.Step == domain.StepAwaitItemChoice && verb == verbItem:
		fc.Item = value
		fc.Step = domain.StepAwaitConfirm
		if err := e.flows.Save(ctx, userID, fc); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to save flow context: %w", err)
		}
		reply := e.text(i18n.MsgConfirmClear, value)
		e.addConfirmKeyboard(&reply, domain.FlowClearRatings, i18n.MsgBtnYesClear, i18n.MsgBtnNoKeepClear)
		return reply, nil

	case fc.Step == domain.StepAwaitConfirm && verb == verbConfirm:
		if value == confirmNo {
			if err := e.endFlow(ctx, userID, fc, observability.OutcomeCancelled); err != nil {
				return domain.Reply{}, err
			}
			return e.text(i18n.MsgClearCancelled), nil
		}
		ok := e.store.ClearRatings(ctx, userID, fc.List, fc.Item)
		outcome := observability.OutcomeCompleted
		if !ok {
			outcome = observability.OutcomeError
		}
		if err := e.endFlow(ctx, userID, fc, outcome); err != nil {
			return domain.Reply{}, err
		}
		if !ok {
			return e.text(i18n.MsgClearFailed, fc.Item), nil
		}
		return e.text(i18n.MsgRatingsCleared, fc.Item), nil

	default:
		return e.abort(ctx, userID, fc)
	}
}

// ratingInfo formats a rating for confirmation messages.
func (e *Engine) ratingInfo(r domain.Rating) string {
	if r.Comment == "" {
		return e.cat.Format(i18n.MsgRatingInfo, r.Score)
	}
	return e.cat.Format(i18n.MsgRatingInfoComment, r.Score, r.Comment)
}
