package engine

import (
	"context"
	"strconv"
	"strings"

	"github.com/rankery/rankery/internal/i18n"
	"github.com/rankery/rankery/pkg/domain"
)

// Choice token verbs. A token is "<flow>:<verb>:<value>"; the value is
// opaque and may itself contain separators, so parsing splits at most
// twice.
const (
	verbList    = "list"
	verbItem    = "item"
	verbScore   = "score"
	verbIndex   = "idx"
	verbAll     = "all"
	verbConfirm = "confirm"

	confirmYes = "yes"
	confirmNo  = "no"
)

const tokenSep = ":"

// buttonCommentLimit bounds how much of a comment fits on a button label.
const buttonCommentLimit = 20

func token(kind domain.FlowKind, verb, value string) string {
	return string(kind) + tokenSep + verb + tokenSep + value
}

// parseToken splits a choice token. ok is false for malformed tokens.
func parseToken(tok string) (kind domain.FlowKind, verb, value string, ok bool) {
	parts := strings.SplitN(tok, tokenSep, 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return "", "", "", false
	}
	return domain.FlowKind(parts[0]), parts[1], parts[2], true
}

// addNameKeyboard appends one button per name, one per row, mirroring the
// transport's vertical inline keyboards.
func addNameKeyboard(r *domain.Reply, kind domain.FlowKind, verb string, names []string) {
	for _, name := range names {
		r.AddRow(domain.Choice{Label: name, Token: token(kind, verb, name)})
	}
}

// addScoreKeyboard appends the 11 score buttons 0..10 in rows of four.
func addScoreKeyboard(r *domain.Reply) {
	row := make([]domain.Choice, 0, 4)
	for i := domain.MinScore; i <= domain.MaxScore; i++ {
		label := strconv.Itoa(i)
		row = append(row, domain.Choice{Label: label, Token: token(domain.FlowRateItem, verbScore, label)})
		if len(row) == 4 || i == domain.MaxScore {
			r.AddRow(row...)
			row = make([]domain.Choice, 0, 4)
		}
	}
}

// addConfirmKeyboard appends the two-button confirm/cancel gate.
func (e *Engine) addConfirmKeyboard(r *domain.Reply, kind domain.FlowKind, yesKey, noKey i18n.Key) {
	r.AddRow(domain.Choice{Label: e.cat.Get(yesKey), Token: token(kind, verbConfirm, confirmYes)})
	r.AddRow(domain.Choice{Label: e.cat.Get(noKey), Token: token(kind, verbConfirm, confirmNo)})
}

// addRatingKeyboard appends one button per rating, labelled with the score
// and a shortened comment, plus the delete-ALL button.
func (e *Engine) addRatingKeyboard(r *domain.Reply, ratings []domain.Rating) {
	for i, rt := range ratings {
		label := e.cat.Format(i18n.MsgRatingInfo, rt.Score)
		if rt.Comment != "" {
			label += " - \"" + shorten(rt.Comment, buttonCommentLimit) + "\""
		}
		r.AddRow(domain.Choice{Label: label, Token: token(domain.FlowDeleteRating, verbIndex, strconv.Itoa(i))})
	}
	r.AddRow(domain.Choice{
		Label: e.cat.Get(i18n.MsgBtnDeleteAllRatings),
		Token: token(domain.FlowDeleteRating, verbAll, ""),
	})
}

// renderItems builds the /viewlist body: every item with its average, or
// an unrated placeholder.
func (e *Engine) renderItems(ctx context.Context, userID, list string) string {
	names := e.store.ItemNames(ctx, userID, list)
	if len(names) == 0 {
		return e.cat.Format(i18n.MsgEmptyList, list)
	}
	var b strings.Builder
	b.WriteString(e.cat.Format(i18n.MsgItemsHeader, list))
	for i, item := range names {
		b.WriteString("\n")
		if ratings := e.store.Ratings(ctx, userID, list, item); len(ratings) > 0 {
			b.WriteString(e.cat.Format(i18n.MsgItemLineRated, i+1, item, domain.Average(ratings)))
		} else {
			b.WriteString(e.cat.Format(i18n.MsgItemLineUnrated, i+1, item))
		}
	}
	return b.String()
}

// renderRatings builds the /ratings body: per item, the average and every
// rating with its comment. The result honors the reply limit.
func (e *Engine) renderRatings(ctx context.Context, userID, list string) string {
	names := e.store.ItemNames(ctx, userID, list)
	if len(names) == 0 {
		return e.cat.Format(i18n.MsgEmptyList, list)
	}
	var b strings.Builder
	b.WriteString(e.cat.Format(i18n.MsgRatingsHeader, list))
	b.WriteString("\n")
	for _, item := range names {
		ratings := e.store.Ratings(ctx, userID, list, item)
		if len(ratings) == 0 {
			b.WriteString(e.cat.Format(i18n.MsgRatingsItemUnrated, item))
			b.WriteString("\n")
			continue
		}
		b.WriteString(e.cat.Format(i18n.MsgRatingsItemBullet, item))
		b.WriteString("\n")
		b.WriteString(e.cat.Format(i18n.MsgRatingsAverage, domain.Average(ratings)))
		b.WriteString("\n")
		b.WriteString(e.cat.Get(i18n.MsgRatingsAllLabel))
		b.WriteString("\n")
		for i, rt := range ratings {
			if rt.Comment != "" {
				b.WriteString(e.cat.Format(i18n.MsgRatingLineComment, i+1, rt.Score, rt.Comment))
			} else {
				b.WriteString(e.cat.Format(i18n.MsgRatingLine, i+1, rt.Score))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return e.truncate(strings.TrimRight(b.String(), "\n"))
}

// truncate enforces the reply limit, cutting on a rune boundary and
// appending the truncation marker.
func (e *Engine) truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= e.replyLimit {
		return s
	}
	marker := e.cat.Get(i18n.MsgTruncated)
	keep := e.replyLimit - len([]rune(marker))
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + marker
}

// shorten trims a string to limit runes, marking the cut with an ellipsis.
func shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
