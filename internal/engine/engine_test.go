package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankery/rankery/internal/i18n"
	"github.com/rankery/rankery/pkg/adapters/memory"
	"github.com/rankery/rankery/pkg/domain"
)

var (
	private = domain.Chat{ID: "c1", Kind: domain.ChatPrivate}
	group   = domain.Chat{ID: "g1", Kind: domain.ChatGroup}
)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *memory.Catalog, *memory.FlowStore) {
	t.Helper()
	store := memory.NewCatalog()
	flows := memory.NewFlowStore()
	return New(store, flows, i18n.For("en"), opts...), store, flows
}

func cmd(name string) domain.Intent   { return domain.NewCommand("u1", private, name, "") }
func text(body string) domain.Intent  { return domain.NewText("u1", private, body) }
func choice(tok string) domain.Intent { return domain.NewChoice("u1", private, tok) }

func mustHandle(t *testing.T, e *Engine, in domain.Intent) domain.Reply {
	t.Helper()
	reply, err := e.Handle(context.Background(), in)
	require.NoError(t, err)
	return reply
}

func assertNoFlow(t *testing.T, flows *memory.FlowStore) {
	t.Helper()
	_, err := flows.Load(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrNoActiveFlow)
}

func TestHelp_AdminSection(t *testing.T) {
	e, _, _ := newTestEngine(t)
	cat := i18n.For("en")

	// Private chats carry the admin capability by default.
	reply := mustHandle(t, e, cmd(domain.CmdStart))
	assert.Contains(t, reply.Text, cat.Get(i18n.MsgAdminSection))

	reply = mustHandle(t, e, domain.NewCommand("u1", group, domain.CmdHelp, ""))
	assert.NotContains(t, reply.Text, "/newlist")
}

func TestUnknownCommand(t *testing.T) {
	e, _, _ := newTestEngine(t)
	reply := mustHandle(t, e, cmd("frobnicate"))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgUnknownCommand), reply.Text)
}

func TestLists(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()

	reply := mustHandle(t, e, cmd(domain.CmdLists))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgNoListsYet), reply.Text)

	store.CreateList(ctx, "u1", "Movies")
	store.CreateList(ctx, "u1", "Books")

	reply = mustHandle(t, e, cmd(domain.CmdLists))
	assert.Contains(t, reply.Text, "1. Movies")
	assert.Contains(t, reply.Text, "2. Books")
}

func TestCreateListFlow(t *testing.T) {
	e, store, flows := newTestEngine(t)
	cat := i18n.For("en")

	reply := mustHandle(t, e, cmd(domain.CmdNewList))
	assert.Equal(t, cat.Get(i18n.MsgCreateListPrompt), reply.Text)

	reply = mustHandle(t, e, text("Movies"))
	assert.Equal(t, cat.Format(i18n.MsgListCreated, "Movies"), reply.Text)
	assert.True(t, store.ListExists(context.Background(), "u1", "Movies"))
	assertNoFlow(t, flows)
}

func TestCreateListFlow_WithExistingLists(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.CreateList(ctx, "u1", "Movies")

	// Entry goes straight to the name prompt, never to a list chooser.
	reply := mustHandle(t, e, cmd(domain.CmdNewList))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgCreateListPrompt), reply.Text)
	assert.False(t, reply.HasChoices())

	fc, err := flows.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowCreateList, fc.Kind)
	assert.Equal(t, domain.StepAwaitListName, fc.Step)

	reply = mustHandle(t, e, text("Books"))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgListCreated, "Books"), reply.Text)
	assert.Equal(t, []string{"Movies", "Books"}, store.Lists(ctx, "u1"))
	assertNoFlow(t, flows)
}

func TestCreateListFlow_DuplicateReprompts(t *testing.T) {
	e, store, flows := newTestEngine(t)
	store.CreateList(context.Background(), "u1", "Movies")

	mustHandle(t, e, cmd(domain.CmdNewList))
	reply := mustHandle(t, e, text("Movies"))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgDuplicateList, "Movies"), reply.Text)

	// Still in the same step: a fresh name now completes the flow.
	fc, err := flows.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepAwaitListName, fc.Step)

	reply = mustHandle(t, e, text("Books"))
	assert.Contains(t, reply.Text, "Books")
	assertNoFlow(t, flows)
}

func TestEntryWithNoLists_ShortCircuits(t *testing.T) {
	e, _, flows := newTestEngine(t)

	for _, name := range []string{
		domain.CmdAddItem, domain.CmdViewList, domain.CmdRate, domain.CmdRatings,
		domain.CmdDeleteList, domain.CmdDeleteItem, domain.CmdDeleteRating, domain.CmdClearRatings,
	} {
		reply := mustHandle(t, e, cmd(name))
		assert.Equal(t, i18n.For("en").Get(i18n.MsgNoListsYet), reply.Text, name)
		assert.False(t, reply.HasChoices(), name)
		assertNoFlow(t, flows)
	}
}

func TestAddItemFlow(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.CreateList(ctx, "u1", "Movies")

	reply := mustHandle(t, e, cmd(domain.CmdAddItem))
	require.True(t, reply.HasChoices())
	assert.Equal(t, "Movies", reply.Choices[0][0].Label)

	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgItemPrompt, "Movies"), reply.Text)

	reply = mustHandle(t, e, text("Dune"))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgItemAdded, "Dune", "Movies"), reply.Text)
	assert.True(t, store.ItemExists(ctx, "u1", "Movies", "Dune"))
	assertNoFlow(t, flows)
}

func TestAddItemFlow_DuplicateReprompts(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")

	reply := mustHandle(t, e, cmd(domain.CmdAddItem))
	mustHandle(t, e, choice(reply.Choices[0][0].Token))

	reply = mustHandle(t, e, text("Dune"))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgDuplicateItem, "Dune", "Movies"), reply.Text)

	reply = mustHandle(t, e, text("Arrival"))
	assert.Contains(t, reply.Text, "Arrival")
	assertNoFlow(t, flows)

	assert.Equal(t, []string{"Dune", "Arrival"}, store.ItemNames(ctx, "u1", "Movies"))
}

func TestRateFlow_SkipComment(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")

	reply := mustHandle(t, e, cmd(domain.CmdRate))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))

	// Item keyboard, then the 0..10 score keyboard in rows of four.
	require.True(t, reply.HasChoices())
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	require.Len(t, reply.Choices, 3)
	assert.Len(t, reply.Choices[0], 4)
	assert.Len(t, reply.Choices[1], 4)
	assert.Len(t, reply.Choices[2], 3)
	assert.Equal(t, "0", reply.Choices[0][0].Label)
	assert.Equal(t, "10", reply.Choices[2][2].Label)

	// Pick 9.
	reply = mustHandle(t, e, choice(reply.Choices[2][1].Token))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgCommentPrompt, "Dune", 9), reply.Text)

	reply = mustHandle(t, e, cmd(domain.CmdSkip))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgRatedNoComment, "Dune", 9), reply.Text)
	assertNoFlow(t, flows)

	got := store.Ratings(ctx, "u1", "Movies", "Dune")
	require.Len(t, got, 1)
	assert.Equal(t, domain.Rating{Score: 9, Comment: ""}, got[0])
	assert.Equal(t, 9.0, store.AverageRating(ctx, "u1", "Movies", "Dune"))
}

func TestRateFlow_WithComment(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")

	reply := mustHandle(t, e, cmd(domain.CmdRate))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	mustHandle(t, e, choice(token(domain.FlowRateItem, verbScore, "7")))

	reply = mustHandle(t, e, text("great soundtrack"))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgRatedWithComment, "Dune", 7, "great soundtrack"), reply.Text)

	got := store.Ratings(ctx, "u1", "Movies", "Dune")
	require.Len(t, got, 1)
	assert.Equal(t, domain.Rating{Score: 7, Comment: "great soundtrack"}, got[0])
}

func TestRateFlow_EmptyListShortCircuits(t *testing.T) {
	e, store, flows := newTestEngine(t)
	store.CreateList(context.Background(), "u1", "Movies")

	reply := mustHandle(t, e, cmd(domain.CmdRate))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgEmptyList, "Movies"), reply.Text)
	assertNoFlow(t, flows)
}

func TestRateFlow_ForgedScoreAborts(t *testing.T) {
	e, store, flows := newTestEngine(t)
	store.AddItem(context.Background(), "u1", "Movies", "Dune")

	reply := mustHandle(t, e, cmd(domain.CmdRate))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	mustHandle(t, e, choice(reply.Choices[0][0].Token))

	// A score outside 0..10 can only come from a forged token.
	reply = mustHandle(t, e, choice(token(domain.FlowRateItem, verbScore, "11")))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgUnexpectedInput), reply.Text)
	assertNoFlow(t, flows)
	assert.Empty(t, store.Ratings(context.Background(), "u1", "Movies", "Dune"))
}

func TestCancel(t *testing.T) {
	e, _, flows := newTestEngine(t)
	cat := i18n.For("en")

	reply := mustHandle(t, e, cmd(domain.CmdCancel))
	assert.Equal(t, cat.Get(i18n.MsgNothingToCancel), reply.Text)

	mustHandle(t, e, cmd(domain.CmdNewList))
	reply = mustHandle(t, e, cmd(domain.CmdCancel))
	assert.Equal(t, cat.Get(i18n.MsgCancelled), reply.Text)
	assertNoFlow(t, flows)
}

func TestSkipOutsideCommentStep(t *testing.T) {
	e, _, _ := newTestEngine(t)
	cat := i18n.For("en")

	reply := mustHandle(t, e, cmd(domain.CmdSkip))
	assert.Equal(t, cat.Get(i18n.MsgSkipNoFlow), reply.Text)

	mustHandle(t, e, cmd(domain.CmdNewList))
	reply = mustHandle(t, e, cmd(domain.CmdSkip))
	assert.Equal(t, cat.Get(i18n.MsgSkipNoFlow), reply.Text)

	// The create flow survives the stray /skip.
	reply = mustHandle(t, e, text("Movies"))
	assert.Contains(t, reply.Text, "Movies")
}

func TestEntryReplacesActiveFlow(t *testing.T) {
	e, store, flows := newTestEngine(t)
	store.AddItem(context.Background(), "u1", "Movies", "Dune")

	oldReply := mustHandle(t, e, cmd(domain.CmdAddItem))
	mustHandle(t, e, cmd(domain.CmdRate))

	fc, err := flows.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowRateItem, fc.Kind)

	// A button from the replaced flow gets guidance; the rate flow stays.
	reply := mustHandle(t, e, choice(oldReply.Choices[0][0].Token))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgStaleContext, "additem"), reply.Text)

	fc, err = flows.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowRateItem, fc.Kind)
}

func TestStaleTokenWithoutFlow(t *testing.T) {
	e, _, _ := newTestEngine(t)
	reply := mustHandle(t, e, choice(token(domain.FlowRateItem, verbList, "Movies")))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgStaleContext, "rate"), reply.Text)
}

func TestMalformedToken(t *testing.T) {
	e, _, _ := newTestEngine(t)
	for _, tok := range []string{"", "rate", "rate:score", ":x:y"} {
		reply := mustHandle(t, e, choice(tok))
		assert.Equal(t, i18n.For("en").Get(i18n.MsgIdleText), reply.Text, "token %q", tok)
	}
}

func TestTextWithoutFlow(t *testing.T) {
	e, _, _ := newTestEngine(t)
	reply := mustHandle(t, e, text("hello"))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgIdleText), reply.Text)
}

func TestTextInChoiceStepAborts(t *testing.T) {
	e, store, flows := newTestEngine(t)
	store.CreateList(context.Background(), "u1", "Movies")

	mustHandle(t, e, cmd(domain.CmdViewList))
	reply := mustHandle(t, e, text("Movies"))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgUnexpectedInput), reply.Text)
	assertNoFlow(t, flows)
}

func TestViewListFlow(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	store.AddItem(ctx, "u1", "Movies", "Arrival")
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 7})
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 8})

	reply := mustHandle(t, e, cmd(domain.CmdViewList))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))

	assert.Contains(t, reply.Text, "1. Dune - Average rating: 7.5")
	assert.Contains(t, reply.Text, "2. Arrival - Average rating: Not yet rated")
	assertNoFlow(t, flows)
}

func TestViewRatingsFlow(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	store.AddItem(ctx, "u1", "Movies", "Tenet")
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 9, Comment: "stunning"})
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 7})

	reply := mustHandle(t, e, cmd(domain.CmdRatings))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))

	assert.Contains(t, reply.Text, "• Dune")
	assert.Contains(t, reply.Text, "Average: 8.0/10")
	assert.Contains(t, reply.Text, `1. 9/10 - "stunning"`)
	assert.Contains(t, reply.Text, "2. 7/10")
	assert.Contains(t, reply.Text, "• Tenet: Not yet rated")
}

func TestViewRatingsTruncation(t *testing.T) {
	e, store, _ := newTestEngine(t, WithReplyLimit(200))
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	for i := 0; i < 30; i++ {
		store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 5, Comment: strings.Repeat("x", 40)})
	}

	reply := mustHandle(t, e, cmd(domain.CmdRatings))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))

	marker := i18n.For("en").Get(i18n.MsgTruncated)
	assert.True(t, strings.HasSuffix(reply.Text, marker))
	assert.LessOrEqual(t, len([]rune(reply.Text)), 200)
}

func TestDeleteListFlow(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")

	reply := mustHandle(t, e, cmd(domain.CmdDeleteList))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	require.Len(t, reply.Choices, 2, "confirm and cancel buttons")

	// Decline first.
	reply = mustHandle(t, e, choice(token(domain.FlowDeleteList, verbConfirm, confirmNo)))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgDeleteListCancelled), reply.Text)
	assert.True(t, store.ListExists(ctx, "u1", "Movies"))
	assertNoFlow(t, flows)

	// Then go through with it.
	reply = mustHandle(t, e, cmd(domain.CmdDeleteList))
	mustHandle(t, e, choice(reply.Choices[0][0].Token))
	reply = mustHandle(t, e, choice(token(domain.FlowDeleteList, verbConfirm, confirmYes)))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgListDeleted, "Movies"), reply.Text)
	assert.False(t, store.ListExists(ctx, "u1", "Movies"))
}

func TestDeleteItemFlow(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	store.AddItem(ctx, "u1", "Movies", "Arrival")

	reply := mustHandle(t, e, cmd(domain.CmdDeleteItem))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	require.True(t, reply.HasChoices())

	reply = mustHandle(t, e, choice(token(domain.FlowDeleteItem, verbItem, "Dune")))
	assert.Contains(t, reply.Text, "Dune")

	reply = mustHandle(t, e, choice(token(domain.FlowDeleteItem, verbConfirm, confirmYes)))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgItemDeleted, "Dune", "Movies"), reply.Text)
	assert.Equal(t, []string{"Arrival"}, store.ItemNames(ctx, "u1", "Movies"))
}

func TestDeleteRatingFlow(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	store.AddItem(ctx, "u1", "Movies", "Unrated")
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 3})
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 8, Comment: "rewatched and loved it"})

	reply := mustHandle(t, e, cmd(domain.CmdDeleteRating))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))

	// Only rated items are offered.
	require.Len(t, reply.Choices, 1)
	assert.Equal(t, "Dune", reply.Choices[0][0].Label)

	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	// One button per rating plus the delete-ALL button.
	require.Len(t, reply.Choices, 3)
	assert.Contains(t, reply.Choices[1][0].Label, "...", "long comments are shortened on buttons")

	reply = mustHandle(t, e, choice(token(domain.FlowDeleteRating, verbIndex, "0")))
	reply = mustHandle(t, e, choice(token(domain.FlowDeleteRating, verbConfirm, confirmYes)))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgRatingDeleted, "Dune"), reply.Text)
	assertNoFlow(t, flows)

	got := store.Ratings(ctx, "u1", "Movies", "Dune")
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].Score, "remaining rating shifted down")
}

func TestDeleteRatingFlow_StaleIndex(t *testing.T) {
	e, store, flows := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 5})

	reply := mustHandle(t, e, cmd(domain.CmdDeleteRating))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	mustHandle(t, e, choice(reply.Choices[0][0].Token))

	// The keyboard offered index 0, but the sequence changed underneath.
	reply = mustHandle(t, e, choice(token(domain.FlowDeleteRating, verbIndex, "5")))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgStaleContext, "deleterating"), reply.Text)
	assertNoFlow(t, flows)
	assert.Len(t, store.Ratings(ctx, "u1", "Movies", "Dune"), 1, "nothing deleted")
}

func TestDeleteRatingFlow_All(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 5})
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 6})

	reply := mustHandle(t, e, cmd(domain.CmdDeleteRating))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	mustHandle(t, e, choice(reply.Choices[0][0].Token))

	mustHandle(t, e, choice(token(domain.FlowDeleteRating, verbAll, "")))
	reply = mustHandle(t, e, choice(token(domain.FlowDeleteRating, verbConfirm, confirmYes)))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgAllRatingsDeleted, "Dune"), reply.Text)
	assert.Empty(t, store.Ratings(ctx, "u1", "Movies", "Dune"))
	assert.True(t, store.ItemExists(ctx, "u1", "Movies", "Dune"))
}

func TestClearRatingsFlow(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.AddItem(ctx, "u1", "Movies", "Dune")
	store.AddRating(ctx, "u1", "Movies", "Dune", domain.Rating{Score: 5})

	reply := mustHandle(t, e, cmd(domain.CmdClearRatings))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	reply = mustHandle(t, e, choice(token(domain.FlowClearRatings, verbItem, "Dune")))
	require.Len(t, reply.Choices, 2)

	reply = mustHandle(t, e, choice(token(domain.FlowClearRatings, verbConfirm, confirmNo)))
	assert.Equal(t, i18n.For("en").Get(i18n.MsgClearCancelled), reply.Text)
	assert.Len(t, store.Ratings(ctx, "u1", "Movies", "Dune"), 1)

	reply = mustHandle(t, e, cmd(domain.CmdClearRatings))
	mustHandle(t, e, choice(reply.Choices[0][0].Token))
	mustHandle(t, e, choice(token(domain.FlowClearRatings, verbItem, "Dune")))
	reply = mustHandle(t, e, choice(token(domain.FlowClearRatings, verbConfirm, confirmYes)))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgRatingsCleared, "Dune"), reply.Text)
	assert.Empty(t, store.Ratings(ctx, "u1", "Movies", "Dune"))
}

func TestClearRatingsFlow_NoRatedItems(t *testing.T) {
	e, store, flows := newTestEngine(t)
	store.AddItem(context.Background(), "u1", "Movies", "Dune")

	reply := mustHandle(t, e, cmd(domain.CmdClearRatings))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	assert.Equal(t, i18n.For("en").Format(i18n.MsgNoRatedItems, "Movies"), reply.Text)
	assertNoFlow(t, flows)
}

func TestUserIsolation(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.CreateList(ctx, "u1", "Movies")

	// u2 starting the same flow sees their own empty namespace.
	reply, err := e.Handle(ctx, domain.NewCommand("u2", private, domain.CmdViewList, ""))
	require.NoError(t, err)
	assert.Equal(t, i18n.For("en").Get(i18n.MsgNoListsYet), reply.Text)

	// And u1's pending flow is untouched by u2's activity.
	mustHandle(t, e, cmd(domain.CmdNewList))
	_, err = e.Handle(ctx, domain.NewText("u2", private, "ignored"))
	require.NoError(t, err)

	reply = mustHandle(t, e, text("Books"))
	assert.Contains(t, reply.Text, "Books")
}
