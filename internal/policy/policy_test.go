package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rankery/rankery/pkg/domain"
	"github.com/rankery/rankery/pkg/ports"
)

var (
	private = domain.Chat{ID: "c1", Kind: domain.ChatPrivate}
	group   = domain.Chat{ID: "g1", Kind: domain.ChatGroup}
)

func checker(admin bool, err error) ports.AdminChecker {
	return ports.AdminCheckerFunc(func(ctx context.Context, userID string, chat domain.Chat) (bool, error) {
		return admin, err
	})
}

func TestAdminOnly(t *testing.T) {
	for _, name := range []string{
		domain.CmdNewList, domain.CmdDeleteList, domain.CmdDeleteItem,
		domain.CmdDeleteRating, domain.CmdClearRatings,
	} {
		assert.True(t, AdminOnly(name), name)
	}
	for _, name := range []string{
		domain.CmdStart, domain.CmdHelp, domain.CmdLists, domain.CmdAddItem,
		domain.CmdViewList, domain.CmdRate, domain.CmdRatings, domain.CmdCancel, domain.CmdSkip,
	} {
		assert.False(t, AdminOnly(name), name)
	}
}

func TestAuthorize_NonAdminInGroup(t *testing.T) {
	p := New(checker(false, nil))
	ctx := context.Background()

	assert.False(t, p.Authorize(ctx, domain.NewCommand("u1", group, domain.CmdNewList, "")))
	assert.False(t, p.Authorize(ctx, domain.NewCommand("u1", group, domain.CmdDeleteList, "")))

	// Open commands and non-command intents pass regardless.
	assert.True(t, p.Authorize(ctx, domain.NewCommand("u1", group, domain.CmdRate, "")))
	assert.True(t, p.Authorize(ctx, domain.NewText("u1", group, "hello")))
	assert.True(t, p.Authorize(ctx, domain.NewChoice("u1", group, "rate:score:5")))
}

func TestAuthorize_NormalizesCommandName(t *testing.T) {
	p := New(checker(false, nil))
	ctx := context.Background()

	// Casing or a leading slash must not slip past the gate.
	for _, name := range []string{"DeleteList", "DELETELIST", "/deletelist", "/DeleteList", "NewList"} {
		assert.False(t, p.Authorize(ctx, domain.NewCommand("u1", group, name, "")), name)
	}
	assert.True(t, p.Authorize(ctx, domain.NewCommand("u1", group, "/Rate", "")), "open commands stay open in any form")
}

func TestAdminOnly_Normalizes(t *testing.T) {
	assert.True(t, AdminOnly("/ClearRatings"))
	assert.True(t, AdminOnly("DELETERATING"))
	assert.False(t, AdminOnly("/Lists"))
}

func TestAuthorize_AdminInGroup(t *testing.T) {
	p := New(checker(true, nil))
	assert.True(t, p.Authorize(context.Background(), domain.NewCommand("u1", group, domain.CmdNewList, "")))
}

func TestAuthorize_PrivateChatBypassesChecker(t *testing.T) {
	// Even a checker that says "never" is not consulted for private chats.
	p := New(checker(false, nil))
	assert.True(t, p.Authorize(context.Background(), domain.NewCommand("u1", private, domain.CmdNewList, "")))
}

func TestIsAdmin_FailsClosed(t *testing.T) {
	p := New(checker(true, errors.New("membership service down")))
	assert.False(t, p.IsAdmin(context.Background(), "u1", group))
	assert.True(t, p.IsAdmin(context.Background(), "u1", private))
}

func TestNilCheckerDefaultsToPrivateOnly(t *testing.T) {
	p := New(nil)
	assert.True(t, p.IsAdmin(context.Background(), "u1", private))
	assert.False(t, p.IsAdmin(context.Background(), "u1", group))
}
