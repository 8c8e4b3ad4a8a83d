/*
Package rankery is a chat-bot core for keeping named lists of items and
attaching 0-10 ratings with optional comments to them.

The package wires three components behind a single entry point:

  - a per-user hierarchical catalog store (user -> list -> item -> ratings)
  - a conversation engine driving the multi-step flows (create a list,
    add an item, rate an item, view and delete data)
  - an access policy gating the destructive flows behind an admin
    capability supplied by the transport

The transport (Telegram, HTTP, a terminal REPL) is a collaborator: it
normalizes user activity into Intents, calls Bot.Handle, and renders the
returned Reply (text plus optional choice buttons). See cmd/rankery for a
REPL and an HTTP server built on this contract.

	bot, err := rankery.New()
	if err != nil {
		log.Fatal(err)
	}
	chat := domain.Chat{ID: "c1", Kind: domain.ChatPrivate}
	reply, err := bot.Handle(ctx, domain.NewCommand("user-1", chat, "newlist", ""))
*/
package rankery
