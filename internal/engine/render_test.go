package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rankery/rankery/pkg/domain"
)

func TestParseToken(t *testing.T) {
	kind, verb, value, ok := parseToken("rate:score:7")
	assert.True(t, ok)
	assert.Equal(t, domain.FlowRateItem, kind)
	assert.Equal(t, verbScore, verb)
	assert.Equal(t, "7", value)

	// Values may contain the separator; only the first two splits count.
	kind, verb, value, ok = parseToken("additem:list:Best of 2024: Movies")
	assert.True(t, ok)
	assert.Equal(t, domain.FlowAddItem, kind)
	assert.Equal(t, verbList, verb)
	assert.Equal(t, "Best of 2024: Movies", value)

	// The delete-ALL token carries an empty value.
	_, verb, value, ok = parseToken(token(domain.FlowDeleteRating, verbAll, ""))
	assert.True(t, ok)
	assert.Equal(t, verbAll, verb)
	assert.Empty(t, value)

	for _, tok := range []string{"", "rate", "rate:score", "::x"} {
		_, _, _, ok := parseToken(tok)
		assert.False(t, ok, "token %q", tok)
	}
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 20))
	assert.Equal(t, "exactly-twenty-chars", shorten("exactly-twenty-chars", 20))

	long := "this comment is definitely too long for a button"
	got := shorten(long, 20)
	assert.Len(t, []rune(got), 20)
	assert.Equal(t, "this comment is d...", got)
}

func TestListNamesWithSeparatorSurvive(t *testing.T) {
	e, store, _ := newTestEngine(t)
	store.CreateList(context.Background(), "u1", "Best of 2024: Movies")

	reply := mustHandle(t, e, cmd(domain.CmdAddItem))
	reply = mustHandle(t, e, choice(reply.Choices[0][0].Token))
	assert.Contains(t, reply.Text, "Best of 2024: Movies")

	reply = mustHandle(t, e, text("Dune"))
	assert.Contains(t, reply.Text, "Dune")
	assert.True(t, store.ItemExists(context.Background(), "u1", "Best of 2024: Movies", "Dune"))
}
