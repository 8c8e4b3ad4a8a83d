package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rankery/rankery/pkg/domain"
)

func sampleReply() domain.Reply {
	r := domain.Reply{Text: "pick one"}
	r.AddRow(domain.Choice{Label: "0", Token: "rate:score:0"}, domain.Choice{Label: "1", Token: "rate:score:1"})
	r.AddRow(domain.Choice{Label: "2", Token: "rate:score:2"})
	return r
}

func TestRenderChoices(t *testing.T) {
	out := RenderChoices(sampleReply(), false)
	assert.Contains(t, out, "[1] 0")
	assert.Contains(t, out, "[2] 1")
	assert.Contains(t, out, "[3] 2")

	assert.Empty(t, RenderChoices(domain.Reply{Text: "plain"}, false))
}

func TestChoiceAt(t *testing.T) {
	reply := sampleReply()

	tok, ok := ChoiceAt(reply, 1)
	assert.True(t, ok)
	assert.Equal(t, "rate:score:0", tok)

	// Numbering runs row by row.
	tok, ok = ChoiceAt(reply, 3)
	assert.True(t, ok)
	assert.Equal(t, "rate:score:2", tok)

	_, ok = ChoiceAt(reply, 0)
	assert.False(t, ok)
	_, ok = ChoiceAt(reply, 4)
	assert.False(t, ok)
}
