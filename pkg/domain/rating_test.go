package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingValid(t *testing.T) {
	assert.True(t, Rating{Score: 0}.Valid())
	assert.True(t, Rating{Score: 10}.Valid())
	assert.True(t, Rating{Score: 7, Comment: "solid"}.Valid())
	assert.False(t, Rating{Score: -1}.Valid())
	assert.False(t, Rating{Score: 11}.Valid())
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil), "empty sequence averages to zero")
	assert.Equal(t, 0.0, Average([]Rating{}))

	assert.Equal(t, 5.0, Average([]Rating{{Score: 0}, {Score: 10}}))
	assert.Equal(t, 7.0, Average([]Rating{{Score: 7}}))
	assert.InDelta(t, 7.666, Average([]Rating{{Score: 7}, {Score: 8}, {Score: 8}}), 0.001)

	// An all-zeros sequence is indistinguishable from empty by value.
	assert.Equal(t, 0.0, Average([]Rating{{Score: 0}, {Score: 0}}))
}

func TestFlowContextClone(t *testing.T) {
	fc := NewFlowContext(FlowRateItem, StepAwaitComment)
	fc.List = "Movies"
	fc.Item = "Dune"
	fc.Score = 9

	cp := fc.Clone()
	cp.Item = "Arrival"

	assert.Equal(t, "Dune", fc.Item)
	assert.Equal(t, -1, fc.RatingIndex, "fresh contexts carry no rating selection")

	var nilCtx *FlowContext
	assert.Nil(t, nilCtx.Clone())
}
