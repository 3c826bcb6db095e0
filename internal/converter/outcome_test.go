package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"results_feed/internal/model"
)

func TestToWindowResponse_TimeLabelUsesLocation(t *testing.T) {
	at := time.Date(2024, 1, 1, 15, 4, 0, 0, time.UTC)
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	resp := ToWindowResponse(model.Window{
		State:    model.WindowStateReady,
		Outcomes: []model.Outcome{{ID: "a", RollValue: 7, ObservedAt: at}},
	}, saoPaulo)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "12:04", resp.Results[0].Time)
	assert.Equal(t, "red", resp.Results[0].Category)
	assert.Nil(t, resp.RefreshedAt)
}

func TestToWindowResponse_EmptyResultsNotNil(t *testing.T) {
	resp := ToWindowResponse(model.Window{State: model.WindowStateLoading}, nil)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}
