package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
)

func score(n int) *int { return &n }

func played(a, b string, sa, sb int, category string) sheetModel.Match {
	return sheetModel.Match{
		TeamAID: a, TeamAName: a + " name", TeamAScore: score(sa),
		TeamBID: b, TeamBName: b + " name", TeamBScore: score(sb),
		CategoryName: category, Sport: "Football", Status: "Completed",
	}
}

func TestComputeStandings(t *testing.T) {
	matches := []sheetModel.Match{
		played("tm_1", "tm_2", 2, 0, "Football A"),
		played("tm_2", "tm_3", 1, 1, "Football A"),
		played("tm_3", "tm_1", 3, 1, "Football A"),
		{TeamAID: "tm_1", TeamBID: "tm_2", Status: "Upcoming", CategoryName: "Football A"},
		{TeamAID: "tm_1", TeamBID: "tm_3", Status: "Completed", TeamAScore: score(5), CategoryName: "Football A"},
		played("tm_9", "tm_8", 0, 1, ""),
	}

	rows := ComputeStandings(matches)
	require.Len(t, rows, 5)

	assert.Equal(t, "Football", rows[0].Category)
	assert.Equal(t, "tm_8", rows[0].TeamID)
	assert.Equal(t, 3, rows[0].Points)

	football := rows[2:]
	assert.Equal(t, "tm_3", football[0].TeamID)
	assert.Equal(t, sheetModel.Standing{
		TeamID: "tm_3", Category: "Football A", TeamName: "tm_3 name",
		Played: 2, Won: 1, Drawn: 1, Lost: 0,
		GoalsFor: 4, GoalsAgainst: 2, GoalDifference: 2, Points: 4,
	}, football[0])

	assert.Equal(t, "tm_1", football[1].TeamID)
	assert.Equal(t, 3, football[1].Points)
	assert.Equal(t, 0, football[1].GoalDifference)

	assert.Equal(t, "tm_2", football[2].TeamID)
	assert.Equal(t, 1, football[2].Points)
	assert.Equal(t, 1, football[2].Lost)
}

func TestComputeStandings_NoPlayedMatches(t *testing.T) {
	rows := ComputeStandings([]sheetModel.Match{{TeamAID: "tm_1", TeamBID: "tm_2", Status: "Live"}})
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}
