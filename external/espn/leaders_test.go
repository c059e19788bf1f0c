package espn

import (
	"testing"

	"github.com/riskibarqy/scoreboard/internal/domain/leader"
)

func TestCleanDisplayValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		display  string
		value    float64
		hasValue bool
		want     string
	}{
		{name: "verbose without value", display: "Matches: 10, Goals: 7", want: "7"},
		{name: "verbose with value", display: "Matches: 10, Goals: 7", value: 7, hasValue: true, want: "7"},
		{name: "verbose decimal value", display: "GP: 60, PPG: 30.1", value: 30.1, hasValue: true, want: "30.1"},
		{name: "plain number", display: "27.5", value: 27.5, hasValue: true, want: "27.5"},
		{name: "no digits", display: "Status: n/a", want: "Status: n/a"},
		{name: "empty uses value", display: "", value: 12, hasValue: true, want: "12"},
	}

	for _, tc := range tests {
		if got := cleanDisplayValue(tc.display, tc.value, tc.hasValue); got != tc.want {
			t.Fatalf("%s: got=%q want=%q", tc.name, got, tc.want)
		}
	}
}

func TestParseLeaders_NestedGroupsFirst(t *testing.T) {
	t.Parallel()

	root := decodeFixture(t, `{"leaders": {"categories": [{
		"name": "pointsPerGame", "displayName": "Points Per Game",
		"groups": [{"athletes": [
			{"athlete": {"id": "1", "displayName": "Luka Doncic", "headshot": {"href": "https://img/1.png"}, "team": {"displayName": "Dallas Mavericks", "logos": [{"href": "https://img/dal.png"}]}}, "statistics": [{"value": 34.2, "displayValue": "34.2"}], "value": 1, "displayValue": "wrong"},
			{"athlete": {"id": "2", "displayName": "Joel Embiid"}, "rank": 5, "value": 33.1, "displayValue": "33.1"}
		]}],
		"leaders": [{"athlete": {"id": "3", "displayName": "Ignored"}}]
	}]}}`)

	categories := parseLeaders(root)
	if len(categories) != 1 {
		t.Fatalf("expected one category, got=%d", len(categories))
	}
	cat := categories[0]
	if cat.Name != "pointsPerGame" || cat.DisplayName != "Points Per Game" || len(cat.Leaders) != 2 {
		t.Fatalf("unexpected category: %+v", cat)
	}

	first := cat.Leaders[0]
	if first.Kind != leader.KindAthlete || first.Name != "Luka Doncic" || first.Team != "Dallas Mavericks" {
		t.Fatalf("unexpected first leader: %+v", first)
	}
	if first.Value != 34.2 || first.DisplayValue != "34.2" {
		t.Fatalf("expected nested statistic to win: %+v", first)
	}
	if first.Headshot != "https://img/1.png" || first.TeamLogo != "https://img/dal.png" || first.Rank != 1 {
		t.Fatalf("unexpected media/rank: %+v", first)
	}
	if cat.Leaders[1].Rank != 5 {
		t.Fatalf("expected upstream rank, got=%d", cat.Leaders[1].Rank)
	}
}

func TestParseLeaders_FlatTeamLeadersAndStatsRoot(t *testing.T) {
	t.Parallel()

	root := decodeFixture(t, `{"stats": [
		{"name": "goalsLeaders", "displayName": "Top Scorers", "leaders": [
			{"displayValue": "Matches: 10, Goals: 7", "athlete": {"id": "9", "displayName": "Erling Haaland", "team": {"displayName": "Manchester City"}}},
			{"displayValue": "Goals: 5", "value": 5, "team": {"id": "359", "displayName": "Arsenal", "logo": "https://img/ars.png"}},
			{"displayValue": "orphan"}
		]},
		{"displayName": "No name category"}
	]}`)

	categories := parseLeaders(root)
	if len(categories) != 1 {
		t.Fatalf("expected one named category, got=%d", len(categories))
	}
	leaders := categories[0].Leaders
	if len(leaders) != 2 {
		t.Fatalf("expected orphan record to be skipped, got=%d", len(leaders))
	}
	if leaders[0].DisplayValue != "7" || leaders[0].Kind != leader.KindAthlete {
		t.Fatalf("unexpected athlete leader: %+v", leaders[0])
	}
	if leaders[1].Kind != leader.KindTeam || leaders[1].Name != "Arsenal" || leaders[1].DisplayValue != "5" || leaders[1].Rank != 2 {
		t.Fatalf("unexpected team leader: %+v", leaders[1])
	}
	if leaders[1].TeamLogo != "https://img/ars.png" {
		t.Fatalf("unexpected team logo: %q", leaders[1].TeamLogo)
	}
}
