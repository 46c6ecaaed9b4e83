package ioingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	path := "/data/raw/stats/football/Super League/2025/Μάρτιος/15/" +
		"ΠΑΟΚ vs Ολυμπιακός~~~2-1.csv"

	info, err := parsePath(path)
	require.NoError(t, err)

	assert.Equal(t, "football", info.Sport.String())
	assert.Equal(t, "Super League", info.Competition)
	assert.Equal(t,
		time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), info.Date)
	assert.Equal(t, "ΠΑΟΚ", info.HomeTeam)
	assert.Equal(t, "Ολυμπιακός", info.AwayTeam)
	assert.Equal(t, 2, info.HomeScore)
	assert.Equal(t, 1, info.AwayScore)
}

func TestParsePathFailures(t *testing.T) {
	tests := []struct {
		msg, path string
	}{
		{"too shallow", "a vs b~~~1-0.csv"},
		{"unknown sport", "/s/tennis/Cup/2025/Μάρτιος/15/a vs b~~~1-0.csv"},
		{"non-Greek month", "/s/football/Cup/2025/March/15/a vs b~~~1-0.csv"},
		{"bad year", "/s/football/Cup/MMXXV/Μάρτιος/15/a vs b~~~1-0.csv"},
		{"bad day", "/s/football/Cup/2025/Μάρτιος/xv/a vs b~~~1-0.csv"},
		{"missing score token", "/s/football/Cup/2025/Μάρτιος/15/a vs b.csv"},
		{"malformed score", "/s/football/Cup/2025/Μάρτιος/15/a vs b~~~1:0.csv"},
		{"negative score", "/s/football/Cup/2025/Μάρτιος/15/a vs b~~~-1-0.csv"},
		{"no separator", "/s/football/Cup/2025/Μάρτιος/15/a against b~~~1-0.csv"},
		{"same teams", "/s/football/Cup/2025/Μάρτιος/15/a vs a~~~1-0.csv"},
		{"empty home", "/s/football/Cup/2025/Μάρτιος/15/ vs b~~~1-0.csv"},
	}

	for _, v := range tests {
		_, err := parsePath(v.path)
		assert.Error(t, err, v.msg)
	}
}
