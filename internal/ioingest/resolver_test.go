package ioingest

import (
	"testing"

	"github.com/sportsense/statsdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestRowTeam(t *testing.T) {
	home := schema.Team{ID: 1, Name: "Παναθηναϊκός"}
	away := schema.Team{ID: 2, Name: "Άρης"}

	tests := []struct {
		msg, cell, player string
		want              uint
		ok                bool
	}{
		{"exact home", "Παναθηναϊκός", "Τζόνσον", 1, true},
		{"exact away", "Άρης", "Τζόνσον", 2, true},
		{"cell is substring", "Παναθηναϊκ", "Τζόνσον", 1, true},
		{"cell contains team", "Άρης Θεσσαλονίκης", "Τζόνσον", 2, true},
		{"unknown cell", "Ολυμπιακός", "Τζόνσον", 0, false},
		{"blank cell, token hit", "", "Κ. Σλούκας Άρης", 2, true},
		{"blank cell, no hit", "", "Κ. Σλούκας", 0, false},
		{"blank cell, short tokens only", "", "Κ. Σ.", 0, false},
	}

	for _, v := range tests {
		team, ok := rowTeam(v.cell, v.player, home, away)
		assert.Equal(t, v.ok, ok, v.msg)
		if v.ok {
			assert.Equal(t, v.want, team.ID, v.msg)
		}
	}
}
