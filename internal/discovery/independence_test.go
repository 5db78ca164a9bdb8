// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import (
	"testing"

	"github.com/tomtom215/indiepick/internal/models"
)

func TestPublisherDenylist(t *testing.T) {
	deny := newPublisherDenylist([]string{"Ubisoft", " Electronic Arts ", ""})

	tests := []struct {
		company string
		want    bool
	}{
		{"Ubisoft Montreal", true},
		{"UBISOFT", true},
		{"electronic arts inc.", true},
		{"Team Cherry", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := deny.matches(tt.company); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", tt.company, got, tt.want)
		}
	}
	if len(deny) != 2 {
		t.Errorf("empty names should be dropped, got %v", deny)
	}
}

func TestFilterIndependent(t *testing.T) {
	deny := newPublisherDenylist([]string{"Ubisoft"})
	tagged := models.Game{ID: 1, Tags: []models.NamedRef{{Name: "INDIE", Slug: "indie"}}}
	small := models.Game{ID: 2, Developers: []models.NamedRef{{Name: "Supergiant Games"}}}
	major := models.Game{ID: 3, Publishers: []models.NamedRef{{Name: "Ubisoft"}}}
	bare := models.Game{ID: 4}

	tests := []struct {
		name      string
		games     []models.Game
		wantIDs   []int
		wantStage independenceStage
	}{
		{"labels win", []models.Game{major, tagged, small}, []int{1}, stageLabel},
		{"denylist when unlabeled", []models.Game{major, small, bare}, []int{2, 4}, stageDenylist},
		{"unfiltered when all major", []models.Game{major}, []int{3}, stageUnfiltered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stage := filterIndependent(tt.games, deny)
			if stage != tt.wantStage {
				t.Errorf("stage = %q, want %q", stage, tt.wantStage)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d games, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("game[%d] = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestShuffle_Permutation(t *testing.T) {
	games := poolOf(20)
	shuffle(NewRandom(1), games)

	seen := make(map[int]bool, len(games))
	for _, g := range games {
		seen[g.ID] = true
	}
	if len(seen) != 20 {
		t.Errorf("shuffle lost elements: %d unique of 20", len(seen))
	}
}
