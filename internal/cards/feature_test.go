package cards

import (
	"reflect"
	"strings"
	"testing"
)

func datedCards(dates ...string) []Card {
	out := make([]Card, 0, len(dates))
	for i, d := range dates {
		c := Card{Href: string(rune('a'+i)) + ".html", DateRaw: d, Category: "enhance"}
		if t, err := ParseISODate(d); err == nil {
			c.Date = t
			c.DateValid = true
		}
		out = append(out, c)
	}
	return out
}

func hrefs(list []Card) string {
	parts := make([]string, 0, len(list))
	for _, c := range list {
		parts = append(parts, c.Href)
	}
	return strings.Join(parts, ",")
}

func TestFeatureOrdering(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  string
	}{
		{"latest moves first", []string{"2024-01-10", "2024-03-05", "2024-02-20"}, "b.html,a.html,c.html"},
		{"tie keeps first occurrence", []string{"2024-04-01", "2024-05-01", "2024-05-01"}, "b.html,a.html,c.html"},
		{"invalid date stays among the rest", []string{"2024-01-10", "2024-13-40", "2024-03-05"}, "c.html,a.html,b.html"},
		{"already first", []string{"2024-06-01", "2024-01-01"}, "a.html,b.html"},
		{"single card", []string{"2024-06-01"}, "a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Feature(datedCards(tt.dates...))
			if hrefs(got) != tt.want {
				t.Fatalf("Feature() order = %s, want %s", hrefs(got), tt.want)
			}

			featured := 0
			for i, c := range got {
				if c.Featured {
					featured++
					if i != 0 {
						t.Errorf("featured card at position %d", i)
					}
				}
			}
			if featured != 1 {
				t.Errorf("Feature() marked %d cards, want exactly 1", featured)
			}
		})
	}
}

func TestFeatureWithoutValidDatesIsNoop(t *testing.T) {
	input := datedCards("2024-13-40", "not-a-date")
	input[1].Featured = true

	got := Feature(input)
	if !reflect.DeepEqual(got, input) {
		t.Errorf("Feature() changed input without valid dates: %+v", got)
	}

	if got := Feature(nil); len(got) != 0 {
		t.Errorf("Feature(nil) = %+v, want empty", got)
	}
}

func TestFeatureIdempotent(t *testing.T) {
	inputs := [][]string{
		{"2024-01-10", "2024-03-05", "2024-02-20"},
		{"2024-05-01", "2024-05-01"},
		{"2024-13-40", "2024-02-01", "2023-12-31"},
	}

	for _, dates := range inputs {
		once := Feature(datedCards(dates...))
		twice := Feature(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Feature not idempotent for %v: %s vs %s", dates, hrefs(once), hrefs(twice))
		}
	}
}

func TestFeatureClearsPreviousFeatured(t *testing.T) {
	input := datedCards("2024-01-10", "2024-03-05")
	input[0].Featured = true

	got := Feature(input)
	if got[0].Href != "b.html" || !got[0].Featured {
		t.Fatalf("latest card not featured: %+v", got[0])
	}
	if got[1].Featured {
		t.Errorf("previous featured card still marked")
	}
	if !input[0].Featured {
		t.Errorf("Feature() mutated its input")
	}
}

func TestSortNewestFirst(t *testing.T) {
	list := datedCards("2024-01-10", "bad", "2024-03-05", "2024-03-05")
	SortNewestFirst(list)

	if got := hrefs(list); got != "c.html,d.html,a.html,b.html" {
		t.Errorf("SortNewestFirst() = %s", got)
	}
}
