package bgg

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		tally VoteTally
		want  Classification
	}{
		{
			name:  "best strict majority",
			tally: VoteTally{"Best": 10, "Recommended": 3, "Not Recommended": 1},
			want:  Best,
		},
		{
			name:  "recommended strict majority",
			tally: VoteTally{"Best": 5, "Recommended": 60, "Not Recommended": 10},
			want:  Recommended,
		},
		{
			name:  "not recommended majority",
			tally: VoteTally{"Best": 2, "Recommended": 40, "Not Recommended": 60},
			want:  Unrated,
		},
		{
			name:  "best and recommended tied at max",
			tally: VoteTally{"Best": 10, "Recommended": 10, "Not Recommended": 1},
			want:  Unrated,
		},
		{
			name:  "best tied with not recommended at max",
			tally: VoteTally{"Best": 10, "Recommended": 2, "Not Recommended": 10},
			want:  Unrated,
		},
		{
			name:  "all zero",
			tally: VoteTally{"Best": 0, "Recommended": 0, "Not Recommended": 0},
			want:  Unrated,
		},
		{
			name:  "best alone",
			tally: VoteTally{"Best": 1},
			want:  Best,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.tally)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_MissingBest(t *testing.T) {
	_, err := Classify(VoteTally{"Recommended": 5, "Not Recommended": 1})
	if err == nil {
		t.Fatal("expected error for tally without Best")
	}

	var missing *MissingCategoryError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCategoryError, got %T: %v", err, err)
	}
	if missing.Category != "Best" {
		t.Errorf("Category = %q, want 'Best'", missing.Category)
	}
}

func TestClassify_MissingRecommended(t *testing.T) {
	// Recommended is only consulted once Best has lost the maximum.
	_, err := Classify(VoteTally{"Best": 1, "Not Recommended": 5})
	if err == nil {
		t.Fatal("expected error for tally without Recommended")
	}

	var missing *MissingCategoryError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCategoryError, got %T: %v", err, err)
	}
	if missing.Category != "Recommended" {
		t.Errorf("Category = %q, want 'Recommended'", missing.Category)
	}
}

func TestPlayerCounts(t *testing.T) {
	var exact PlayerCounts
	exact.Add(7)
	if !exact.Contains(7) {
		t.Error("exact set should contain 7")
	}
	if exact.Contains(8) {
		t.Error("exact 7 must never be conflated with the open range")
	}

	var open PlayerCounts
	open.AddOpen(7)
	for _, n := range []int{7, 8, 100, 1234} {
		if !open.Contains(n) {
			t.Errorf("open range [7,∞) should contain %d", n)
		}
	}
	if open.Contains(6) {
		t.Error("open range [7,∞) should not contain 6")
	}

	var empty PlayerCounts
	if !empty.Empty() {
		t.Error("zero value should be empty")
	}
	if empty.Contains(1) {
		t.Error("empty set should contain nothing")
	}
}

func TestPlayerCounts_LowestOpenBoundWins(t *testing.T) {
	var p PlayerCounts
	p.AddOpen(7)
	p.AddOpen(5)
	p.AddOpen(9)
	if !p.Contains(5) || !p.Contains(6) {
		t.Error("open range should start at the lowest recorded bound")
	}
	if p.Contains(4) {
		t.Error("open range should not reach below the lowest bound")
	}
}

func TestParseCountDescriptor(t *testing.T) {
	tests := []struct {
		in      string
		lower   int
		open    bool
		wantErr bool
	}{
		{in: "4", lower: 4},
		{in: "7+", lower: 7, open: true},
		{in: "1", lower: 1},
		{in: "", wantErr: true},
		{in: "+", wantErr: true},
		{in: "many", wantErr: true},
	}

	for _, tt := range tests {
		lower, open, err := parseCountDescriptor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCountDescriptor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("parseCountDescriptor(%q) error type = %T, want ParseError", tt.in, err)
			}
			continue
		}
		if lower != tt.lower || open != tt.open {
			t.Errorf("parseCountDescriptor(%q) = (%d, %v), want (%d, %v)",
				tt.in, lower, open, tt.lower, tt.open)
		}
	}
}

func TestClassificationString(t *testing.T) {
	if Best.String() != "BEST" {
		t.Errorf("Best.String() = %q", Best.String())
	}
	if Recommended.String() != "RECOMMENDED" {
		t.Errorf("Recommended.String() = %q", Recommended.String())
	}
	if Unrated.String() != "UNRATED" {
		t.Errorf("Unrated.String() = %q", Unrated.String())
	}
}
