package entity

import "testing"

func TestBlockedDateCovers(t *testing.T) {
	tests := []struct {
		name  string
		block BlockedDate
		date  string
		want  bool
	}{
		{
			name:  "inside range",
			block: BlockedDate{StartDate: "2026-07-01", EndDate: "2026-07-15"},
			date:  "2026-07-10",
			want:  true,
		},
		{
			name:  "start boundary inclusive",
			block: BlockedDate{StartDate: "2026-07-01", EndDate: "2026-07-15"},
			date:  "2026-07-01",
			want:  true,
		},
		{
			name:  "end boundary inclusive",
			block: BlockedDate{StartDate: "2026-07-01", EndDate: "2026-07-15"},
			date:  "2026-07-15",
			want:  true,
		},
		{
			name:  "day before start",
			block: BlockedDate{StartDate: "2026-07-01", EndDate: "2026-07-15"},
			date:  "2026-06-30",
			want:  false,
		},
		{
			name:  "day after end",
			block: BlockedDate{StartDate: "2026-07-01", EndDate: "2026-07-15"},
			date:  "2026-07-16",
			want:  false,
		},
		{
			name:  "single day range",
			block: BlockedDate{StartDate: "2026-12-25", EndDate: "2026-12-25"},
			date:  "2026-12-25",
			want:  true,
		},
		{
			name:  "range crossing month boundary",
			block: BlockedDate{StartDate: "2026-01-28", EndDate: "2026-02-03"},
			date:  "2026-02-01",
			want:  true,
		},
		{
			name:  "range crossing year boundary",
			block: BlockedDate{StartDate: "2026-12-29", EndDate: "2027-01-05"},
			date:  "2027-01-02",
			want:  true,
		},
		{
			name:  "same month different year",
			block: BlockedDate{StartDate: "2026-07-01", EndDate: "2026-07-15"},
			date:  "2025-07-10",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.Covers(tt.date); got != tt.want {
				t.Errorf("Covers(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestAnyCovers(t *testing.T) {
	ranges := []BlockedDate{
		{StartDate: "2026-07-01", EndDate: "2026-07-05"},
		{StartDate: "2026-08-10", EndDate: "2026-08-20"},
	}

	if !AnyCovers(ranges, "2026-08-15") {
		t.Error("expected 2026-08-15 to be covered by the second range")
	}
	if AnyCovers(ranges, "2026-07-20") {
		t.Error("expected 2026-07-20 to be uncovered")
	}
	if AnyCovers(nil, "2026-07-20") {
		t.Error("expected no coverage with no ranges")
	}
}

func TestBlockTypeIsValid(t *testing.T) {
	for _, valid := range []BlockType{BlockTypeVacation, BlockTypeCongress, BlockTypeLegal, BlockTypeOther} {
		if !valid.IsValid() {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []BlockType{"", "holiday", "Vacation"} {
		if invalid.IsValid() {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
