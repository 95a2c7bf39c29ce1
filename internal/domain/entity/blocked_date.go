package entity

import "time"

// BlockType categorizes why a date range is closed.
type BlockType string

const (
	BlockTypeVacation BlockType = "vacation"
	BlockTypeCongress BlockType = "congress"
	BlockTypeLegal    BlockType = "legal"
	BlockTypeOther    BlockType = "other"
)

// IsValid reports whether the block type belongs to the known vocabulary.
func (b BlockType) IsValid() bool {
	switch b {
	case BlockTypeVacation, BlockTypeCongress, BlockTypeLegal, BlockTypeOther:
		return true
	}
	return false
}

// BlockedDate is an inclusive closed date range. Ranges may overlap each
// other; a date is blocked if it falls inside any range. Rows are created
// and deleted, never updated in place.
type BlockedDate struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StartDate string    `gorm:"type:varchar(10);not null;index" json:"start_date"` // yyyy-MM-dd
	EndDate   string    `gorm:"type:varchar(10);not null;index" json:"end_date"`   // yyyy-MM-dd
	Reason    string    `gorm:"type:text" json:"reason"`
	BlockType BlockType `gorm:"type:varchar(20);not null" json:"block_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlockedDate) TableName() string {
	return "blocked_dates"
}

// Covers reports whether the ISO date falls inside the range, inclusive on
// both ends. Comparison is lexicographic on the yyyy-MM-dd strings, which is
// order-correct because the components are zero-padded and big-endian.
func (b *BlockedDate) Covers(date string) bool {
	return date >= b.StartDate && date <= b.EndDate
}

// AnyCovers reports whether any of the given ranges covers the ISO date.
func AnyCovers(ranges []BlockedDate, date string) bool {
	for i := range ranges {
		if ranges[i].Covers(date) {
			return true
		}
	}
	return false
}
