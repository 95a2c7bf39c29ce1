package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consultorio is a consultation room. Appointments are scoped per room;
// inactive rooms are excluded from slot generation and booking.
type Consultorio struct {
	ID        int             `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	Fee       decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"fee"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Consultorio) TableName() string {
	return "consultorios"
}
