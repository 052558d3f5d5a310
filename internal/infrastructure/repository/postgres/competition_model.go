package postgres

import (
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
)

type competitionTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Season    string    `db:"season"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:     m.ID,
		Name:   m.Name,
		Type:   m.Type,
		Season: m.Season,
	}
}
