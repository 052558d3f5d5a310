package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/team"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	ShortName string         `db:"short_name"`
	LogoURL   sql.NullString `db:"logo_url"`
	Country   string         `db:"country"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		ShortName: m.ShortName,
		LogoURL:   nullStringPtr(m.LogoURL),
		Country:   m.Country,
	}
}
