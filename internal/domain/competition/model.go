package competition

const (
	TypeLeague   = "league"
	TypeCup      = "cup"
	TypeFriendly = "friendly"
)

// Competition groups matches under one season label. Season is free
// text ("2025/26", "2025"), not a structured date range.
type Competition struct {
	ID     int64
	Name   string
	Type   string
	Season string
}
