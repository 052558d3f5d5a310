package team

// Team is a club in the catalog.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	LogoURL   *string
	Country   string
}
