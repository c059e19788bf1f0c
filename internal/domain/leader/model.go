package leader

type Kind string

const (
	KindAthlete Kind = "athlete"
	KindTeam    Kind = "team"
)

type Leader struct {
	ID           string
	Name         string
	Team         string
	TeamLogo     string
	Headshot     string
	Value        float64
	DisplayValue string
	Rank         int
	Kind         Kind
}

// Category keeps leaders in upstream order.
type Category struct {
	Name        string
	DisplayName string
	Leaders     []Leader
}
