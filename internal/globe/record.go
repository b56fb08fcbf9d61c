package globe

// NotAvailable marks an indicator missing for a country.
const NotAvailable = "N/A"

// CountryRecord is one globe marker as served by /api/data.
type CountryRecord struct {
	ID         int     `json:"id"`
	ISO        string  `json:"iso"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Score      float64 `json:"score"`
	CO2        string  `json:"co2"`
	Renewables string  `json:"renewables"`
	HDI        string  `json:"hdi"`
	EPI        string  `json:"epi"`
	Pollution  string  `json:"pollution"`
	Forest     string  `json:"forest"`
	Life       string  `json:"life"`
	Water      string  `json:"water"`
	GDP        string  `json:"gdp"`
	Gini       string  `json:"gini"`
	Governance string  `json:"governance"`
	Trivia     string  `json:"trivia"`
	Color      string  `json:"color"`
}
