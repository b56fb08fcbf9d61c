package globe

// Coordinate places a country on the globe.
type Coordinate struct {
	ISO string
	Lat float64
	Lon float64
}

// coordinates lists the countries served, in output order.
var coordinates = []Coordinate{
	{"AFG", 33.9391, 67.7100},
	{"ARG", -38.4161, -63.6167},
	{"AUS", -25.2744, 133.7751},
	{"BRA", -14.2350, -51.9253},
	{"CAN", 56.1304, -106.3468},
	{"CHN", 35.8617, 104.1954},
	{"FRA", 46.2276, 2.2137},
	{"DEU", 51.1657, 10.4515},
	{"IND", 20.5937, 78.9629},
	{"ITA", 41.8719, 12.5674},
	{"JPN", 36.2048, 138.2529},
	{"MEX", 23.6345, -102.5528},
	{"NOR", 60.4720, 8.4689},
	{"ESP", 40.4637, -3.7492},
	{"USA", 37.0902, -95.7129},
	{"CHL", -35.6751, -71.5430},
	{"COL", 4.5709, -74.2973},
	{"URY", -32.5228, -55.7658},
	{"ISL", 64.9631, -19.0208},
	{"NZL", -40.9006, 174.8860},
	{"CHE", 46.8182, 8.2275},
	{"GBR", 55.3781, -3.4360},
	{"RUS", 61.5240, 105.3188},
	{"KOR", 35.9078, 127.7669},
	{"ZAF", -30.5595, 22.9375},
	{"EGY", 26.8206, 30.8025},
	{"PER", -9.1900, -75.0152},
}

// Coordinates returns a copy of the country table in output order.
func Coordinates() []Coordinate {
	out := make([]Coordinate, len(coordinates))
	copy(out, coordinates)
	return out
}
