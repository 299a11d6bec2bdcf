package lookup

// Seed tables matching the search contract's network. The backend constants
// endpoint serves the authoritative copy; these keep rendering working before
// the first refresh and when the backend is unreachable.

var seedAirlineNames = map[string]string{
	"BA": "British Airways",
	"VS": "Virgin Atlantic",
	"AA": "American Airlines",
	"AF": "Air France",
	"EK": "Emirates",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"JL": "Japan Airlines",
	"NH": "All Nippon Airways",
	"AI": "Air India",
	"KL": "KLM Royal Dutch Airlines",
	"QF": "Qantas",
	"SQ": "Singapore Airlines",
	"6E": "IndiGo",
	"WF": "Widerøe",
	"9W": "Jet Airways",
}

var seedAirportNames = map[string]string{
	"JFK": "John F. Kennedy International Airport",
	"DFW": "Dallas/Fort Worth International Airport",
	"SFO": "San Francisco International Airport",
	"LAX": "Los Angeles International Airport",
	"ATL": "Hartsfield-Jackson Atlanta International Airport",
	"LHR": "London Heathrow Airport",
	"CDG": "Charles de Gaulle Airport",
	"AMS": "Amsterdam Airport Schiphol",
	"DXB": "Dubai International Airport",
	"BOM": "Chhatrapati Shivaji Maharaj International Airport",
	"HND": "Tokyo Haneda Airport",
	"SYD": "Sydney Kingsford Smith Airport",
}

var seedAirportCoordinates = map[string]Coordinate{
	"JFK": {Lat: 40.6413, Lng: -73.7781},
	"DFW": {Lat: 32.8998, Lng: -97.0403},
	"SFO": {Lat: 37.6213, Lng: -122.3790},
	"LAX": {Lat: 33.9416, Lng: -118.4085},
	"ATL": {Lat: 33.6407, Lng: -84.4277},
	"LHR": {Lat: 51.4700, Lng: -0.4543},
	"CDG": {Lat: 49.0097, Lng: 2.5479},
	"AMS": {Lat: 52.3105, Lng: 4.7683},
	"DXB": {Lat: 25.2532, Lng: 55.3657},
	"BOM": {Lat: 19.0896, Lng: 72.8656},
	"HND": {Lat: 35.5494, Lng: 139.7798},
	"SYD": {Lat: -33.9399, Lng: 151.1753},
}
