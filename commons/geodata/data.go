// SPDX-License-Identifier: GPL-3.0-only

package geodata

// CountryBounds is the service region. Coverage checks outside it are rejected.
var CountryBounds = Bounds{
	North: -22.0,
	South: -35.0,
	East:  33.0,
	West:  16.0,
	Name:  "South Africa",
}

// Provinces indexes the nine provinces by code.
var Provinces = map[string]Province{
	"WC": {
		Code:   "WC",
		Name:   "Western Cape",
		Bounds: Bounds{North: -30.0, South: -35.0, East: 25.0, West: 16.0, Name: "Western Cape Province"},
		MajorCities: []City{
			{Name: "Cape Town", Lat: -33.9249, Lng: 18.4241, Population: 4618000},
			{Name: "Stellenbosch", Lat: -33.9321, Lng: 18.8602, Population: 155000},
			{Name: "George", Lat: -33.9628, Lng: 22.4619, Population: 204000},
			{Name: "Worcester", Lat: -33.6457, Lng: 19.4484, Population: 127000},
		},
	},
	"EC": {
		Code:   "EC",
		Name:   "Eastern Cape",
		Bounds: Bounds{North: -30.0, South: -34.5, East: 30.0, West: 22.0, Name: "Eastern Cape Province"},
		MajorCities: []City{
			{Name: "Gqeberha", Lat: -33.9580, Lng: 25.6200, Population: 1244000},
			{Name: "East London", Lat: -32.9833, Lng: 27.8667, Population: 755000},
			{Name: "Mthatha", Lat: -31.5937, Lng: 28.7831, Population: 190000},
			{Name: "Bhisho", Lat: -32.8473, Lng: 27.4410, Population: 137000},
		},
	},
	"NC": {
		Code:   "NC",
		Name:   "Northern Cape",
		Bounds: Bounds{North: -24.0, South: -32.0, East: 25.0, West: 16.0, Name: "Northern Cape Province"},
		MajorCities: []City{
			{Name: "Kimberley", Lat: -28.7282, Lng: 24.7499, Population: 225000},
			{Name: "Upington", Lat: -28.4479, Lng: 21.2561, Population: 75000},
			{Name: "Kathu", Lat: -27.6833, Lng: 23.0500, Population: 65000},
		},
	},
	"FS": {
		Code:   "FS",
		Name:   "Free State",
		Bounds: Bounds{North: -26.0, South: -31.0, East: 30.0, West: 24.0, Name: "Free State Province"},
		MajorCities: []City{
			{Name: "Bloemfontein", Lat: -29.0852, Lng: 26.1596, Population: 520000},
			{Name: "Welkom", Lat: -27.9772, Lng: 26.7397, Population: 430000},
			{Name: "Kroonstad", Lat: -27.6506, Lng: 27.2340, Population: 130000},
		},
	},
	"KZN": {
		Code:   "KZN",
		Name:   "KwaZulu-Natal",
		Bounds: Bounds{North: -26.5, South: -31.5, East: 33.0, West: 28.5, Name: "KwaZulu-Natal Province"},
		MajorCities: []City{
			{Name: "Durban", Lat: -29.8587, Lng: 31.0218, Population: 3950000},
			{Name: "Pietermaritzburg", Lat: -29.6107, Lng: 30.3951, Population: 750000},
			{Name: "Newcastle", Lat: -27.7594, Lng: 29.9319, Population: 404000},
			{Name: "Richards Bay", Lat: -28.7833, Lng: 32.0833, Population: 252000},
		},
	},
	"NW": {
		Code:   "NW",
		Name:   "North West",
		Bounds: Bounds{North: -24.0, South: -28.0, East: 28.5, West: 22.0, Name: "North West Province"},
		MajorCities: []City{
			{Name: "Rustenburg", Lat: -25.6672, Lng: 27.2424, Population: 395000},
			{Name: "Klerksdorp", Lat: -26.8500, Lng: 26.6667, Population: 350000},
			{Name: "Potchefstroom", Lat: -26.7000, Lng: 27.0833, Population: 128000},
			{Name: "Mahikeng", Lat: -25.8601, Lng: 25.6358, Population: 75000},
		},
	},
	"GP": {
		Code:   "GP",
		Name:   "Gauteng",
		Bounds: Bounds{North: -25.0, South: -27.0, East: 29.0, West: 27.0, Name: "Gauteng Province"},
		MajorCities: []City{
			{Name: "Johannesburg", Lat: -26.2041, Lng: 28.0473, Population: 5635000},
			{Name: "Pretoria", Lat: -25.7479, Lng: 28.2293, Population: 2921000},
			{Name: "Ekurhuleni", Lat: -26.1715, Lng: 28.3949, Population: 3178000},
			{Name: "Soweto", Lat: -26.2678, Lng: 27.8585, Population: 1271000},
			{Name: "Sandton", Lat: -26.1076, Lng: 28.0567, Population: 222000},
		},
	},
	"MP": {
		Code:   "MP",
		Name:   "Mpumalanga",
		Bounds: Bounds{North: -22.0, South: -27.5, East: 32.0, West: 28.0, Name: "Mpumalanga Province"},
		MajorCities: []City{
			{Name: "Mbombela", Lat: -25.4743, Lng: 30.9794, Population: 104000},
			{Name: "Emalahleni", Lat: -25.8669, Lng: 29.2353, Population: 262000},
			{Name: "Secunda", Lat: -26.5504, Lng: 29.1781, Population: 150000},
			{Name: "Middelburg", Lat: -25.7756, Lng: 29.4644, Population: 154000},
		},
	},
	"LP": {
		Code:   "LP",
		Name:   "Limpopo",
		Bounds: Bounds{North: -22.0, South: -25.5, East: 31.5, West: 26.0, Name: "Limpopo Province"},
		MajorCities: []City{
			{Name: "Polokwane", Lat: -23.9045, Lng: 29.4689, Population: 790000},
			{Name: "Thohoyandou", Lat: -22.9458, Lng: 30.4839, Population: 69000},
			{Name: "Tzaneen", Lat: -23.8833, Lng: 30.1667, Population: 30000},
			{Name: "Musina", Lat: -22.3436, Lng: 30.0414, Population: 45000},
		},
	},
}

// Neighbors holds bounding boxes of neighbouring countries, used only to give
// a more useful rejection message for near-miss coordinates.
var Neighbors = map[string]Bounds{
	"namibia":    {North: -17.0, South: -29.0, East: 25.0, West: 11.5, Name: "Namibia"},
	"botswana":   {North: -17.8, South: -27.0, East: 29.5, West: 20.0, Name: "Botswana"},
	"zimbabwe":   {North: -15.6, South: -22.4, East: 33.1, West: 25.2, Name: "Zimbabwe"},
	"mozambique": {North: -10.5, South: -27.0, East: 41.0, West: 30.2, Name: "Mozambique"},
	"eswatini":   {North: -25.7, South: -27.3, East: 32.1, West: 30.8, Name: "Eswatini"},
	"lesotho":    {North: -28.6, South: -30.7, East: 29.5, West: 27.0, Name: "Lesotho"},
}
