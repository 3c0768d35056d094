package consts

import (
	"fmt"
	"strings"
)

// Divisions of Bangladesh
var Divisions = []string{
	"Barishal",
	"Chattogram",
	"Dhaka",
	"Khulna",
	"Mymensingh",
	"Rajshahi",
	"Rangpur",
	"Sylhet",
}

// BdDistrictDivision maps each of the 64 districts to its division
var BdDistrictDivision map[string]string

// bdAliases maps older or alternative romanizations, as returned by geocoders,
// to the official names
var bdAliases = map[string]string{
	"barisal":          "Barishal",
	"chittagong":       "Chattogram",
	"comilla":          "Cumilla",
	"jessore":          "Jashore",
	"bogra":            "Bogura",
	"chapai nawabganj": "Chapainawabganj",
	"nawabganj":        "Chapainawabganj",
	"maulvibazar":      "Moulvibazar",
	"netrakona":        "Netrokona",
	"jhalakati":        "Jhalokati",
	"coxs bazar":       "Cox's Bazar",
}

func init() {
	BdDistrictDivision = make(map[string]string)

	for division, districts := range map[string][]string{
		"Barishal":   {"Barguna", "Barishal", "Bhola", "Jhalokati", "Patuakhali", "Pirojpur"},
		"Chattogram": {"Bandarban", "Brahmanbaria", "Chandpur", "Chattogram", "Cox's Bazar", "Cumilla", "Feni", "Khagrachhari", "Lakshmipur", "Noakhali", "Rangamati"},
		"Dhaka":      {"Dhaka", "Faridpur", "Gazipur", "Gopalganj", "Kishoreganj", "Madaripur", "Manikganj", "Munshiganj", "Narayanganj", "Narsingdi", "Rajbari", "Shariatpur", "Tangail"},
		"Khulna":     {"Bagerhat", "Chuadanga", "Jashore", "Jhenaidah", "Khulna", "Kushtia", "Magura", "Meherpur", "Narail", "Satkhira"},
		"Mymensingh": {"Jamalpur", "Mymensingh", "Netrokona", "Sherpur"},
		"Rajshahi":   {"Bogura", "Chapainawabganj", "Joypurhat", "Naogaon", "Natore", "Pabna", "Rajshahi", "Sirajganj"},
		"Rangpur":    {"Dinajpur", "Gaibandha", "Kurigram", "Lalmonirhat", "Nilphamari", "Panchagarh", "Rangpur", "Thakurgaon"},
		"Sylhet":     {"Habiganj", "Moulvibazar", "Sunamganj", "Sylhet"},
	} {
		for _, district := range districts {
			BdDistrictDivision[district] = division
		}
	}
}

// canonical trims administrative suffixes and resolves aliases and letter case
// to an official name. Unknown names are returned trimmed.
func canonical(name string) string {
	n := strings.TrimSpace(name)
	for _, suffix := range []string{" District", " Division", " district", " division", " Zila", " Zilla"} {
		n = strings.TrimSuffix(n, suffix)
	}
	key := strings.ToLower(strings.ReplaceAll(n, "'", ""))
	if official, ok := bdAliases[key]; ok {
		return official
	}
	for district := range BdDistrictDivision {
		if strings.ToLower(strings.ReplaceAll(district, "'", "")) == key {
			return district
		}
	}
	for _, division := range Divisions {
		if strings.ToLower(division) == key {
			return division
		}
	}
	return n
}

// BdDistrict returns the official district name and its division
func BdDistrict(name string) (string, string, error) {
	district := canonical(name)
	division, ok := BdDistrictDivision[district]
	if !ok {
		return "", "", fmt.Errorf("%s not exist", name)
	}
	return district, division, nil
}

// BdDivision returns the official division name
func BdDivision(name string) (string, error) {
	division := canonical(name)
	for _, d := range Divisions {
		if d == division {
			return d, nil
		}
	}
	return "", fmt.Errorf("%s not exist", name)
}
