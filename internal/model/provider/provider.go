package provider

import (
	"strconv"
	"strings"
)

// Provider is a freelancer offering one service in a set of areas.
type Provider struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Service  string   `json:"service"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Rate     int      `json:"rate"`
	Distance string   `json:"distance"`
	Areas    []string `json:"areas"`
}

// DistanceKM parses the leading number of Distance ("2.1 km" -> 2.1).
// Unparseable values sort last.
func (p Provider) DistanceKM() float64 {
	fields := strings.Fields(p.Distance)
	if len(fields) == 0 {
		return maxDistance
	}
	km, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "km"), 64)
	if err != nil {
		return maxDistance
	}
	return km
}

// Serves reports whether the provider covers area (case-insensitive).
func (p Provider) Serves(area string) bool {
	for _, a := range p.Areas {
		if strings.EqualFold(a, area) {
			return true
		}
	}
	return false
}

const maxDistance = 1 << 20

// Service is one bookable category in the menu.
type Service struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Services lists the categories in menu order.
func Services() []Service {
	return []Service{
		{Key: "1", Name: "Plumbing", Emoji: "🔧"},
		{Key: "2", Name: "Electrical", Emoji: "⚡"},
		{Key: "3", Name: "Cleaning", Emoji: "🧹"},
		{Key: "4", Name: "Tutoring", Emoji: "📚"},
		{Key: "5", Name: "Car Repair", Emoji: "🚗"},
		{Key: "6", Name: "Painting", Emoji: "🎨"},
	}
}

// Seed provides the sample directory the demo ships with.
func Seed() []Provider {
	return []Provider{
		{ID: "p1", Name: "Mike Johnson", Phone: "+254700123456", Service: "plumbing", Rating: 4.9, Reviews: 245, Rate: 1200, Distance: "2.1 km", Areas: []string{"westlands", "kilimani", "parklands"}},
		{ID: "p2", Name: "Grace Wanjiku", Phone: "+254700123457", Service: "plumbing", Rating: 4.8, Reviews: 189, Rate: 1000, Distance: "3.5 km", Areas: []string{"westlands", "karen", "lavington"}},
		{ID: "p3", Name: "Peter Kamau", Phone: "+254700123458", Service: "plumbing", Rating: 4.7, Reviews: 156, Rate: 1500, Distance: "4.2 km", Areas: []string{"westlands", "upperhill", "cbd"}},
		{ID: "e1", Name: "John Mwangi", Phone: "+254700123459", Service: "electrical", Rating: 4.8, Reviews: 198, Rate: 1300, Distance: "1.8 km", Areas: []string{"westlands", "kilimani", "parklands"}},
		{ID: "e2", Name: "Sarah Njeri", Phone: "+254700123460", Service: "electrical", Rating: 4.9, Reviews: 234, Rate: 1400, Distance: "2.9 km", Areas: []string{"karen", "lavington", "runda"}},
		{ID: "c1", Name: "Anne Muthoni", Phone: "+254700123461", Service: "cleaning", Rating: 4.6, Reviews: 167, Rate: 800, Distance: "1.5 km", Areas: []string{"westlands", "kilimani", "parklands"}},
		{ID: "c2", Name: "Mary Wanjiru", Phone: "+254700123462", Service: "cleaning", Rating: 4.7, Reviews: 203, Rate: 900, Distance: "3.1 km", Areas: []string{"karen", "lavington", "upperhill"}},
		{ID: "t1", Name: "David Kiprotich", Phone: "+254700123463", Service: "tutoring", Rating: 4.9, Reviews: 312, Rate: 600, Distance: "2.3 km", Areas: []string{"westlands", "kilimani", "lavington"}},
		{ID: "t2", Name: "Lucy Akinyi", Phone: "+254700123464", Service: "tutoring", Rating: 4.8, Reviews: 278, Rate: 700, Distance: "3.7 km", Areas: []string{"karen", "runda", "muthaiga"}},
		{ID: "cr1", Name: "James Ochieng", Phone: "+254700123465", Service: "car repair", Rating: 4.7, Reviews: 189, Rate: 1500, Distance: "4.1 km", Areas: []string{"westlands", "parklands", "kasarani"}},
		{ID: "pt1", Name: "Robert Mutua", Phone: "+254700123466", Service: "painting", Rating: 4.5, Reviews: 145, Rate: 700, Distance: "2.8 km", Areas: []string{"westlands", "kilimani", "upperhill"}},
	}
}
