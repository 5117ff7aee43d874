package resolve

// teamAliases maps upper-cased short codes and historical franchise names to
// the canonical current team name. Renamed franchises resolve to the name
// they played under; the Delhi and Punjab rebrands map to the current name.
var teamAliases = map[string]string{
	"CSK":                         "Chennai Super Kings",
	"CHENNAI":                     "Chennai Super Kings",
	"CHENNAI SUPER KINGS":         "Chennai Super Kings",
	"RCB":                         "Royal Challengers Bangalore",
	"BANGALORE":                   "Royal Challengers Bangalore",
	"ROYAL CHALLENGERS BANGALORE": "Royal Challengers Bangalore",
	"MI":                          "Mumbai Indians",
	"MUMBAI":                      "Mumbai Indians",
	"MUMBAI INDIANS":              "Mumbai Indians",
	"KKR":                         "Kolkata Knight Riders",
	"KOLKATA":                     "Kolkata Knight Riders",
	"KOLKATA KNIGHT RIDERS":       "Kolkata Knight Riders",
	"RR":                          "Rajasthan Royals",
	"RAJASTHAN":                   "Rajasthan Royals",
	"RAJASTHAN ROYALS":            "Rajasthan Royals",
	"DC":                          "Delhi Capitals",
	"DELHI":                       "Delhi Capitals",
	"DELHI CAPITALS":              "Delhi Capitals",
	"DD":                          "Delhi Capitals",
	"DELHI DAREDEVILS":            "Delhi Capitals",
	"PBKS":                        "Punjab Kings",
	"PUNJAB":                      "Punjab Kings",
	"PUNJAB KINGS":                "Punjab Kings",
	"KXIP":                        "Punjab Kings",
	"KINGS XI PUNJAB":             "Punjab Kings",
	"SRH":                         "Sunrisers Hyderabad",
	"HYDERABAD":                   "Sunrisers Hyderabad",
	"SUNRISERS HYDERABAD":         "Sunrisers Hyderabad",
	"GT":                          "Gujarat Titans",
	"GUJARAT TITANS":              "Gujarat Titans",
	"GL":                          "Gujarat Lions",
	"GUJARAT LIONS":               "Gujarat Lions",
	"LSG":                         "Lucknow Super Giants",
	"LUCKNOW":                     "Lucknow Super Giants",
	"LUCKNOW SUPER GIANTS":        "Lucknow Super Giants",
	"PWI":                         "Pune Warriors",
	"PUNE WARRIORS":               "Pune Warriors",
	"RPS":                         "Rising Pune Supergiant",
	"RISING PUNE SUPERGIANT":      "Rising Pune Supergiant",
	"RISING PUNE SUPERGIANTS":     "Rising Pune Supergiant",
	"KTK":                         "Kochi Tuskers Kerala",
	"KOCHI TUSKERS KERALA":        "Kochi Tuskers Kerala",
	"DECCAN CHARGERS":             "Deccan Chargers",
}

// venueAliases maps lower-cased keywords (stadium nicknames, city names,
// common short forms) to the canonical venue string. Matched by substring,
// longest keyword first.
var venueAliases = []struct {
	keyword string
	venue   string
}{
	{"wankhede", "Wankhede Stadium"},
	{"chepauk", "MA Chidambaram Stadium"},
	{"chidambaram", "MA Chidambaram Stadium"},
	{"chinnaswamy", "M Chinnaswamy Stadium"},
	{"eden gardens", "Eden Gardens"},
	{"eden", "Eden Gardens"},
	{"kotla", "Arun Jaitley Stadium"},
	{"arun jaitley", "Arun Jaitley Stadium"},
	{"narendra modi", "Narendra Modi Stadium"},
	{"motera", "Narendra Modi Stadium"},
	{"sawai mansingh", "Sawai Mansingh Stadium"},
	{"rajiv gandhi", "Rajiv Gandhi International Stadium"},
	{"uppal", "Rajiv Gandhi International Stadium"},
	{"mohali", "Punjab Cricket Association Stadium"},
	{"ekana", "Ekana Cricket Stadium"},
	{"dy patil", "DY Patil Stadium"},
	{"brabourne", "Brabourne Stadium"},
}
