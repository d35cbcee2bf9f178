package data

// TeamInfo names a franchise and its home stadium.
type TeamInfo struct {
	Code    string
	Name    string
	Stadium string
}

// teamInfo keys the 30 franchises by the code used in the season exports.
var teamInfo = map[string]TeamInfo{
	"ARI": {"ARI", "Arizona Diamondbacks", "Chase Field"},
	"ATH": {"ATH", "Athletics", "Sutter Health Park"},
	"ATL": {"ATL", "Atlanta Braves", "Truist Park"},
	"BAL": {"BAL", "Baltimore Orioles", "Camden Yards"},
	"BOS": {"BOS", "Boston Red Sox", "Fenway Park"},
	"CHC": {"CHC", "Chicago Cubs", "Wrigley Field"},
	"CHW": {"CHW", "Chicago White Sox", "Guaranteed Rate Field"},
	"CIN": {"CIN", "Cincinnati Reds", "Great American Ball Park"},
	"CLE": {"CLE", "Cleveland Guardians", "Progressive Field"},
	"COL": {"COL", "Colorado Rockies", "Coors Field"},
	"DET": {"DET", "Detroit Tigers", "Comerica Park"},
	"HOU": {"HOU", "Houston Astros", "Minute Maid Park"},
	"KCR": {"KCR", "Kansas City Royals", "Kauffman Stadium"},
	"LAA": {"LAA", "Los Angeles Angels", "Angel Stadium"},
	"LAD": {"LAD", "Los Angeles Dodgers", "Dodger Stadium"},
	"MIA": {"MIA", "Miami Marlins", "LoanDepot Park"},
	"MIL": {"MIL", "Milwaukee Brewers", "American Family Field"},
	"MIN": {"MIN", "Minnesota Twins", "Target Field"},
	"NYM": {"NYM", "New York Mets", "Citi Field"},
	"NYY": {"NYY", "New York Yankees", "Yankee Stadium"},
	"PHI": {"PHI", "Philadelphia Phillies", "Citizens Bank Park"},
	"PIT": {"PIT", "Pittsburgh Pirates", "PNC Park"},
	"SDP": {"SDP", "San Diego Padres", "Petco Park"},
	"SEA": {"SEA", "Seattle Mariners", "T-Mobile Park"},
	"SFG": {"SFG", "San Francisco Giants", "Oracle Park"},
	"STL": {"STL", "St. Louis Cardinals", "Busch Stadium"},
	"TBR": {"TBR", "Tampa Bay Rays", "Steinbrenner Field"},
	"TEX": {"TEX", "Texas Rangers", "Globe Life Field"},
	"TOR": {"TOR", "Toronto Blue Jays", "Rogers Centre"},
	"WSN": {"WSN", "Washington Nationals", "Nationals Park"},
}

// LookupTeam returns display info for a team code.
func LookupTeam(code string) (TeamInfo, bool) {
	info, ok := teamInfo[code]
	return info, ok
}

// DisplayName returns the franchise name for a code, or the code itself when
// the table does not know it.
func DisplayName(code string) string {
	if info, ok := teamInfo[code]; ok {
		return info.Name
	}
	return code
}

// Stadium returns the home stadium for a code, or an empty string when the
// table does not know it.
func Stadium(code string) string {
	if info, ok := teamInfo[code]; ok {
		return info.Stadium
	}
	return ""
}
