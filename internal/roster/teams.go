// File: internal/roster/teams.go
// Curated competitive team lists for the two supported games. User-entered
// matchups are validated against these before a session starts.
package roster

// Game selects which reference list and endpoints a session uses.
type Game string

const (
	GameLoL      Game = "lol"
	GameValorant Game = "valorant"
)

// Valid reports whether g names a supported game.
func (g Game) Valid() bool {
	return g == GameLoL || g == GameValorant
}

// PredictionsEndpoint returns the backend path serving predictions for g.
func (g Game) PredictionsEndpoint() string {
	if g == GameValorant {
		return "valorant-predictions"
	}
	return "lol-predictions"
}

// ValorantTeams lists the organizations the Valorant prediction model was
// trained on.
var ValorantTeams = []string{
	// NA
	"Cloud9", "Sentinels", "OpTic Gaming", "NRG Esports", "100 Thieves",
	"Evil Geniuses", "LOUD", "XSET", "FaZe Clan", "TSM", "Version1",
	"The Guard", "Ghost Gaming", "Luminosity Gaming",
	// EMEA
	"Fnatic", "Team Liquid", "G2 Esports", "Team Vitality", "FUT Esports",
	"Natus Vincere", "BBL Esports", "KOI", "Giants Gaming", "Karmine Corp",
	// Pacific
	"DRX", "T1", "Gen.G", "Paper Rex", "ZETA DIVISION",
	"DetonatioN FocusMe", "Team Secret", "Talon Esports", "Rex Regum Qeon",
	"Global Esports",
	// CN
	"EDward Gaming", "FunPlus Phoenix", "Bilibili Gaming", "Trace Esports",
	"All Gamers", "Wolves Esports", "Nova Esports", "Dragon Ranger Gaming",
	// Americas
	"MIBR", "Leviatán", "KRÜ Esports", "Furia",
}

// LoLTeams lists the organizations the LoL prediction model was trained on.
var LoLTeams = []string{
	// LCS
	"Cloud9", "Team Liquid", "100 Thieves", "FlyQuest", "NRG Esports",
	"Dignitas", "Immortals", "Shopify Rebellion",
	// LEC
	"G2 Esports", "Fnatic", "MAD Lions", "Team BDS", "SK Gaming",
	"Team Vitality", "Rogue", "Karmine Corp", "GIANTX", "Team Heretics",
	// LCK
	"T1", "Gen.G", "KT Rolster", "Hanwha Life Esports", "Dplus KIA",
	"DRX", "Kwangdong Freecs", "Nongshim RedForce", "OK BRION",
	"FearX",
	// LPL
	"JD Gaming", "Bilibili Gaming", "LNG Esports", "Top Esports",
	"Weibo Gaming", "EDward Gaming", "Royal Never Give Up", "Invictus Gaming",
	// International
	"PSG Talon", "GAM Esports", "LOUD", "paiN Gaming", "Fukuoka SoftBank Hawks",
}

// Teams returns the reference list for g.
func Teams(g Game) []string {
	if g == GameValorant {
		return ValorantTeams
	}
	return LoLTeams
}
