// File: internal/roster/rosters.go
package roster

// Seat describes one starting-roster slot: the player and the agent or
// champion they are expected on.
type Seat struct {
	Name  string
	Agent string
	Role  string
}

// valorantRosters maps team name to its starting five. Teams absent from the
// table fall back to DefaultValorantRoster.
var valorantRosters = map[string][]Seat{
	"Cloud9": {
		{Name: "TenZ", Agent: "Jett", Role: "Duelist"},
		{Name: "Derrek", Agent: "Sova", Role: "Initiator"},
		{Name: "Zellsis", Agent: "Omen", Role: "Controller"},
		{Name: "mCe", Agent: "Killjoy", Role: "Sentinel"},
		{Name: "Jakee", Agent: "Raze", Role: "Duelist"},
	},
	"Sentinels": {
		{Name: "TenZ", Agent: "Raze", Role: "Duelist"},
		{Name: "zekken", Agent: "Jett", Role: "Duelist"},
		{Name: "Zellsis", Agent: "Gekko", Role: "Initiator"},
		{Name: "Sacy", Agent: "Fade", Role: "Initiator"},
		{Name: "johnqt", Agent: "Omen", Role: "Controller"},
	},
	"Fnatic": {
		{Name: "Derke", Agent: "Jett", Role: "Duelist"},
		{Name: "Alfajer", Agent: "Raze", Role: "Duelist"},
		{Name: "Boaster", Agent: "Astra", Role: "Controller"},
		{Name: "Chronicle", Agent: "Cypher", Role: "Sentinel"},
		{Name: "Leo", Agent: "Skye", Role: "Initiator"},
	},
	"LOUD": {
		{Name: "aspas", Agent: "Jett", Role: "Duelist"},
		{Name: "Less", Agent: "Chamber", Role: "Sentinel"},
		{Name: "Saadhak", Agent: "Fade", Role: "Initiator"},
		{Name: "tuyz", Agent: "Harbor", Role: "Controller"},
		{Name: "cauanzin", Agent: "Raze", Role: "Duelist"},
	},
	"DRX": {
		{Name: "BuZz", Agent: "Chamber", Role: "Sentinel"},
		{Name: "MaKo", Agent: "Viper", Role: "Controller"},
		{Name: "Rb", Agent: "Jett", Role: "Duelist"},
		{Name: "stax", Agent: "KAY/O", Role: "Initiator"},
		{Name: "Foxy9", Agent: "Raze", Role: "Duelist"},
	},
	"Paper Rex": {
		{Name: "f0rsakeN", Agent: "Jett", Role: "Duelist"},
		{Name: "Jinggg", Agent: "Raze", Role: "Duelist"},
		{Name: "d4v41", Agent: "Fade", Role: "Initiator"},
		{Name: "mindfreak", Agent: "Omen", Role: "Controller"},
		{Name: "Monyet", Agent: "Killjoy", Role: "Sentinel"},
	},
	"NRG Esports": {
		{Name: "s0m", Agent: "Jett", Role: "Duelist"},
		{Name: "Ethan", Agent: "Skye", Role: "Initiator"},
		{Name: "FNS", Agent: "Astra", Role: "Controller"},
		{Name: "crashies", Agent: "Sova", Role: "Initiator"},
		{Name: "Victor", Agent: "Raze", Role: "Duelist"},
	},
	"100 Thieves": {
		{Name: "Asuna", Agent: "Raze", Role: "Duelist"},
		{Name: "Cryocells", Agent: "Jett", Role: "Duelist"},
		{Name: "bang", Agent: "Omen", Role: "Controller"},
		{Name: "Stellar", Agent: "Sova", Role: "Initiator"},
		{Name: "Boostio", Agent: "Killjoy", Role: "Sentinel"},
	},
	"Evil Geniuses": {
		{Name: "Demon1", Agent: "Jett", Role: "Duelist"},
		{Name: "jawgemo", Agent: "Raze", Role: "Duelist"},
		{Name: "Boostio", Agent: "Killjoy", Role: "Sentinel"},
		{Name: "C0M", Agent: "Fade", Role: "Initiator"},
		{Name: "Potter", Agent: "Omen", Role: "Controller"},
	},
	"T1": {
		{Name: "Sayaplayer", Agent: "Jett", Role: "Duelist"},
		{Name: "xeta", Agent: "Sova", Role: "Initiator"},
		{Name: "Carpe", Agent: "Raze", Role: "Duelist"},
		{Name: "ban", Agent: "Omen", Role: "Controller"},
		{Name: "Munchkin", Agent: "Cypher", Role: "Sentinel"},
	},
	"Gen.G": {
		{Name: "TS", Agent: "Jett", Role: "Duelist"},
		{Name: "Meteor", Agent: "Sova", Role: "Initiator"},
		{Name: "Lakia", Agent: "Viper", Role: "Controller"},
		{Name: "k1ng", Agent: "Raze", Role: "Duelist"},
		{Name: "Secret", Agent: "Killjoy", Role: "Sentinel"},
	},
	"Team Liquid": {
		{Name: "Jamppi", Agent: "Jett", Role: "Duelist"},
		{Name: "nAts", Agent: "Cypher", Role: "Sentinel"},
		{Name: "Sayf", Agent: "Raze", Role: "Duelist"},
		{Name: "soulcas", Agent: "Skye", Role: "Initiator"},
		{Name: "dimasick", Agent: "Omen", Role: "Controller"},
	},
	"G2 Esports": {
		{Name: "mixwell", Agent: "Chamber", Role: "Sentinel"},
		{Name: "nukkye", Agent: "Raze", Role: "Duelist"},
		{Name: "hoody", Agent: "Fade", Role: "Initiator"},
		{Name: "AvovA", Agent: "Omen", Role: "Controller"},
		{Name: "Meddo", Agent: "Jett", Role: "Duelist"},
	},
	"FaZe Clan": {
		{Name: "babybay", Agent: "Jett", Role: "Duelist"},
		{Name: "dicey", Agent: "Raze", Role: "Duelist"},
		{Name: "supamen", Agent: "Sova", Role: "Initiator"},
		{Name: "flyuh", Agent: "Omen", Role: "Controller"},
		{Name: "POISED", Agent: "Killjoy", Role: "Sentinel"},
	},
	"TSM": {
		{Name: "corey", Agent: "Jett", Role: "Duelist"},
		{Name: "Rossy", Agent: "Fade", Role: "Initiator"},
		{Name: "seven", Agent: "Omen", Role: "Controller"},
		{Name: "gMd", Agent: "Cypher", Role: "Sentinel"},
		{Name: "Subroza", Agent: "Raze", Role: "Duelist"},
	},
}

// DefaultValorantRoster is used for valid teams without a curated lineup.
var DefaultValorantRoster = []Seat{
	{Name: "Player 1", Agent: "Jett", Role: "Duelist"},
	{Name: "Player 2", Agent: "Sova", Role: "Initiator"},
	{Name: "Player 3", Agent: "Omen", Role: "Controller"},
	{Name: "Player 4", Agent: "Killjoy", Role: "Sentinel"},
	{Name: "Player 5", Agent: "Raze", Role: "Duelist"},
}

// LoLStartingRoster is the seed lineup for LoL sessions.
var LoLStartingRoster = []Seat{
	{Name: "Zven", Role: "ADC"},
	{Name: "Blaber", Role: "Jungle"},
	{Name: "Jojopyun", Role: "Mid"},
	{Name: "Berserker", Role: "Top"},
	{Name: "Vulcan", Role: "Support"},
}

// ValorantRoster returns the curated lineup for a team, or the default
// roster when the team has none. Lookup is case-insensitive.
func ValorantRoster(team string) []Seat {
	if seats, ok := valorantRosters[team]; ok {
		return seats
	}
	key, ok := FindTeam(GameValorant, team)
	if ok {
		if seats, present := valorantRosters[key]; present {
			return seats
		}
	}
	return DefaultValorantRoster
}
