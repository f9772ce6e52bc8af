package domain

// Player is embedded in a Team.
type Player struct {
	FirstName string  `json:"firstName" bson:"firstName"`
	LastName  string  `json:"lastName" bson:"lastName"`
	Salary    float64 `json:"salary" bson:"salary"`
}

// Team is a stored team document with its roster.
type Team struct {
	ID      string   `json:"_id" bson:"_id,omitempty"`
	Name    string   `json:"name" bson:"name"`
	Mascot  string   `json:"mascot" bson:"mascot"`
	Players []Player `json:"players" bson:"players"`
}

// TeamPlayersField is the document field holding the roster.
const TeamPlayersField = "players"
