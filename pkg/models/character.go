package models

// Character is a loaded investigator sheet. Fields mirror the character JSON
// files; anything the file omits stays at its zero value, and no schema
// validation is performed on load.
type Character struct {
	Name        string         `json:"name"`
	Occupation  string         `json:"occupation"`
	Nationality string         `json:"nationality"`
	Age         int            `json:"age"`
	Attributes  map[string]int `json:"attributes"`
	Skills      map[string]int `json:"skills"`
	Weapons     []Weapon       `json:"weapons"`
	Backstory   string         `json:"backstory"`
}

// Weapon is one entry in a character's weapon list.
type Weapon struct {
	Name   string `json:"name"`
	Skill  string `json:"skill"`
	Damage string `json:"damage"` // dice notation, e.g. "1D8+1"
}

// CharacterMetadata is the subset of a sheet needed to list characters
// without loading full data.
type CharacterMetadata struct {
	Filename    string `json:"filename"`
	Name        string `json:"name"`
	Occupation  string `json:"occupation"`
	Nationality string `json:"nationality"`
}
