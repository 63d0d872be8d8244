package models

// SeedCatalog is the initial data set loaded at startup. Records reference
// each other by the ids the store assigns in insertion order, starting at 1.
type SeedCatalog struct {
	Users      []UserInput     `json:"users"`
	Cities     []CityInput     `json:"cities"`
	Localities []LocalityInput `json:"localities"`
	Agents     []AgentInput    `json:"agents"`
	Properties []SeedProperty  `json:"properties"`
}

// SeedProperty is a PropertyInput whose owner comes from the catalog
type SeedProperty struct {
	PropertyInput
	OwnerID int64 `json:"owner_id"`
}
