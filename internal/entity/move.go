package entity

// Move is one accepted play, as recorded in a game's move log.
type Move struct {
	Turn   uint8  `json:"turn"`
	Player string `json:"player"`
	Tile   Tile   `json:"tile"`
}
