package domain

type Hotel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Rooms    int    `json:"rooms"`
	Postcode string `json:"postcode"`
}
