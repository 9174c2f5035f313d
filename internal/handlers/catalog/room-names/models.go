package roomnames

type Output struct {
	RoomNames []string `json:"roomNames"`
}
