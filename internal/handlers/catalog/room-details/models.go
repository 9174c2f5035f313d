package roomdetails

type Input struct {
	RoomID string `query:"room_id"`
}
