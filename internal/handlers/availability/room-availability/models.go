package roomavailability

type Input struct {
	Date string `query:"date"`
}

type Output struct {
	Message string `json:"message"`
}
