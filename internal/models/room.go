package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room is a catalog entry. Images are base64 encoded; a missing image is "".
type Room struct {
	ID          int64           `json:"room_id"`
	Name        string          `json:"room_name"`
	Type        string          `json:"room_type"`
	Price       decimal.Decimal `json:"room_price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	Image1      string          `json:"image1"`
	Image2      string          `json:"image2"`
	Image3      string          `json:"image3"`
	Image4      string          `json:"image4"`
}

// Images returns the four image slots in order.
func (r *Room) Images() [4]string {
	return [4]string{r.Image1, r.Image2, r.Image3, r.Image4}
}
