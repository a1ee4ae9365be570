package cancel_booking

import "github.com/bluebird-hq/Bluebird-DeskService/pkg/types"

// Request модель запроса на отмену бронирования
type Request struct {
	Date      types.DateString
	DeskID    int
	UserEmail string
}

// Response модель ответа об отмене
type Response struct {
	Date   types.DateString
	DeskID int
}
