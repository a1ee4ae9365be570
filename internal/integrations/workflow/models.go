package workflow

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Wire-модели workflow-endpoints. Поля повторяют схему SharePoint-списков
// удалённого хранилища, поэтому имена в PascalCase и имя пользователя
// передаётся в поле "User".

// bookingsByDateRequest запрос бронирований на дату
type bookingsByDateRequest struct {
	Date string `json:"Date"`
}

// bookingsByEmailRequest запрос бронирований пользователя
type bookingsByEmailRequest struct {
	Email string `json:"email"`
}

// BookingDTO запись бронирования в ответе read endpoint
type BookingDTO struct {
	DeskID    int    `json:"DeskID"`
	DeskName  string `json:"DeskName"`
	Date      string `json:"Date"`
	UserEmail string `json:"UserEmail"`
	User      string `json:"User"`
	Status    string `json:"Status"`
}

// ToDomain конвертирует wire-модель в доменную запись
func (d *BookingDTO) ToDomain() domain.BookingRecord {
	return domain.BookingRecord{
		DeskID:    d.DeskID,
		DeskName:  d.DeskName,
		Date:      types.DateString(d.Date),
		UserEmail: d.UserEmail,
		UserName:  d.User,
		Status:    domain.BookingStatus(d.Status),
	}
}

// CreateBookingRequest запрос на запись бронирования.
// RequestID генерируется клиентом на каждую попытку записи и служит
// идемпотентным ключом для дедупликации на стороне хранилища.
type CreateBookingRequest struct {
	RequestID string `json:"RequestID"`
	DeskID    int    `json:"DeskID"`
	DeskName  string `json:"DeskName"`
	Date      string `json:"Date"`
	UserEmail string `json:"UserEmail"`
	Status    string `json:"Status"`
	User      string `json:"User"`
}

// cancelBookingRequest запрос на отмену бронирования
type cancelBookingRequest struct {
	Date      string `json:"Date"`
	UserEmail string `json:"UserEmail"`
	DeskID    int    `json:"DeskID"`
}

// checkInsRequest запрос чек-инов пользователя
type checkInsRequest struct {
	UserEmail string `json:"UserEmail"`
	Date      string `json:"Date"`
}

// CheckInDTO запись чек-ина в ответе read endpoint
type CheckInDTO struct {
	DeskID       int    `json:"DeskID"`
	Email        string `json:"Email"`
	User         string `json:"User"`
	Location     string `json:"Location"`
	Date         string `json:"Date"`
	CheckOutTime string `json:"CheckOutTime,omitempty"`
}

// ToDomain конвертирует wire-модель в доменную запись
func (d *CheckInDTO) ToDomain() domain.CheckInRecord {
	rec := domain.CheckInRecord{
		DeskID:    d.DeskID,
		UserEmail: d.Email,
		UserName:  d.User,
		Location:  d.Location,
		Date:      types.DateString(d.Date),
	}
	if d.CheckOutTime != "" {
		t := d.CheckOutTime
		rec.CheckOutTime = &t
	}
	return rec
}

// createCheckInRequest запрос на запись чек-ина
type createCheckInRequest struct {
	DeskID   int    `json:"DeskID"`
	Email    string `json:"Email"`
	User     string `json:"User"`
	Location string `json:"Location"`
	Date     string `json:"Date"`
}

// checkOutRequest запрос на простановку времени check-out.
// Запись чек-ина не удаляется, к ней добавляется метка времени.
type checkOutRequest struct {
	UserEmail    string `json:"UserEmail"`
	Date         string `json:"Date"`
	CheckOutTime string `json:"CheckOutTime"`
}
