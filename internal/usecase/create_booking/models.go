package create_booking

import (
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date      types.DateString // Дата бронирования
	DeskID    int              // ID стола (1..10)
	UserEmail string           // Email пользователя из identity-провайдера
	UserName  string           // Отображаемое имя пользователя
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	RequestID string           // Клиентский идемпотентный ключ записи
	Date      types.DateString // Дата бронирования
	DeskID    int              // ID стола
	DeskName  string           // Название стола
	UserEmail string           // Email пользователя
	UserName  string           // Имя пользователя
	Status    string           // Статус записи ("Booked")
}
