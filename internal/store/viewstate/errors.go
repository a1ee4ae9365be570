package viewstate

import "errors"

var (
	// ErrNoSnapshot возвращается, когда для даты нет опубликованного снапшота
	ErrNoSnapshot = errors.New("viewstate: no snapshot for date")

	// ErrDeskNotFound возвращается, когда стола нет в снапшоте
	ErrDeskNotFound = errors.New("viewstate: desk not found in snapshot")

	// ErrDeskNotAvailable возвращается при попытке пометить занятый стол
	ErrDeskNotAvailable = errors.New("viewstate: desk is not available")

	// ErrNotTentative возвращается, когда у стола нет незавершённой пометки
	ErrNotTentative = errors.New("viewstate: desk has no tentative mark")
)
