package models

import "github.com/bluebird-hq/Bluebird-DeskService/pkg/types"

// UsageRequest запрос отчёта об использовании столов за период
type UsageRequest struct {
	From types.DateString
	To   types.DateString
}

// DeskUsage агрегат по одному столу за период
type DeskUsage struct {
	DeskID   int
	DeskName string
	Bookings int
}

// UsageResponse отчёт об использовании за период.
// UtilizationRate - доля занятых стол-дней от ёмкости инвентаря
// по рабочим дням периода, в процентах.
type UsageResponse struct {
	From            types.DateString
	To              types.DateString
	WorkingDays     int
	TotalBookings   int
	UtilizationRate float64
	Desks           []DeskUsage
	BusiestDeskID   int                // 0, если бронирований не было
	SkippedDates    []types.DateString // даты, для которых fetch не удался
}
