package select_stay_dates

import "time"

// Request последовательность кликов по дням календаря апартамента.
// Выбор эфемерный: сервер ничего не хранит между запросами, клиент присылает
// всю историю кликов сессии и получает итоговое состояние.
type Request struct {
	ApartmentID int64
	Clicks      []time.Time
}

// Response итоговое состояние выбора дат после проигрывания всех кликов
type Response struct {
	ApartmentID int64   `json:"apartmentId"`
	Phase       string  `json:"phase"`
	CheckIn     *string `json:"checkIn,omitempty"`  // YYYY-MM-DD
	CheckOut    *string `json:"checkOut,omitempty"` // YYYY-MM-DD
	IsComplete  bool    `json:"isComplete"`
	Nights      int     `json:"nights"` // 0, пока выбор не завершён
}
