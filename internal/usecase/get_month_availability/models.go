package get_month_availability

// Request запрос на получение сетки доступности за месяц
type Request struct {
	ApartmentID int64
	Year        int
	Month       int // 1-12
}

// DayCell одна ячейка календарной сетки
type DayCell struct {
	Date           string `json:"date"` // YYYY-MM-DD
	State          string `json:"state"`
	InCurrentMonth bool   `json:"inCurrentMonth"`
	Selectable     bool   `json:"selectable"`
}

// Week одна строка сетки: ровно семь дней, понедельник первый
type Week struct {
	Days []DayCell `json:"days"`
}

// Response сетка доступности апартамента за месяц: всегда 6 недель по 7 дней,
// дополненная днями соседних месяцев
type Response struct {
	ApartmentID int64  `json:"apartmentId"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Weeks       []Week `json:"weeks"`
}
