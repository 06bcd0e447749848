package utils

import "time"

// ParseDate interpreta uma data YYYY-MM-DD vinda da query string como dia de
// calendário local. String vazia rende a data zero, não um erro; quem chama
// decide se o campo era obrigatório.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
