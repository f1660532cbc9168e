package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TruncateDay zera hora, minuto e segundos mantendo o fuso da data
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateRange gera todas as datas entre start e end (inclusive), uma por dia do calendário
func DateRange(start, end time.Time) []time.Time {
	start = TruncateDay(start)
	end = TruncateDay(end)
	if start.After(end) {
		return []time.Time{}
	}

	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
