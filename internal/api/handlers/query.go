package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// MonthQuery читает year и month из query. Отсутствующий параметр берётся из now
func MonthQuery(r *http.Request, now time.Time) (int, time.Month, error) {
	year, month := now.Year(), now.Month()
	query := r.URL.Query()

	if raw := query.Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 9999 {
			return 0, 0, fmt.Errorf("year must be an integer in 1..9999, got %q", raw)
		}
		year = v
	}

	if raw := query.Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			return 0, 0, fmt.Errorf("month must be an integer in 1..12, got %q", raw)
		}
		month = time.Month(v)
	}

	return year, month, nil
}
