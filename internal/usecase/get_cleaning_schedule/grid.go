package get_cleaning_schedule

import (
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// statusPriority при совпадении событий в один день побеждает более важный статус.
// Заезд важнее выезда: в день пересменки квартира снова занята
var statusPriority = map[domain.ScheduleStatus]int{
	domain.ScheduleEmpty:          0,
	domain.ScheduleOccupied:       1,
	domain.ScheduleExit:           2,
	domain.ScheduleEnter:          3,
	domain.ScheduleCleaningNeeded: 4,
	domain.ScheduleExitCleaning:   4,
}

// grid статусы квартир по дням месяца
type grid struct {
	policy  domain.StayPolicy
	month   domain.DateRange
	columns map[int64]int
	days    map[string][]domain.ScheduleStatus
	order   []string
}

func newGrid(policy domain.StayPolicy, month domain.DateRange, apartments []*domain.Apartment) *grid {
	g := &grid{
		policy:  policy,
		month:   month,
		columns: make(map[int64]int, len(apartments)),
		days:    make(map[string][]domain.ScheduleStatus),
	}

	for i, a := range apartments {
		g.columns[a.ID] = i
	}

	for day := policy.Day(month.From); !day.After(month.To); day = day.AddDate(0, 0, 1) {
		key := policy.DateKey(day)
		statuses := make([]domain.ScheduleStatus, len(apartments))
		for i := range statuses {
			statuses[i] = domain.ScheduleEmpty
		}
		g.days[key] = statuses
		g.order = append(g.order, key)
	}

	return g
}

// addBooking отмечает дни бронирования: заезд, проживание, выезд и день уборки
func (g *grid) addBooking(view *domain.BookingView) {
	column, ok := g.columns[view.ApartmentID]
	if !ok {
		return
	}

	checkIn := g.policy.Day(view.CheckIn)
	checkOut := g.policy.Day(view.CheckOut)

	var cleaning time.Time
	if view.CleaningDate != nil {
		cleaning = g.policy.Day(*view.CleaningDate)
	}

	for day := checkIn; !day.After(checkOut); day = day.AddDate(0, 0, 1) {
		switch {
		case day.Equal(checkIn):
			g.set(day, column, domain.ScheduleEnter)
		case day.Equal(checkOut) && day.Equal(cleaning):
			g.set(day, column, domain.ScheduleExitCleaning)
		case day.Equal(checkOut):
			g.set(day, column, domain.ScheduleExit)
		default:
			g.set(day, column, domain.ScheduleOccupied)
		}
	}

	if view.CleaningDate != nil && !cleaning.Equal(checkIn) && !cleaning.Equal(checkOut) {
		g.set(cleaning, column, domain.ScheduleCleaningNeeded)
	}
}

func (g *grid) set(day time.Time, column int, status domain.ScheduleStatus) {
	statuses, ok := g.days[g.policy.DateKey(day)]
	if !ok {
		return
	}
	if statusPriority[status] >= statusPriority[statuses[column]] {
		statuses[column] = status
	}
}

func (g *grid) result() []Day {
	days := make([]Day, 0, len(g.order))
	for _, key := range g.order {
		days = append(days, Day{Date: key, Statuses: g.days[key]})
	}
	return days
}
