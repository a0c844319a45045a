// Package ical разбирает календари бронирований в формате iCalendar (RFC 5545)
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

const dateLayout = "20060102"

// Parser переводит события календаря в бронирования
// От дат событий берётся только день, время заезда и выезда задаётся настройками
type Parser struct {
	policy domain.StayPolicy
}

// NewParser создает парсер календарей
func NewParser(policy domain.StayPolicy) *Parser {
	return &Parser{policy: policy}
}

// Parse читает календарь из r
// Ошибка в любом событии прерывает разбор: импорт выполняется целиком или не выполняется
func (p *Parser) Parse(r io.Reader) (*Calendar, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	productID := ""
	for _, prop := range cal.CalendarProperties {
		if prop.IANAToken == string(ics.PropertyProductId) {
			productID = strings.TrimSpace(prop.Value)
			break
		}
	}
	if productID == "" {
		return nil, ErrMissingProdID
	}

	result := &Calendar{ProductID: productID}
	for i, event := range cal.Events() {
		parsed, err := p.parseEvent(event)
		if err != nil {
			return nil, fmt.Errorf("%w: event #%d", err, i+1)
		}
		result.Events = append(result.Events, parsed)
	}

	return result, nil
}

func (p *Parser) parseEvent(event *ics.VEvent) (Event, error) {
	start := propertyValue(event, ics.ComponentPropertyDtStart)
	end := propertyValue(event, ics.ComponentPropertyDtEnd)
	if start == "" || end == "" {
		return Event{}, ErrMissingDates
	}

	summary := propertyValue(event, ics.ComponentPropertySummary)
	if summary == "" {
		return Event{}, ErrMissingSummary
	}

	startDay, err := p.day(start)
	if err != nil {
		return Event{}, err
	}
	endDay, err := p.day(end)
	if err != nil {
		return Event{}, err
	}

	return Event{
		UID:       propertyValue(event, ics.ComponentPropertyUniqueId),
		GuestName: summary,
		CheckIn:   p.policy.CheckInAt(startDay),
		CheckOut:  p.policy.CheckOutAt(endDay),
	}, nil
}

// day берёт день из значения DATE или DATE-TIME, время суток отбрасывается
func (p *Parser) day(value string) (time.Time, error) {
	if len(value) < len(dateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	loc := p.policy.Location
	if loc == nil {
		loc = time.UTC
	}

	day, err := time.ParseInLocation(dateLayout, value[:len(dateLayout)], loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return day, nil
}

func propertyValue(event *ics.VEvent, property ics.ComponentProperty) string {
	prop := event.GetProperty(property)
	if prop == nil {
		return ""
	}
	return strings.TrimSpace(prop.Value)
}
