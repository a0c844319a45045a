// Package memstore хранит квартиры, бронирования и график уборок в памяти.
// Используется в тестах usecase вместо PostgreSQL: поведение повторяет репозитории
// internal/infra/storage, включая их ошибки
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	bookingRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/booking"
	cleaningRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/cleaning"
)

// Store общее состояние для всех репозиториев
type Store struct {
	mu sync.Mutex

	apartments map[int64]domain.Apartment
	bookings   map[int64]domain.Booking
	schedules  map[int64]domain.CleaningSchedule
	nextID     int64

	// Now подставляется в created_at/updated_at
	Now func() time.Time
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		apartments: make(map[int64]domain.Apartment),
		bookings:   make(map[int64]domain.Booking),
		schedules:  make(map[int64]domain.CleaningSchedule),
		Now:        time.Now,
	}
}

// Apartments репозиторий квартир
func (s *Store) Apartments() *Apartments { return &Apartments{s: s} }

// Bookings репозиторий бронирований
func (s *Store) Bookings() *Bookings { return &Bookings{s: s} }

// Cleaning репозиторий графика уборок
func (s *Store) Cleaning() *Cleaning { return &Cleaning{s: s} }

// TxManager менеджер транзакций: при ошибке состояние откатывается к снимку
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

// Schedule возвращает запись графика уборки (для проверок в тестах)
func (s *Store) Schedule(bookingID int64) (domain.CleaningSchedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.schedules[bookingID]
	return cs, ok
}

// BookingCount возвращает количество бронирований
func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Apartments реализация репозитория квартир
type Apartments struct{ s *Store }

func (r *Apartments) Create(_ context.Context, a *domain.Apartment) (*domain.Apartment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.apartments {
		if existing.OwnerID == a.OwnerID && existing.Name == a.Name {
			return nil, apartmentRepo.ErrDuplicateName
		}
	}

	created := *a
	created.ID = r.s.id()
	created.CreatedAt = r.s.Now()
	created.UpdatedAt = created.CreatedAt
	r.s.apartments[created.ID] = created
	return &created, nil
}

func (r *Apartments) GetByID(_ context.Context, id int64) (*domain.Apartment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.apartments[id]
	if !ok {
		return nil, apartmentRepo.ErrApartmentNotFound
	}
	return &a, nil
}

func (r *Apartments) GetByOwnerAndName(_ context.Context, ownerID int64, name string) (*domain.Apartment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.apartments {
		if a.OwnerID == ownerID && a.Name == name {
			found := a
			return &found, nil
		}
	}
	return nil, apartmentRepo.ErrApartmentNotFound
}

func (r *Apartments) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Apartment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.Apartment, 0)
	for _, a := range r.s.apartments {
		if a.OwnerID == ownerID {
			found := a
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *Apartments) Update(_ context.Context, a *domain.Apartment) (*domain.Apartment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.apartments[a.ID]
	if !ok {
		return nil, apartmentRepo.ErrApartmentNotFound
	}
	for _, other := range r.s.apartments {
		if other.ID != a.ID && other.OwnerID == a.OwnerID && other.Name == a.Name {
			return nil, apartmentRepo.ErrDuplicateName
		}
	}

	updated := *a
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.s.Now()
	r.s.apartments[a.ID] = updated
	return &updated, nil
}

// Delete удаляет квартиру вместе с бронированиями и графиком, как ON DELETE CASCADE
func (r *Apartments) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.apartments[id]; !ok {
		return apartmentRepo.ErrApartmentNotFound
	}
	delete(r.s.apartments, id)
	for bookingID, b := range r.s.bookings {
		if b.ApartmentID == id {
			delete(r.s.bookings, bookingID)
			delete(r.s.schedules, bookingID)
		}
	}
	return nil
}

// Bookings реализация репозитория бронирований
type Bookings struct{ s *Store }

func (r *Bookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.apartments[b.ApartmentID]; !ok {
		return nil, fmt.Errorf("%w: apartment id=%d does not exist", bookingRepo.ErrExecQuery, b.ApartmentID)
	}

	created := *b
	created.ID = r.s.id()
	created.CreatedAt = r.s.Now()
	r.s.bookings[created.ID] = created
	return &created, nil
}

func (r *Bookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *Bookings) ListByApartment(_ context.Context, apartmentID int64) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool { return b.ApartmentID == apartmentID }, byCheckIn), nil
}

func (r *Bookings) GetByOwnerInRange(_ context.Context, ownerID int64, from, to time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool {
		return r.ownedBy(b, ownerID) && !b.CheckOut.Before(from) && !b.CheckIn.After(to)
	}, byApartmentAndCheckOut), nil
}

func (r *Bookings) GetFirstAfter(_ context.Context, ownerID int64, after time.Time) ([]*domain.Booking, error) {
	later := r.filter(func(b domain.Booking) bool {
		return r.ownedBy(b, ownerID) && b.CheckIn.After(after)
	}, byCheckIn)

	first := make(map[int64]*domain.Booking)
	for _, b := range later {
		if _, ok := first[b.ApartmentID]; !ok {
			first[b.ApartmentID] = b
		}
	}

	result := make([]*domain.Booking, 0, len(first))
	for _, b := range first {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ApartmentID < result[j].ApartmentID })
	return result, nil
}

func (r *Bookings) HasOverlap(_ context.Context, apartmentID int64, checkIn, checkOut time.Time) (bool, error) {
	overlapping := r.filter(func(b domain.Booking) bool {
		return b.ApartmentID == apartmentID && b.Overlaps(checkIn, checkOut)
	}, byCheckIn)
	return len(overlapping) > 0, nil
}

func (r *Bookings) GetViewsByOwnerInRange(_ context.Context, ownerID int64, from, to time.Time) ([]*domain.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	views := make([]*domain.BookingView, 0)
	for _, b := range r.s.bookings {
		a, ok := r.s.apartments[b.ApartmentID]
		if !ok || a.OwnerID != ownerID || b.CheckIn.After(to) {
			continue
		}

		var cleaningDate *time.Time
		if cs, ok := r.s.schedules[b.ID]; ok && cs.CleaningDate != nil {
			date := *cs.CleaningDate
			cleaningDate = &date
		}
		if b.CheckOut.Before(from) && (cleaningDate == nil || cleaningDate.Before(from)) {
			continue
		}

		views = append(views, &domain.BookingView{Booking: b, ApartmentName: a.Name, CleaningDate: cleaningDate})
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].ApartmentName != views[j].ApartmentName {
			return views[i].ApartmentName < views[j].ApartmentName
		}
		return views[i].CheckIn.Before(views[j].CheckIn)
	})
	return views, nil
}

// Delete удаляет бронирование вместе с записью графика
func (r *Bookings) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.s.bookings, id)
	delete(r.s.schedules, id)
	return nil
}

func (r *Bookings) ownedBy(b domain.Booking, ownerID int64) bool {
	a, ok := r.s.apartments[b.ApartmentID]
	return ok && a.OwnerID == ownerID
}

func (r *Bookings) filter(keep func(domain.Booking) bool, less func(a, b *domain.Booking) bool) []*domain.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.s.bookings {
		if keep(b) {
			found := b
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result
}

func byCheckIn(a, b *domain.Booking) bool {
	if !a.CheckIn.Equal(b.CheckIn) {
		return a.CheckIn.Before(b.CheckIn)
	}
	return a.ID < b.ID
}

func byApartmentAndCheckOut(a, b *domain.Booking) bool {
	if a.ApartmentID != b.ApartmentID {
		return a.ApartmentID < b.ApartmentID
	}
	return a.CheckOut.Before(b.CheckOut)
}

// Cleaning реализация репозитория графика уборок
type Cleaning struct {
	s *Store

	// UpdateErr, если задан, возвращается из UpdateCleaningDates
	UpdateErr error
}

func (r *Cleaning) UpsertWindows(_ context.Context, windows []domain.CleaningWindow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, w := range windows {
		cs := r.s.schedules[w.BookingID]
		cs.BookingID = w.BookingID
		cs.WindowStart = w.Start
		cs.WindowEnd = w.End
		cs.UpdatedAt = r.s.Now()
		r.s.schedules[w.BookingID] = cs
	}
	return nil
}

func (r *Cleaning) GetCleaningDates(_ context.Context, bookingIDs []int64) (map[int64]*time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	dates := make(map[int64]*time.Time, len(bookingIDs))
	for _, id := range bookingIDs {
		if cs, ok := r.s.schedules[id]; ok {
			dates[id] = cs.CleaningDate
		}
	}
	return dates, nil
}

func (r *Cleaning) GetByBookingID(_ context.Context, bookingID int64) (*domain.CleaningSchedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cs, ok := r.s.schedules[bookingID]
	if !ok {
		return nil, cleaningRepo.ErrScheduleNotFound
	}
	return &cs, nil
}

func (r *Cleaning) UpdateCleaningDates(_ context.Context, changes []domain.AssignmentChange) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, change := range changes {
		cs, ok := r.s.schedules[change.BookingID]
		if !ok {
			return fmt.Errorf("%w: booking_id=%d", cleaningRepo.ErrScheduleNotFound, change.BookingID)
		}
		cs.CleaningDate = change.CleaningDate
		cs.UpdatedAt = r.s.Now()
		r.s.schedules[change.BookingID] = cs
	}
	return nil
}

// TxManager выполняет fn «в транзакции»: при ошибке восстанавливает снимок хранилища
type TxManager struct {
	s *Store

	// Calls количество вызовов
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	snapshot := m.s.snapshot()
	if err := fn(ctx); err != nil {
		m.s.restore(snapshot)
		return err
	}
	return nil
}

type snapshot struct {
	apartments map[int64]domain.Apartment
	bookings   map[int64]domain.Booking
	schedules  map[int64]domain.CleaningSchedule
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		apartments: make(map[int64]domain.Apartment, len(s.apartments)),
		bookings:   make(map[int64]domain.Booking, len(s.bookings)),
		schedules:  make(map[int64]domain.CleaningSchedule, len(s.schedules)),
	}
	for k, v := range s.apartments {
		snap.apartments[k] = v
	}
	for k, v := range s.bookings {
		snap.bookings[k] = v
	}
	for k, v := range s.schedules {
		snap.schedules[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apartments = snap.apartments
	s.bookings = snap.bookings
	s.schedules = snap.schedules
}

// Notifier запоминает опубликованные изменения
type Notifier struct {
	mu        sync.Mutex
	Published map[int64][]domain.AssignmentChange
	Err       error
}

// NewNotifier создает пустой notifier
func NewNotifier() *Notifier {
	return &Notifier{Published: make(map[int64][]domain.AssignmentChange)}
}

func (n *Notifier) PublishChanges(_ context.Context, ownerID int64, changes []domain.AssignmentChange) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.Err != nil {
		return n.Err
	}
	n.Published[ownerID] = append(n.Published[ownerID], changes...)
	return nil
}

// Count возвращает количество опубликованных изменений владельца
func (n *Notifier) Count(ownerID int64) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Published[ownerID])
}
