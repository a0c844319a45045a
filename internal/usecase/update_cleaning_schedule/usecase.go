package update_cleaning_schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/scheduling"
)

// UseCase пересчитывает окна и даты уборок бронирований владельца
type UseCase struct {
	bookingRepo  BookingRepository
	cleaningRepo CleaningRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	logger       Logger
	paddingDays  int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cleaningRepo CleaningRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
	paddingDays int,
) *UseCase {
	if paddingDays <= 0 {
		paddingDays = domain.DefaultPaddingDays
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		cleaningRepo: cleaningRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		logger:       logger,
		paddingDays:  paddingDays,
	}
}

// Execute пересчитывает график и публикует изменения после фиксации транзакции
func (uc *UseCase) Execute(ctx context.Context, input *InputData) (*Result, error) {
	result, err := uc.Recalculate(ctx, input)
	if err != nil {
		return nil, err
	}

	uc.Publish(ctx, input.OwnerID, result.Changes)
	return result, nil
}

// Recalculate выполняет пересчёт в сериализуемой транзакции.
// Если транзакция уже открыта в контексте (создание бронирования), пересчёт идёт в ней
func (uc *UseCase) Recalculate(ctx context.Context, input *InputData) (*Result, error) {
	if input == nil || input.OwnerID <= 0 || len(input.Bookings) == 0 {
		return nil, fmt.Errorf("%w: owner and at least one booking are required", ErrInvalidInput)
	}

	dateRange, err := scheduling.PassRange(input.Bookings, uc.paddingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("UpdateCleaningSchedule: owner=%d, range=[%s, %s]",
		input.OwnerID, dateRange.From.Format(domain.DateTimeFormat), dateRange.To.Format(domain.DateTimeFormat))

	var result *Result
	started := time.Now()

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		r, err := uc.recalculate(txCtx, input.OwnerID, dateRange)
		if err != nil {
			return err
		}
		result = r
		return nil
	})

	if err != nil {
		uc.metrics.ObserveSchedulingPass(time.Since(started), 0, 0, 0, err)
		return nil, err
	}

	uc.metrics.ObserveSchedulingPass(time.Since(started), len(result.Windows), len(result.Overlaps), len(result.Changes), nil)
	uc.logger.Info("UpdateCleaningSchedule: owner=%d, windows=%d, overlaps=%d, changed=%d",
		input.OwnerID, len(result.Windows), len(result.Overlaps), len(result.Changes))

	return result, nil
}

// Publish отправляет изменения дат уборки. Ошибка публикации только логируется
func (uc *UseCase) Publish(ctx context.Context, ownerID int64, changes []domain.AssignmentChange) {
	if len(changes) == 0 {
		return
	}

	if err := uc.notifier.PublishChanges(ctx, ownerID, changes); err != nil {
		uc.logger.Warn("UpdateCleaningSchedule: failed to publish %d changes for owner=%d: %v", len(changes), ownerID, err)
	}
}

func (uc *UseCase) recalculate(ctx context.Context, ownerID int64, dateRange domain.DateRange) (*Result, error) {
	// 1. Бронирования диапазона
	inRange, err := uc.bookingRepo.GetByOwnerInRange(ctx, ownerID, dateRange.From, dateRange.To)
	if err != nil {
		uc.logger.Error("UpdateCleaningSchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 2. Первые заезды за границей диапазона закрывают окна последних бронирований
	successors, err := uc.bookingRepo.GetFirstAfter(ctx, ownerID, dateRange.To)
	if err != nil {
		uc.logger.Error("UpdateCleaningSchedule: failed to get successor bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get successor bookings: %v", ErrInternal, err)
	}

	bookings := make([]domain.Booking, 0, len(inRange)+len(successors))
	ids := make([]int64, 0, len(inRange))
	owned := make(map[int64]struct{}, len(inRange))
	for _, b := range inRange {
		bookings = append(bookings, *b)
		ids = append(ids, b.ID)
		owned[b.ID] = struct{}{}
	}
	for _, b := range successors {
		if _, ok := owned[b.ID]; !ok {
			bookings = append(bookings, *b)
		}
	}

	// 3. Сохранённые даты уборки
	current, err := uc.cleaningRepo.GetCleaningDates(ctx, ids)
	if err != nil {
		uc.logger.Error("UpdateCleaningSchedule: failed to get cleaning dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get cleaning dates: %v", ErrInternal, err)
	}

	// 4. Пересчёт
	pass, err := scheduling.RunPass(bookings, dateRange, current)
	if err != nil {
		if errors.Is(err, scheduling.ErrOverlappingBookings) || errors.Is(err, scheduling.ErrInvalidBookingRange) {
			uc.logger.Warn("UpdateCleaningSchedule: owner=%d has inconsistent bookings: %v", ownerID, err)
			return nil, fmt.Errorf("%w: %v", ErrInconsistentBookings, err)
		}
		uc.logger.Error("UpdateCleaningSchedule: scheduling pass failed: %v", err)
		return nil, fmt.Errorf("%w: scheduling pass failed: %v", ErrInternal, err)
	}

	// Сохраняем только бронирования диапазона, следующие за ним пересчитаются своим проходом
	result := &Result{
		Range:       dateRange,
		Windows:     make([]domain.CleaningWindow, 0, len(ids)),
		Overlaps:    pass.Overlaps,
		Assignments: make(map[int64]domain.CleaningAssignment, len(ids)),
		Changes:     make([]domain.AssignmentChange, 0, len(pass.Changes)),
	}
	for _, id := range ids {
		result.Windows = append(result.Windows, pass.Windows[id])
		result.Assignments[id] = pass.Assignments[id]
	}
	sort.Slice(result.Windows, func(i, j int) bool { return result.Windows[i].BookingID < result.Windows[j].BookingID })
	for _, change := range pass.Changes {
		if _, ok := owned[change.BookingID]; ok {
			result.Changes = append(result.Changes, change)
		}
	}

	// 5. Окна пишутся всегда: у новых бронирований записи графика ещё нет
	if len(result.Windows) > 0 {
		if err := uc.cleaningRepo.UpsertWindows(ctx, result.Windows); err != nil {
			uc.logger.Error("UpdateCleaningSchedule: failed to save windows: %v", err)
			return nil, fmt.Errorf("%w: failed to save windows: %v", ErrInternal, err)
		}
	}

	// 6. Даты только изменившиеся
	if len(result.Changes) > 0 {
		if err := uc.cleaningRepo.UpdateCleaningDates(ctx, result.Changes); err != nil {
			uc.logger.Error("UpdateCleaningSchedule: failed to save cleaning dates: %v", err)
			return nil, fmt.Errorf("%w: failed to save cleaning dates: %v", ErrInternal, err)
		}
	}

	return result, nil
}
