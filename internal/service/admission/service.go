package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	tablestorage "github.com/mesaviva/MV-ReservationService/internal/infra/storage/table"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// Controller проверяет допустимость брони и строит план размещения.
// Не хранит состояния: все решения принимаются по журналу броней,
// реестру столов и расписанию работы на момент вызова.
type Controller struct {
	ledger       ReservationLedger
	tables       TableRegistry
	hours        HoursRegistry
	logger       Logger
	timeProvider TimeProvider
}

// NewController создает контроллер допуска броней
func NewController(
	ledger ReservationLedger,
	tables TableRegistry,
	hours HoursRegistry,
	logger Logger,
	timeProvider TimeProvider,
) *Controller {
	return &Controller{
		ledger:       ledger,
		tables:       tables,
		hours:        hours,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// ValidateAndPlan прогоняет запрос через проверки допуска в фиксированном
// порядке и возвращает план с нормализованными временами. Порядок проверок
// стабилен: первая провалившаяся определяет ошибку ответа.
//
//  1. дата не в прошлом
//  2. число гостей и длительность
//  3. часы работы ресторана
//  4. закрепленный стол: существует, активен, вмещает
//  5. дубликат активной брони клиента
//  6. пересечение по закрепленному столу
//  7. совокупная вместимость и лимит на слот (без закрепленного стола)
func (c *Controller) ValidateAndPlan(ctx context.Context, policy domain.RestaurantPolicy, req Request) (*Plan, error) {
	now := c.timeProvider.Now()

	// 1. Дата
	if calendar.IsPast(req.Date, now) {
		return nil, ErrPastDate
	}

	// 2. Гости и длительность
	if req.PartySize < domain.MinPartySize {
		return nil, ErrInvalidPartySize
	}

	duration := policy.StandardDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if duration < domain.MinDurationMinutes || duration > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, duration)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.StartTime)
	}
	end, err := start.AddMinutes(duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.StartTime)
	}
	// Окно брони не выходит за полночь: иначе ломается инвариант
	// start < end и сравнение пересечений
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: %s + %d minutes", ErrCrossesMidnight, start, duration)
	}

	// 3. Часы работы
	if err := c.checkBusinessHours(ctx, req.Date, start); err != nil {
		return nil, err
	}

	// 4. Закрепленный стол
	if req.TableID != nil {
		if err := c.checkPinnedTable(ctx, *req.TableID, req.PartySize); err != nil {
			return nil, err
		}
	}

	// 5. Дубликат брони клиента
	if req.CustomerID != nil {
		if err := c.checkDuplicate(ctx, req, start); err != nil {
			return nil, err
		}
	}

	// 6. Пересечение по столу
	if req.TableID != nil {
		if err := c.checkTableOverlap(ctx, req, start, end); err != nil {
			return nil, err
		}
	} else {
		// 7. Совокупная вместимость — только для броней без стола
		if err := c.checkAggregateCapacity(ctx, policy, req, start, end); err != nil {
			return nil, err
		}
	}

	return &Plan{
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
	}, nil
}

// checkBusinessHours проверяет, что начало брони попадает в один из
// интервалов работы дня
func (c *Controller) checkBusinessHours(ctx context.Context, date time.Time, start types.TimeString) error {
	dayOfWeek := calendar.DayOfWeek(date)

	intervals, err := c.hours.ListActiveByDay(ctx, dayOfWeek)
	if err != nil {
		c.logger.Error("admission: failed to load business hours for day %d: %v", dayOfWeek, err)
		return fmt.Errorf("%w: load business hours: %v", ErrInternal, err)
	}

	for _, h := range intervals {
		if h.Contains(start) {
			return nil
		}
	}

	return &OutsideHoursError{
		DayName:   calendar.DayName(dayOfWeek),
		Intervals: domain.FormatIntervals(intervals),
	}
}

func (c *Controller) checkPinnedTable(ctx context.Context, tableID int64, partySize int) error {
	t, err := c.tables.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, tablestorage.ErrTableNotFound) {
			return ErrTableNotFound
		}
		c.logger.Error("admission: failed to load table %d: %v", tableID, err)
		return fmt.Errorf("%w: load table: %v", ErrInternal, err)
	}
	if !t.IsActive() {
		return ErrTableInactive
	}
	if !t.Fits(partySize) {
		return fmt.Errorf("%w: table %q seats %d, party of %d",
			ErrPartyExceedsTableCapacity, t.Name, t.Capacity, partySize)
	}
	return nil
}

// checkDuplicate отклоняет запрос, если у клиента уже есть активная бронь
// на ту же дату с тем же временем начала. Пересекающиеся окна с другим
// началом дубликатом не считаются: их разрешают проверки столов и
// вместимости
func (c *Controller) checkDuplicate(ctx context.Context, req Request, start types.TimeString) error {
	existing, err := c.ledger.GetWithFilter(ctx, domain.ReservationsFilter{
		Date:       &req.Date,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		c.logger.Error("admission: failed to load customer reservations: %v", err)
		return fmt.Errorf("%w: load customer reservations: %v", ErrInternal, err)
	}

	for _, r := range existing {
		if req.ExcludeReservationID != nil && r.ID == *req.ExcludeReservationID {
			continue
		}
		if r.StartTime == start {
			return ErrDuplicateReservation
		}
	}
	return nil
}

func (c *Controller) checkTableOverlap(ctx context.Context, req Request, start, end types.TimeString) error {
	existing, err := c.ledger.GetWithFilter(ctx, domain.ReservationsFilter{
		Date:    &req.Date,
		TableID: req.TableID,
	})
	if err != nil {
		c.logger.Error("admission: failed to load table reservations: %v", err)
		return fmt.Errorf("%w: load table reservations: %v", ErrInternal, err)
	}

	for _, r := range existing {
		if req.ExcludeReservationID != nil && r.ID == *req.ExcludeReservationID {
			continue
		}
		if types.Overlaps(start, end, r.StartTime, r.EndTime) {
			return ErrTableOverlap
		}
	}
	return nil
}

// checkAggregateCapacity сравнивает сумму гостей пересекающихся активных
// броней с совокупной вместимостью активных столов. Когда активных столов
// нет вовсе, проверка пропускается: ресторан без заведенных столов
// принимает брони без ограничения.
func (c *Controller) checkAggregateCapacity(ctx context.Context, policy domain.RestaurantPolicy, req Request, start, end types.TimeString) error {
	total, err := c.tables.TotalActiveCapacity(ctx)
	if err != nil {
		c.logger.Error("admission: failed to load total capacity: %v", err)
		return fmt.Errorf("%w: load total capacity: %v", ErrInternal, err)
	}
	if total == 0 {
		return nil
	}

	existing, err := c.ledger.GetWithFilter(ctx, domain.ReservationsFilter{
		Date: &req.Date,
	})
	if err != nil {
		c.logger.Error("admission: failed to load day reservations: %v", err)
		return fmt.Errorf("%w: load day reservations: %v", ErrInternal, err)
	}

	reserved := 0
	overlapping := 0
	for _, r := range existing {
		if req.ExcludeReservationID != nil && r.ID == *req.ExcludeReservationID {
			continue
		}
		if !types.Overlaps(start, end, r.StartTime, r.EffectiveEnd(policy.StandardDurationMinutes)) {
			continue
		}
		reserved += r.PartySize
		overlapping++
	}

	if policy.MaxReservationsPerSlot != nil && overlapping >= *policy.MaxReservationsPerSlot {
		return ErrSlotLimitReached
	}

	if reserved+req.PartySize > total {
		return &CapacityError{
			TotalCapacity: total,
			Reserved:      reserved,
			Requested:     req.PartySize,
		}
	}
	return nil
}

// FindAvailableTables возвращает активные столы, вмещающие гостей и
// свободные в запрошенном окне, от самых тесных к самым просторным
func (c *Controller) FindAvailableTables(ctx context.Context, req Request, start, end types.TimeString) ([]*domain.Table, error) {
	candidates, err := c.tables.FindCandidates(ctx, req.PartySize)
	if err != nil {
		c.logger.Error("admission: failed to load candidate tables: %v", err)
		return nil, fmt.Errorf("%w: load candidate tables: %v", ErrInternal, err)
	}

	existing, err := c.ledger.GetWithFilter(ctx, domain.ReservationsFilter{
		Date: &req.Date,
	})
	if err != nil {
		c.logger.Error("admission: failed to load day reservations: %v", err)
		return nil, fmt.Errorf("%w: load day reservations: %v", ErrInternal, err)
	}

	// Столы, занятые пересекающимися активными бронями
	busy := make(map[int64]struct{})
	for _, r := range existing {
		if r.TableID == nil {
			continue
		}
		if req.ExcludeReservationID != nil && r.ID == *req.ExcludeReservationID {
			continue
		}
		if types.Overlaps(start, end, r.StartTime, r.EndTime) {
			busy[*r.TableID] = struct{}{}
		}
	}

	available := make([]*domain.Table, 0, len(candidates))
	for _, t := range candidates {
		if _, taken := busy[t.ID]; !taken {
			available = append(available, t)
		}
	}
	return available, nil
}

// AutoAssign выбирает стол для брони без закрепления: первый из доступных,
// то есть самый тесный подходящий. Возвращает nil, если свободных нет.
func (c *Controller) AutoAssign(ctx context.Context, req Request, start, end types.TimeString) (*domain.Table, error) {
	available, err := c.FindAvailableTables(ctx, req, start, end)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, nil
	}
	return available[0], nil
}

// SuggestAlternateSlots подбирает ближайшие времена того же дня, проходящие
// по часам работы и вместимости. Сетка слотов идет с шагом из политики от
// открытия каждого интервала; запрошенное время исключается.
func (c *Controller) SuggestAlternateSlots(ctx context.Context, policy domain.RestaurantPolicy, req Request) ([]types.TimeString, error) {
	requested, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.StartTime)
	}

	duration := policy.StandardDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	step := policy.SlotIntervalMinutes
	if step < domain.MinSlotIntervalMinutes {
		step = domain.DefaultSlotIntervalMinutes
	}

	dayOfWeek := calendar.DayOfWeek(req.Date)
	intervals, err := c.hours.ListActiveByDay(ctx, dayOfWeek)
	if err != nil {
		c.logger.Error("admission: failed to load business hours for day %d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: load business hours: %v", ErrInternal, err)
	}

	suggestions := make([]types.TimeString, 0, domain.MaxSuggestedSlots)
	for _, h := range intervals {
		for m := h.OpenTime.Minutes(); m < h.CloseTime.Minutes(); m += step {
			if len(suggestions) >= domain.MaxSuggestedSlots {
				return suggestions, nil
			}

			slot := types.NewTimeStringFromMinutes(m)
			if slot == requested {
				continue
			}

			slotEnd, err := slot.AddMinutes(duration)
			if err != nil || !slot.IsBefore(slotEnd) {
				// Окна, уходящие за полночь, не предлагаются
				continue
			}

			probe := req
			probe.StartTime = slot.String()
			if err := c.checkAggregateCapacity(ctx, policy, probe, slot, slotEnd); err != nil {
				if errors.Is(err, ErrInsufficientCapacity) || errors.Is(err, ErrSlotLimitReached) {
					continue
				}
				return nil, err
			}

			suggestions = append(suggestions, slot)
		}
	}
	return suggestions, nil
}
