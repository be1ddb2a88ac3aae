package admission

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	tablestorage "github.com/mesaviva/MV-ReservationService/internal/infra/storage/table"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
	"github.com/mesaviva/MV-ReservationService/pkg/ptr"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

type fakeLedger struct {
	reservations []*domain.Reservation
}

func (f *fakeLedger) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		if filter.Date != nil && !calendar.SameDay(*filter.Date, r.Date) {
			continue
		}
		if filter.CustomerID != nil && (r.CustomerID == nil || *r.CustomerID != *filter.CustomerID) {
			continue
		}
		if filter.TableID != nil && (r.TableID == nil || *r.TableID != *filter.TableID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeTables struct {
	tables []*domain.Table
}

func (f *fakeTables) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	for _, t := range f.tables {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, tablestorage.ErrTableNotFound
}

func (f *fakeTables) FindCandidates(_ context.Context, partySize int) ([]*domain.Table, error) {
	var out []*domain.Table
	for _, t := range f.tables {
		if t.IsActive() && t.Fits(partySize) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity < out[j].Capacity
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeTables) TotalActiveCapacity(_ context.Context) (int, error) {
	total := 0
	for _, t := range f.tables {
		if t.IsActive() {
			total += t.Capacity
		}
	}
	return total, nil
}

type fakeHours struct {
	byDay map[int][]*domain.BusinessHourInterval
}

func (f *fakeHours) ListActiveByDay(_ context.Context, dayOfWeek int) ([]*domain.BusinessHourInterval, error) {
	return f.byDay[dayOfWeek], nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Пятница с обеденным и вечерним интервалами работы
var friday = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

func fridayHours() *fakeHours {
	return &fakeHours{byDay: map[int][]*domain.BusinessHourInterval{
		5: {
			{ID: 1, DayOfWeek: 5, OpenTime: "12:00", CloseTime: "15:00", Active: true},
			{ID: 2, DayOfWeek: 5, OpenTime: "18:00", CloseTime: "22:00", Active: true},
		},
	}}
}

func threeTables() *fakeTables {
	return &fakeTables{tables: []*domain.Table{
		{ID: 1, Name: "T1", Capacity: 2, Zone: "window", Status: domain.TableActive},
		{ID: 2, Name: "T2", Capacity: 4, Zone: "main", Status: domain.TableActive},
		{ID: 3, Name: "T3", Capacity: 6, Zone: "terrace", Status: domain.TableActive},
		{ID: 4, Name: "T4", Capacity: 8, Zone: "terrace", Status: domain.TableInactive},
	}}
}

func newTestController(ledger *fakeLedger, tables *fakeTables, hours *fakeHours) *Controller {
	return NewController(ledger, tables, hours, nopLogger{}, &fixedClock{
		now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	})
}

func testPolicy() domain.RestaurantPolicy {
	return domain.RestaurantPolicy{
		ID:                      1,
		StandardDurationMinutes: 90,
		SlotIntervalMinutes:     30,
		MinCancelLeadMinutes:    60,
		MaxLatenessMinutes:      20,
		AllowUnassignedOverflow: true,
	}
}

func activeReservation(id int64, start, end types.TimeString, partySize int) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Date:      friday,
		StartTime: start,
		EndTime:   end,
		PartySize: partySize,
		Status:    domain.StatusConfirmed,
	}
}

func TestValidateAndPlan_Success(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	plan, err := c.ValidateAndPlan(context.Background(), testPolicy(), Request{
		Date:      friday,
		StartTime: "18:00",
		PartySize: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), plan.StartTime)
	assert.Equal(t, types.TimeString("19:30"), plan.EndTime)
	assert.Equal(t, 90, plan.DurationMinutes)
}

func TestValidateAndPlan_NormalizesMeridiemTime(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	plan, err := c.ValidateAndPlan(context.Background(), testPolicy(), Request{
		Date:      friday,
		StartTime: "7:00 pm",
		PartySize: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("19:00"), plan.StartTime)
	assert.Equal(t, types.TimeString("20:30"), plan.EndTime)
}

func TestValidateAndPlan_PastDate(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	_, err := c.ValidateAndPlan(context.Background(), testPolicy(), Request{
		Date:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		PartySize: 2,
	})

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestValidateAndPlan_InvalidInputs(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())
	ctx := context.Background()

	_, err := c.ValidateAndPlan(ctx, testPolicy(), Request{Date: friday, StartTime: "18:00", PartySize: 0})
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{Date: friday, StartTime: "18:00", PartySize: 2, DurationMinutes: ptr.Ptr(10)})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{Date: friday, StartTime: "18:00", PartySize: 2, DurationMinutes: ptr.Ptr(500)})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{Date: friday, StartTime: "soon", PartySize: 2})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestValidateAndPlan_OutsideBusinessHours(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	_, err := c.ValidateAndPlan(context.Background(), testPolicy(), Request{
		Date:      friday,
		StartTime: "16:00",
		PartySize: 2,
	})

	require.ErrorIs(t, err, ErrOutsideBusinessHours)

	var hoursErr *OutsideHoursError
	require.ErrorAs(t, err, &hoursErr)
	assert.Equal(t, "Friday", hoursErr.DayName)
	assert.Equal(t, []string{"12:00-15:00", "18:00-22:00"}, hoursErr.Intervals)
	assert.False(t, hoursErr.ClosedAllDay())
}

func TestValidateAndPlan_ClosedAllDay(t *testing.T) {
	// Понедельник без интервалов работы
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	_, err := c.ValidateAndPlan(context.Background(), testPolicy(), Request{
		Date:      monday,
		StartTime: "18:00",
		PartySize: 2,
	})

	require.ErrorIs(t, err, ErrOutsideBusinessHours)

	var hoursErr *OutsideHoursError
	require.ErrorAs(t, err, &hoursErr)
	assert.True(t, hoursErr.ClosedAllDay())
	assert.Equal(t, "Monday", hoursErr.DayName)
}

func TestValidateAndPlan_PinnedTable(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())
	ctx := context.Background()

	_, err := c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:00", PartySize: 2, TableID: ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrTableNotFound)

	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:00", PartySize: 2, TableID: ptr.Ptr(int64(4)),
	})
	assert.ErrorIs(t, err, ErrTableInactive)

	// Стол на двоих не вмещает троих
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:00", PartySize: 3, TableID: ptr.Ptr(int64(1)),
	})
	assert.ErrorIs(t, err, ErrPartyExceedsTableCapacity)
}

func TestValidateAndPlan_DuplicateCustomer(t *testing.T) {
	existing := activeReservation(10, "18:00", "19:30", 2)
	existing.CustomerID = ptr.Ptr(int64(7))
	ledger := &fakeLedger{reservations: []*domain.Reservation{existing}}
	c := newTestController(ledger, threeTables(), fridayHours())
	ctx := context.Background()

	// Дубликат — то же время начала того же клиента
	_, err := c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:00", PartySize: 2, CustomerID: ptr.Ptr(int64(7)),
	})
	assert.ErrorIs(t, err, ErrDuplicateReservation)

	// Нормализованное время совпадает с записанным
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "6:00 pm", PartySize: 2, CustomerID: ptr.Ptr(int64(7)),
	})
	assert.ErrorIs(t, err, ErrDuplicateReservation)

	// Пересекающееся окно с другим началом дубликатом не считается
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:30", PartySize: 2, CustomerID: ptr.Ptr(int64(7)),
	})
	assert.NoError(t, err)

	// Другой клиент не считается дубликатом
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:00", PartySize: 2, CustomerID: ptr.Ptr(int64(8)),
	})
	assert.NoError(t, err)
}

func TestValidateAndPlan_TableOverlap(t *testing.T) {
	existing := activeReservation(10, "18:00", "19:30", 2)
	existing.TableID = ptr.Ptr(int64(2))
	ledger := &fakeLedger{reservations: []*domain.Reservation{existing}}
	c := newTestController(ledger, threeTables(), fridayHours())
	ctx := context.Background()

	_, err := c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "19:00", PartySize: 2, TableID: ptr.Ptr(int64(2)),
	})
	assert.ErrorIs(t, err, ErrTableOverlap)

	// Окна встык не пересекаются
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "19:30", PartySize: 2, TableID: ptr.Ptr(int64(2)),
	})
	assert.NoError(t, err)

	// Отмененная бронь стол не держит
	existing.Status = domain.StatusCancelled
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "19:00", PartySize: 2, TableID: ptr.Ptr(int64(2)),
	})
	assert.NoError(t, err)
}

func TestValidateAndPlan_AggregateCapacity(t *testing.T) {
	// Совокупная вместимость 4: один стол на 4, остальные неактивны
	tables := &fakeTables{tables: []*domain.Table{
		{ID: 2, Name: "T2", Capacity: 4, Status: domain.TableActive},
	}}
	ledger := &fakeLedger{reservations: []*domain.Reservation{
		activeReservation(10, "18:00", "19:30", 3),
	}}
	c := newTestController(ledger, tables, fridayHours())
	ctx := context.Background()

	// 3 занято + 3 запрошено > 4
	_, err := c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:30", PartySize: 3,
	})
	require.ErrorIs(t, err, ErrInsufficientCapacity)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 4, capErr.TotalCapacity)
	assert.Equal(t, 3, capErr.Reserved)
	assert.Equal(t, 3, capErr.Requested)

	// 3 занято + 1 запрошено <= 4
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:30", PartySize: 1,
	})
	assert.NoError(t, err)
}

func TestValidateAndPlan_WindowPastMidnight(t *testing.T) {
	// Вечер до 23:30: стандартные 90 минут от 23:00 уходят за полночь
	hours := &fakeHours{byDay: map[int][]*domain.BusinessHourInterval{
		5: {{ID: 1, DayOfWeek: 5, OpenTime: "18:00", CloseTime: "23:30", Active: true}},
	}}
	c := newTestController(&fakeLedger{}, threeTables(), hours)
	ctx := context.Background()

	_, err := c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "23:00", PartySize: 2,
	})
	assert.ErrorIs(t, err, ErrCrossesMidnight)

	// 22:00 + 90 минут заканчиваются ровно в 23:30
	plan, err := c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "22:00", PartySize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("23:30"), plan.EndTime)
}

func TestValidateAndPlan_AggregateCapacityWithoutStoredEnd(t *testing.T) {
	tables := &fakeTables{tables: []*domain.Table{
		{ID: 2, Name: "T2", Capacity: 4, Status: domain.TableActive},
	}}
	// Бронь без записанного конца держит место стандартные 90 минут
	ledger := &fakeLedger{reservations: []*domain.Reservation{
		activeReservation(10, "18:00", "", 3),
	}}
	c := newTestController(ledger, tables, fridayHours())
	ctx := context.Background()

	_, err := c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "18:30", PartySize: 3,
	})
	assert.ErrorIs(t, err, ErrInsufficientCapacity)

	// 19:30 уже за пределами подставленной длительности
	_, err = c.ValidateAndPlan(ctx, testPolicy(), Request{
		Date: friday, StartTime: "19:30", PartySize: 3,
	})
	assert.NoError(t, err)
}

func TestValidateAndPlan_NoTablesSkipsCapacityCheck(t *testing.T) {
	// Ресторан без заведенных столов принимает брони без ограничения
	c := newTestController(&fakeLedger{}, &fakeTables{}, fridayHours())

	_, err := c.ValidateAndPlan(context.Background(), testPolicy(), Request{
		Date: friday, StartTime: "18:00", PartySize: 50,
	})
	assert.NoError(t, err)
}

func TestValidateAndPlan_SlotLimit(t *testing.T) {
	ledger := &fakeLedger{reservations: []*domain.Reservation{
		activeReservation(10, "18:00", "19:30", 2),
	}}
	c := newTestController(ledger, threeTables(), fridayHours())

	policy := testPolicy()
	policy.MaxReservationsPerSlot = ptr.Ptr(1)

	_, err := c.ValidateAndPlan(context.Background(), policy, Request{
		Date: friday, StartTime: "18:30", PartySize: 2,
	})
	assert.ErrorIs(t, err, ErrSlotLimitReached)
}

func TestValidateAndPlan_ExcludeOwnReservation(t *testing.T) {
	existing := activeReservation(10, "18:00", "19:30", 2)
	existing.CustomerID = ptr.Ptr(int64(7))
	existing.TableID = ptr.Ptr(int64(2))
	ledger := &fakeLedger{reservations: []*domain.Reservation{existing}}
	c := newTestController(ledger, threeTables(), fridayHours())

	// Редактирование своей же брони не конфликтует само с собой
	_, err := c.ValidateAndPlan(context.Background(), testPolicy(), Request{
		Date:                 friday,
		StartTime:            "18:00",
		PartySize:            2,
		CustomerID:           ptr.Ptr(int64(7)),
		TableID:              ptr.Ptr(int64(2)),
		ExcludeReservationID: ptr.Ptr(int64(10)),
	})
	assert.NoError(t, err)
}

func TestFindAvailableTables_TightestFirst(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	available, err := c.FindAvailableTables(context.Background(), Request{
		Date: friday, PartySize: 3,
	}, "18:00", "19:30")

	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "T2", available[0].Name)
	assert.Equal(t, "T3", available[1].Name)
}

func TestFindAvailableTables_SkipsBusy(t *testing.T) {
	existing := activeReservation(10, "18:00", "19:30", 2)
	existing.TableID = ptr.Ptr(int64(2))
	ledger := &fakeLedger{reservations: []*domain.Reservation{existing}}
	c := newTestController(ledger, threeTables(), fridayHours())

	available, err := c.FindAvailableTables(context.Background(), Request{
		Date: friday, PartySize: 3,
	}, "18:30", "20:00")

	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "T3", available[0].Name)
}

func TestAutoAssign(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	table, err := c.AutoAssign(context.Background(), Request{Date: friday, PartySize: 2}, "18:00", "19:30")
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Equal(t, "T1", table.Name)

	// Никто не вмещает компанию — nil без ошибки
	table, err = c.AutoAssign(context.Background(), Request{Date: friday, PartySize: 10}, "18:00", "19:30")
	require.NoError(t, err)
	assert.Nil(t, table)
}

func TestSuggestAlternateSlots(t *testing.T) {
	c := newTestController(&fakeLedger{}, threeTables(), fridayHours())

	slots, err := c.SuggestAlternateSlots(context.Background(), testPolicy(), Request{
		Date: friday, StartTime: "12:00", PartySize: 2,
	})

	require.NoError(t, err)
	// Запрошенные 12:00 исключены, дальше сетка с шагом 30 минут
	assert.Equal(t, []types.TimeString{"12:30", "13:00", "13:30", "14:00", "14:30"}, slots)
}

func TestSuggestAlternateSlots_SkipsFullSlots(t *testing.T) {
	tables := &fakeTables{tables: []*domain.Table{
		{ID: 2, Name: "T2", Capacity: 4, Status: domain.TableActive},
	}}
	// Обед занят полностью до 14:00
	ledger := &fakeLedger{reservations: []*domain.Reservation{
		activeReservation(10, "12:00", "14:00", 4),
	}}
	c := newTestController(ledger, tables, fridayHours())

	slots, err := c.SuggestAlternateSlots(context.Background(), testPolicy(), Request{
		Date: friday, StartTime: "12:00", PartySize: 2,
	})

	require.NoError(t, err)
	// Слоты, чье окно пересекается с занятой бронью, отброшены
	assert.Equal(t, []types.TimeString{"14:00", "14:30", "18:00", "18:30", "19:00"}, slots)
}

func TestSuggestAlternateSlots_SkipsWindowsPastMidnight(t *testing.T) {
	hours := &fakeHours{byDay: map[int][]*domain.BusinessHourInterval{
		5: {{ID: 1, DayOfWeek: 5, OpenTime: "21:00", CloseTime: "23:30", Active: true}},
	}}
	c := newTestController(&fakeLedger{}, threeTables(), hours)

	slots, err := c.SuggestAlternateSlots(context.Background(), testPolicy(), Request{
		Date: friday, StartTime: "21:00", PartySize: 2,
	})

	require.NoError(t, err)
	// С 22:30 стандартные 90 минут уходят за полночь
	assert.Equal(t, []types.TimeString{"21:30", "22:00"}, slots)
}
