package reservation

import (
	"context"
	"errors"
	"testing"

	"hotelreservation/internal/domain"
	"hotelreservation/internal/modules/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, bookings []domain.Booking) error {
	args := m.Called(ctx, bookings)
	return args.Error(0)
}

type MockPaymentProcessor struct {
	mock.Mock
}

func (m *MockPaymentProcessor) Process(ctx context.Context, amount float64) {
	m.Called(ctx, amount)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) BookingCreated(roomType string)   { m.Called(roomType) }
func (m *MockRecorder) BookingRejected(reason string)    { m.Called(reason) }
func (m *MockRecorder) BookingCancelled(roomType string) { m.Called(roomType) }
func (m *MockRecorder) LedgerSize(n int)                 { m.Called(n) }

func newTestService(t *testing.T) (*Service, *MockStore, *MockPaymentProcessor) {
	t.Helper()
	store := new(MockStore)
	payments := new(MockPaymentProcessor)
	payments.On("Process", mock.Anything, mock.Anything).Maybe()
	return NewService(inventory.New(), store, payments, nil), store, payments
}

func validRequest(name, roomType string) BookRequest {
	return BookRequest{
		CustomerName: name,
		CNIC:         "1234567890123",
		Type:         roomType,
		Date:         "15-06-2025",
	}
}

func TestService_Book_Success(t *testing.T) {
	svc, _, payments := newTestService(t)

	b, err := svc.Book(context.Background(), validRequest("Ali", "Standard"))

	require.NoError(t, err)
	assert.Equal(t, domain.Booking{
		CustomerName: "Ali",
		CNIC:         "1234567890123",
		RoomNumber:   101,
		Type:         "Standard",
		Date:         "15-06-2025",
		Price:        5000,
	}, b)
	assert.Len(t, svc.ListAll(), 1)
	assert.Len(t, svc.Available(), 5)
	for _, r := range svc.Available() {
		assert.NotEqual(t, 101, r.RoomNumber)
	}

	room, _ := svc.rooms.Room(101)
	assert.True(t, room.IsBooked)
	assert.Equal(t, "15-06-2025", room.BookingDate)

	payments.AssertCalled(t, "Process", mock.Anything, 5000.0)
}

func TestService_Book_TypeIsCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestService(t)

	b, err := svc.Book(context.Background(), validRequest("Sara", "suite"))

	require.NoError(t, err)
	assert.Equal(t, 301, b.RoomNumber)
	assert.Equal(t, "Suite", b.Type)
	assert.Equal(t, 12000.0, b.Price)
}

func TestService_Book_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		req  BookRequest
		want error
	}{
		{"empty name", BookRequest{CustomerName: "", CNIC: "1234567890123", Type: "Standard", Date: "15-06-2025"}, ErrInvalidName},
		{"short cnic", BookRequest{CustomerName: "Ali", CNIC: "12345", Type: "Standard", Date: "15-06-2025"}, ErrInvalidCNIC},
		{"long cnic", BookRequest{CustomerName: "Ali", CNIC: "12345678901234", Type: "Standard", Date: "15-06-2025"}, ErrInvalidCNIC},
		{"letters in cnic", BookRequest{CustomerName: "Ali", CNIC: "abcde1234567", Type: "Standard", Date: "15-06-2025"}, ErrInvalidCNIC},
		{"iso date", BookRequest{CustomerName: "Ali", CNIC: "1234567890123", Type: "Standard", Date: "2025-06-15"}, ErrInvalidDate},
		{"slashed date", BookRequest{CustomerName: "Ali", CNIC: "1234567890123", Type: "Standard", Date: "15/06/2025"}, ErrInvalidDate},
		{"unknown type", BookRequest{CustomerName: "Ali", CNIC: "1234567890123", Type: "Penthouse", Date: "15-06-2025"}, ErrInvalidType},
		{"invalid utf8 name", BookRequest{CustomerName: "Ali\xff", CNIC: "1234567890123", Type: "Standard", Date: "15-06-2025"}, ErrInvalidName},
		{"name checked first", BookRequest{CNIC: "1", Type: "x", Date: "y"}, ErrInvalidName},
		{"cnic before date", BookRequest{CustomerName: "Ali", CNIC: "1", Type: "x", Date: "y"}, ErrInvalidCNIC},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, payments := newTestService(t)

			_, err := svc.Book(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, svc.ListAll())
			assert.Len(t, svc.Available(), 6)
			payments.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Book_NoRoomAvailable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Book(ctx, validRequest("Ali", "Standard"))
	require.NoError(t, err)
	second, err := svc.Book(ctx, validRequest("Bilal", "Standard"))
	require.NoError(t, err)
	assert.Equal(t, 101, first.RoomNumber)
	assert.Equal(t, 102, second.RoomNumber)

	roomsBefore := svc.Rooms()
	ledgerBefore := svc.ListAll()

	_, err = svc.Book(ctx, validRequest("Chand", "Standard"))

	assert.ErrorIs(t, err, ErrNoRoomAvailable)
	assert.Contains(t, err.Error(), "Standard")
	assert.Equal(t, roomsBefore, svc.Rooms())
	assert.Equal(t, ledgerBefore, svc.ListAll())

	for _, r := range svc.Available() {
		assert.NotEqual(t, domain.RoomStandard, r.Type)
	}
}

func TestService_Cancel_Success(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Book(ctx, validRequest("Ali", "Deluxe"))
	require.NoError(t, err)

	removed, err := svc.Cancel(ctx, "ALI")

	require.NoError(t, err)
	assert.Equal(t, 201, removed.RoomNumber)
	assert.Empty(t, svc.ListAll())
	room, _ := svc.rooms.Room(201)
	assert.False(t, room.IsBooked)
	assert.Empty(t, room.BookingDate)
}

func TestService_Cancel_OnlyFirstMatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Book(ctx, validRequest("Ali", "Standard"))
	require.NoError(t, err)
	_, err = svc.Book(ctx, validRequest("ali", "Suite"))
	require.NoError(t, err)

	removed, err := svc.Cancel(ctx, "Ali")
	require.NoError(t, err)
	assert.Equal(t, 101, removed.RoomNumber)

	remaining := svc.ListAll()
	require.Len(t, remaining, 1)
	assert.Equal(t, 301, remaining[0].RoomNumber)

	removed, err = svc.Cancel(ctx, "Ali")
	require.NoError(t, err)
	assert.Equal(t, 301, removed.RoomNumber)
	assert.Empty(t, svc.ListAll())
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Book(ctx, validRequest("Ali", "Standard"))
	require.NoError(t, err)

	roomsBefore := svc.Rooms()
	ledgerBefore := svc.ListAll()

	_, err = svc.Cancel(ctx, "Nobody")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, roomsBefore, svc.Rooms())
	assert.Equal(t, ledgerBefore, svc.ListAll())
}

func TestService_Cancel_EmptyName(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Cancel(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestService_CancelThenBook_ReusesRoom(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, validRequest("Ali", "Suite"))
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, "Ali")
	require.NoError(t, err)

	b, err := svc.Book(ctx, validRequest("Bilal", "Suite"))
	require.NoError(t, err)
	assert.Equal(t, 301, b.RoomNumber)
	assert.Equal(t, 12000.0, b.Price)
}

func TestService_ListByCNIC_And_History(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest("Ali", "Standard")
	_, err := svc.Book(ctx, req)
	require.NoError(t, err)

	other := validRequest("Bilal", "Deluxe")
	other.CNIC = "9999999999999"
	_, err = svc.Book(ctx, other)
	require.NoError(t, err)

	req.Type = "Suite"
	_, err = svc.Book(ctx, req)
	require.NoError(t, err)

	got := svc.ListByCNIC("1234567890123")
	require.Len(t, got, 2)
	assert.Equal(t, 101, got[0].RoomNumber)
	assert.Equal(t, 301, got[1].RoomNumber)

	history, err := svc.History("9999999999999")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	history, err = svc.History("0000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, history)
}

func TestService_FilterByPrice(t *testing.T) {
	svc, _, _ := newTestService(t)

	rooms, err := svc.FilterByPrice("6000", "9000")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, 201, rooms[0].RoomNumber)
	assert.Equal(t, 202, rooms[1].RoomNumber)

	_, err = svc.FilterByPrice("cheap", "9000")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Load_ReconcilesInventory(t *testing.T) {
	svc, store, _ := newTestService(t)
	stored := []domain.Booking{
		{CustomerName: "Ali", CNIC: "1234567890123", RoomNumber: 202, Type: "Deluxe", Date: "01-07-2025", Price: 8000},
		{CustomerName: "Ghost", CNIC: "1234567890123", RoomNumber: 999, Type: "Suite", Date: "02-07-2025", Price: 12000},
	}
	store.On("Load", mock.Anything).Return(stored, nil)

	n := svc.Load(context.Background())

	assert.Equal(t, 2, n)
	assert.Equal(t, stored, svc.ListAll())
	room, _ := svc.rooms.Room(202)
	assert.True(t, room.IsBooked)
	assert.Equal(t, "01-07-2025", room.BookingDate)
	assert.Len(t, svc.Available(), 5)
}

func TestService_Clear_DropsRecordsCancelCannotReach(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.On("Load", mock.Anything).Return([]domain.Booking{
		{CustomerName: "", CNIC: "1234567890123", RoomNumber: 101, Type: "Standard", Date: "01-07-2025", Price: 5000},
		{CustomerName: "Ali", CNIC: "1234567890123", RoomNumber: 301, Type: "Suite", Date: "02-07-2025", Price: 12000},
	}, nil)
	require.Equal(t, 2, svc.Load(context.Background()))

	_, err := svc.Cancel(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidName)

	svc.Clear()

	assert.Empty(t, svc.ListAll())
	assert.Len(t, svc.Available(), 6)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Load_FailureStartsEmpty(t *testing.T) {
	svc, store, _ := newTestService(t)
	_, err := svc.Book(context.Background(), validRequest("Ali", "Standard"))
	require.NoError(t, err)

	store.On("Load", mock.Anything).Return(nil, errors.New("corrupt ledger"))

	n := svc.Load(context.Background())

	assert.Equal(t, 0, n)
	assert.Empty(t, svc.ListAll())
	assert.Len(t, svc.Available(), 6)
}

func TestService_Save_WritesWholeLedger(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	a, err := svc.Book(ctx, validRequest("Ali", "Standard"))
	require.NoError(t, err)
	b, err := svc.Book(ctx, validRequest("Bilal", "Deluxe"))
	require.NoError(t, err)

	store.On("Save", mock.Anything, []domain.Booking{a, b}).Return(nil)

	require.NoError(t, svc.Save(ctx))
	store.AssertExpectations(t)
}

func TestService_Save_Failure(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := svc.Save(context.Background())

	assert.ErrorIs(t, err, ErrPersistenceWrite)
	assert.Contains(t, err.Error(), "disk full")
}

func TestService_Autosave_FailureKeepsBooking(t *testing.T) {
	svc, store, _ := newTestService(t)
	svc.EnableAutosave()
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("read-only file system"))

	b, err := svc.Book(context.Background(), validRequest("Ali", "Standard"))

	assert.ErrorIs(t, err, ErrPersistenceWrite)
	assert.Equal(t, 101, b.RoomNumber)
	assert.Len(t, svc.ListAll(), 1)
}

func TestService_Autosave_AfterCancel(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Book(ctx, validRequest("Ali", "Standard"))
	require.NoError(t, err)

	svc.EnableAutosave()
	store.On("Save", mock.Anything, []domain.Booking{}).Return(nil).Once()

	_, err = svc.Cancel(ctx, "ali")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestService_Cancel_KeepsRoomBookedForOtherBooking(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.On("Load", mock.Anything).Return([]domain.Booking{
		{CustomerName: "Ali", CNIC: "1234567890123", RoomNumber: 101, Type: "Standard", Date: "01-07-2025", Price: 5000},
		{CustomerName: "Bilal", CNIC: "1234567890124", RoomNumber: 101, Type: "Standard", Date: "09-07-2025", Price: 5000},
	}, nil)
	svc.Load(context.Background())

	_, err := svc.Cancel(context.Background(), "Ali")
	require.NoError(t, err)

	room, _ := svc.rooms.Room(101)
	assert.True(t, room.IsBooked)
	assert.Equal(t, "09-07-2025", room.BookingDate)
}

func TestService_RecordsMetrics(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("BookingCreated", "Standard").Once()
	rec.On("LedgerSize", 1).Once()
	rec.On("BookingRejected", "invalid_cnic").Once()
	rec.On("BookingCancelled", "Standard").Once()
	rec.On("LedgerSize", 0).Once()

	svc := NewService(inventory.New(), new(MockStore), nil, rec)
	ctx := context.Background()

	_, err := svc.Book(ctx, validRequest("Ali", "Standard"))
	require.NoError(t, err)

	bad := validRequest("Ali", "Standard")
	bad.CNIC = "123"
	_, err = svc.Book(ctx, bad)
	require.ErrorIs(t, err, ErrInvalidCNIC)

	_, err = svc.Cancel(ctx, "Ali")
	require.NoError(t, err)

	rec.AssertExpectations(t)
}
