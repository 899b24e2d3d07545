package repository

import (
	"context"
	"errors"
	"fmt"

	"hotelreservation/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// BookingRepository keeps the ledger in a SQL table. Save replaces the whole
// table inside one transaction; position preserves ledger order.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	Position     int     `gorm:"column:position;index"`
	CustomerName string  `gorm:"column:customer_name"`
	CNIC         string  `gorm:"column:cnic;size:13"`
	RoomNumber   int     `gorm:"column:room_number"`
	Type         string  `gorm:"column:type"`
	Date         string  `gorm:"column:date;size:10"`
	Price        float64 `gorm:"column:price"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		CustomerName: m.CustomerName,
		CNIC:         m.CNIC,
		RoomNumber:   m.RoomNumber,
		Type:         m.Type,
		Date:         m.Date,
		Price:        m.Price,
	}
}

func toBookingModel(pos int, b domain.Booking) bookingModel {
	return bookingModel{
		Position:     pos,
		CustomerName: b.CustomerName,
		CNIC:         b.CNIC,
		RoomNumber:   b.RoomNumber,
		Type:         b.Type,
		Date:         b.Date,
		Price:        b.Price,
	}
}

// Migrate creates the bookings table if needed.
func (r *BookingRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&bookingModel{}); err != nil {
		return describeDBError("migrate bookings", err)
	}
	return nil
}

func (r *BookingRepository) Load(ctx context.Context) ([]domain.Booking, error) {
	db := r.db.WithContext(ctx)
	if !db.Migrator().HasTable(&bookingModel{}) {
		return []domain.Booking{}, nil
	}

	var rows []bookingModel
	if err := db.Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, describeDBError("load bookings", err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Save(ctx context.Context, bookings []domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&bookingModel{}); err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		if len(bookings) == 0 {
			return nil
		}

		rows := make([]bookingModel, 0, len(bookings))
		for i, b := range bookings {
			rows = append(rows, toBookingModel(i, b))
		}
		return tx.CreateInBatches(&rows, 100).Error
	})
	if err != nil {
		return describeDBError("save bookings", err)
	}
	return nil
}

// describeDBError adds the SQLSTATE for PostgreSQL failures.
func describeDBError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: postgres %s (%s): %w", op, pgErr.Code, pgErr.Message, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
