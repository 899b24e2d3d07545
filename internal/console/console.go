package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"hotelreservation/internal/domain"
	"hotelreservation/internal/modules/reservation"
)

const menu = `
1) View Rooms
2) Book Room
3) Cancel Booking
4) View Bookings
5) Booking History by CNIC
6) Filter by Price
7) Save
0) Exit
> `

// Console is the terminal desk. It reads one menu choice at a time from in
// and writes reports and messages to out. mu guards the service and out; it
// is never held while waiting for input.
type Console struct {
	mu     sync.Mutex
	closed bool
	svc    *reservation.Service
	in     *bufio.Scanner
	out    io.Writer
}

func New(svc *reservation.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run shows the menu until the operator exits or input ends, then saves the
// ledger. The save error, if any, is returned after it has been reported.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.locked(func() { fmt.Fprint(c.out, menu) })
		choice, ok := c.readLine()
		if !ok {
			return c.Shutdown(ctx)
		}

		switch choice {
		case "1":
			c.locked(c.viewRooms)
		case "2":
			c.bookRoom(ctx)
		case "3":
			c.cancelBooking(ctx)
		case "4":
			c.locked(c.viewBookings)
		case "5":
			c.bookingHistory()
		case "6":
			c.filterByPrice()
		case "7":
			c.locked(func() {
				if err := c.svc.Save(ctx); err != nil {
					c.say(reservation.Message(err))
					return
				}
				c.say("Bookings saved.")
			})
		case "0", "q", "exit":
			return c.Shutdown(ctx)
		default:
			c.locked(func() { c.say("Unknown option.") })
		}
	}
}

// Shutdown saves the ledger. Commands read their input before taking mu, so
// Shutdown only waits for a service call in progress, never for the operator.
// Bookings and cancellations answered after Shutdown are dropped.
func (c *Console) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if err := c.svc.Save(ctx); err != nil {
		log.Printf("ledger_save_failed error=%q", err.Error())
		c.say(reservation.Message(err))
		return err
	}
	return nil
}

func (c *Console) locked(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

func (c *Console) viewRooms() {
	fmt.Fprint(c.out, reservation.RoomReport(reservation.TitleAvailableRooms, c.svc.Available()))
}

func (c *Console) bookRoom(ctx context.Context) {
	name := c.prompt("Enter your name:")
	cnic := c.prompt("Enter CNIC (13 digits):")
	roomType := c.prompt("Select Room Type (" + roomTypeChoices() + "):")
	date := c.prompt("Enter date (e.g., 15-06-2025):")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	b, err := c.svc.Book(ctx, reservation.BookRequest{
		CustomerName: name,
		CNIC:         cnic,
		Type:         roomType,
		Date:         date,
	})
	if err != nil && !errors.Is(err, reservation.ErrPersistenceWrite) {
		c.say(reservation.Message(err))
		return
	}
	c.say(reservation.BookedMessage(b))
	if err != nil {
		c.say(reservation.Message(err))
	}
}

func (c *Console) cancelBooking(ctx context.Context) {
	name := c.prompt("Enter your name:")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	b, err := c.svc.Cancel(ctx, name)
	if err != nil && !errors.Is(err, reservation.ErrPersistenceWrite) {
		c.say(reservation.Message(err))
		return
	}
	c.say(reservation.CancelledMessage(b))
	if err != nil {
		c.say(reservation.Message(err))
	}
}

func (c *Console) viewBookings() {
	fmt.Fprint(c.out, reservation.BookingReport(reservation.TitleAllBookings, c.svc.ListAll()))
}

func (c *Console) bookingHistory() {
	cnic := c.prompt("Enter CNIC:")

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, reservation.BookingReport(reservation.TitleHistory, c.svc.ListByCNIC(cnic)))
}

func (c *Console) filterByPrice() {
	lo := c.prompt("Enter minimum price:")
	hi := c.prompt("Enter maximum price:")

	c.mu.Lock()
	defer c.mu.Unlock()

	rooms, err := c.svc.FilterByPrice(lo, hi)
	if err != nil {
		c.say(reservation.Message(err))
		return
	}
	fmt.Fprint(c.out, reservation.RoomReport(reservation.TitlePriceRange, rooms))
}

func (c *Console) prompt(label string) string {
	c.locked(func() { fmt.Fprintln(c.out, label) })
	line, _ := c.readLine()
	return line
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) say(msg string) {
	fmt.Fprintln(c.out, msg)
}

func roomTypeChoices() string {
	names := make([]string, len(domain.RoomTypes))
	for i, t := range domain.RoomTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "/")
}
