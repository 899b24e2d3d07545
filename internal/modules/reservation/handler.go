package reservation

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"hotelreservation/internal/modules/payment"
	"hotelreservation/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes the desk over HTTP. The service is not safe for concurrent
// use, so every request holds mu for its whole duration.
type Handler struct {
	mu      sync.Mutex
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	rooms := protected.Group("/rooms")
	{
		rooms.GET("", h.ListAvailable)
		rooms.GET("/filter", h.FilterByPrice)
	}

	bookings := protected.Group("/bookings")
	{
		bookings.GET("", h.ListAll)
		bookings.GET("/history", h.History)
		bookings.POST("", h.Book)
		bookings.POST("/cancel", h.Cancel)
		bookings.POST("/save", h.Save)
	}
}

func (h *Handler) ListAvailable(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms := h.service.Available()
	response.Success(c, http.StatusOK, gin.H{
		"rooms":  rooms,
		"report": RoomReport(TitleAvailableRooms, rooms),
	})
}

func (h *Handler) FilterByPrice(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms, err := h.service.FilterByPrice(c.Query("min"), c.Query("max"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"rooms":  rooms,
		"report": RoomReport(TitlePriceRange, rooms),
	})
}

func (h *Handler) ListAll(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	bookings := h.service.ListAll()
	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"report":   BookingReport(TitleAllBookings, bookings),
	})
}

func (h *Handler) History(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	bookings, err := h.service.History(strings.TrimSpace(c.Query("cnic")))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"report":   BookingReport(TitleHistory, bookings),
	})
}

func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	b, err := h.service.Book(c.Request.Context(), req.trimmed())
	if err != nil && !errors.Is(err, ErrPersistenceWrite) {
		h.fail(c, err)
		return
	}

	data := gin.H{
		"booking": b,
		"message": BookedMessage(b),
		"payment": payment.Describe(b.Price),
	}
	if err != nil {
		_ = c.Error(err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "PERSISTENCE_WRITE_FAILED", Message(err), data)
		return
	}
	response.Success(c, http.StatusCreated, data)
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	b, err := h.service.Cancel(c.Request.Context(), strings.TrimSpace(req.CustomerName))
	if err != nil && !errors.Is(err, ErrPersistenceWrite) {
		h.fail(c, err)
		return
	}

	data := gin.H{
		"booking": b,
		"message": CancelledMessage(b),
	}
	if err != nil {
		_ = c.Error(err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "PERSISTENCE_WRITE_FAILED", Message(err), data)
		return
	}
	response.Success(c, http.StatusOK, data)
}

func (h *Handler) Save(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.service.Save(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": len(h.service.ListAll())})
}

// Lock gives other callers, such as shutdown, exclusive access to the service.
func (h *Handler) Lock()   { h.mu.Lock() }
func (h *Handler) Unlock() { h.mu.Unlock() }

func (h *Handler) fail(c *gin.Context, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.Error(c, status, code, Message(err))
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidName):
		return http.StatusBadRequest, "INVALID_NAME"
	case errors.Is(err, ErrInvalidCNIC):
		return http.StatusBadRequest, "INVALID_CNIC"
	case errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest, "INVALID_DATE"
	case errors.Is(err, ErrInvalidType):
		return http.StatusBadRequest, "INVALID_TYPE"
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, ErrNoRoomAvailable):
		return http.StatusConflict, "NO_ROOM_AVAILABLE"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, ErrPersistenceWrite):
		return http.StatusInternalServerError, "PERSISTENCE_WRITE_FAILED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
