package server

import (
	"net/http"

	"hotelreservation/internal/metrics"
	"hotelreservation/internal/middleware"
	"hotelreservation/internal/modules/auth"
	"hotelreservation/internal/modules/reservation"
	"hotelreservation/internal/pkg/jwt"
	"hotelreservation/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth        *auth.Handler
	Reservation *reservation.Handler
	JWT         *jwt.Service
	// Metrics is optional; /metrics is only mounted when it is set.
	Metrics     *metrics.Metrics
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(d.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	v1 := r.Group("/api/v1")
	{
		d.Auth.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(d.JWT), middleware.OperatorOnly())
		{
			d.Reservation.RegisterProtectedRoutes(protected)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "ROUTE_NOT_FOUND", "Route not found")
	})

	return r
}
