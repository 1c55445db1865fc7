package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	intconfig "schooladmin/internal/config"
	h "schooladmin/internal/http/handlers"
	"schooladmin/internal/http/middleware"
	"schooladmin/internal/utils"
)

var (
	deleters    = []string{"owner", "admin"}
	superadmins = []string{h.RoleSuperAdmin}
)

// NewRouter mounts every route. gatherer serves /metrics; nil hides it.
func NewRouter(env intconfig.Env, hd *h.Handler, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"status":  false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	api.GET("/health", h.Health)

	auth := api.Group("", middleware.AuthRequired([]byte(env.JWTSecret)))
	profileGate := middleware.RequireCompleteProfile(hd.Profiles())
	canDelete := middleware.RequireRoles(deleters...)

	// Schools
	schools := auth.Group("/schools")
	schools.GET("", middleware.RequireRoles(superadmins...), hd.ListSchools)
	schools.POST("", middleware.RequireRoles(superadmins...), hd.CreateSchool)
	schools.GET("/:id", hd.GetSchool)
	schools.PUT("/:id", hd.UpdateSchool)
	schools.DELETE("/:id", middleware.RequireRoles(superadmins...), hd.DeleteSchool)
	schools.GET("/:id/profile-status", hd.GetProfileStatus)

	// Fleet
	cars := auth.Group("/cars")
	cars.GET("", hd.ListCars)
	cars.GET("/all", hd.AllCars)
	cars.POST("", hd.CreateCar)
	cars.GET("/:id", hd.GetCar)
	cars.PUT("/:id", hd.UpdateCar)
	cars.DELETE("/:id", canDelete, hd.DeleteCar)

	drivers := auth.Group("/drivers")
	drivers.GET("", hd.ListDrivers)
	drivers.POST("", hd.CreateDriver)
	drivers.GET("/:id", hd.GetDriver)
	drivers.PUT("/:id", hd.UpdateDriver)
	drivers.DELETE("/:id", canDelete, hd.DeleteDriver)
	drivers.GET("/:id/leaves", hd.GetDriverLeaves)
	drivers.GET("/:id/salaries", hd.GetDriverSalaries)

	// Catalog
	courses := auth.Group("/courses")
	courses.GET("", hd.ListCourses)
	courses.POST("", hd.CreateCourse)
	courses.GET("/:id", hd.GetCourse)
	courses.PUT("/:id", hd.UpdateCourse)
	courses.DELETE("/:id", canDelete, hd.DeleteCourse)

	services := auth.Group("/services")
	services.GET("", hd.ListServices)
	services.GET("/all", hd.AllServices)
	services.POST("", middleware.RequireRoles(superadmins...), hd.CreateService)
	services.GET("/:id", hd.GetService)
	services.PUT("/:id", middleware.RequireRoles(superadmins...), hd.UpdateService)
	services.DELETE("/:id", middleware.RequireRoles(superadmins...), hd.DeleteService)

	schoolServices := auth.Group("/school-services")
	schoolServices.GET("", hd.ListSchoolServices)
	schoolServices.POST("", profileGate, hd.CreateSchoolService)
	schoolServices.GET("/:id", hd.GetSchoolService)
	schoolServices.PUT("/:id", profileGate, hd.UpdateSchoolService)
	schoolServices.DELETE("/:id", canDelete, hd.DeleteSchoolService)

	// Customers
	users := auth.Group("/users")
	users.GET("", hd.ListUsers)
	users.POST("", hd.CreateUser)
	users.GET("/:id", hd.GetUser)
	users.PUT("/:id", hd.UpdateUser)

	// Bookings
	bookings := auth.Group("/bookings")
	bookings.GET("", hd.ListBookings)
	bookings.POST("", profileGate, hd.CreateBooking)
	bookings.GET("/:id", hd.GetBooking)
	bookings.PUT("/:id", hd.UpdateBooking)
	bookings.DELETE("/:id", canDelete, hd.DeleteBooking)
	bookings.GET("/:id/amendments", hd.GetAmendments)
	bookings.POST("/:id/amendments", hd.AmendBooking)
	bookings.GET("/:id/amendments/history", hd.GetAmendmentHistory)
	bookings.GET("/:id/sessions", hd.ListBookingSessions)
	bookings.GET("/:id/services", hd.ListBookingServices)
	bookings.POST("/:id/services", hd.CreateBookingService)
	bookings.GET("/:id/receipt", hd.GetBookingReceipt)
	bookings.GET("/:id/payments/total", hd.GetTotalPaid)
	bookings.GET("/:id/balance", hd.GetBalance)

	auth.PUT("/booking-sessions/:id", hd.UpdateBookingSession)

	bookingServices := auth.Group("/booking-services")
	bookingServices.PUT("/:id", hd.UpdateBookingService)
	bookingServices.DELETE("/:id", canDelete, hd.DeleteBookingService)
	bookingServices.GET("/:id/payments", hd.ListServicePayments)
	bookingServices.POST("/:id/payments", hd.CreateServicePayment)
	bookingServices.GET("/:id/payments/total", hd.GetServiceTotalPaid)

	// Payments
	payments := auth.Group("/payments")
	payments.GET("", hd.ListPayments)
	payments.POST("", hd.CreatePayment)
	payments.GET("/:id", hd.GetPayment)
	payments.PUT("/:id", hd.UpdatePayment)
	payments.DELETE("/:id", canDelete, hd.DeletePayment)

	servicePayments := auth.Group("/service-payments")
	servicePayments.PUT("/:id", hd.UpdateServicePayment)
	servicePayments.DELETE("/:id", canDelete, hd.DeleteServicePayment)

	// Scheduling
	holidays := auth.Group("/holidays")
	holidays.GET("", hd.ListHolidays)
	holidays.POST("", profileGate, hd.CreateHoliday)
	holidays.GET("/:id", hd.GetHoliday)
	holidays.PUT("/:id", hd.UpdateHoliday)
	holidays.DELETE("/:id", canDelete, hd.DeleteHoliday)

	licenses := auth.Group("/license-applications")
	licenses.GET("", hd.ListLicenseApplications)
	licenses.POST("", hd.CreateLicenseApplication)
	licenses.GET("/:id", hd.GetLicenseApplication)
	licenses.PUT("/:id", hd.UpdateLicenseApplication)
	licenses.DELETE("/:id", canDelete, hd.DeleteLicenseApplication)

	return r
}
