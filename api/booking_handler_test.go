package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/turf-booking-backend/api"
	mock_api "github.com/pitchside/turf-booking-backend/api/mocks"
	bk "github.com/pitchside/turf-booking-backend/booking"
	"github.com/pitchside/turf-booking-backend/turf"
	"github.com/pitchside/turf-booking-backend/user"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setUserInContext(authUser user.AuthUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", authUser)
		c.Next()
	}
}

type bookingMocks struct {
	service *mock_api.MockBookingService
	turfs   *mock_api.MockTurfService
}

func setupBookingRouter(t *testing.T) (*gin.Engine, *gomock.Controller, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mocks := bookingMocks{
		service: mock_api.NewMockBookingService(ctrl),
		turfs:   mock_api.NewMockTurfService(ctrl),
	}
	handler := api.NewBookingHandler(mocks.service, mocks.turfs)
	handler.RegisterTurfRoutes(router.Group("/api/v1/turfs"))

	return router, ctrl, mocks
}

func setupBookingRouterWithUser(t *testing.T, authUser user.AuthUser) (*gin.Engine, *gomock.Controller, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mocks := bookingMocks{
		service: mock_api.NewMockBookingService(ctrl),
		turfs:   mock_api.NewMockTurfService(ctrl),
	}
	handler := api.NewBookingHandler(mocks.service, mocks.turfs)

	rg := router.Group("/api/v1/bookings")
	rg.Use(setUserInContext(authUser))
	handler.Register(rg)

	turfRg := router.Group("/api/v1/turfs")
	turfRg.Use(setUserInContext(authUser))
	handler.RegisterTurfRoutes(turfRg)

	return router, ctrl, mocks
}

func TestListSlots(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouter(t)
		defer ctrl.Finish()

		slots := []bk.SlotAvailability{
			{StartTime: "06:00", EndTime: "07:00", IsAvailable: true},
			{StartTime: "07:00", EndTime: "08:00", IsAvailable: false},
		}
		slotsJson, _ := json.MarshalIndent(slots, "", "    ")
		mocks.service.EXPECT().ListAvailableSlots(gomock.Any(), "turf-1", day).Return(slots, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/slots?date=2025-06-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(slotsJson), w.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/slots?date=tomorrow", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/slots", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("turf not found", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().ListAvailableSlots(gomock.Any(), "turf-1", day).Return(nil, turf.ErrTurfNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/slots?date=2025-06-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"turf not found"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().ListAvailableSlots(gomock.Any(), "turf-1", day).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/slots?date=2025-06-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to resolve availability"}`, w.Body.String())
	})
}

func TestListMyBookings(t *testing.T) {
	player := user.AuthUser{ID: "player-1", Role: user.RolePlayer}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		bookings := []bk.UserBooking{
			{
				Booking: bk.Booking{ID: "1", TurfID: "turf-1", UserID: player.ID, StartTime: "10:00", EndTime: "11:00", Status: bk.StatusPending},
				Turf:    turf.Turf{ID: "turf-1", Name: "City Arena"},
			},
		}
		bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
		mocks.service.EXPECT().FindBookingsPerUser(gomock.Any(), player.ID).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bookingsJson), w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		mocks.service.EXPECT().FindBookingsPerUser(gomock.Any(), player.ID).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to get bookings"}`, w.Body.String())
	})
}

func TestListTurfBookings(t *testing.T) {
	theTurf := turf.Turf{ID: "turf-1", Name: "City Arena", OwnerID: "owner-1"}
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	bookings := []bk.Booking{
		{ID: "1", TurfID: "turf-1", UserID: "player-1", Date: day, StartTime: "10:00", EndTime: "11:00", Status: bk.StatusConfirmed},
	}

	t.Run("owner sees full bookings", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, user.AuthUser{ID: "owner-1", Role: user.RoleOwner})
		defer ctrl.Finish()

		bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
		mocks.turfs.EXPECT().FindTurfByID(gomock.Any(), "turf-1").Return(theTurf, nil).Times(1)
		mocks.service.EXPECT().FindBookingsPerTurf(gomock.Any(), "turf-1").Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bookingsJson), w.Body.String())
	})

	t.Run("other users get a sanitized listing", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, user.AuthUser{ID: "player-2", Role: user.RolePlayer})
		defer ctrl.Finish()

		mocks.turfs.EXPECT().FindTurfByID(gomock.Any(), "turf-1").Return(theTurf, nil).Times(1)
		mocks.service.EXPECT().FindBookingsPerTurf(gomock.Any(), "turf-1").Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[{
			"id": "1",
			"turfId": "turf-1",
			"date": "2025-06-10T00:00:00Z",
			"startTime": "10:00",
			"endTime": "11:00",
			"status": "confirmed",
			"isBooked": true
		}]`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "player-1")
	})

	t.Run("anonymous gets a sanitized listing", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouter(t)
		defer ctrl.Finish()

		mocks.turfs.EXPECT().FindTurfByID(gomock.Any(), "turf-1").Return(theTurf, nil).Times(1)
		mocks.service.EXPECT().FindBookingsPerTurf(gomock.Any(), "turf-1").Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.NotContains(t, w.Body.String(), "player-1")
		assert.Contains(t, w.Body.String(), `"isBooked": true`)
	})

	t.Run("turf not found", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouter(t)
		defer ctrl.Finish()

		mocks.turfs.EXPECT().FindTurfByID(gomock.Any(), "turf-1").Return(turf.Turf{}, turf.ErrTurfNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"turf not found"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouter(t)
		defer ctrl.Finish()

		mocks.turfs.EXPECT().FindTurfByID(gomock.Any(), "turf-1").Return(theTurf, nil).Times(1)
		mocks.service.EXPECT().FindBookingsPerTurf(gomock.Any(), "turf-1").Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/turfs/turf-1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to get bookings"}`, w.Body.String())
	})
}

func TestCreateBookingRoute(t *testing.T) {
	player := user.AuthUser{ID: "player-1", Role: user.RolePlayer}
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	body := []byte(`{"turfId":"turf-1","date":"2025-06-10","startTime":"10:00","endTime":"11:00"}`)

	expected := bk.Booking{
		TurfID:    "turf-1",
		UserID:    player.ID,
		Date:      day,
		StartTime: "10:00",
		EndTime:   "11:00",
	}

	post := func(router *gin.Engine, payload []byte) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		inserted := expected
		inserted.ID = "booking-1"
		inserted.Status = bk.StatusPending
		insertedJson, _ := json.Marshal(inserted)

		mocks.service.EXPECT().CreateBooking(gomock.Any(), expected).Return(inserted, nil).Times(1)

		w := post(router, body)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(insertedJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		w := post(router, []byte("{"))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		w := post(router, []byte(`{"turfId":"turf-1","date":"10/06/2025","startTime":"10:00","endTime":"11:00"}`))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})

	t.Run("turf not found", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		mocks.service.EXPECT().CreateBooking(gomock.Any(), expected).Return(bk.Booking{}, turf.ErrTurfNotFound).Times(1)

		w := post(router, body)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"turf not found"}`, w.Body.String())
	})

	t.Run("invalid slot", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		mocks.service.EXPECT().CreateBooking(gomock.Any(), expected).Return(bk.Booking{}, bk.ErrInvalidSlot).Times(1)

		w := post(router, body)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"slot does not fit the turf's hours"}`, w.Body.String())
	})

	t.Run("slot unavailable", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		mocks.service.EXPECT().CreateBooking(gomock.Any(), expected).Return(bk.Booking{}, bk.ErrSlotUnavailable).Times(1)

		w := post(router, body)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"slot is not available"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, player)
		defer ctrl.Finish()

		mocks.service.EXPECT().CreateBooking(gomock.Any(), expected).Return(bk.Booking{}, assert.AnError).Times(1)

		w := post(router, body)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to create booking"}`, w.Body.String())
	})
}

func TestSetStatusRoute(t *testing.T) {
	owner := user.AuthUser{ID: "owner-1", Role: user.RoleOwner}

	put := func(router *gin.Engine, payload string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/booking-1/status", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, owner)
		defer ctrl.Finish()

		updated := bk.Booking{ID: "booking-1", TurfID: "turf-1", UserID: "player-1", Status: bk.StatusConfirmed}
		updatedJson, _ := json.MarshalIndent(updated, "", "    ")

		mocks.service.EXPECT().SetBookingStatus(gomock.Any(), "booking-1", bk.StatusConfirmed, owner.ID).Return(updated, nil).Times(1)

		w := put(router, `{"status":"confirmed"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(updatedJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouterWithUser(t, owner)
		defer ctrl.Finish()

		w := put(router, "{")

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, owner)
		defer ctrl.Finish()

		mocks.service.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := put(router, `{"status":"approved"}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid status"}`, w.Body.String())
	})

	t.Run("booking not found", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, owner)
		defer ctrl.Finish()

		mocks.service.EXPECT().SetBookingStatus(gomock.Any(), "booking-1", bk.StatusConfirmed, owner.ID).Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := put(router, `{"status":"confirmed"}`)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})

	t.Run("invalid transition", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, owner)
		defer ctrl.Finish()

		mocks.service.EXPECT().SetBookingStatus(gomock.Any(), "booking-1", bk.StatusPending, owner.ID).Return(bk.Booking{}, bk.ErrInvalidTransition).Times(1)

		w := put(router, `{"status":"pending"}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid booking status transition"}`, w.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, user.AuthUser{ID: "player-2", Role: user.RolePlayer})
		defer ctrl.Finish()

		mocks.service.EXPECT().SetBookingStatus(gomock.Any(), "booking-1", bk.StatusConfirmed, "player-2").Return(bk.Booking{}, bk.ErrNotAllowed).Times(1)

		w := put(router, `{"status":"confirmed"}`)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to update this booking"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mocks := setupBookingRouterWithUser(t, owner)
		defer ctrl.Finish()

		mocks.service.EXPECT().SetBookingStatus(gomock.Any(), "booking-1", bk.StatusCancelled, owner.ID).Return(bk.Booking{}, assert.AnError).Times(1)

		w := put(router, `{"status":"cancelled"}`)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to update booking status"}`, w.Body.String())
	})
}
