package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wanderlust/travel-client/client/internal/errors"
	"github.com/wanderlust/travel-client/client/internal/rest"
	"github.com/wanderlust/travel-client/client/internal/types"
	"github.com/wanderlust/travel-client/session"
)

func TestWithQuery(t *testing.T) {
	if got := withQuery("/p"); got != "/p" {
		t.Fatalf("got %q", got)
	}
	if got := withQuery("/p", "a", "1", "b", "x y&z"); got != "/p?a=1&b=x+y%26z" {
		t.Fatalf("got %q", got)
	}
}

func TestLogin_WrapsCredentials(t *testing.T) {
	c, got := newBackend(t, http.StatusOK, `{"key":"tok-1","userId":7}`)
	res := Login(context.Background(), c, types.Credentials{Email: "a@b.com", Password: "secret"})
	if !res.Success || res.Data.Key != "tok-1" || res.Data.UserID != 7 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got.method != http.MethodPost || got.uri != "/user/login" {
		t.Fatalf("unexpected request %s %s", got.method, got.uri)
	}
	if got.body != `{"userDto":{"email":"a@b.com","password":"secret"}}` {
		t.Fatalf("unexpected body %s", got.body)
	}
}

func TestLogin_NoKeyIsInvalid(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `{"message":"hello"}`)
	res := Login(context.Background(), c, types.Credentials{Email: "a@b.com", Password: "x"})
	if res.Success || res.Message != "Invalid credentials" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLogin_HTTPFailure(t *testing.T) {
	c, _ := newBackend(t, http.StatusUnauthorized, `{"error":"bad"}`)
	res := Login(context.Background(), c, types.Credentials{})
	if res.Success || res.Message != "Invalid credentials" || errors.StatusOf(res.Err) != 401 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRegister_Messages(t *testing.T) {
	c, got := newBackend(t, http.StatusOK, `{"id":1}`)
	res := Register(context.Background(), c, types.RegisterRequest{Name: "Asha", ConfirmPassword: "ignored", Password: "pw"})
	if !res.Success || res.Message != "Registration successful!" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if strings.Contains(got.body, "ignored") {
		t.Fatalf("confirm password must not be sent: %s", got.body)
	}

	c, _ = newBackend(t, http.StatusConflict, `{}`)
	if res := Register(context.Background(), c, types.RegisterRequest{}); res.Success || res.Message != "Registration failed" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLogout_SendsToken(t *testing.T) {
	c, got := newBackend(t, http.StatusOK, `"Logged Out"`)
	if err := c.SetToken("tok 1"); err != nil {
		t.Fatal(err)
	}
	env := Logout(context.Background(), c)
	if !env.Success {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if got.uri != "/user/logout?key=tok+1" {
		t.Fatalf("unexpected uri %s", got.uri)
	}
}

func TestListPackages(t *testing.T) {
	c, got := newBackend(t, http.StatusOK, `[{"packageId":3,"packageName":"Goa","packageCost":9000,"packageType":"STANDARD"}]`)
	res := ListPackages(context.Background(), c)
	if !res.Success || len(res.Data) != 1 || res.Data[0].PackageName != "Goa" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got.uri != "/packages" {
		t.Fatalf("unexpected uri %s", got.uri)
	}
}

func TestListPackages_NullIsEmpty(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `null`)
	res := ListPackages(context.Background(), c)
	if !res.Success || res.Data == nil || len(res.Data) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestListPackages_Failure(t *testing.T) {
	c, _ := newBackend(t, http.StatusInternalServerError, `{}`)
	res := ListPackages(context.Background(), c)
	if res.Success || res.Message != "Failed to fetch packages" || res.Err == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestListBookings_NumericID(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `[{"bookingId":7,"customerName":"Asha","numberOfGuests":"2","totalPrice":"18000","bookingDate":"2025-03-01T10:00:00"}]`)
	res := ListBookings(context.Background(), c)
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	b := res.Data[0]
	if b.BookingID != "7" || b.NumberOfGuests != 2 || b.TotalPrice != 18000 || b.BookingDate.Day() != 1 {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestListPackages_StringCost(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `[{"packageId":"4","packageName":"Ooty","packageCost":"12000","packageType":"DELUXE"}]`)
	res := ListPackages(context.Background(), c)
	if !res.Success || len(res.Data) != 1 || res.Data[0].PackageCost != 12000 || res.Data[0].PackageID != 4 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestListTravels_MixedRecordsKeepGoodOnes(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `[{"travelId":1,"travelName":"Sea","contact":"9876543210","addr":{"pincode":560001}},{"travelId":2,"addr":"Goa"}]`)
	res := ListTravels(context.Background(), c)
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if tr := res.Data[0]; tr.Contact != 9876543210 || tr.Addr.Pincode != "560001" {
		t.Fatalf("unexpected travel: %+v", tr)
	}
}

func TestListPackages_ObjectPayloadFails(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `{"content":[]}`)
	res := ListPackages(context.Background(), c)
	if res.Success || res.Message != "Failed to fetch packages" || res.Err == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPackageWrites_Paths(t *testing.T) {
	ctx := context.Background()
	c, got := newBackend(t, http.StatusOK, `{"packageId":5,"packageName":"Goa"}`)

	res := CreatePackage(ctx, c, types.Package{PackageName: "Goa"})
	if !res.Success || res.Data.PackageID != 5 {
		t.Fatalf("create: %+v", res)
	}
	if got.method != http.MethodPost || got.uri != "/packages/createPackage?authKey=admin123" {
		t.Fatalf("create sent %s %s", got.method, got.uri)
	}

	if res := UpdatePackage(ctx, c, types.Package{PackageID: 5}); !res.Success {
		t.Fatalf("update: %+v", res)
	}
	if got.method != http.MethodPut || got.uri != "/packages/updatePackage?authKey=admin123" {
		t.Fatalf("update sent %s %s", got.method, got.uri)
	}

	if res := DeletePackage(ctx, c, 42); !res.Success {
		t.Fatalf("delete: %+v", res)
	}
	if got.method != http.MethodDelete || got.uri != "/packages/removePackage?packageId=42&authKey=admin123" {
		t.Fatalf("delete sent %s %s", got.method, got.uri)
	}
}

func TestPackageWrites_FailureMessages(t *testing.T) {
	ctx := context.Background()
	c, _ := newBackend(t, http.StatusUnauthorized, `{"error":"Invalid auth key"}`)
	if r := CreatePackage(ctx, c, types.Package{}); r.Message != "Failed to create package" {
		t.Fatalf("create: %q", r.Message)
	}
	if r := UpdatePackage(ctx, c, types.Package{}); r.Message != "Failed to update package" {
		t.Fatalf("update: %q", r.Message)
	}
	if r := DeletePackage(ctx, c, 1); r.Message != "Failed to delete package" || !errors.IsIrrecoverable(r.Err) {
		t.Fatalf("delete: %+v", r)
	}
}

func TestTravelWrites_Paths(t *testing.T) {
	ctx := context.Background()
	c, got := newBackend(t, http.StatusOK, `{"travelId":9}`)
	if err := c.SetAuthKey("k&1"); err != nil {
		t.Fatal(err)
	}

	if r := CreateTravel(ctx, c, types.Travel{TravelName: "T"}); !r.Success || r.Data.TravelID != 9 {
		t.Fatalf("create: %+v", r)
	}
	if got.uri != "/travels?authKey=k%261" {
		t.Fatalf("create uri %s", got.uri)
	}
	UpdateTravel(ctx, c, types.Travel{TravelID: 9})
	if got.method != http.MethodPut || got.uri != "/travelsUpdate?authKey=k%261" {
		t.Fatalf("update sent %s %s", got.method, got.uri)
	}
	DeleteTravel(ctx, c, 9)
	if got.method != http.MethodDelete || got.uri != "/travelsDelete?travelId=9&authKey=k%261" {
		t.Fatalf("delete sent %s %s", got.method, got.uri)
	}

	c, _ = newBackend(t, http.StatusBadRequest, `{}`)
	if r := DeleteTravel(ctx, c, 1); r.Message != "Failed to delete travel" {
		t.Fatalf("delete failure: %q", r.Message)
	}
}

func TestListTravelsHotelsFeedback(t *testing.T) {
	ctx := context.Background()
	c, got := newBackend(t, http.StatusOK, `[]`)

	if r := ListTravels(ctx, c); !r.Success || got.uri != "/travelsList" {
		t.Fatalf("travels: %+v %s", r, got.uri)
	}
	if r := ListHotels(ctx, c); !r.Success || got.uri != "/hotels" {
		t.Fatalf("hotels: %+v %s", r, got.uri)
	}
	if r := ListFeedback(ctx, c); !r.Success || got.uri != "/feedback" {
		t.Fatalf("feedback: %+v %s", r, got.uri)
	}
	if r := ListBookings(ctx, c); !r.Success || got.uri != "/bookings" {
		t.Fatalf("bookings: %+v %s", r, got.uri)
	}
}

func TestBookingAndFeedbackFailures(t *testing.T) {
	ctx := context.Background()
	c, _ := newBackend(t, http.StatusInternalServerError, `{}`)
	if r := CreateBooking(ctx, c, types.Booking{}); r.Message != "Booking failed" {
		t.Fatalf("booking: %q", r.Message)
	}
	if r := ListBookings(ctx, c); r.Message != "Failed to fetch bookings" {
		t.Fatalf("bookings: %q", r.Message)
	}
	if r := SubmitFeedback(ctx, c, types.Feedback{}); r.Message != "Failed to submit feedback" {
		t.Fatalf("feedback: %q", r.Message)
	}
}

func TestUploadImage(t *testing.T) {
	var field, filename, content, authKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		authKey = r.FormValue("authKey")
		for name, fhs := range r.MultipartForm.File {
			field = name
			filename = fhs[0].Filename
			f, _ := fhs[0].Open()
			b, _ := io.ReadAll(f)
			_ = f.Close()
			content = string(b)
		}
		_, _ = w.Write([]byte(`{"imageUrl":"http://img/1.png"}`))
	}))
	defer srv.Close()

	c, err := rest.New(rest.Config{BaseURL: srv.URL, HTTP: srv.Client(), Store: session.NewMemoryStore()})
	if err != nil {
		t.Fatal(err)
	}
	res := UploadImage(context.Background(), c, "1.png", bytes.NewBufferString("PNGDATA"))
	if !res.Success || res.Data != "http://img/1.png" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if field != "file" || filename != "1.png" || content != "PNGDATA" || authKey != "admin123" {
		t.Fatalf("unexpected form: field=%q name=%q content=%q key=%q", field, filename, content, authKey)
	}
}

func TestImageFailures_SurfaceBackendError(t *testing.T) {
	ctx := context.Background()
	c, _ := newBackend(t, http.StatusBadRequest, `{"error":"File too large"}`)
	if r := UploadImage(ctx, c, "a.png", strings.NewReader("x")); r.Success || r.Message != "File too large" {
		t.Fatalf("upload: %+v", r)
	}
	if r := DeleteImage(ctx, c, "a.png"); r.Message != "File too large" {
		t.Fatalf("delete: %+v", r)
	}

	c, _ = newBackend(t, http.StatusInternalServerError, `oops`)
	if r := UploadImage(ctx, c, "a.png", strings.NewReader("x")); r.Message != "Failed to upload image" {
		t.Fatalf("upload: %+v", r)
	}
	if r := ListImages(ctx, c); r.Message != "Failed to list images" {
		t.Fatalf("list: %+v", r)
	}
}

func TestDeleteAndListImages(t *testing.T) {
	ctx := context.Background()
	c, got := newBackend(t, http.StatusOK, `{"message":"deleted"}`)
	r := DeleteImage(ctx, c, "my pic.png")
	if !r.Success || r.Message != "Image deleted successfully" {
		t.Fatalf("delete: %+v", r)
	}
	if got.method != http.MethodDelete || got.uri != "/images/delete/my%20pic.png?authKey=admin123" {
		t.Fatalf("delete sent %s %s", got.method, got.uri)
	}

	l := ListImages(ctx, c)
	if !l.Success || l.Data == nil || len(l.Data) != 0 {
		t.Fatalf("list without images field: %+v", l)
	}
	if got.uri != "/images/list?authKey=admin123" {
		t.Fatalf("list uri %s", got.uri)
	}

	c, _ = newBackend(t, http.StatusOK, `{"images":["http://img/a.png","http://img/b.png"]}`)
	if l := ListImages(ctx, c); len(l.Data) != 2 {
		t.Fatalf("list: %+v", l)
	}
}
