package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/crowdship-app/crowdship-api/internal/domain"
	"github.com/crowdship-app/crowdship-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success        bool                    `json:"success"`
	Error          string                  `json:"error"`
	User           *domain.User            `json:"user"`
	AccessToken    string                  `json:"accessToken"`
	RefreshToken   string                  `json:"refreshToken"`
	Package        *domain.Package         `json:"package"`
	Packages       []*domain.Package       `json:"packages"`
	Trip           *domain.Trip            `json:"trip"`
	Trips          []*domain.Trip          `json:"trips"`
	PaymentMethod  *domain.PaymentMethod   `json:"paymentMethod"`
	PaymentMethods []*domain.PaymentMethod `json:"paymentMethods"`
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func doAuthed(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	req := testutil.CreateAuthenticatedRequest(t, method, url, body, token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestRegisterAndLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/auth/register"), map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
		"userType": "sender",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode(t, resp)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
	require.NotNil(t, env.User)
	assert.Equal(t, "alice@example.com", env.User.Email)
	assert.NotEmpty(t, env.AccessToken)
	assert.NotEmpty(t, env.RefreshToken)
	// The password hash is never serialized
	assert.Empty(t, env.User.PasswordHash)

	resp = postJSON(t, ts.APIURL("/auth/login"), map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.AccessToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := testutil.NewTestServer(t)

	body := map[string]string{
		"name":     "Alice",
		"email":    "dup@example.com",
		"password": "password123",
		"userType": "sender",
	}
	resp := postJSON(t, ts.APIURL("/auth/register"), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.APIURL("/auth/register"), body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	env := decode(t, resp)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, _ := testutil.NewUserBuilder().Build(t, ts.Repos)

	resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
		"email":    user.Email,
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	env := decode(t, resp)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	ts := testutil.NewTestServer(t)

	paths := []struct {
		method string
		url    string
	}{
		{http.MethodGet, ts.APIURL("/auth/me")},
		{http.MethodGet, ts.APIURL("/packages/")},
		{http.MethodPost, ts.APIURL("/packages/")},
		{http.MethodGet, ts.APIURL("/users/me/trips")},
		{http.MethodPost, ts.APIURL("/trips/")},
		{http.MethodGet, ts.APIURL("/payment-methods/")},
	}

	for _, p := range paths {
		resp := doAuthed(t, p.method, p.url, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.url)
		resp.Body.Close()
	}
}

func TestPackageLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := doAuthed(t, http.MethodPost, ts.APIURL("/packages/"), token, map[string]any{
		"name":         "Camera Lens",
		"description":  "Fragile",
		"size":         1,
		"weight":       1.5,
		"origin":       "Berlin",
		"destination":  "Madrid",
		"deliveryDate": "2025-10-01",
		"budget":       "45",
		"category":     "electronics",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode(t, resp)
	require.True(t, env.Success)
	require.NotNil(t, env.Package)
	assert.Equal(t, domain.SizeSmall, env.Package.Size)
	assert.Equal(t, "1.5", env.Package.Weight)
	assert.Equal(t, domain.PackageStatusPending, env.Package.Status)

	resp = doAuthed(t, http.MethodGet, ts.APIURL("/packages/"), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	require.Len(t, env.Packages, 1)
	pkgID := env.Packages[0].ID

	resp = doAuthed(t, http.MethodDelete, ts.APIURL(fmt.Sprintf("/packages/%s", pkgID)), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	assert.True(t, env.Success)

	// The list is empty again, as a JSON array rather than null
	resp = doAuthed(t, http.MethodGet, ts.APIURL("/packages/"), token, nil)
	env = decode(t, resp)
	require.NotNil(t, env.Packages)
	assert.Empty(t, env.Packages)
}

func TestTripRoutes(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// Browsing trips needs no auth
	resp, err := http.Get(ts.APIURL("/trips/"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode(t, resp)
	assert.True(t, env.Success)
	assert.NotNil(t, env.Trips)
	assert.Empty(t, env.Trips)

	resp = doAuthed(t, http.MethodPost, ts.APIURL("/trips/"), token, map[string]any{
		"originCity":         "New York",
		"originCountry":      "United States",
		"destinationCity":    "London",
		"destinationCountry": "United Kingdom",
		"departureDate":      "2025-09-10",
		"arrivalDate":        "2025-09-12",
		"availableSpace":     4,
		"availableWeight":    5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	require.NotNil(t, env.Trip)
	assert.Equal(t, domain.SizeLarge, env.Trip.AvailableSpace)
	assert.Equal(t, "5.0", env.Trip.AvailableWeight)
	tripID := env.Trip.ID

	// Missing required fields surface as a 400 naming the fields
	resp = doAuthed(t, http.MethodPost, ts.APIURL("/trips/"), token, map[string]any{
		"originCity": "Paris",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env = decode(t, resp)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "destinationCity")

	resp = doAuthed(t, http.MethodPatch, ts.APIURL(fmt.Sprintf("/trips/%s/status", tripID)), token,
		map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	assert.Equal(t, domain.TripStatusCompleted, env.Trip.Status)

	resp = doAuthed(t, http.MethodGet, ts.APIURL("/users/me/trips"), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	assert.Len(t, env.Trips, 1)

	resp = doAuthed(t, http.MethodDelete, ts.APIURL(fmt.Sprintf("/trips/%s", tripID)), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestPaymentMethodRoutes(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := doAuthed(t, http.MethodPost, ts.APIURL("/payment-methods/"), token, map[string]string{
		"cardType":       "visa",
		"cardNumber":     "4242 4242 4242 4242",
		"cardholderName": "Jane Roe",
		"expiryMonth":    "05",
		"expiryYear":     "27",
		"cvv":            "123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Inspect the raw body: neither the full card number nor the CVV appears
	var raw bytes.Buffer
	_, err := raw.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	body := raw.String()
	assert.NotContains(t, body, "4242 4242 4242 4242")
	assert.NotContains(t, body, "4242424242424242")
	assert.NotContains(t, strings.ToLower(body), "cvv")

	var env envelope
	require.NoError(t, json.Unmarshal(raw.Bytes(), &env))
	require.NotNil(t, env.PaymentMethod)
	assert.Equal(t, "**** **** **** 4242", env.PaymentMethod.MaskedCardNumber)

	// Validation failures use the envelope with the form message
	resp = doAuthed(t, http.MethodPost, ts.APIURL("/payment-methods/"), token, map[string]string{
		"cardType": "visa",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env = decode(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "please enter a valid card number", env.Error)

	resp = doAuthed(t, http.MethodGet, ts.APIURL("/payment-methods/"), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	require.Len(t, env.PaymentMethods, 1)
	assert.Equal(t, "4242", env.PaymentMethods[0].LastFourDigits)
}

func TestProfileUpdateAndLogout(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := doAuthed(t, http.MethodPut, ts.APIURL("/auth/profile"), token, map[string]string{
		"name":     "Renamed",
		"phone":    "+44 20 7946 0000",
		"location": "London, UK",
		"userType": "traveler",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode(t, resp)
	require.NotNil(t, env.User)
	assert.Equal(t, "Renamed", env.User.Name)
	assert.Equal(t, user.Email, env.User.Email)

	resp = doAuthed(t, http.MethodPost, ts.APIURL("/auth/logout"), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	assert.True(t, env.Success)

	// The access token stays valid until expiry; /me still works
	resp = doAuthed(t, http.MethodGet, ts.APIURL("/auth/me"), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
