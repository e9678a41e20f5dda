package booking

import (
	"fmt"
	"sort"
	"time"

	"labtrack/models"
)

// fakeBookingRepo is an in-memory BookingRepository. It stores copies so a
// mutation only becomes visible once Update is called, matching the
// read-check-write behavior of the Mongo implementation.
type fakeBookingRepo struct {
	bookings map[string]models.Booking
	clock    time.Time
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[string]models.Booking),
		clock:    time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeBookingRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func copyBooking(b models.Booking) models.Booking {
	tests := make([]models.BookingTest, len(b.Tests))
	copy(tests, b.Tests)
	b.Tests = tests
	return b
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	now := r.tick()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = copyBooking(*booking)
	return nil
}

func (r *fakeBookingRepo) Update(booking *models.Booking) error {
	if _, ok := r.bookings[booking.ID]; !ok {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	booking.UpdatedAt = r.tick()
	r.bookings[booking.ID] = copyBooking(*booking)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := copyBooking(b)
	return &cp, nil
}

func (r *fakeBookingRepo) GetByPatient(patientUserID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PatientUserID == patientUserID {
			out = append(out, copyBooking(b))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeBookingRepo) GetQueue(includePublished bool) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if !includePublished && b.BookingStatus == models.BookingStatusPublished {
			continue
		}
		out = append(out, copyBooking(b))
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

// fakeCatalogRepo is an in-memory CatalogRepository covering only what the
// booking service needs.
type fakeCatalogRepo struct {
	tests map[string]models.LabTest
}

func newFakeCatalogRepo(tests ...models.LabTest) *fakeCatalogRepo {
	r := &fakeCatalogRepo{tests: make(map[string]models.LabTest)}
	for _, t := range tests {
		r.tests[t.ID] = t
	}
	return r
}

func (r *fakeCatalogRepo) Create(test *models.LabTest) error {
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeCatalogRepo) Update(test *models.LabTest) error {
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeCatalogRepo) Delete(id string) error {
	delete(r.tests, id)
	return nil
}

func (r *fakeCatalogRepo) GetByID(id string) (*models.LabTest, error) {
	t, ok := r.tests[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeCatalogRepo) GetAll() ([]models.LabTest, error) {
	var out []models.LabTest
	for _, t := range r.tests {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetActive() ([]models.LabTest, error) {
	var out []models.LabTest
	for _, t := range r.tests {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetActiveByIDs(ids []string) ([]models.LabTest, error) {
	var out []models.LabTest
	for _, id := range ids {
		if t, ok := r.tests[id]; ok && t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository covering only what the booking
// service needs.
type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByCitizenshipID(cid string) (*models.User, error) {
	for _, u := range r.users {
		if u.CitizenshipID == cid {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetAll(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}
