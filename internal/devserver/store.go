package devserver

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/client/fallback"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateUser = errors.New("a user with this email already exists")
	ErrBadLogin      = errors.New("invalid email or password")
)

// table keeps rows of one resource keyed by a numeric id, in insertion order.
type table[T any] struct {
	next int64
	rows map[int64]T
}

func newTable[T any]() *table[T] { return &table[T]{rows: map[int64]T{}} }

func (t *table[T]) insert(v T, setID func(*T, int64)) T {
	t.next++
	setID(&v, t.next)
	t.rows[t.next] = v
	return v
}

func (t *table[T]) replace(id int64, v T) error {
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	t.rows[id] = v
	return nil
}

func (t *table[T]) remove(id int64) error {
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) list() []T {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

type user struct {
	ID       int64
	Name     string
	Email    string
	Mobile   string
	Age      int
	Password []byte
}

type image struct {
	ContentType string
	Data        []byte
}

// Store is the in-memory state of the dev backend. It is safe for
// concurrent use.
type Store struct {
	mu sync.RWMutex

	packages *table[client.Package]
	travels  *table[client.Travel]
	hotels   *table[client.Hotel]
	feedback *table[client.Feedback]
	bookings []client.Booking

	users      map[string]*user
	nextUserID int64
	sessions   map[string]string // key -> email
	images     map[string]image

	bcryptCost int
}

// NewStore returns an empty store. bcryptCost <= 0 uses bcrypt.DefaultCost.
func NewStore(bcryptCost int) *Store {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Store{
		packages:   newTable[client.Package](),
		travels:    newTable[client.Travel](),
		hotels:     newTable[client.Hotel](),
		feedback:   newTable[client.Feedback](),
		users:      map[string]*user{},
		sessions:   map[string]string{},
		images:     map[string]image{},
		bcryptCost: bcryptCost,
	}
}

// Load inserts every record of ds with freshly assigned ids.
func (s *Store) Load(ds fallback.Dataset) {
	for _, p := range ds.Packages {
		s.CreatePackage(p)
	}
	for _, t := range ds.Travels {
		s.CreateTravel(t)
	}
	for _, h := range ds.Hotels {
		s.CreateHotel(h)
	}
	for _, f := range ds.Feedback {
		s.CreateFeedback(f)
	}
}

// ---- users and sessions ----

// Register adds a user with a hashed password.
func (s *Store) Register(req client.RegisterRequest) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		return 0, ErrDuplicateUser
	}
	s.nextUserID++
	s.users[req.Email] = &user{
		ID:       s.nextUserID,
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Age:      req.Age,
		Password: hash,
	}
	return s.nextUserID, nil
}

// Authenticate checks credentials and returns the user id.
func (s *Store) Authenticate(email, password string) (int64, error) {
	s.mu.RLock()
	u, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrBadLogin
	}
	if err := bcrypt.CompareHashAndPassword(u.Password, []byte(password)); err != nil {
		return 0, ErrBadLogin
	}
	return u.ID, nil
}

// OpenSession records key as a live session of email.
func (s *Store) OpenSession(key, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = email
}

// CloseSession removes key. It reports ErrNotFound for unknown keys.
func (s *Store) CloseSession(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[key]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, key)
	return nil
}

// SessionCount returns the number of live sessions.
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ---- catalog ----

// Packages lists packages in id order.
func (s *Store) Packages() []client.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.packages.list()
}

// CreatePackage stores p under the next package id.
func (s *Store) CreatePackage(p client.Package) client.Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.packages.insert(p, func(p *client.Package, id int64) { p.PackageID = id })
}

// UpdatePackage replaces the package with p.PackageID.
func (s *Store) UpdatePackage(p client.Package) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.packages.replace(p.PackageID, p)
}

// DeletePackage removes a package.
func (s *Store) DeletePackage(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.packages.remove(id)
}

// Travels lists travels in id order.
func (s *Store) Travels() []client.Travel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.travels.list()
}

// CreateTravel stores t under the next travel id.
func (s *Store) CreateTravel(t client.Travel) client.Travel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.travels.insert(t, func(t *client.Travel, id int64) { t.TravelID = id })
}

// UpdateTravel replaces the travel with t.TravelID.
func (s *Store) UpdateTravel(t client.Travel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.travels.replace(t.TravelID, t)
}

// DeleteTravel removes a travel.
func (s *Store) DeleteTravel(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.travels.remove(id)
}

// Hotels lists hotels in id order.
func (s *Store) Hotels() []client.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotels.list()
}

// CreateHotel stores h under the next hotel id.
func (s *Store) CreateHotel(h client.Hotel) client.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotels.insert(h, func(h *client.Hotel, id int64) { h.HotelID = id })
}

// ---- bookings and feedback ----

// CreateBooking stores b under a new uuid.
func (s *Store) CreateBooking(b client.Booking) client.Booking {
	b.BookingID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	return b
}

// Bookings lists stored bookings.
func (s *Store) Bookings() []client.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]client.Booking{}, s.bookings...)
}

// CreateFeedback stores f under the next feedback id.
func (s *Store) CreateFeedback(f client.Feedback) client.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedback.insert(f, func(f *client.Feedback, id int64) { f.FeedbackID = id })
}

// Feedback lists testimonials in id order.
func (s *Store) Feedback() []client.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feedback.list()
}

// ---- images ----

// PutImage stores or overwrites an image.
func (s *Store) PutImage(name, contentType string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[name] = image{ContentType: contentType, Data: data}
}

// Image returns the named image.
func (s *Store) Image(name string) (image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[name]
	if !ok {
		return image{}, ErrNotFound
	}
	return img, nil
}

// DeleteImage removes the named image.
func (s *Store) DeleteImage(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.images[name]; !ok {
		return ErrNotFound
	}
	delete(s.images, name)
	return nil
}

// ImageNames returns stored image names in lexical order.
func (s *Store) ImageNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.images))
	for n := range s.images {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
