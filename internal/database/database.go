package database

import (
	"errors"
	"realestate/server/internal/models"
	"sync"
	"time"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrEmailTaken     = errors.New("email already exists")
	ErrFavoriteExists = errors.New("property already in favorites")
	ErrAgentExists    = errors.New("agent profile already exists for user")
)

// Database is the in-memory catalog store. Every collection hands out its
// own ids starting at 1. All mutations run under a single lock, so a
// property write and the matching city counter change are observed together.
type Database struct {
	mu  sync.RWMutex
	now func() time.Time

	users      table[models.User]
	cities     table[models.City]
	localities table[models.Locality]
	properties table[models.Property]
	agents     table[models.Agent]
	favorites  table[models.Favorite]
	inquiries  table[models.Inquiry]
}

type Option func(*Database)

// WithClock overrides the time source used for created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(d *Database) {
		d.now = now
	}
}

func NewDatabase(opts ...Option) *Database {
	d := &Database{
		now:        time.Now,
		users:      newTable[models.User](),
		cities:     newTable[models.City](),
		localities: newTable[models.Locality](),
		properties: newTable[models.Property](),
		agents:     newTable[models.Agent](),
		favorites:  newTable[models.Favorite](),
		inquiries:  newTable[models.Inquiry](),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Counts is a point-in-time size of each collection
type Counts struct {
	Users      int
	Cities     int
	Localities int
	Properties int
	Agents     int
	Favorites  int
	Inquiries  int
}

func (d *Database) Counts() Counts {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Counts{
		Users:      d.users.len(),
		Cities:     d.cities.len(),
		Localities: d.localities.len(),
		Properties: d.properties.len(),
		Agents:     d.agents.len(),
		Favorites:  d.favorites.len(),
		Inquiries:  d.inquiries.len(),
	}
}

// table is one keyed collection. order keeps ids in insertion order so
// scans are deterministic.
type table[T any] struct {
	rows   map[int64]T
	order  []int64
	lastID int64
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int64]T)}
}

// insert assigns the next id and stores the record produced by build
func (t *table[T]) insert(build func(id int64) T) T {
	t.lastID++
	id := t.lastID
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// put replaces an existing record; it never creates one
func (t *table[T]) put(id int64, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// each visits records in insertion order until fn returns false
func (t *table[T]) each(fn func(T) bool) {
	for _, id := range t.order {
		if !fn(t.rows[id]) {
			return
		}
	}
}

func (t *table[T]) len() int {
	return len(t.rows)
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
