package catalog

import "errors"

// Status is the lifecycle of one fetch slot.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
	// StatusNotFound is terminal for the detail slot only: the source
	// reported the id does not exist. Distinct from StatusFailed so the
	// UI can route to a dedicated not-found screen instead of a retry
	// prompt.
	StatusNotFound
)

// String returns a short name for logging.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	case StatusNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// ListState tracks the product-list fetch slot.
//
// Each Begin hands out a new generation token; only a Resolve carrying
// the latest token commits. Results from superseded requests arrive,
// are recognized as stale, and are dropped; the underlying network
// call is never cancelled, last write wins. There is a single logical
// thread of control (the Bubble Tea event loop), so no locking here.
type ListState struct {
	status   Status
	gen      int
	products []Product
	total    int
	reason   string
}

// Begin starts a new fetch, superseding any in-flight one, and returns
// the generation token the eventual Resolve must present.
func (s *ListState) Begin() int {
	s.gen++
	s.status = StatusLoading
	return s.gen
}

// Resolve commits the outcome of the fetch started with gen.
// Returns false when the result is stale (a newer Begin has been
// issued) and was discarded. On success the previous product list is
// replaced wholesale.
func (s *ListState) Resolve(gen int, products []Product, total int, err error) bool {
	if gen != s.gen {
		return false
	}
	if err != nil {
		s.status = StatusFailed
		s.reason = err.Error()
		return true
	}
	s.status = StatusReady
	s.products = products
	s.total = total
	s.reason = ""
	return true
}

// Status returns the current slot status.
func (s *ListState) Status() Status { return s.status }

// Generation returns the token of the most recent Begin.
func (s *ListState) Generation() int { return s.gen }

// Products returns the committed list. Only meaningful when
// Status() == StatusReady.
func (s *ListState) Products() []Product { return s.products }

// Total returns the catalog size the source reported, which may exceed
// the number of products actually fetched.
func (s *ListState) Total() int { return s.total }

// Reason returns the human-readable failure reason.
func (s *ListState) Reason() string { return s.reason }

// DetailState tracks the single-product fetch slot. It is independent
// from the list slot: the two carry separate generations and neither
// can clobber the other's data.
type DetailState struct {
	status  Status
	gen     int
	id      int
	product Product
	reason  string
}

// Begin starts a fetch for the given product id, superseding any
// in-flight detail fetch, and returns the generation token.
func (d *DetailState) Begin(id int) int {
	d.gen++
	d.id = id
	d.status = StatusLoading
	return d.gen
}

// Resolve commits the outcome of the detail fetch started with gen.
// ErrNotFound maps to StatusNotFound; any other error to StatusFailed.
// Stale results are discarded and reported with a false return.
func (d *DetailState) Resolve(gen int, p Product, err error) bool {
	if gen != d.gen {
		return false
	}
	switch {
	case err == nil:
		d.status = StatusReady
		d.product = p
		d.reason = ""
	case errors.Is(err, ErrNotFound):
		d.status = StatusNotFound
		d.reason = err.Error()
	default:
		d.status = StatusFailed
		d.reason = err.Error()
	}
	return true
}

// Status returns the current slot status.
func (d *DetailState) Status() Status { return d.status }

// Generation returns the token of the most recent Begin.
func (d *DetailState) Generation() int { return d.gen }

// ID returns the product id the slot is tracking.
func (d *DetailState) ID() int { return d.id }

// Product returns the committed product. Only meaningful when
// Status() == StatusReady.
func (d *DetailState) Product() Product { return d.product }

// Reason returns the human-readable failure reason.
func (d *DetailState) Reason() string { return d.reason }
