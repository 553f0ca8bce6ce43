// Package query owns the filter, sort and pagination state behind every
// list view of the console, and the request lifecycle that keeps that state
// in sync with the backend: at most one authoritative in-flight fetch per
// controller, with superseded responses discarded on arrival.
package query

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/pkg/envelope"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

// Fetcher loads one page of results for the given parameters.
type Fetcher[T any] func(ctx context.Context, params Params) ([]T, envelope.Pagination, error)

// Params is the outbound shape of the controller state.
type Params struct {
	Filters   map[string]string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Values encodes the parameters as list query parameters. Empty filters are
// omitted, never sent as empty strings.
func (p Params) Values() url.Values {
	values := url.Values{}
	for key, value := range p.Filters {
		if key == "" || value == "" {
			continue
		}
		values.Set(key, value)
	}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		values.Set("limit", strconv.Itoa(p.PageSize))
	}
	if p.SortBy != "" {
		values.Set("sort", p.SortBy)
		order := p.SortOrder
		if order == "" {
			order = "desc"
		}
		values.Set("order", order)
	}
	return values
}

// FetchResult is the current snapshot of a controller: the last
// server-confirmed items plus request state.
type FetchResult[T any] struct {
	Items      []T
	TotalItems int
	TotalPages int
	IsLoading  bool
	Err        string
}

// Controller drives paginated list fetching for one resource.
type Controller[T any] struct {
	mu         sync.Mutex
	fetch      Fetcher[T]
	logger     *zap.Logger
	debounce   time.Duration
	filters    map[string]string
	sortBy     string
	sortOrder  string
	page       int
	pageSize   int
	result     FetchResult[T]
	generation uint64
	cancel     context.CancelFunc
	timer      *time.Timer
	closed     bool
}

// Option customises a controller.
type Option[T any] func(*Controller[T])

// WithPageSize sets the page size requested from the backend.
func WithPageSize[T any](size int) Option[T] {
	return func(c *Controller[T]) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithDebounce coalesces rapid filter changes: the fetch (and its loading
// indicator) only runs once input settles for the given delay.
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(c *Controller[T]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSort sets the initial sort field and direction.
func WithSort[T any](field, direction string) Option[T] {
	return func(c *Controller[T]) {
		c.sortBy = field
		c.sortOrder = direction
	}
}

// New creates a controller around a fetcher.
func New[T any](fetch Fetcher[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch:    fetch,
		logger:   zap.NewNop(),
		filters:  make(map[string]string),
		page:     1,
		pageSize: 20,
	}
	c.result.TotalPages = 1
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetFilter merges a filter value into the state, resets the page to 1 and
// schedules a refetch. An empty value removes the key.
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) {
	c.mu.Lock()
	if value == "" {
		delete(c.filters, key)
	} else {
		c.filters[key] = value
	}
	c.page = 1
	c.mu.Unlock()

	c.scheduleRefetch(ctx)
}

// SetSort flips the direction when field is already the sort field,
// otherwise sorts by field descending. Resets the page to 1 and refetches.
func (c *Controller[T]) SetSort(ctx context.Context, field string) {
	c.mu.Lock()
	if c.sortBy == field {
		if c.sortOrder == "asc" {
			c.sortOrder = "desc"
		} else {
			c.sortOrder = "asc"
		}
	} else {
		c.sortBy = field
		c.sortOrder = "desc"
	}
	c.page = 1
	c.mu.Unlock()

	c.Refetch(ctx)
}

// SetPage moves to the requested page, clamped to the known page range, and
// refetches.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	max := c.result.TotalPages
	if max < 1 {
		max = 1
	}
	if page < 1 {
		page = 1
	}
	if page > max {
		page = max
	}
	c.page = page
	c.mu.Unlock()

	c.Refetch(ctx)
}

// Params returns the current outbound parameters.
func (c *Controller[T]) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paramsLocked()
}

func (c *Controller[T]) paramsLocked() Params {
	filters := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		filters[k] = v
	}
	return Params{
		Filters:   filters,
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
		Page:      c.page,
		PageSize:  c.pageSize,
	}
}

// Snapshot returns the current fetch result.
func (c *Controller[T]) Snapshot() FetchResult[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// scheduleRefetch runs the fetch after the debounce delay, restarting the
// timer when called again before it fires.
func (c *Controller[T]) scheduleRefetch(ctx context.Context) {
	c.mu.Lock()
	debounce := c.debounce
	if debounce <= 0 {
		c.mu.Unlock()
		c.Refetch(ctx)
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(debounce, func() {
		c.Refetch(ctx)
	})
	c.mu.Unlock()
}

// Refetch cancels any in-flight fetch, performs a request with the current
// state and applies the result unless a newer request superseded it. On
// failure the previous items stay in place and only the error message is
// replaced.
func (c *Controller[T]) Refetch(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		// A debounce timer may still fire after teardown.
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.cancel = cancel
	c.generation++
	generation := c.generation
	params := c.paramsLocked()
	c.result.IsLoading = true
	c.mu.Unlock()

	items, pagination, err := c.fetch(fetchCtx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		// A newer fetch owns the state now; this response is stale.
		return
	}
	c.cancel = nil
	c.result.IsLoading = false

	if err != nil {
		if errors.Is(err, appErrors.ErrCancelled) || fetchCtx.Err() != nil {
			// Abandoned request: nothing to surface.
			return
		}
		c.result.Err = appErrors.FromError(err).Message
		c.logger.Warn("list_fetch_failed",
			zap.Int("page", params.Page),
			zap.String("sort", params.SortBy),
			zap.String("error", c.result.Err),
		)
		return
	}

	c.result.Err = ""
	c.result.Items = items
	c.result.TotalItems = pagination.TotalItems
	c.result.TotalPages = pagination.TotalPages
	if c.result.TotalPages < 1 {
		c.result.TotalPages = 1
	}
}

// Close abandons any in-flight or pending fetch and stops the controller
// for good. Safe to call on teardown; later Refetch calls are no-ops.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
}
