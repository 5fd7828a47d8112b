package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/filedesk/internal/model"
)

var (
	ErrEmptyName        = errors.New("command name is empty")
	ErrDuplicateCommand = errors.New("command already registered")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArgs      = errors.New("invalid command arguments")
	ErrHandlerPanic     = errors.New("command handler panicked")
)

// UnknownCommandLabel is the name reported to the Observer for dispatches of
// unregistered commands, so arbitrary names never become metric labels.
const UnknownCommandLabel = "unknown"

// Handler executes one command. args is the raw JSON payload sent by the
// caller and may be empty.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Observer is notified when a command finishes. Implemented by metrics.Metrics.
type Observer interface {
	ObserveCommand(command string, seconds float64, err error)
}

// Result is what the UI layer receives for a dispatched command.
type Result struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Err converts a failed result back into an error
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return errors.New(r.Error)
}

// Registry maps command names to handlers
type Registry struct {
	handlers map[string]Handler
	mu       sync.RWMutex
	logger   zerolog.Logger
	observer Observer
	onUpdate func(*model.Invocation) // callback for UI updates
}

// NewRegistry creates an empty registry. observer may be nil.
func NewRegistry(logger zerolog.Logger, observer Observer) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger.With().Str("component", "bridge").Logger(),
		observer: observer,
	}
}

// SetUpdateCallback sets the callback invoked on every invocation state change
func (r *Registry) SetUpdateCallback(callback func(*model.Invocation)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUpdate = callback
}

// Register adds a handler under name
func (r *Registry) Register(name string, h Handler) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if h == nil {
		return fmt.Errorf("handler for %s is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.handlers[name] = h
	return nil
}

// Names returns registered command names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named command synchronously on the calling goroutine.
// Handler errors and panics are returned as failed results; Dispatch itself
// never panics.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) Result {
	inv := &model.Invocation{
		ID:      newInvocationID(),
		Command: name,
		Status:  model.StatusPending,
	}
	log := r.logger.With().Str("command", name).Str("invocation", inv.ID).Logger()

	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		log.Warn().Msg("unknown command")
		inv.Status = model.StatusFailed
		inv.LastError = err.Error()
		if r.observer != nil {
			r.observer.ObserveCommand(UnknownCommandLabel, 0, err)
		}
		r.notifyUpdate(inv)
		return Result{ID: inv.ID, Error: err.Error()}
	}

	inv.Status = model.StatusRunning
	inv.StartedAt = time.Now()
	r.notifyUpdate(inv)

	value, err := r.invoke(ctx, h, args)

	inv.FinishedAt = time.Now()
	if r.observer != nil {
		r.observer.ObserveCommand(name, inv.Duration().Seconds(), err)
	}

	if err != nil {
		inv.Status = model.StatusFailed
		inv.LastError = err.Error()
		log.Error().Err(err).Dur("took", inv.Duration()).Msg("command failed")
		r.notifyUpdate(inv)
		return Result{ID: inv.ID, Error: err.Error()}
	}

	inv.Status = model.StatusSucceeded
	log.Info().Dur("took", inv.Duration()).Msg("command succeeded")
	r.notifyUpdate(inv)
	return Result{ID: inv.ID, OK: true, Value: value}
}

// DispatchJSON marshals args before dispatching
func (r *Registry) DispatchJSON(ctx context.Context, name string, args any) Result {
	raw, err := json.Marshal(args)
	if err != nil {
		return Result{ID: newInvocationID(), Error: fmt.Errorf("%w: %w", ErrInvalidArgs, err).Error()}
	}
	return r.Dispatch(ctx, name, raw)
}

func (r *Registry) invoke(ctx context.Context, h Handler, args json.RawMessage) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, p)
		}
	}()
	return h(ctx, args)
}

// notifyUpdate calls the update callback with a copy of the invocation
func (r *Registry) notifyUpdate(inv *model.Invocation) {
	r.mu.RLock()
	cb := r.onUpdate
	r.mu.RUnlock()
	if cb != nil {
		snapshot := *inv
		cb(&snapshot)
	}
}

// newInvocationID returns a time-ordered id for correlating log lines
func newInvocationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
