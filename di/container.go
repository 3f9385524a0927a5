package di

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/kbukum/scopekit/errors"
	"github.com/kbukum/scopekit/logger"
)

// Container holds a validated, immutable binding table, the singletons it
// owns and the context values attached to it. Containers form a tree: a
// child sees every binding of its ancestors, ancestors never see a child.
type Container struct {
	id       string
	name     string
	parent   *Container
	order    []Key
	bindings map[Key]*binding
	log      *logger.Logger
	observer Observer

	ctxMu    sync.RWMutex
	attached map[Key]any

	mu     sync.Mutex
	built  []*binding
	closed bool
}

// BindingInfo describes a binding for introspection.
type BindingInfo struct {
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Qualifier   string   `json:"qualifier,omitempty"`
	Kind        string   `json:"kind"`
	Scope       string   `json:"scope"`
	Deps        []string `json:"deps,omitempty"`
	Owner       string   `json:"owner"`
	Module      string   `json:"module,omitempty"`
	Description string   `json:"description,omitempty"`
	Eager       bool     `json:"eager,omitempty"`
	Initialized bool     `json:"initialized"`
}

type binding struct {
	decl  Declaration
	owner *Container

	mu       sync.RWMutex
	instance any
	ready    bool
}

// New validates decls and builds a root container.
func New(name string, decls []Declaration, opts ...Option) (*Container, error) {
	return build(nil, name, decls, opts)
}

// Child validates decls against this container's hierarchy and builds a
// child container. Keys bound by the child shadow the same keys of its
// ancestors for lookups that start at the child.
func (c *Container) Child(name string, decls []Declaration, opts ...Option) (*Container, error) {
	if c.isClosed() {
		return nil, apperrors.ContainerClosed(c.name)
	}
	return build(c, name, decls, opts)
}

func build(parent *Container, name string, decls []Declaration, opts []Option) (*Container, error) {
	o := &options{}
	if parent != nil {
		o.log = parent.log
		o.observer = parent.observer
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.Get("di")
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}

	id := uuid.NewString()
	c := &Container{
		id:       id,
		name:     name,
		parent:   parent,
		bindings: make(map[Key]*binding, len(decls)),
		attached: make(map[Key]any),
		observer: o.observer,
		log: o.log.WithFields(map[string]interface{}{
			logger.FieldContainer:   name,
			logger.FieldContainerID: id,
		}),
	}

	if err := c.validate(decls); err != nil {
		c.log.Warn("container validation failed", logger.ErrorFields("validate", err))
		return nil, err
	}

	for _, d := range decls {
		b := &binding{decl: d, owner: c}
		if d.kind == KindInstance {
			b.instance, b.ready = d.value, true
		}
		c.bindings[d.key] = b
		c.order = append(c.order, d.key)
	}

	for _, a := range o.values {
		if err := c.Attach(a.key, a.value); err != nil {
			return nil, err
		}
	}

	c.log.Debug("container built", logger.Fields("bindings", len(decls)))
	return c, nil
}

// ID returns the unique id of this container instance.
func (c *Container) ID() string { return c.id }

// Name returns the container name.
func (c *Container) Name() string { return c.name }

// Parent returns the parent container, or nil for a root.
func (c *Container) Parent() *Container { return c.parent }

// Has reports whether key is bound in this container or an ancestor.
func (c *Container) Has(key Key) bool { return c.lookup(key) != nil }

// lookup walks this container and its ancestors for key.
func (c *Container) lookup(key Key) *binding {
	for x := c; x != nil; x = x.parent {
		if b, ok := x.bindings[key]; ok {
			return b
		}
	}
	return nil
}

// Resolve returns the value bound to key. Lookup starts at this container
// and walks up; the container that declares the binding owns any singleton
// it produces.
func (c *Container) Resolve(key Key) (any, error) {
	var (
		v   any
		err error
	)
	if c.isClosed() {
		err = apperrors.ContainerClosed(c.name)
	} else {
		v, err = c.resolve(key, c, nil)
	}
	c.observer.OnResolve(c.name, key, err)
	return v, err
}

// resolve finds key starting at c. requester is the container whose
// attached context values are visible to the resolution.
func (c *Container) resolve(key Key, requester *Container, path []Key) (any, error) {
	b := c.lookup(key)
	if b == nil {
		return nil, apperrors.UnsatisfiedDependency(c.name, keyStrings(append(path, key)))
	}
	if b.owner.isClosed() {
		return nil, apperrors.ContainerClosed(b.owner.name)
	}

	if b.decl.scope == Singleton {
		return b.singleton(path)
	}
	return b.produce(requester, path)
}

// singleton returns the cached instance or builds it exactly once. A failed
// build leaves nothing cached.
func (b *binding) singleton(path []Key) (any, error) {
	b.mu.RLock()
	if b.ready {
		v := b.instance
		b.mu.RUnlock()
		return v, nil
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check pattern
	if b.ready {
		return b.instance, nil
	}

	// Singletons only see context attached to their owner.
	v, err := b.produce(b.owner, path)
	if err != nil {
		return nil, err
	}
	b.instance, b.ready = v, true
	if err := b.owner.track(b); err != nil {
		b.instance, b.ready = nil, false
		return nil, err
	}
	return v, nil
}

// produce applies the binding's production rule without caching.
func (b *binding) produce(requester *Container, path []Key) (any, error) {
	path = append(path, b.decl.key)

	switch b.decl.kind {
	case KindConstruct:
		return b.construct(requester, path)
	case KindDelegate:
		return b.owner.resolve(b.decl.target, requester, path)
	case KindContext:
		return b.contextValue(requester)
	case KindInstance:
		return b.decl.value, nil
	default:
		return nil, apperrors.InvalidBinding(b.decl.key.String(), "unknown binding kind")
	}
}

func (b *binding) construct(requester *Container, path []Key) (any, error) {
	fnType := b.decl.fn.Type()
	args := make([]reflect.Value, len(b.decl.deps))
	for i, dep := range b.decl.deps {
		v, err := b.owner.resolve(dep, requester, path)
		if err != nil {
			return nil, err
		}
		if v == nil {
			args[i] = reflect.Zero(fnType.In(i))
		} else {
			args[i] = reflect.ValueOf(v)
		}
	}

	start := time.Now()
	v, err := b.call(args)
	elapsed := time.Since(start)
	b.owner.observer.OnConstruct(b.owner.name, b.decl.key, b.decl.scope, elapsed, err)

	if err != nil {
		b.owner.log.Debug("construction failed", map[string]interface{}{
			logger.FieldKey:   b.decl.key.String(),
			logger.FieldScope: b.decl.scope.String(),
			logger.FieldError: err.Error(),
		})
		return nil, err
	}

	b.owner.log.Debug("constructed", map[string]interface{}{
		logger.FieldKey:      b.decl.key.String(),
		logger.FieldScope:    b.decl.scope.String(),
		logger.FieldDuration: elapsed.Milliseconds(),
	})
	return v, nil
}

func (b *binding) call(args []reflect.Value) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, apperrors.ConstructionFailed(b.decl.key.String(), fmt.Errorf("panic: %v", r))
		}
	}()

	results := b.decl.fn.Call(args)
	if b.decl.returnsErr && !results[1].IsNil() {
		return nil, apperrors.ConstructionFailed(b.decl.key.String(), results[1].Interface().(error))
	}
	return results[0].Interface(), nil
}

// contextValue searches attached values from requester up to the owner.
func (b *binding) contextValue(requester *Container) (any, error) {
	for x := requester; x != nil; x = x.parent {
		if v, ok := x.attachedValue(b.decl.key); ok {
			return v, nil
		}
		if x == b.owner {
			break
		}
	}
	return nil, apperrors.MissingContext(requester.name, b.decl.key.String())
}

func (c *Container) attachedValue(key Key) (any, bool) {
	c.ctxMu.RLock()
	defer c.ctxMu.RUnlock()
	v, ok := c.attached[key]
	return v, ok
}

// Attach supplies the runtime value of a context binding for resolutions
// that start at this container or its descendants. Attaching again replaces
// the value; singletons already built keep what they captured.
func (c *Container) Attach(key Key, value any) error {
	if c.isClosed() {
		return apperrors.ContainerClosed(c.name)
	}
	b := c.lookup(key)
	if b == nil || b.decl.kind != KindContext {
		return apperrors.InvalidBinding(key.String(), "no context binding reachable from "+c.name)
	}
	if value == nil {
		return apperrors.InvalidBinding(key.String(), "context value must not be nil")
	}
	if t := reflect.TypeOf(value); !t.AssignableTo(key.Type) {
		return apperrors.InvalidBinding(key.String(), t.String()+" is not assignable to "+key.Type.String())
	}

	c.ctxMu.Lock()
	c.attached[key] = value
	c.ctxMu.Unlock()

	c.log.Debug("context attached", logger.Fields(logger.FieldKey, key.String()))
	return nil
}

// Bindings lists every binding visible from this container: its own in
// declaration order, then each ancestor's, skipping shadowed keys.
func (c *Container) Bindings() []BindingInfo {
	var out []BindingInfo
	seen := make(map[Key]bool)
	for x := c; x != nil; x = x.parent {
		for _, k := range x.order {
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, x.bindings[k].info())
		}
	}
	return out
}

func (b *binding) info() BindingInfo {
	b.mu.RLock()
	ready := b.ready
	b.mu.RUnlock()

	d := b.decl
	return BindingInfo{
		Key:         d.key.String(),
		Type:        d.key.Type.String(),
		Qualifier:   d.key.Qualifier,
		Kind:        d.kind.String(),
		Scope:       d.scope.String(),
		Deps:        keyStrings(d.edges()),
		Owner:       b.owner.name,
		Module:      d.module,
		Description: d.description,
		Eager:       d.eager,
		Initialized: ready,
	}
}

// track records a freshly built singleton for Close. If the container was
// closed while the singleton was being built, the instance is closed at once
// and the resolution fails.
func (c *Container) track(b *binding) error {
	c.mu.Lock()
	if !c.closed {
		c.built = append(c.built, b)
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if closer, ok := b.instance.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.log.Warn("closing late singleton failed", logger.ErrorFields("close", err))
		}
	}
	return apperrors.ContainerClosed(c.name)
}

func (c *Container) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close closes every singleton built by this container that implements
// io.Closer, in reverse construction order, and rejects further use.
// Pre-built instances stay open; they belong to whoever supplied them.
// Closing a container does not close its children.
func (c *Container) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	built := c.built
	c.built = nil
	c.mu.Unlock()

	var errs []error
	for i := len(built) - 1; i >= 0; i-- {
		b := built[i]
		closer, ok := b.instance.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", b.decl.key, err))
		}
	}

	c.log.Debug("container closed", logger.Fields("closed_singletons", len(built)))
	return errors.Join(errs...)
}
