package di

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/kbukum/scopekit/errors"
)

type animal interface{ Sound() string }

type cat struct{ name string }

func (c *cat) Sound() string { return "meow" }

type dog struct{ id int }

func (d *dog) Sound() string { return "woof" }

type owner struct{ pet animal }

type request struct{ path string }

type handler struct{ req *request }

type cycleA struct{}
type cycleB struct{}

type closer struct {
	name string
	log  *[]string
	err  error
}

func (c *closer) Close() error {
	*c.log = append(*c.log, c.name)
	return c.err
}

func mustNew(t *testing.T, name string, decls ...Declaration) *Container {
	t.Helper()
	c, err := New(name, decls)
	if err != nil {
		t.Fatalf("New(%s) failed: %v", name, err)
	}
	return c
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{"unqualified", KeyOf[*cat](), "*di.cat"},
		{"qualified", Named[*cat]("special"), "*di.cat[special]"},
		{"with qualifier", KeyOf[*cat]().WithQualifier("x"), "*di.cat[x]"},
		{"zero", Key{}, "<nil>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.String(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestKey_Equality(t *testing.T) {
	if KeyOf[*cat]() != KeyOf[*cat]() {
		t.Error("keys of the same type should be equal")
	}
	if KeyOf[*cat]() == Named[*cat]("special") {
		t.Error("qualified key should differ from the unqualified key")
	}
	if KeyOf[animal]() == KeyOf[*cat]() {
		t.Error("interface and implementation keys should differ")
	}
}

func TestResolve_SingletonIdentity(t *testing.T) {
	c := mustNew(t, NameSingleton,
		Provide(func() *cat { return &cat{} }, As(Singleton)),
	)

	a := MustResolve[*cat](c)
	b := MustResolve[*cat](c)
	if a != b {
		t.Error("singleton should resolve to the same instance")
	}
}

func TestResolve_UnscopedDistinct(t *testing.T) {
	c := mustNew(t, NameSingleton,
		Provide(func() *cat { return &cat{} }),
	)

	a := MustResolve[*cat](c)
	b := MustResolve[*cat](c)
	if a == b {
		t.Error("unscoped binding should produce a new instance each time")
	}
}

func TestNew_DuplicateBinding(t *testing.T) {
	_, err := New(NameSingleton, []Declaration{
		Provide(func() *cat { return &cat{} }),
		Provide(func() *cat { return &cat{name: "other"} }),
	})
	if !apperrors.HasCode(err, apperrors.ErrCodeDuplicateBinding) {
		t.Fatalf("expected DUPLICATE_BINDING, got %v", err)
	}
	appErr, _ := apperrors.AsAppError(err)
	if appErr.Details["key"] != "*di.cat" {
		t.Errorf("expected offending key, got %v", appErr.Details["key"])
	}
}

func TestNew_CyclicDependency(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		_, err := New(NameSingleton, []Declaration{
			Provide(func(*cycleB) *cycleA { return &cycleA{} }),
			Provide(func(*cycleA) *cycleB { return &cycleB{} }),
		})
		if !apperrors.HasCode(err, apperrors.ErrCodeCyclicDependency) {
			t.Fatalf("expected CYCLIC_DEPENDENCY, got %v", err)
		}
		appErr, _ := apperrors.AsAppError(err)
		chain := appErr.Chain()
		want := []string{"*di.cycleA", "*di.cycleB", "*di.cycleA"}
		if strings.Join(chain, ",") != strings.Join(want, ",") {
			t.Errorf("expected chain %v, got %v", want, chain)
		}
	})

	t.Run("via delegation", func(t *testing.T) {
		_, err := New(NameSingleton, []Declaration{
			Bind[animal, *dog](),
			Provide(func(animal) *dog { return &dog{} }),
		})
		if !apperrors.HasCode(err, apperrors.ErrCodeCyclicDependency) {
			t.Fatalf("expected CYCLIC_DEPENDENCY, got %v", err)
		}
	})

	t.Run("self", func(t *testing.T) {
		_, err := New(NameSingleton, []Declaration{
			Provide(func(*cycleA) *cycleA { return &cycleA{} }),
		})
		if !apperrors.HasCode(err, apperrors.ErrCodeCyclicDependency) {
			t.Fatalf("expected CYCLIC_DEPENDENCY, got %v", err)
		}
	})
}

func TestNew_UnsatisfiedDependency(t *testing.T) {
	_, err := New(NameSingleton, []Declaration{
		Provide(func(a animal) *owner { return &owner{pet: a} }),
	})
	if !apperrors.HasCode(err, apperrors.ErrCodeUnsatisfiedDependency) {
		t.Fatalf("expected UNSATISFIED_DEPENDENCY, got %v", err)
	}
	appErr, _ := apperrors.AsAppError(err)
	if appErr.Details["key"] != "di.animal" {
		t.Errorf("expected missing key di.animal, got %v", appErr.Details["key"])
	}
	if chain := appErr.Chain(); len(chain) != 2 || chain[0] != "*di.owner" {
		t.Errorf("expected chain from *di.owner, got %v", chain)
	}
}

func TestNew_ValidationOrder(t *testing.T) {
	// A duplicate wins over the missing dependency declared after it.
	_, err := New(NameSingleton, []Declaration{
		Provide(func() *cat { return &cat{} }),
		Provide(func() *cat { return &cat{} }),
		Provide(func(*dog) *owner { return &owner{} }),
	})
	if !apperrors.HasCode(err, apperrors.ErrCodeDuplicateBinding) {
		t.Fatalf("expected DUPLICATE_BINDING first, got %v", err)
	}

	// A missing dependency wins over a cycle.
	_, err = New(NameSingleton, []Declaration{
		Provide(func(*cycleB) *cycleA { return &cycleA{} }),
		Provide(func(*cycleA) *cycleB { return &cycleB{} }),
		Provide(func(*dog) *owner { return &owner{} }),
	})
	if !apperrors.HasCode(err, apperrors.ErrCodeUnsatisfiedDependency) {
		t.Fatalf("expected UNSATISFIED_DEPENDENCY first, got %v", err)
	}
}

func TestNew_InvalidBinding(t *testing.T) {
	tests := []struct {
		name string
		decl Declaration
	}{
		{"nil provider", Provide(nil)},
		{"not a function", Provide(42)},
		{"no result", Provide(func() {})},
		{"second result not error", Provide(func() (*cat, int) { return nil, 0 })},
		{"too many results", Provide(func() (*cat, int, error) { return nil, 0, nil })},
		{"variadic", Provide(func(...int) *cat { return nil })},
		{"not assignable", Bind[animal, *owner]()},
		{"scoped context", Context[*request](As(Singleton))},
		{"eager context", Context[*request](Eager())},
		{"params count", Provide(func(*dog) *owner { return nil }, Params())},
		{"params type", Provide(func(*dog) *owner { return nil }, Params(KeyOf[*cat]()))},
		{"params on delegate", Bind[animal, *dog](Params(KeyOf[*dog]()))},
		{"target on provider", Provide(func() *cat { return nil }, Target("x"))},
		{"nil instance", Instance[animal](nil)},
		{"zero declaration", Declaration{}},
		{"provider without function", Declaration{kind: KindConstruct, key: KeyOf[*cat]()}},
		{"delegate without target", Declaration{kind: KindDelegate, key: KeyOf[animal]()}},
		{"unknown kind", Declaration{kind: Kind(42), key: KeyOf[*cat]()}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(NameSingleton, []Declaration{tc.decl})
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidBinding) {
				t.Errorf("expected INVALID_BINDING, got %v", err)
			}
		})
	}
}

func TestResolve_UnboundKey(t *testing.T) {
	c := mustNew(t, NameSingleton)
	_, err := c.Resolve(KeyOf[*cat]())
	if !apperrors.HasCode(err, apperrors.ErrCodeUnsatisfiedDependency) {
		t.Fatalf("expected UNSATISFIED_DEPENDENCY, got %v", err)
	}
	if _, ok := TryResolve[*cat](c); ok {
		t.Error("TryResolve should report false for an unbound key")
	}
}

func TestResolve_DelegationIdentity(t *testing.T) {
	c := mustNew(t, NameSingleton,
		Provide(func() *dog { return &dog{id: 1} }, As(Singleton)),
		Bind[animal, *dog](),
	)

	impl := MustResolve[*dog](c)
	iface := MustResolve[animal](c)
	if iface != animal(impl) {
		t.Error("interface and singleton implementation should be the same instance")
	}
	if iface.Sound() != "woof" {
		t.Errorf("expected woof, got %s", iface.Sound())
	}
}

func TestResolve_DelegationToQualifiedTarget(t *testing.T) {
	c := mustNew(t, NameSingleton,
		Provide(func() *cat { return &cat{name: "tom"} }, Qualified("special"), As(Singleton)),
		Bind[animal, *cat](Target("special")),
	)

	a := MustResolve[animal](c)
	if a.(*cat).name != "tom" {
		t.Errorf("expected special cat, got %+v", a)
	}
}

func TestResolve_ChildReusesParentSingleton(t *testing.T) {
	var built atomic.Int32
	root := mustNew(t, NameSingleton,
		Provide(func() *dog { built.Add(1); return &dog{} }, As(Singleton)),
	)
	child, err := root.Child(NameActivity, []Declaration{
		Provide(func(d *dog) *owner { return &owner{pet: d} }),
	})
	if err != nil {
		t.Fatalf("Child failed: %v", err)
	}

	fromChild := MustResolve[*owner](child).pet
	fromRoot := MustResolve[*dog](root)
	if fromChild != animal(fromRoot) {
		t.Error("child should reuse the parent's singleton")
	}
	if built.Load() != 1 {
		t.Errorf("expected 1 construction, got %d", built.Load())
	}

	sibling, err := root.Child(NameActivity, nil)
	if err != nil {
		t.Fatalf("Child failed: %v", err)
	}
	if MustResolve[*dog](sibling) != fromRoot {
		t.Error("sibling should see the same parent singleton")
	}
}

func TestResolve_ChildSingletonsAreIndependent(t *testing.T) {
	root := mustNew(t, NameSingleton)
	decls := []Declaration{Provide(func() *cat { return &cat{} }, As(Singleton))}

	a, _ := root.Child(NameActivity, decls)
	b, _ := root.Child(NameActivity, decls)

	if MustResolve[*cat](a) == MustResolve[*cat](b) {
		t.Error("each child should own its own singleton")
	}
	if MustResolve[*cat](a) != MustResolve[*cat](a) {
		t.Error("singleton should be stable within its owner")
	}
	if root.Has(KeyOf[*cat]()) {
		t.Error("parent should not see child bindings")
	}
}

func TestResolve_ChildShadowsParent(t *testing.T) {
	root := mustNew(t, NameSingleton,
		Provide(func() *cat { return &cat{name: "root"} }),
		Provide(func(c *cat) *owner { return &owner{pet: c} }),
	)
	child, err := root.Child(NameActivity, []Declaration{
		Provide(func() *cat { return &cat{name: "child"} }),
	})
	if err != nil {
		t.Fatalf("Child failed: %v", err)
	}

	if got := MustResolve[*cat](child).name; got != "child" {
		t.Errorf("expected child cat, got %s", got)
	}
	// owner is declared in root, so its dependencies come from root.
	if got := MustResolve[*owner](child).pet.(*cat).name; got != "root" {
		t.Errorf("expected root cat for root binding, got %s", got)
	}
}

func TestResolve_QualifiersAreDistinct(t *testing.T) {
	c := mustNew(t, NameActivity,
		Provide(func() *cat { return &cat{name: "cat"} }, As(Singleton)),
		Provide(func() *cat { return &cat{name: "special"} }, Qualified("special"), As(Singleton)),
	)

	plain := MustResolve[*cat](c)
	special := MustResolveNamed[*cat](c, "special")
	if plain == special {
		t.Error("qualified and unqualified bindings should be distinct instances")
	}
	if plain.name != "cat" || special.name != "special" {
		t.Errorf("unexpected names %q, %q", plain.name, special.name)
	}
	if MustResolveNamed[*cat](c, "special") != special {
		t.Error("qualified singleton should be cached independently")
	}
}

func TestResolve_Params(t *testing.T) {
	c := mustNew(t, NameActivity,
		Provide(func() *cat { return &cat{name: "special"} }, Qualified("special")),
		Provide(func(c *cat) *owner { return &owner{pet: c} }, Params(Named[*cat]("special"))),
	)

	if got := MustResolve[*owner](c).pet.(*cat).name; got != "special" {
		t.Errorf("expected qualified dependency, got %s", got)
	}
}

func TestResolve_ConcurrentSingleton(t *testing.T) {
	var built atomic.Int32
	c := mustNew(t, NameSingleton,
		Provide(func() *dog {
			built.Add(1)
			time.Sleep(time.Millisecond)
			return &dog{}
		}, As(Singleton)),
	)

	const n = 100
	results := make([]*dog, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = MustResolve[*dog](c)
		}(i)
	}
	wg.Wait()

	if built.Load() != 1 {
		t.Errorf("expected exactly 1 construction, got %d", built.Load())
	}
	for i, d := range results {
		if d != results[0] {
			t.Fatalf("result %d differs from result 0", i)
		}
	}
}

func TestResolve_ConstructionFailed(t *testing.T) {
	calls := 0
	c := mustNew(t, NameSingleton,
		Provide(func() (*dog, error) {
			calls++
			if calls == 1 {
				return nil, stderrors.New("boom")
			}
			return &dog{}, nil
		}, As(Singleton)),
	)

	_, err := c.Resolve(KeyOf[*dog]())
	if !apperrors.HasCode(err, apperrors.ErrCodeConstructionFailed) {
		t.Fatalf("expected CONSTRUCTION_FAILED, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected cause in error, got %q", err.Error())
	}

	if _, err := c.Resolve(KeyOf[*dog]()); err != nil {
		t.Errorf("failed construction should not be cached: %v", err)
	}
}

func TestResolve_ProviderPanic(t *testing.T) {
	c := mustNew(t, NameSingleton,
		Provide(func() *dog { panic("bad provider") }),
	)

	_, err := c.Resolve(KeyOf[*dog]())
	if !apperrors.HasCode(err, apperrors.ErrCodeConstructionFailed) {
		t.Fatalf("expected CONSTRUCTION_FAILED, got %v", err)
	}
}

func TestContext_MissingThenAttached(t *testing.T) {
	c := mustNew(t, NameActivity,
		Context[*request](),
		Provide(func(r *request) *handler { return &handler{req: r} }, As(Singleton)),
	)

	_, err := c.Resolve(KeyOf[*handler]())
	if !apperrors.HasCode(err, apperrors.ErrCodeMissingContext) {
		t.Fatalf("expected MISSING_CONTEXT, got %v", err)
	}

	req := &request{path: "/main"}
	if err := Attach(c, req); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	h, err := Resolve[*handler](c)
	if err != nil {
		t.Fatalf("expected resolution after attach, got %v", err)
	}
	if h.req != req {
		t.Error("handler should receive the attached request")
	}
}

func TestContext_ChildValueNotCapturedBySingleton(t *testing.T) {
	root := mustNew(t, NameSingleton,
		Context[*request](),
		Provide(func(r *request) *handler { return &handler{req: r} }, As(Singleton), Qualified("cached")),
		Provide(func(r *request) *handler { return &handler{req: r} }),
	)
	child, err := root.Child("request", nil, WithContextValue(KeyOf[*request](), &request{path: "/child"}))
	if err != nil {
		t.Fatalf("Child failed: %v", err)
	}

	h := MustResolve[*handler](child)
	if h.req.path != "/child" {
		t.Errorf("unscoped binding should see the child's context, got %q", h.req.path)
	}

	_, err = ResolveNamed[*handler](child, "cached")
	if !apperrors.HasCode(err, apperrors.ErrCodeMissingContext) {
		t.Fatalf("singleton should not see the child's context, got %v", err)
	}
}

func TestAttach_Rejections(t *testing.T) {
	c := mustNew(t, NameActivity,
		Context[animal](),
		Provide(func() *cat { return &cat{} }),
	)

	tests := []struct {
		name  string
		key   Key
		value any
	}{
		{"not a context binding", KeyOf[*cat](), &cat{}},
		{"unbound key", KeyOf[*request](), &request{}},
		{"nil value", KeyOf[animal](), nil},
		{"wrong type", KeyOf[animal](), &owner{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := c.Attach(tc.key, tc.value); !apperrors.HasCode(err, apperrors.ErrCodeInvalidBinding) {
				t.Errorf("expected INVALID_BINDING, got %v", err)
			}
		})
	}

	if err := c.Attach(KeyOf[animal](), &dog{}); err != nil {
		t.Errorf("assignable value should attach, got %v", err)
	}
}

func TestWithContextValue_InvalidFailsBuild(t *testing.T) {
	_, err := New(NameSingleton, nil, WithContextValue(KeyOf[*request](), &request{}))
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidBinding) {
		t.Fatalf("expected INVALID_BINDING, got %v", err)
	}
}

func TestInstance(t *testing.T) {
	d := &dog{id: 7}
	c := mustNew(t, NameSingleton, Instance(d), Instance[animal](d, Qualified("pet")))

	if MustResolve[*dog](c) != d {
		t.Error("instance should resolve to the supplied value")
	}
	if MustResolveNamed[animal](c, "pet") != animal(d) {
		t.Error("qualified instance should resolve to the supplied value")
	}
}

func TestProvider(t *testing.T) {
	c := mustNew(t, NameViewModel, Provide(func() *cat { return &cat{} }))

	next := Provider[*cat](c)
	a, err := next()
	if err != nil {
		t.Fatalf("provider failed: %v", err)
	}
	b, _ := next()
	if a == b {
		t.Error("provider of an unscoped binding should return distinct instances")
	}
}

func TestClose_ReverseOrder(t *testing.T) {
	var log []string
	type first struct{ *closer }
	type second struct{ *closer }

	c := mustNew(t, NameSingleton,
		Provide(func() *first { return &first{&closer{name: "first", log: &log}} }, As(Singleton)),
		Provide(func(*first) *second {
			return &second{&closer{name: "second", log: &log, err: stderrors.New("close failed")}}
		}, As(Singleton)),
		Provide(func() *closer { return &closer{name: "unscoped", log: &log} }),
	)

	MustResolve[*second](c)
	MustResolve[*closer](c)

	err := c.Close()
	if err == nil || !strings.Contains(err.Error(), "close failed") {
		t.Errorf("expected joined close error, got %v", err)
	}
	if strings.Join(log, ",") != "second,first" {
		t.Errorf("expected reverse construction order, got %v", log)
	}

	if _, err := c.Resolve(KeyOf[*first]()); !apperrors.HasCode(err, apperrors.ErrCodeContainerClosed) {
		t.Errorf("expected CONTAINER_CLOSED, got %v", err)
	}
	if _, err := c.Child("late", nil); !apperrors.HasCode(err, apperrors.ErrCodeContainerClosed) {
		t.Errorf("expected CONTAINER_CLOSED for Child, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestClose_DuringSingletonBuild(t *testing.T) {
	var log []string
	started := make(chan struct{})
	release := make(chan struct{})
	c := mustNew(t, NameSingleton,
		Provide(func() *closer {
			close(started)
			<-release
			return &closer{name: "late", log: &log}
		}, As(Singleton)),
	)

	errc := make(chan error, 1)
	go func() {
		_, err := c.Resolve(KeyOf[*closer]())
		errc <- err
	}()

	<-started
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	close(release)

	select {
	case err := <-errc:
		if !apperrors.HasCode(err, apperrors.ErrCodeContainerClosed) {
			t.Errorf("expected CONTAINER_CLOSED, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("resolution did not return")
	}
	if len(log) != 1 || log[0] != "late" {
		t.Errorf("singleton finished after Close should be closed, got %v", log)
	}
	for _, b := range c.Bindings() {
		if b.Initialized {
			t.Errorf("%s should not be cached after Close", b.Key)
		}
	}
}

func TestClose_ParentClosedFailsChildResolution(t *testing.T) {
	root := mustNew(t, NameSingleton, Provide(func() *dog { return &dog{} }, As(Singleton)))
	child, _ := root.Child(NameActivity, nil)

	_ = root.Close()
	if _, err := child.Resolve(KeyOf[*dog]()); !apperrors.HasCode(err, apperrors.ErrCodeContainerClosed) {
		t.Errorf("expected CONTAINER_CLOSED from closed owner, got %v", err)
	}
}

func TestWarm(t *testing.T) {
	var order []string
	var mu sync.Mutex
	record := func(name string) {
		mu.Lock()
		order = append(order, name)
		mu.Unlock()
	}

	c := mustNew(t, NameSingleton,
		Provide(func(*dog) *owner { record("owner"); return &owner{} }, Eager()),
		Provide(func() *dog { record("dog"); return &dog{} }, Eager()),
		Provide(func() *cat { record("cat"); return &cat{} }, As(Singleton)),
	)

	if err := c.Warm(context.Background()); err != nil {
		t.Fatalf("Warm failed: %v", err)
	}
	if strings.Join(order, ",") != "dog,owner" {
		t.Errorf("expected dependencies first and lazy bindings skipped, got %v", order)
	}

	for _, info := range c.Bindings() {
		want := info.Key != "*di.cat"
		if info.Initialized != want {
			t.Errorf("%s: expected initialized=%v", info.Key, want)
		}
	}
}

func TestWarm_Failure(t *testing.T) {
	c := mustNew(t, NameSingleton,
		Provide(func() (*dog, error) { return nil, stderrors.New("down") }, Eager()),
	)
	err := c.Warm(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrCodeConstructionFailed) {
		t.Errorf("expected CONSTRUCTION_FAILED, got %v", err)
	}
}

func TestWarm_CanceledContext(t *testing.T) {
	c := mustNew(t, NameSingleton, Provide(func() *dog { return &dog{} }, Eager()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Warm(ctx); !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBindings(t *testing.T) {
	root := mustNew(t, NameSingleton, Module("animals",
		Provide(func() *dog { return &dog{} }, As(Singleton), Describe("the dog")),
		Bind[animal, *dog](),
	)...)
	child, _ := root.Child(NameActivity, []Declaration{
		Provide(func() *dog { return &dog{} }),
		Context[*request](),
	})

	infos := child.Bindings()
	if len(infos) != 3 {
		t.Fatalf("expected 3 visible bindings, got %d: %+v", len(infos), infos)
	}

	byKey := make(map[string]BindingInfo)
	for _, info := range infos {
		byKey[info.Key] = info
	}

	if got := byKey["*di.dog"]; got.Owner != NameActivity || got.Scope != "unscoped" {
		t.Errorf("child binding should shadow the parent: %+v", got)
	}
	if got := byKey["di.animal"]; got.Kind != "delegate" || got.Module != "animals" || got.Deps[0] != "*di.dog" {
		t.Errorf("unexpected delegate info: %+v", got)
	}
	if got := byKey["*di.request"]; got.Kind != "context" {
		t.Errorf("unexpected context info: %+v", got)
	}

	rootInfos := root.Bindings()
	if rootInfos[0].Description != "the dog" {
		t.Errorf("expected description, got %q", rootInfos[0].Description)
	}
}

func TestObserver(t *testing.T) {
	var mu sync.Mutex
	var resolved, constructed []string
	obs := ObserverFuncs{
		Resolve: func(container string, key Key, err error) {
			mu.Lock()
			resolved = append(resolved, container+":"+key.String())
			mu.Unlock()
		},
		Construct: func(container string, key Key, scope Scope, _ time.Duration, err error) {
			mu.Lock()
			constructed = append(constructed, key.String()+":"+scope.String())
			mu.Unlock()
		},
	}

	root, err := New(NameSingleton, []Declaration{
		Provide(func() *dog { return &dog{} }, As(Singleton)),
	}, WithObserver(obs))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	child, _ := root.Child(NameActivity, []Declaration{
		Provide(func(d *dog) *owner { return &owner{pet: d} }),
	})

	MustResolve[*owner](child)
	MustResolve[*owner](child)

	if len(resolved) != 2 || resolved[0] != "activity:*di.owner" {
		t.Errorf("expected two top-level resolutions from the child, got %v", resolved)
	}
	want := "*di.dog:singleton,*di.owner:unscoped,*di.owner:unscoped"
	if strings.Join(constructed, ",") != want {
		t.Errorf("expected %s, got %v", want, constructed)
	}
}

func TestContainer_Identity(t *testing.T) {
	root := mustNew(t, NameSingleton)
	child, _ := root.Child(NameActivity, nil)

	if root.ID() == "" || root.ID() == child.ID() {
		t.Error("containers should carry distinct ids")
	}
	if child.Parent() != root || root.Parent() != nil {
		t.Error("unexpected parent links")
	}
	if child.Name() != NameActivity {
		t.Errorf("expected name %q, got %q", NameActivity, child.Name())
	}
}
