package sample

import (
	"fmt"

	"github.com/google/uuid"
)

// identity gives every sample object a uuid so distinct instances are
// visible in logs and responses.
type identity struct {
	ID string `json:"id"`
}

func newIdentity() identity {
	return identity{ID: uuid.NewString()}
}

func (i identity) tag(kind string) string {
	return fmt.Sprintf("%s@%s", kind, i.ID[:8])
}

// Context is a runtime object a container can be attached to: the
// application or an activity.
type Context interface {
	ContextName() string
}

// Application is the process-wide context attached to the root container.
type Application struct {
	identity
	Name string `json:"name"`
}

// NewApplication returns an application named name.
func NewApplication(name string) *Application {
	return &Application{identity: newIdentity(), Name: name}
}

func (a *Application) ContextName() string { return a.Name }
func (a *Application) String() string { return a.tag("Application") }

// Activity is the context of one screen, attached to an activity container.
type Activity struct {
	identity
	Screen string `json:"screen"`
}

// NewActivity returns an activity for screen.
func NewActivity(screen string) *Activity {
	return &Activity{identity: newIdentity(), Screen: screen}
}

func (a *Activity) ContextName() string { return a.Screen }
func (a *Activity) String() string { return a.tag("Activity") }

// Animal is implemented by DogImpl.
type Animal interface {
	Sound() string
}

type Cat struct{ identity }

func NewCat() *Cat { return &Cat{newIdentity()} }
func (c *Cat) String() string { return c.tag("Cat") }

type Dog struct{ identity }

func NewDog() *Dog { return &Dog{newIdentity()} }
func (d *Dog) String() string { return d.tag("Dog") }

type DogImpl struct{ identity }

func NewDogImpl() *DogImpl { return &DogImpl{newIdentity()} }
func (d *DogImpl) Sound() string { return "woof" }
func (d *DogImpl) String() string { return d.tag("DogImpl") }

type Fish struct{ identity }

func NewFish() *Fish { return &Fish{newIdentity()} }
func (f *Fish) String() string { return f.tag("Fish") }

// Person is implemented by Man and PersonImpl.
type Person interface {
	Kind() string
}

type Man struct{ identity }

func NewMan() *Man { return &Man{newIdentity()} }
func (m *Man) Kind() string { return "man" }
func (m *Man) String() string { return m.tag("Man") }

type Woman struct{ identity }

func NewWoman() *Woman { return &Woman{newIdentity()} }
func (w *Woman) String() string { return w.tag("Woman") }

type PersonImpl struct{ identity }

func NewPersonImpl() *PersonImpl { return &PersonImpl{newIdentity()} }
func (p *PersonImpl) Kind() string { return "person" }
func (p *PersonImpl) String() string { return p.tag("PersonImpl") }

type Repository struct{ identity }

func NewRepository() *Repository { return &Repository{newIdentity()} }
func (r *Repository) String() string { return r.tag("Repository") }

// ApplicationAdapter holds the application.
type ApplicationAdapter struct {
	identity
	App *Application `json:"app"`
}

func NewApplicationAdapter(app *Application) *ApplicationAdapter {
	return &ApplicationAdapter{newIdentity(), app}
}

// ActivityAdapter holds the current activity.
type ActivityAdapter struct {
	identity
	Activity *Activity `json:"activity"`
}

func NewActivityAdapter(a *Activity) *ActivityAdapter {
	return &ActivityAdapter{newIdentity(), a}
}

// BannerAdapter holds the activity context.
type BannerAdapter struct {
	identity
	Context string `json:"context"`
}

func NewBannerAdapter(ctx Context) *BannerAdapter {
	return &BannerAdapter{newIdentity(), ctx.ContextName()}
}

// ImageAdapter holds the application context.
type ImageAdapter struct {
	identity
	Context string `json:"context"`
}

func NewImageAdapter(ctx Context) *ImageAdapter {
	return &ImageAdapter{newIdentity(), ctx.ContextName()}
}
