package sample

import (
	"github.com/kbukum/scopekit/di"
)

// DogEntryPoint reaches the application container from any container and
// resolves the Dog there, for code that only holds a descendant.
func DogEntryPoint(c *di.Container) (*Dog, error) {
	return di.Resolve[*Dog](rootOf(c))
}

// Residents are the people the application holds from startup.
type Residents struct {
	Man    *Man
	Woman  *Woman
	Person Person
}

// ResidentsEntryPoint resolves the application's residents from the
// application container.
func ResidentsEntryPoint(c *di.Container) (*Residents, error) {
	root := rootOf(c)
	man, err := di.Resolve[*Man](root)
	if err != nil {
		return nil, err
	}
	woman, err := di.Resolve[*Woman](root)
	if err != nil {
		return nil, err
	}
	person, err := di.Resolve[Person](root)
	if err != nil {
		return nil, err
	}
	return &Residents{Man: man, Woman: woman, Person: person}, nil
}

func rootOf(c *di.Container) *di.Container {
	for c.Parent() != nil {
		c = c.Parent()
	}
	return c
}

// ImageHelper resolves the Cat from a view container.
type ImageHelper struct {
	view *di.Container
}

// NewImageHelper binds the helper to view.
func NewImageHelper(view *di.Container) *ImageHelper {
	return &ImageHelper{view: view}
}

// Cat returns a Cat from the view container.
func (h *ImageHelper) Cat() (*Cat, error) {
	return di.Resolve[*Cat](h.view)
}
