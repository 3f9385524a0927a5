package screen

import (
	"path"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/scopekit/di"
	"github.com/kbukum/scopekit/logger"
	"github.com/kbukum/scopekit/sample"
	"github.com/kbukum/scopekit/server"
)

// Screens serves one route per sample screen. Every handler runs inside the
// activity container the scope middleware created for the request.
type Screens struct {
	log *logger.Logger
}

// New returns the screen handlers.
func New(log *logger.Logger) *Screens {
	return &Screens{log: log.WithComponent("screen")}
}

// Register mounts the screens on g, which must be a scoped group whose
// request containers declare sample.ActivityModules.
func (s *Screens) Register(g *gin.RouterGroup) {
	g.Use(AttachActivity())
	g.GET("/splash", s.Splash)
	g.GET("/main", s.Main)
	g.GET("/core", s.Core)
	g.GET("/test", s.Test)
	g.GET("/view", s.View)
	g.GET("/repository", s.Repository)
}

// AttachActivity attaches a new *sample.Activity, named after the route, to
// the request container.
func AttachActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		child := server.ContainerFrom(c)
		if child == nil {
			c.Next()
			return
		}
		if err := di.Attach(child, sample.NewActivity(path.Base(c.FullPath()))); err != nil {
			server.RespondWithError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Splash resolves the Dog, a Cat and the Animal binding.
func (s *Screens) Splash(c *gin.Context) {
	ac := server.ContainerFrom(c)
	dog, err := di.Resolve[*sample.Dog](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	cat, err := di.Resolve[*sample.Cat](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	animal, err := di.Resolve[sample.Animal](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	s.log.Debug("splash", logger.Fields("dog", dog.String(), "cat", cat.String(), "animal", animal))
	server.RespondOK(c, gin.H{"dog": dog, "cat": cat, "animal": animal})
}

// Main resolves the application and activity adapters.
func (s *Screens) Main(c *gin.Context) {
	ac := server.ContainerFrom(c)
	appAdapter, err := di.Resolve[*sample.ApplicationAdapter](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	activityAdapter, err := di.Resolve[*sample.ActivityAdapter](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	banner, err := di.Resolve[*sample.BannerAdapter](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	image, err := di.Resolve[*sample.ImageAdapter](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, gin.H{
		"application_adapter": appAdapter,
		"activity_adapter":    activityAdapter,
		"banner_adapter":      banner,
		"image_adapter":       image,
	})
}

// Core resolves the people: a fresh Man, the Woman singleton and Person.
func (s *Screens) Core(c *gin.Context) {
	ac := server.ContainerFrom(c)
	man, err := di.Resolve[*sample.Man](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	woman, err := di.Resolve[*sample.Woman](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	person, err := di.Resolve[sample.Person](ac)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, gin.H{"man": man, "woman": woman, "person": person, "person_kind": person.Kind()})
}

// Test builds fragment and view model containers below the activity,
// resolves a Fish from the view model and reaches the Dog through the
// application entry point.
func (s *Screens) Test(c *gin.Context) {
	ac := server.ContainerFrom(c)
	fragment, err := ac.Child(di.NameFragment, nil)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	defer fragment.Close()

	vm, err := fragment.Child(di.NameViewModel, sample.ViewModelModule())
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	defer vm.Close()

	fish, err := di.Resolve[*sample.Fish](vm)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	dog, err := sample.DogEntryPoint(vm)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	var scopes []string
	for x := vm; x != nil; x = x.Parent() {
		scopes = append(scopes, x.Name())
	}
	server.RespondOK(c, gin.H{"fish": fish, "dog": dog, "scopes": scopes})
}

// View builds a view container below the activity and resolves through the
// image helper and the application entry point.
func (s *Screens) View(c *gin.Context) {
	ac := server.ContainerFrom(c)
	view, err := ac.Child(di.NameView, nil)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	defer view.Close()

	cat, err := sample.NewImageHelper(view).Cat()
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	dog, err := sample.DogEntryPoint(view)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, gin.H{"cat": cat, "dog": dog})
}

// Repository resolves the Repository from the root module.
func (s *Screens) Repository(c *gin.Context) {
	repo, err := di.Resolve[*sample.Repository](server.ContainerFrom(c))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"repository": repo})
}
