package sample

import (
	"fmt"
	"slices"

	"github.com/kbukum/scopekit/di"
)

// QualifierSpecial distinguishes the special Cat from the plain one.
const QualifierSpecial = "special"

// AppModule is installed in the root container. The application object is
// attached at runtime under the application qualifier.
func AppModule() []di.Declaration {
	return di.Module("app",
		di.Context[Context](di.Qualified(di.QualifierApplication),
			di.Describe("application context attached by the host")),
		di.Provide(castApplication,
			di.Params(di.Named[Context](di.QualifierApplication)),
			di.Describe("application context as *Application")),
		di.Provide(NewDog),
	)
}

func castApplication(ctx Context) (*Application, error) {
	app, ok := ctx.(*Application)
	if !ok {
		return nil, fmt.Errorf("application context is %T, not *Application", ctx)
	}
	return app, nil
}

// PersonModule is installed in the root container.
func PersonModule() []di.Declaration {
	return di.Module("person",
		di.Provide(NewWoman, di.As(di.Singleton)),
		di.Provide(NewMan),
		di.Provide(NewPersonImpl),
		di.Bind[Person, *PersonImpl](),
	)
}

// RepositoryModule is installed in the root container.
func RepositoryModule() []di.Declaration {
	return di.Module("repository",
		di.Provide(NewRepository),
	)
}

// RootModules returns every module of the root container.
func RootModules() []di.Declaration {
	return slices.Concat(AppModule(), PersonModule(), RepositoryModule())
}

// AnimalModule is installed in each activity container.
func AnimalModule() []di.Declaration {
	return di.Module("animal",
		di.Provide(NewCat),
		di.Provide(NewCat, di.Qualified(QualifierSpecial)),
		di.Provide(NewDogImpl),
	)
}

// AbsModule is installed in each activity container.
func AbsModule() []di.Declaration {
	return di.Module("abs",
		di.Bind[Animal, *DogImpl](),
	)
}

// ActivityModule declares the activity context and the adapters built on
// top of it and of the application context.
func ActivityModule() []di.Declaration {
	return di.Module("activity",
		di.Context[*Activity](di.Describe("activity attached per screen")),
		di.Bind[Context, *Activity](di.Qualified(di.QualifierActivity)),
		di.Provide(NewApplicationAdapter),
		di.Provide(NewActivityAdapter),
		di.Provide(NewBannerAdapter, di.Params(di.Named[Context](di.QualifierActivity))),
		di.Provide(NewImageAdapter, di.Params(di.Named[Context](di.QualifierApplication))),
	)
}

// ActivityModules returns every module of an activity container.
func ActivityModules() []di.Declaration {
	return slices.Concat(ActivityModule(), AnimalModule(), AbsModule())
}

// ViewModelModule is installed in view model containers, children of an
// activity container.
func ViewModelModule() []di.Declaration {
	return di.Module("view_model",
		di.Provide(NewFish),
	)
}
