// Package sample is a small object graph that exercises every binding
// kind scopekit offers.
//
// The root container holds AppModule, PersonModule and RepositoryModule.
// Each activity container, a child of the root, holds ActivityModule,
// AnimalModule and AbsModule, and view model containers below it hold
// ViewModelModule. The application is attached to the root as a Context
// qualified "application"; each activity is attached as an *Activity.
package sample
