package di

// Conventional container names, from the widest scope to the narrowest.
const (
	NameSingleton = "singleton"
	NameActivity  = "activity"
	NameViewModel = "view_model"
	NameFragment  = "fragment"
	NameView      = "view"
)

// Conventional qualifiers for the context values attached to those containers.
const (
	QualifierApplication = "application"
	QualifierActivity    = "activity"
)
