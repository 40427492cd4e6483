package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	WorkLogRepo   WorkLogRepositoryFacade
	DirectiveRepo DirectiveRepositoryFacade
	ChatRepo      ChatRepositoryFacade
	SessionRepo   SessionRepositoryFacade
}
