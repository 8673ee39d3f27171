package postgres

// RepositoryFactory собирает репозитории над одним пулом.
type RepositoryFactory struct {
	memRepo  *MemRepository
	userRepo *UserRepository
}

// NewRepositoryFactory создает фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		memRepo:  NewMemRepository(pool),
		userRepo: NewUserRepository(pool),
	}
}

// MemRepository возвращает репозиторий мемов.
func (f *RepositoryFactory) MemRepository() *MemRepository {
	return f.memRepo
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() *UserRepository {
	return f.userRepo
}
