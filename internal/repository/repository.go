package repository

import "bookstore_api/internal/storage"

type Repositories struct {
	Author AuthorRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Author: NewAuthorRepository(db),
	}
}
