package postgres

import (
	repo "github.com/baharkarakas/trade-ledger/internal/repository"
)

type Repositories struct {
	Transactions repo.Transactions
}

func NewRepositories() Repositories {
	return Repositories{
		Transactions: NewTransactions(),
	}
}
