package service

import (
	"github.com/sultanbank/teller/internal/config"
	"github.com/sultanbank/teller/internal/store"
)

type Service struct {
	Ledger *LedgerService
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Ledger: NewLedgerService(repo, cfg),
	}
}
