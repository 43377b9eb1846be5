package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestorpro/gestorpro-api/internal/application/orders"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner sobre o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInTx abre a transação, executa fn com repositórios amarrados à tx e faz
// Commit ou Rollback conforme o resultado.
func (r *TxRunner) RunInTx(fn func(repos orders.TxRepos) error) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciando transação: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := orders.TxRepos{
		Orders:   NewOrderRepository(tx),
		Settings: NewSettingsRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit da transação: %w", err)
	}
	return nil
}
