package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementação de SettingsRepository (usável com pool ou tx).
// Uma linha por workspace; upsert na gravação.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devolve as configurações do workspace; nil (sem erro) se nunca foram
// gravadas.
func (r *SettingsRepo) Get(workspaceID string) (*entity.Settings, error) {
	query := `
		SELECT workspace_id, company_name, company_doc, company_address, company_contact, logo_url,
			quote_validity_days, quote_terms, statuses_considered_sale, next_order_number,
			payment_methods, clamp_discount, updated_at
		FROM settings WHERE workspace_id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, workspaceID).Scan(
		&s.WorkspaceID, &s.CompanyName, &s.CompanyDoc, &s.CompanyAddress, &s.CompanyContact, &s.LogoURL,
		&s.QuoteValidityDays, &s.QuoteTerms, &s.StatusesConsideredSale, &s.NextOrderNumber,
		&s.PaymentMethods, &s.ClampDiscount, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configurações: %w", err)
	}
	return &s, nil
}

// Save grava as configurações do workspace (insert ou update).
// next_order_number só é gravado no insert inicial: depois disso, apenas
// NextOrderNumber o avança.
func (r *SettingsRepo) Save(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (workspace_id, company_name, company_doc, company_address, company_contact, logo_url,
			quote_validity_days, quote_terms, statuses_considered_sale, next_order_number,
			payment_methods, clamp_discount, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (workspace_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_doc = EXCLUDED.company_doc,
			company_address = EXCLUDED.company_address,
			company_contact = EXCLUDED.company_contact,
			logo_url = EXCLUDED.logo_url,
			quote_validity_days = EXCLUDED.quote_validity_days,
			quote_terms = EXCLUDED.quote_terms,
			statuses_considered_sale = EXCLUDED.statuses_considered_sale,
			payment_methods = EXCLUDED.payment_methods,
			clamp_discount = EXCLUDED.clamp_discount,
			updated_at = NOW()`
	_, err := r.q.Exec(context.Background(), query,
		settings.WorkspaceID, settings.CompanyName, settings.CompanyDoc, settings.CompanyAddress,
		settings.CompanyContact, settings.LogoURL, settings.QuoteValidityDays, settings.QuoteTerms,
		settings.StatusesConsideredSale, settings.NextOrderNumber,
		settings.PaymentMethods, settings.ClampDiscount,
	)
	if err != nil {
		return fmt.Errorf("save configurações: %w", err)
	}
	return nil
}

// NextOrderNumber consome o próximo número sequencial de pedido do workspace.
// UPDATE ... RETURNING garante atomicidade mesmo com criações concorrentes.
func (r *SettingsRepo) NextOrderNumber(workspaceID string) (int, error) {
	query := `
		UPDATE settings SET next_order_number = next_order_number + 1
		WHERE workspace_id = $1
		RETURNING next_order_number - 1`
	var n int
	err := r.q.QueryRow(context.Background(), query, workspaceID).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("workspace %s sem configurações gravadas", workspaceID)
		}
		return 0, fmt.Errorf("consumindo número de pedido: %w", err)
	}
	return n, nil
}
