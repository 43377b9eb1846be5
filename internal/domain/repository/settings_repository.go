package repository

import "github.com/gestorpro/gestorpro-api/internal/domain/entity"

// SettingsRepository porta de configuração do workspace.
type SettingsRepository interface {
	// Get devolve as configurações do workspace; nil se nunca foram salvas
	// (o caso de uso aplica DefaultSettings).
	Get(workspaceID string) (*entity.Settings, error)
	Save(settings *entity.Settings) error
	// NextOrderNumber consome e devolve o próximo número sequencial de
	// pedido do workspace de forma atômica.
	NextOrderNumber(workspaceID string) (int, error)
}
