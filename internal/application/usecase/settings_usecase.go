package usecase

import (
	"fmt"
	"time"

	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
)

// SettingsUseCase leitura e gravação da configuração do workspace.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase injeta o repositório de configurações.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get devolve a configuração do workspace, aplicando os padrões se nunca foi
// gravada.
func (uc *SettingsUseCase) Get(workspaceID string) (*dto.SettingsResponse, error) {
	s, err := uc.load(workspaceID)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// Update aplica uma atualização parcial: campos nil da requisição mantêm o
// valor atual. NextOrderNumber não é editável por aqui (só avança na criação
// de pedidos).
func (uc *SettingsUseCase) Update(workspaceID string, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.load(workspaceID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		s.CompanyName = *req.CompanyName
	}
	if req.CompanyDoc != nil {
		s.CompanyDoc = *req.CompanyDoc
	}
	if req.CompanyAddress != nil {
		s.CompanyAddress = *req.CompanyAddress
	}
	if req.CompanyContact != nil {
		s.CompanyContact = *req.CompanyContact
	}
	if req.LogoURL != nil {
		s.LogoURL = *req.LogoURL
	}
	if req.QuoteValidityDays != nil {
		if *req.QuoteValidityDays < 0 {
			return nil, fmt.Errorf("%w: validade do orçamento não pode ser negativa", domain.ErrInvalidInput)
		}
		s.QuoteValidityDays = *req.QuoteValidityDays
	}
	if req.QuoteTerms != nil {
		s.QuoteTerms = *req.QuoteTerms
	}
	if req.StatusesConsideredSale != nil {
		for _, st := range *req.StatusesConsideredSale {
			if !entity.IsValidStatus(st) {
				return nil, fmt.Errorf("%w: status desconhecido %q", domain.ErrInvalidStatus, st)
			}
		}
		s.StatusesConsideredSale = *req.StatusesConsideredSale
	}
	if req.PaymentMethods != nil {
		s.PaymentMethods = *req.PaymentMethods
	}
	if req.ClampDiscount != nil {
		s.ClampDiscount = *req.ClampDiscount
	}
	s.UpdatedAt = time.Now()

	if err := uc.settings.Save(s); err != nil {
		return nil, fmt.Errorf("gravando configurações: %w", err)
	}
	return toSettingsResponse(s), nil
}

func (uc *SettingsUseCase) load(workspaceID string) (*entity.Settings, error) {
	s, err := uc.settings.Get(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("consultando configurações: %w", err)
	}
	if s == nil {
		s = entity.DefaultSettings(workspaceID)
	}
	return s, nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName:            s.CompanyName,
		CompanyDoc:             s.CompanyDoc,
		CompanyAddress:         s.CompanyAddress,
		CompanyContact:         s.CompanyContact,
		LogoURL:                s.LogoURL,
		QuoteValidityDays:      s.QuoteValidityDays,
		QuoteTerms:             s.QuoteTerms,
		StatusesConsideredSale: s.StatusesConsideredSale,
		NextOrderNumber:        s.NextOrderNumber,
		PaymentMethods:         s.PaymentMethods,
		ClampDiscount:          s.ClampDiscount,
		UpdatedAt:              s.UpdatedAt,
	}
}
