package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
	"github.com/gestorpro/gestorpro-api/pkg/config"
	"github.com/gestorpro/gestorpro-api/pkg/jwt"
	"github.com/gestorpro/gestorpro-api/pkg/logger"
)

// UseCase registro de workspace e autenticação de usuários.
type UseCase struct {
	workspaces repository.WorkspaceRepository
	users      repository.UserRepository
	settings   repository.SettingsRepository
	jwtCfg     config.JWTConfig
	log        *logger.Logger
}

// NewUseCase injeta as dependências do caso de uso de autenticação.
func NewUseCase(
	workspaces repository.WorkspaceRepository,
	users repository.UserRepository,
	settings repository.SettingsRepository,
	jwtCfg config.JWTConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		workspaces: workspaces,
		users:      users,
		settings:   settings,
		jwtCfg:     jwtCfg,
		log:        log,
	}
}

// Register cria um workspace novo com seu usuário administrador e as
// configurações padrão, e já devolve um token de sessão.
func (uc *UseCase) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.WorkspaceName == "" || req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: nome do workspace, nome e email são obrigatórios", domain.ErrInvalidInput)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: senha deve ter no mínimo 6 caracteres", domain.ErrInvalidInput)
	}

	if existing, err := uc.users.FindByEmail(req.Email); err != nil {
		return nil, fmt.Errorf("consultando email: %w", err)
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	workspace := &entity.Workspace{
		ID:        uuid.NewString(),
		Name:      req.WorkspaceName,
		AccessKey: newAccessKey(),
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.workspaces.Create(workspace); err != nil {
		return nil, fmt.Errorf("criando workspace: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gerando hash de senha: %w", err)
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		WorkspaceID:  workspace.ID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, fmt.Errorf("criando usuário: %w", err)
	}

	if err := uc.settings.Save(entity.DefaultSettings(workspace.ID)); err != nil {
		return nil, fmt.Errorf("gravando configurações padrão: %w", err)
	}

	uc.log.Info().
		Str("workspace_id", workspace.ID).
		Str("user_id", user.ID).
		Msg("workspace registrado")

	return uc.respondWithToken(user, workspace)
}

// Login autentica por email e senha e devolve um token de sessão.
func (uc *UseCase) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.users.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("consultando usuário: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	workspace, err := uc.workspaces.GetByID(user.WorkspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("consultando workspace: %w", err)
	}
	if workspace.Status != "active" {
		return nil, domain.ErrForbidden
	}

	return uc.respondWithToken(user, workspace)
}

func (uc *UseCase) respondWithToken(user *entity.User, workspace *entity.Workspace) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(
		uc.jwtCfg.Secret, user.ID, user.WorkspaceID, user.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.Expiration,
	)
	if err != nil {
		return nil, fmt.Errorf("gerando token: %w", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			WorkspaceID: user.WorkspaceID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
		},
		WorkspaceID:   workspace.ID,
		WorkspaceName: workspace.Name,
		AccessKey:     workspace.AccessKey,
	}, nil
}

// Alfabeto sem caracteres ambíguos (0/O, 1/I).
const accessKeyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newAccessKey() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read não falha em plataformas suportadas; uuid como plano B.
		return strings.ToUpper(uuid.NewString()[:8])
	}
	for i, b := range buf {
		buf[i] = accessKeyAlphabet[int(b)%len(accessKeyAlphabet)]
	}
	return string(buf)
}
