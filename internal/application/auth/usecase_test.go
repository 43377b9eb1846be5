package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestorpro-api/internal/application/auth"
	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/pkg/config"
	"github.com/gestorpro/gestorpro-api/pkg/jwt"
	"github.com/gestorpro/gestorpro-api/pkg/logger"
)

type fakeWorkspaceRepo struct {
	byID map[string]*entity.Workspace
}

func (f *fakeWorkspaceRepo) Create(w *entity.Workspace) error { f.byID[w.ID] = w; return nil }
func (f *fakeWorkspaceRepo) GetByID(id string) (*entity.Workspace, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return w, nil
}
func (f *fakeWorkspaceRepo) GetByAccessKey(key string) (*entity.Workspace, error) {
	for _, w := range f.byID {
		if w.AccessKey == key {
			return w, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.byEmail[u.Email] = u; return nil }
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) GetByEmailAndWorkspace(email, workspaceID string) (*entity.User, error) {
	u := f.byEmail[email]
	if u == nil || u.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

type fakeSettingsRepo struct {
	byWs map[string]*entity.Settings
}

func (f *fakeSettingsRepo) Get(workspaceID string) (*entity.Settings, error) {
	return f.byWs[workspaceID], nil
}
func (f *fakeSettingsRepo) Save(s *entity.Settings) error {
	f.byWs[s.WorkspaceID] = s
	return nil
}
func (f *fakeSettingsRepo) NextOrderNumber(string) (int, error) { return 1, nil }

var jwtCfg = config.JWTConfig{Secret: "segredo-de-teste", Expiration: 60, Issuer: "teste"}

func novoUseCase() (*auth.UseCase, *fakeSettingsRepo) {
	settings := &fakeSettingsRepo{byWs: make(map[string]*entity.Settings)}
	uc := auth.NewUseCase(
		&fakeWorkspaceRepo{byID: make(map[string]*entity.Workspace)},
		&fakeUserRepo{byEmail: make(map[string]*entity.User)},
		settings,
		jwtCfg,
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)
	return uc, settings
}

func registro() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		WorkspaceName: "Gráfica da Ana",
		Name:          "Ana",
		Email:         "ana@exemplo.com",
		Password:      "senha-forte",
	}
}

func TestRegistro_CriaWorkspaceAdminEConfiguracoesPadrao(t *testing.T) {
	uc, settings := novoUseCase()

	resp, err := uc.Register(registro())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.WorkspaceID)
	assert.Len(t, resp.AccessKey, 8)

	// token carrega o escopo do tenant
	userID, workspaceID, role, err := jwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, resp.WorkspaceID, workspaceID)
	assert.Equal(t, entity.RoleAdmin, role)

	s := settings.byWs[resp.WorkspaceID]
	require.NotNil(t, s)
	assert.Equal(t, 1, s.NextOrderNumber)
	assert.Contains(t, s.StatusesConsideredSale, entity.StatusDelivered)
	assert.NotContains(t, s.StatusesConsideredSale, entity.StatusCanceled)
}

func TestRegistro_EmailDuplicado(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Register(registro())
	require.NoError(t, err)

	_, err = uc.Register(registro())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegistro_SenhaCurta(t *testing.T) {
	uc, _ := novoUseCase()

	req := registro()
	req.Password = "123"
	_, err := uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Register(registro())
	require.NoError(t, err)

	resp, err := uc.Login(&dto.LoginRequest{Email: "ANA@exemplo.com", Password: "senha-forte"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana@exemplo.com", resp.User.Email)
}

func TestLogin_SenhaErradaOuUsuarioInexistente(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Register(registro())
	require.NoError(t, err)

	_, err = uc.Login(&dto.LoginRequest{Email: "ana@exemplo.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(&dto.LoginRequest{Email: "ninguem@exemplo.com", Password: "tanto-faz"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
