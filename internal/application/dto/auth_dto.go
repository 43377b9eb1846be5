package dto

// RegisterRequest cria um workspace novo com seu usuário administrador.
type RegisterRequest struct {
	WorkspaceName string `json:"workspace_name"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse dados públicos do usuário autenticado.
type UserResponse struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// AuthResponse token e identidade após registro ou login.
type AuthResponse struct {
	Token         string       `json:"token"`
	User          UserResponse `json:"user"`
	WorkspaceID   string       `json:"workspace_id"`
	WorkspaceName string       `json:"workspace_name"`
	AccessKey     string       `json:"access_key,omitempty"`
}
