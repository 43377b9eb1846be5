package entity

import "time"

// Workspace é o limite de tenant: clientes, produtos, pedidos, despesas e
// configurações são sempre escopados por WorkspaceID. O identificador viaja
// explícito no token e nas interfaces de repositório — nunca como estado
// global implícito.
type Workspace struct {
	ID        string
	Name      string
	AccessKey string // chave curta legível usada no cadastro ("OFICINA7X")
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
