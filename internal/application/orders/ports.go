package orders

import "github.com/gestorpro/gestorpro-api/internal/domain/repository"

// TxRepos repositórios amarrados a uma mesma transação.
type TxRepos struct {
	Orders   repository.OrderRepository
	Settings repository.SettingsRepository
}

// TxRunner executa uma função dentro de uma transação de banco. Erro da
// função provoca rollback; sucesso, commit. A criação de pedidos depende
// disso para consumir o número sequencial e gravar cabeçalho e itens como
// uma unidade.
type TxRunner interface {
	RunInTx(fn func(r TxRepos) error) error
}
