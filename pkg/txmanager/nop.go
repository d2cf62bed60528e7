package txmanager

import "context"

// Nop менеджер транзакций без транзакций
// Используется с in-memory хранилищем: оно атомарно на уровне своих
// операций (один мьютекс на find+insert), внешняя транзакция не нужна
type Nop struct{}

// NewNop создает no-op менеджер транзакций
func NewNop() *Nop {
	return &Nop{}
}

// Do выполняет fn без транзакции
func (n *Nop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoSerializable выполняет fn без транзакции
func (n *Nop) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoReadOnly выполняет fn без транзакции
func (n *Nop) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
