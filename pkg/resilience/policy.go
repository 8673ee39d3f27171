package resilience

import "context"

// Policy объединяет Circuit Breaker и повторы для обращений к одной зависимости.
// Circuit Breaker охватывает всю серию повторов.
type Policy struct {
	breaker *CircuitBreaker
	retry   *Retry
}

// NewPolicy создает политику отказоустойчивости с именем зависимости для логов.
func NewPolicy(name string, retry RetryConfig, breaker CircuitBreakerConfig) *Policy {
	return &Policy{
		breaker: NewCircuitBreaker(name, breaker),
		retry:   NewRetry(name, retry),
	}
}

// Execute выполняет operation с повторами, если Circuit Breaker пропускает запрос.
// Неповторяемая ошибка означает, что зависимость ответила, и отказом не считается.
func (p *Policy) Execute(ctx context.Context, operation func(context.Context) error) error {
	if !p.breaker.AllowRequest(ctx) {
		return ErrCircuitOpen
	}

	answered := false
	err := p.retry.Execute(ctx, func(ctx context.Context) error {
		err := operation(ctx)
		answered = err == nil || IsPermanent(err)
		return err
	})

	if answered {
		p.breaker.RecordResult(ctx, nil)
	} else {
		p.breaker.RecordResult(ctx, err)
	}
	return err
}

// State возвращает состояние Circuit Breaker политики.
func (p *Policy) State() CircuitState {
	return p.breaker.State()
}
