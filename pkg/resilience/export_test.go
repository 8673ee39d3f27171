package resilience

// NewCircuitBreakerWithClock создает Circuit Breaker с управляемыми часами.
var NewCircuitBreakerWithClock = newCircuitBreaker
