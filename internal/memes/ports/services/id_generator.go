// Package services описывает порты внешних сервисов: хеширование, токены, идентификаторы.
package services

import "github.com/google/uuid"

// IDGenerator выдает новый уникальный идентификатор.
type IDGenerator interface {
	New() uuid.UUID
}
