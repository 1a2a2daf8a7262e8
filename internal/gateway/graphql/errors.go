package graphql

import (
	"fmt"
	"strings"
)

// RemoteError — любая неудача обращения к коммерс-бэкенду: транспорт,
// не-2xx статус или ошибки в GraphQL-ответе (errors[]).
// Ретраев на этом уровне нет — решение за вызывающей стороной.
type RemoteError struct {
	Op       string   // операция гейтвея (createCart, addItem, ...)
	Status   int      // HTTP-статус, если ответ был получен
	Messages []string // сообщения из errors[] GraphQL-ответа
	Err      error    // транспортная причина (если была)
}

func (e *RemoteError) Error() string {
	switch {
	case len(e.Messages) > 0:
		return fmt.Sprintf("commerce %s: %s", e.Op, strings.Join(e.Messages, "; "))
	case e.Err != nil:
		return fmt.Sprintf("commerce %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("commerce %s: http status %d", e.Op, e.Status)
	}
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Reason — короткая причина для статуса Failed(reason) и сообщений UI.
func (e *RemoteError) Reason() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("http status %d", e.Status)
}
