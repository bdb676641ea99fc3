// Package repository инкапсулирует запросы к venues, artists и shows.
// Обработчики различают отсутствие записи (ErrNotFound) и сбой записи (*WriteError).
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound возвращается, если записи с таким идентификатором нет.
var ErrNotFound = errors.New("record not found")

var (
	ErrUnknownVenue  = errors.New("venue does not exist")
	ErrUnknownArtist = errors.New("artist does not exist")
)

// WriteError сбой вставки или коммита. Транзакция к этому моменту уже откатена.
type WriteError struct {
	Entity string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s could not be listed: %v", e.Entity, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NamedRef пара (id, name) для списков и поиска.
type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
