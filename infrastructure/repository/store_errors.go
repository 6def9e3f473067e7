package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey indica um page_id ou id que não pode ser usado como nome de arquivo
	ErrInvalidKey = errors.New("invalid record key")
	// ErrCorruptRecord indica um arquivo existente que não pôde ser decodificado
	ErrCorruptRecord = errors.New("corrupt record file")
)

// StoreError é um erro de durabilidade do armazenamento de réplica
type StoreError struct {
	Op   string // operação que falhou (put, get, list, delete, put_status, get_status)
	Key  string // chave afetada (page_id/id ou page_id)
	Path string // caminho do arquivo, quando aplicável
	Err  error  // erro base
}

// Error implementa a interface error
func (e *StoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("store %s %s (%s): %v", e.Op, e.Key, e.Path, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Key, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(op, key, path string, err error) *StoreError {
	return &StoreError{Op: op, Key: key, Path: path, Err: err}
}
