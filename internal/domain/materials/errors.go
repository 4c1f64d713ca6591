package materials

import "fmt"

// ValidationError — некорректный ввод пользователя, состояние не менялось.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Kinds of catalog records referenced by NotFoundError.
const (
	KindMaterial = "material"
	KindSupplier = "supplier"
	KindType     = "type"
)

type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// DomainError — нарушено предусловие (вызывающий пропустил валидацию).
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// StoreError оборачивает любую ошибку хранилища.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
