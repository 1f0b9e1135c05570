package models

import "errors"

// 錯誤分類，處理層以 errors.Is 判斷要如何回應使用者
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Error 是帶有分類的業務錯誤
// Message 可以直接顯示給使用者
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

type persistenceError struct {
	err error
}

func (e persistenceError) Error() string {
	return e.err.Error()
}

func (e persistenceError) Is(target error) bool {
	return target == ErrPersistenceFailure
}

func (e persistenceError) Unwrap() error {
	return e.err
}

// Persistence 將儲存層的錯誤標記為 ErrPersistenceFailure
// 已經分類過的錯誤(業務錯誤或已標記的錯誤)會原樣返回
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	var modelErr *Error
	if errors.As(err, &modelErr) || errors.Is(err, ErrPersistenceFailure) {
		return err
	}
	return persistenceError{err: err}
}

// UserMessage 取得可以顯示給使用者的錯誤訊息
func UserMessage(err error) (string, bool) {
	var modelErr *Error
	if errors.As(err, &modelErr) {
		return modelErr.Message, true
	}
	return "", false
}
