package talib

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/talib-go/internal/bindings"
)

var (
	// ErrEmptyInput is returned when the primary input series has no values.
	ErrEmptyInput = errors.New("talib: empty input")

	// ErrInputLength is returned when a secondary input is shorter than the
	// primary one.
	ErrInputLength = errors.New("talib: input length mismatch")

	// ErrBadParam indicates an optional input outside its valid range.
	ErrBadParam = errors.New("talib: bad parameter")

	// ErrOutOfRange indicates an invalid start or end index.
	ErrOutOfRange = errors.New("talib: index out of range")

	// ErrNotSupported is returned when the linked backend cannot perform the
	// request, for example candlestick patterns without the native library.
	ErrNotSupported = errors.New("talib: not supported")

	// ErrNotInitialized is returned when TA-Lib was used before Open.
	ErrNotInitialized = errors.New("talib: library not initialized")

	// ErrInternal covers every other TA-Lib failure.
	ErrInternal = errors.New("talib: internal error")

	// ErrNotBuilt reports that the binary was built without -tags talib.
	ErrNotBuilt = errors.New("talib: native ta-lib not built")

	// ErrLibraryClosed is returned by Close on an already closed Library.
	ErrLibraryClosed = errors.New("talib: library closed")

	// ErrUnknownIndicator is returned by the registry for names it does not know.
	ErrUnknownIndicator = errors.New("talib: unknown indicator")
)

// RetCode is a TA_RetCode value as returned by the C library.
type RetCode int32

// String returns the C enum name, e.g. TA_BAD_PARAM.
func (rc RetCode) String() string { return bindings.RetCode(rc).String() }

// Error reports a non-success TA_RetCode from the named operation.
type Error struct {
	Op   string  // Operation that failed
	Code RetCode // TA-Lib return code
}

// Error formats the failure as talib.<Op>: <TA_RetCode name>.
func (e *Error) Error() string {
	return fmt.Sprintf("talib.%s: %s", e.Op, e.Code)
}

// Unwrap maps the return code onto one of the package sentinels so callers
// can use errors.Is.
func (e *Error) Unwrap() error {
	switch bindings.RetCode(e.Code) {
	case bindings.BadParam, bindings.InvalidParamHolder, bindings.InvalidParamHolderType,
		bindings.InvalidParamFunction, bindings.InvalidListType:
		return ErrBadParam
	case bindings.OutOfRangeStartIndex, bindings.OutOfRangeEndIndex:
		return ErrOutOfRange
	case bindings.NotSupported:
		return ErrNotSupported
	case bindings.LibNotInitialize:
		return ErrNotInitialized
	case bindings.GroupNotFound, bindings.FuncNotFound:
		return ErrUnknownIndicator
	default:
		return ErrInternal
	}
}

func codeError(op string, rc bindings.RetCode) error {
	if rc == bindings.Success {
		return nil
	}
	return &Error{Op: op, Code: RetCode(rc)}
}

func inputError(op string, err error) error {
	return fmt.Errorf("talib.%s: %w", op, err)
}

// remapError converts bindings layer errors to public API errors.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bindings.ErrNotBuilt) {
		return ErrNotBuilt
	}
	var ce *bindings.CodeError
	if errors.As(err, &ce) {
		return &Error{Op: ce.Op, Code: RetCode(ce.Code)}
	}
	return err
}
