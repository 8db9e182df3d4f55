// Package bridge is the runtime support library the generated wrappers call
// into. It models foreign object handles, call arguments and results, and
// routes every foreign call through a pluggable Dispatcher so tests can run
// against a recording fake instead of a live VM.
package bridge

import (
	"github.com/cockroachdb/errors"
)

// Handle is an opaque reference to a foreign object.
type Handle uintptr

// NoException is a token asserting that no foreign exception is pending.
// Generated call sites require one so the obligation to check is visible at
// every call boundary.
type NoException struct{}

// Env ties wrapped objects to the dispatcher that owns them.
type Env struct {
	dispatcher Dispatcher
}

// NewEnv returns an environment backed by the given dispatcher.
func NewEnv(dispatcher Dispatcher) *Env {
	return &Env{dispatcher: dispatcher}
}

func (e *Env) dispatch() (Dispatcher, error) {
	if e == nil || e.dispatcher == nil {
		return nil, errors.New("environment has no dispatcher")
	}
	return e.dispatcher, nil
}

// JavaValue is implemented by every generated wrapper and by the built-in
// object types.
type JavaValue interface {
	ToHandle() Handle
	Signature() string
	Env() *Env
}

// Dispatcher executes foreign calls. The production implementation talks to
// a live VM; tests substitute a recording fake.
type Dispatcher interface {
	FindClass(env *Env, signature string) (Handle, error)
	CallConstructor(env *Env, classSignature string, args []Value) (Handle, error)
	CallMethod(env *Env, receiver Handle, receiverSignature string, name string, args []Value, returnSignature string) (Result, error)
	CallStaticMethod(env *Env, classSignature string, name string, args []Value, returnSignature string) (Result, error)
	NewLocalRef(env *Env, handle Handle) (Handle, error)
}

// Value is a single foreign call argument.
type Value struct {
	signature string
	handle    Handle
	word      int64
	real      float64
	flag      bool
}

// Signature returns the foreign type signature of the argument.
func (v Value) Signature() string { return v.signature }

// Int wraps a Java int argument.
func Int(v int32) Value { return Value{signature: "I", word: int64(v)} }

// Long wraps a Java long argument.
func Long(v int64) Value { return Value{signature: "J", word: v} }

// Char wraps a Java char argument.
func Char(v rune) Value { return Value{signature: "C", word: int64(v)} }

// Byte wraps a Java byte argument.
func Byte(v uint8) Value { return Value{signature: "B", word: int64(v)} }

// Bool wraps a Java boolean argument.
func Bool(v bool) Value { return Value{signature: "Z", flag: v} }

// Float wraps a Java float argument.
func Float(v float32) Value { return Value{signature: "F", real: float64(v)} }

// Double wraps a Java double argument.
func Double(v float64) Value { return Value{signature: "D", real: v} }

// Ref wraps an object argument.
func Ref(v JavaValue) Value {
	return Value{signature: v.Signature(), handle: v.ToHandle()}
}

// Args collects call arguments in declaration order.
func Args(values ...Value) []Value { return values }

// Result is the value returned by a foreign call.
type Result struct {
	handle Handle
	word   int64
	real   float64
	flag   bool
}

// IntResult builds an int result. Intended for Dispatcher implementations.
func IntResult(v int32) Result { return Result{word: int64(v)} }

// LongResult builds a long result.
func LongResult(v int64) Result { return Result{word: v} }

// CharResult builds a char result.
func CharResult(v rune) Result { return Result{word: int64(v)} }

// ByteResult builds a byte result.
func ByteResult(v uint8) Result { return Result{word: int64(v)} }

// BoolResult builds a boolean result.
func BoolResult(v bool) Result { return Result{flag: v} }

// FloatResult builds a float result.
func FloatResult(v float32) Result { return Result{real: float64(v)} }

// DoubleResult builds a double result.
func DoubleResult(v float64) Result { return Result{real: v} }

// RefResult builds an object result.
func RefResult(h Handle) Result { return Result{handle: h} }

// Int reads the result as a Java int.
func (r Result) Int() int32 { return int32(r.word) }

// Long reads the result as a Java long.
func (r Result) Long() int64 { return r.word }

// Char reads the result as a Java char.
func (r Result) Char() rune { return rune(r.word) }

// Byte reads the result as a Java byte.
func (r Result) Byte() uint8 { return uint8(r.word) }

// Bool reads the result as a Java boolean.
func (r Result) Bool() bool { return r.flag }

// Float reads the result as a Java float.
func (r Result) Float() float32 { return float32(r.real) }

// Double reads the result as a Java double.
func (r Result) Double() float64 { return r.real }

// Handle reads the result as an object handle.
func (r Result) Handle() Handle { return r.handle }

// FindClass looks up a runtime class object by its slash-separated signature.
func FindClass(env *Env, signature string, token *NoException) (Class, error) {
	d, err := env.dispatch()
	if err != nil {
		return Class{}, err
	}
	handle, err := d.FindClass(env, signature)
	if err != nil {
		return Class{}, errors.Wrapf(err, "failed to find class %s", signature)
	}
	return ClassFromHandle(env, handle), nil
}

// CallConstructor invokes a constructor of the named class and returns the
// handle of the new object.
func CallConstructor(env *Env, classSignature string, args []Value, token *NoException) (Handle, error) {
	d, err := env.dispatch()
	if err != nil {
		return 0, err
	}
	handle, err := d.CallConstructor(env, classSignature, args)
	if err != nil {
		return 0, errors.Wrapf(err, "constructor of %s failed", classSignature)
	}
	return handle, nil
}

// CallMethod invokes an instance method on the receiver.
func CallMethod(receiver JavaValue, name string, args []Value, returnSignature string, token *NoException) (Result, error) {
	env := receiver.Env()
	d, err := env.dispatch()
	if err != nil {
		return Result{}, err
	}
	result, err := d.CallMethod(env, receiver.ToHandle(), receiver.Signature(), name, args, returnSignature)
	if err != nil {
		return Result{}, errors.Wrapf(err, "method %s failed", name)
	}
	return result, nil
}

// CallStaticMethod invokes a static method of the named class.
func CallStaticMethod(env *Env, classSignature string, name string, args []Value, returnSignature string, token *NoException) (Result, error) {
	d, err := env.dispatch()
	if err != nil {
		return Result{}, err
	}
	result, err := d.CallStaticMethod(env, classSignature, name, args, returnSignature)
	if err != nil {
		return Result{}, errors.Wrapf(err, "static method %s.%s failed", classSignature, name)
	}
	return result, nil
}
