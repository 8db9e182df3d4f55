package bridge

import "fmt"

// Object wraps java.lang.Object, the implicit root of every generated class
// hierarchy.
type Object struct {
	env    *Env
	handle Handle
}

// ObjectFromHandle wraps a raw object handle.
func ObjectFromHandle(env *Env, handle Handle) Object {
	return Object{env: env, handle: handle}
}

// ToHandle returns the raw foreign handle backing the wrapper.
func (o Object) ToHandle() Handle { return o.handle }

// Env returns the environment the object belongs to.
func (o Object) Env() *Env { return o.env }

// Signature returns the foreign type signature of java.lang.Object.
func (o Object) Signature() string { return "Ljava/lang/Object;" }

// AsObject is the reflexive cast.
func (o *Object) AsObject() *Object { return o }

// CloneObject creates a new reference to the wrapped object.
func (o Object) CloneObject(token *NoException) (Object, error) {
	d, err := o.env.dispatch()
	if err != nil {
		return Object{}, err
	}
	handle, err := d.NewLocalRef(o.env, o.handle)
	if err != nil {
		return Object{}, err
	}
	return ObjectFromHandle(o.env, handle), nil
}

// ToString calls the Java toString method.
func (o Object) ToString(token *NoException) (String, error) {
	result, err := CallMethod(o, "toString", Args(), "Ljava/lang/String;", token)
	if err != nil {
		return String{}, err
	}
	return StringFromHandle(o.env, result.Handle()), nil
}

// Equals calls the Java equals method.
func (o Object) Equals(other JavaValue, token *NoException) (bool, error) {
	result, err := CallMethod(o, "equals", Args(Ref(other)), "Z", token)
	if err != nil {
		return false, err
	}
	return result.Bool(), nil
}

// Class wraps java.lang.Class.
type Class struct {
	object Object
}

// ClassFromHandle wraps a raw class handle.
func ClassFromHandle(env *Env, handle Handle) Class {
	return Class{object: ObjectFromHandle(env, handle)}
}

// ToHandle returns the raw foreign handle backing the wrapper.
func (c Class) ToHandle() Handle { return c.object.ToHandle() }

// Env returns the environment the class belongs to.
func (c Class) Env() *Env { return c.object.Env() }

// Signature returns the foreign type signature of java.lang.Class.
func (c Class) Signature() string { return "Ljava/lang/Class;" }

// AsObject casts to the root object wrapper.
func (c *Class) AsObject() *Object { return &c.object }

// String wraps java.lang.String.
type String struct {
	object Object
}

// StringFromHandle wraps a raw string handle.
func StringFromHandle(env *Env, handle Handle) String {
	return String{object: ObjectFromHandle(env, handle)}
}

// ToHandle returns the raw foreign handle backing the wrapper.
func (s String) ToHandle() Handle { return s.object.ToHandle() }

// Env returns the environment the string belongs to.
func (s String) Env() *Env { return s.object.Env() }

// Signature returns the foreign type signature of java.lang.String.
func (s String) Signature() string { return "Ljava/lang/String;" }

// AsObject casts to the root object wrapper.
func (s *String) AsObject() *Object { return &s.object }

// Throwable wraps java.lang.Throwable, the type of propagated exceptions.
type Throwable struct {
	object Object
}

// ThrowableFromHandle wraps a raw throwable handle.
func ThrowableFromHandle(env *Env, handle Handle) Throwable {
	return Throwable{object: ObjectFromHandle(env, handle)}
}

// ToHandle returns the raw foreign handle backing the wrapper.
func (t Throwable) ToHandle() Handle { return t.object.ToHandle() }

// Env returns the environment the throwable belongs to.
func (t Throwable) Env() *Env { return t.object.Env() }

// Signature returns the foreign type signature of java.lang.Throwable.
func (t Throwable) Signature() string { return "Ljava/lang/Throwable;" }

// AsObject casts to the root object wrapper.
func (t *Throwable) AsObject() *Object { return &t.object }

// Error lets a propagated exception travel as a Go error. Rendering the
// exception message requires a live call, so only the handle is reported.
func (t Throwable) Error() string {
	return fmt.Sprintf("java exception (handle %#x)", uintptr(t.object.ToHandle()))
}
