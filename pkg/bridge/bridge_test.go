package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/tanuki/pkg/bridge"
)

// fakeDispatcher records every call and replays scripted results.
type fakeDispatcher struct {
	calls   []string
	result  bridge.Result
	handle  bridge.Handle
	err     error
	lastSig string
}

func (d *fakeDispatcher) FindClass(env *bridge.Env, signature string) (bridge.Handle, error) {
	d.calls = append(d.calls, "FindClass:"+signature)
	return d.handle, d.err
}

func (d *fakeDispatcher) CallConstructor(env *bridge.Env, classSignature string, args []bridge.Value) (bridge.Handle, error) {
	d.calls = append(d.calls, "CallConstructor:"+classSignature)
	d.lastSig = argSignatures(args)
	return d.handle, d.err
}

func (d *fakeDispatcher) CallMethod(env *bridge.Env, receiver bridge.Handle, receiverSignature, name string, args []bridge.Value, returnSignature string) (bridge.Result, error) {
	d.calls = append(d.calls, "CallMethod:"+receiverSignature+"."+name+":"+returnSignature)
	d.lastSig = argSignatures(args)
	return d.result, d.err
}

func (d *fakeDispatcher) CallStaticMethod(env *bridge.Env, classSignature, name string, args []bridge.Value, returnSignature string) (bridge.Result, error) {
	d.calls = append(d.calls, "CallStaticMethod:"+classSignature+"."+name+":"+returnSignature)
	d.lastSig = argSignatures(args)
	return d.result, d.err
}

func (d *fakeDispatcher) NewLocalRef(env *bridge.Env, handle bridge.Handle) (bridge.Handle, error) {
	d.calls = append(d.calls, "NewLocalRef")
	return d.handle, d.err
}

func argSignatures(args []bridge.Value) string {
	out := ""
	for _, arg := range args {
		out += arg.Signature()
	}
	return out
}

func TestValueSignatures(t *testing.T) {
	env := bridge.NewEnv(&fakeDispatcher{})
	obj := bridge.ObjectFromHandle(env, 7)

	tests := []struct {
		value bridge.Value
		want  string
	}{
		{bridge.Int(1), "I"},
		{bridge.Long(1), "J"},
		{bridge.Char('x'), "C"},
		{bridge.Byte(1), "B"},
		{bridge.Bool(true), "Z"},
		{bridge.Float(1), "F"},
		{bridge.Double(1), "D"},
		{bridge.Ref(obj), "Ljava/lang/Object;"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.Signature())
	}
}

func TestResultAccessors(t *testing.T) {
	assert.Equal(t, int32(-5), bridge.IntResult(-5).Int())
	assert.Equal(t, int64(1<<40), bridge.LongResult(1<<40).Long())
	assert.Equal(t, 'x', bridge.CharResult('x').Char())
	assert.Equal(t, uint8(200), bridge.ByteResult(200).Byte())
	assert.True(t, bridge.BoolResult(true).Bool())
	assert.Equal(t, float32(1.5), bridge.FloatResult(1.5).Float())
	assert.Equal(t, 2.5, bridge.DoubleResult(2.5).Double())
	assert.Equal(t, bridge.Handle(9), bridge.RefResult(9).Handle())
}

func TestFindClass(t *testing.T) {
	d := &fakeDispatcher{handle: 42}
	env := bridge.NewEnv(d)

	class, err := bridge.FindClass(env, "a/b/TestClass1", &bridge.NoException{})
	require.NoError(t, err)
	assert.Equal(t, bridge.Handle(42), class.ToHandle())
	assert.Equal(t, []string{"FindClass:a/b/TestClass1"}, d.calls)
}

func TestCallConstructor(t *testing.T) {
	d := &fakeDispatcher{handle: 13}
	env := bridge.NewEnv(d)

	handle, err := bridge.CallConstructor(env, "a/b/TestClass1",
		bridge.Args(bridge.Int(1), bridge.Bool(true)), &bridge.NoException{})
	require.NoError(t, err)
	assert.Equal(t, bridge.Handle(13), handle)
	assert.Equal(t, []string{"CallConstructor:a/b/TestClass1"}, d.calls)
	assert.Equal(t, "IZ", d.lastSig)
}

func TestCallMethod(t *testing.T) {
	d := &fakeDispatcher{result: bridge.LongResult(99)}
	env := bridge.NewEnv(d)
	obj := bridge.ObjectFromHandle(env, 7)

	result, err := bridge.CallMethod(obj, "hashCode", bridge.Args(), "J", &bridge.NoException{})
	require.NoError(t, err)
	assert.Equal(t, int64(99), result.Long())
	assert.Equal(t, []string{"CallMethod:Ljava/lang/Object;.hashCode:J"}, d.calls)
}

func TestCallMethod_Error(t *testing.T) {
	d := &fakeDispatcher{err: assert.AnError}
	env := bridge.NewEnv(d)
	obj := bridge.ObjectFromHandle(env, 7)

	_, err := bridge.CallMethod(obj, "hashCode", bridge.Args(), "J", &bridge.NoException{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method hashCode failed")
}

func TestNoDispatcher(t *testing.T) {
	obj := bridge.ObjectFromHandle(bridge.NewEnv(nil), 7)
	_, err := bridge.CallMethod(obj, "hashCode", bridge.Args(), "J", &bridge.NoException{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment has no dispatcher")
}

func TestObjectDelegates(t *testing.T) {
	d := &fakeDispatcher{handle: 21, result: bridge.BoolResult(true)}
	env := bridge.NewEnv(d)
	obj := bridge.ObjectFromHandle(env, 7)

	clone, err := obj.CloneObject(&bridge.NoException{})
	require.NoError(t, err)
	assert.Equal(t, bridge.Handle(21), clone.ToHandle())

	equal, err := obj.Equals(clone, &bridge.NoException{})
	require.NoError(t, err)
	assert.True(t, equal)

	assert.Equal(t, []string{
		"NewLocalRef",
		"CallMethod:Ljava/lang/Object;.equals:Z",
	}, d.calls)
	assert.Equal(t, "Ljava/lang/Object;", d.lastSig)
}

func TestObjectToString(t *testing.T) {
	d := &fakeDispatcher{result: bridge.RefResult(31)}
	env := bridge.NewEnv(d)
	obj := bridge.ObjectFromHandle(env, 7)

	s, err := obj.ToString(&bridge.NoException{})
	require.NoError(t, err)
	assert.Equal(t, bridge.Handle(31), s.ToHandle())
	assert.Equal(t, "Ljava/lang/String;", s.Signature())
	assert.Equal(t, []string{"CallMethod:Ljava/lang/Object;.toString:Ljava/lang/String;"}, d.calls)
}

func TestWrapperSignatures(t *testing.T) {
	env := bridge.NewEnv(&fakeDispatcher{})

	assert.Equal(t, "Ljava/lang/Object;", bridge.ObjectFromHandle(env, 1).Signature())
	assert.Equal(t, "Ljava/lang/Class;", bridge.ClassFromHandle(env, 1).Signature())
	assert.Equal(t, "Ljava/lang/String;", bridge.StringFromHandle(env, 1).Signature())
	assert.Equal(t, "Ljava/lang/Throwable;", bridge.ThrowableFromHandle(env, 1).Signature())
}
