package bridge

import (
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/jamesits/goinvoke"
)

// jniFuncs binds the JNI invocation entry points exported by libjvm.
type jniFuncs struct {
	CreateJavaVM             *goinvoke.Proc `func:"JNI_CreateJavaVM"`
	GetCreatedJavaVMs        *goinvoke.Proc `func:"JNI_GetCreatedJavaVMs"`
	GetDefaultJavaVMInitArgs *goinvoke.Proc `func:"JNI_GetDefaultJavaVMInitArgs"`
}

// JVM is a loaded Java virtual machine library.
type JVM struct {
	funcs *jniFuncs
	path  string
}

// LoadJVM loads the JVM shared library from the given Java home directory
// and binds the JNI invocation entry points.
func LoadJVM(javaHome string) (*JVM, error) {
	libName := "libjvm.so"
	if runtime.GOOS == "darwin" {
		libName = "libjvm.dylib"
	}

	libPath := filepath.Join(javaHome, "lib", "server", libName)
	if _, err := os.Stat(libPath); os.IsNotExist(err) {
		return nil, errors.Newf("JVM library not found: %s", libPath)
	}

	funcs := &jniFuncs{}
	if err := goinvoke.Unmarshal(libPath, funcs); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", libPath)
	}
	if funcs.CreateJavaVM == nil {
		return nil, errors.Newf("%s does not export JNI_CreateJavaVM", libPath)
	}

	return &JVM{funcs: funcs, path: libPath}, nil
}

// Path returns the location of the loaded library.
func (j *JVM) Path() string { return j.path }

// CreatedCount reports how many virtual machines exist in this process.
func (j *JVM) CreatedCount() (int, error) {
	var count int32
	ret, _, _ := j.funcs.GetCreatedJavaVMs.Call(0, 0, uintptr(unsafe.Pointer(&count)))
	if int32(ret) != 0 {
		return 0, errors.Newf("JNI_GetCreatedJavaVMs failed with code %d", int32(ret))
	}
	return int(count), nil
}
