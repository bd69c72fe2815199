//go:build darwin && cgo

package thermal

/*
#include <notify.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// notifySource reads the thermal pressure level through notify(3).
type notifySource struct{}

// NewNotifySource returns the platform thermal source.
func NewNotifySource() Source {
	return notifySource{}
}

func (notifySource) Register() (Handle, error) {
	name := C.CString(NotifyName)
	defer C.free(unsafe.Pointer(name))

	var token C.int
	status := uint32(C.notify_register_check(name, &token))
	if status != StatusOK {
		return 0, &StatusError{Op: OpRegister, Status: status}
	}
	return Handle(token), nil
}

func (notifySource) Read(h Handle) (uint64, error) {
	var state C.uint64_t
	status := uint32(C.notify_get_state(C.int(h), &state))
	if status != StatusOK {
		return 0, &StatusError{Op: OpRead, Status: status}
	}
	return uint64(state), nil
}

func (notifySource) Release(h Handle) {
	C.notify_cancel(C.int(h))
}
