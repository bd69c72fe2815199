//go:build !darwin || !cgo

package thermal

// unsupportedSource stands in for notify(3) where it does not exist.
// Registration always fails, so nothing is ever read or released.
type unsupportedSource struct{}

// NewNotifySource returns the platform thermal source.
func NewNotifySource() Source {
	return unsupportedSource{}
}

func (unsupportedSource) Register() (Handle, error) {
	return 0, &StatusError{Op: OpRegister, Status: StatusFailed}
}

func (unsupportedSource) Read(Handle) (uint64, error) {
	return 0, &StatusError{Op: OpRead, Status: StatusFailed}
}

func (unsupportedSource) Release(Handle) {}
