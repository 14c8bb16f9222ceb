package pathscurry

import (
	"errors"
	"io/fs"
	"syscall"
)

// classify maps an FS-provider error onto the handful of conditions the
// state machine cares about: ENOENT, ENOTDIR, EPERM, EINVAL, and
// everything else. It recognizes raw syscall.Errno values (what the
// unix-accelerated fsprovider returns) as well as the
// *fs.PathError/*os.PathError a portable provider wraps them in, checking
// both forms via errors.Is against syscall.ENOENT/ENOTDIR/EPERM/EINVAL so
// callers never have to unwrap by hand. EACCES is not EPERM and falls
// into the "everything else" class.
type errnoClass int

const (
	errnoOther errnoClass = iota
	errnoENOENT
	errnoENOTDIR
	errnoEPERM
	errnoEINVAL
)

func classify(err error) errnoClass {
	switch {
	case err == nil:
		return errnoOther
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOENT):
		return errnoENOENT
	case errors.Is(err, syscall.ENOTDIR):
		return errnoENOTDIR
	case errors.Is(err, syscall.EPERM):
		return errnoEPERM
	case errors.Is(err, syscall.EINVAL):
		return errnoEINVAL
	default:
		return errnoOther
	}
}
