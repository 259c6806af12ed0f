//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !solaris && !aix

package load

// windows exposes only an emulated queue length; it is not reported.
const platformSupported = false
