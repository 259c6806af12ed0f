//go:build linux || darwin || freebsd || openbsd || netbsd || solaris || aix

package load

const platformSupported = true
