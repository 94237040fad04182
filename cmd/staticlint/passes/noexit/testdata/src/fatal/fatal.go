// Package fatal is allowed to terminate the process.
package fatal

import "os"

func Exit(code int) {
	os.Exit(code)
}
