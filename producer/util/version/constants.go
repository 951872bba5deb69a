package version

import (
	"fmt"
)

var (
	VERSION_NUMBER = fmt.Sprintf("%.02f", 1.03)
	COMMIT         = ""
)

func Version() string {
	if COMMIT == "" {
		return VERSION_NUMBER
	}
	return VERSION_NUMBER + " " + COMMIT
}
