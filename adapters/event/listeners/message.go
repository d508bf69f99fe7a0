package listeners

import (
	"fmt"
	"path/filepath"
)

func describe(eventType string, filename string) string {
	return fmt.Sprintf("Someone has performed %s operation with the following file: %s",
		eventType, filepath.Base(filename))
}
