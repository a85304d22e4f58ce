package shader

import (
	"fmt"
	"log"
	"os"
)

// LoadSource reads a shader source file in full.
// On failure the problem is logged and an empty source is returned along with the error,
// so a caller that ignores the error compiles an empty shader.
func LoadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("could not open %v", path)
		return "", fmt.Errorf("could not open %v: %w", path, err)
	}
	return string(b), nil
}
