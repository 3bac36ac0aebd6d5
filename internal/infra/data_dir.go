package infra

import "os"

// DataDir is where the engine keeps its file-backed tables.
func DataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}
