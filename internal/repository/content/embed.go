package content

import (
	"embed"
	"io/fs"
)

//go:embed data/*.yaml
var embedded embed.FS

// FS returns the compiled-in content files, rooted at the data directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // "data" is a static valid path
	}
	return sub
}
