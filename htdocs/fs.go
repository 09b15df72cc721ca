package htdocs

import (
	"embed"
	"io/fs"
)

//go:embed index.html
var static embed.FS

func FS() fs.FS {
	return &static
}
