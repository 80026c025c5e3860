// Package help embeds the reference topics shipped with the zov binary.
package help

import (
	"embed"
	"io/fs"
)

//go:embed topics
var embedded embed.FS

// Topics returns the embedded topic tree.
func Topics() fs.FS {
	sub, err := fs.Sub(embedded, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
