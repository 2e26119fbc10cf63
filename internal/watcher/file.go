package watcher

import (
	"os"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
)

func readFile(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read kfg file").
			WithCode(mdwerror.CodeKFGIO).
			WithOperation("watcher.read").
			WithDetail("path", path)
	}
	return src, nil
}
