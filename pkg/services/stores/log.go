package stores

import (
	"github.com/AreebaxIrfan/translation-buddy/pkg/utils/zlog"
)

func logger() zlog.Logger {
	return zlog.Get()
}
