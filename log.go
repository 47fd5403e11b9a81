package bst

import (
	"github.com/sirupsen/logrus"
)

// Log receives the package's debug traces. It is silent at the default
// level; set Log.Level to logrus.DebugLevel or swap it to see them.
var Log = logrus.New()

func debugEnabled() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
