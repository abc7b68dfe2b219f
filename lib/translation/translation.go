package translation

import (
	"github.com/leonelquinteros/gotext"
)

// Translate resolves a message id for the configured language. With no locale
// loaded the English msgid itself is returned, which doubles as the fallback.
func Translate(msgID string, vars ...interface{}) string {
	return gotext.Get(msgID, vars...)
}
