package notifsvc

import (
	"log"
	"sync"

	"github.com/trezcool/jadwali/core"
)

var (
	SentMessages = make([]string, 0)
	mu           sync.Mutex
)

type consoleNotifier struct {
	prefix        string
	disableOutput bool
}

var _ core.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier(conf *core.Config) core.Notifier {
	return &consoleNotifier{prefix: "[" + conf.AppName + "] "}
}

func (svc consoleNotifier) Notify(msg string) {
	if !svc.disableOutput {
		log.Println(svc.prefix + msg)
	}
	mu.Lock()
	SentMessages = append(SentMessages, msg)
	mu.Unlock()
}

func NewConsoleNotifierMock(conf *core.Config) core.Notifier {
	return &consoleNotifier{
		prefix:        "[" + conf.AppName + "] ",
		disableOutput: true,
	}
}
