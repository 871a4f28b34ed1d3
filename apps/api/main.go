package main

import (
	"log"
	"os"

	echoapi "github.com/trezcool/jadwali/apps/api/echo"
	"github.com/trezcool/jadwali/core"
	"github.com/trezcool/jadwali/core/subject"
	logsvc "github.com/trezcool/jadwali/services/logger"
	notifsvc "github.com/trezcool/jadwali/services/notification"
	"github.com/trezcool/jadwali/storage/fsvault"
	"github.com/trezcool/jadwali/storage/jsonstore"
)

func main() {
	conf := core.NewConfig()
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up logger
	var logger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}
	logger.Enable(!conf.Debug)

	errAndDie(std, os.MkdirAll(conf.VaultRoot, 0755))
	errAndDie(std, os.MkdirAll(conf.DataDir, 0755))

	// set up services
	var notifier core.Notifier
	if conf.Notifier.Email != "" {
		notifier = notifsvc.NewEmailNotifier(conf, logger)
	} else {
		notifier = notifsvc.NewConsoleNotifier(conf)
	}
	svc := subject.NewService(
		conf,
		jsonstore.NewStore(conf),
		fsvault.NewVault(conf),
		notifier,
		logger,
	)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:    conf.Server.Address(),
			Debug:      conf.Debug,
			TestMode:   conf.TestMode,
			SubjectSvc: svc,
			Logger:     logger,
			Notifier:   notifier,
		},
	)
	app.Start()
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
