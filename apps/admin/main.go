package main

import (
	"log"
	"os"

	"github.com/trezcool/jadwali/core"
	"github.com/trezcool/jadwali/core/subject"
	logsvc "github.com/trezcool/jadwali/services/logger"
	notifsvc "github.com/trezcool/jadwali/services/notification"
	"github.com/trezcool/jadwali/storage/fsvault"
	"github.com/trezcool/jadwali/storage/jsonstore"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	errAndDie(os.MkdirAll(conf.VaultRoot, 0755))
	errAndDie(os.MkdirAll(conf.DataDir, 0755))

	svc := subject.NewService(
		conf,
		jsonstore.NewStore(conf),
		fsvault.NewVault(conf),
		notifsvc.NewConsoleNotifier(conf),
		logsvc.NewStdLogger(logger),
	)

	// start CLI
	cli := commandLine{svc: svc}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
