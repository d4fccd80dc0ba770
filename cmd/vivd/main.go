package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vivcrypto/viv-smart-contracts/internal/config"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/application"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/ports"
	"github.com/vivcrypto/viv-smart-contracts/internal/infrastructure/ledger"
	dbbadger "github.com/vivcrypto/viv-smart-contracts/internal/infrastructure/storage/db/badger"
	"github.com/vivcrypto/viv-smart-contracts/internal/infrastructure/storage/db/inmemory"
	httpinterface "github.com/vivcrypto/viv-smart-contracts/internal/interfaces/http"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	repoManager, err := newRepoManager()
	if err != nil {
		log.WithError(err).Fatal("error while opening database")
	}
	defer repoManager.Close()

	svc := application.NewSettlementService(
		repoManager, ledger.NewLedger(), signutil.NewECDSARecoverer(),
	)
	handler := httpinterface.NewHandler(svc)

	addr := fmt.Sprintf(":%d", config.GetInt(config.ListeningPortKey))
	server := &http.Server{
		Addr:    addr,
		Handler: handler.Router(),
	}

	log.Debug("starting daemon")
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("error listening on http interface")
		}
	}()
	log.Info("http interface is listening on " + addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error while shutting down http interface")
	}

	log.Debug("exiting")
}

func newRepoManager() (ports.RepoManager, error) {
	if config.GetString(config.DBTypeKey) == config.DBInMemory {
		return inmemory.NewRepoManager(), nil
	}
	dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
	return dbbadger.NewRepoManager(dbDir, log.New())
}