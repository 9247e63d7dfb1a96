package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/device"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/device/emulator"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/ledger"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/registry"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/storage"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var config struct {
	Addr     string `long:"addr" env:"WALLETD_ADDR" description:"grpc addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"WALLETD_REST_ADDR" description:"rest addr serving /healthz and /metrics" default:":8001"`
	Network  string `long:"network" env:"WALLETD_NETWORK" description:"bitcoin network" default:"mainnet"`
	DataDir  string `long:"data-dir" env:"WALLETD_DATA_DIR" description:"device list database directory, empty keeps it in memory"`

	LedgerEndpoint string        `long:"ledger-endpoint" env:"WALLETD_LEDGER_ENDPOINT" description:"ledger gateway endpoint" required:"true"`
	LedgerRPS      int           `long:"ledger-rps" env:"WALLETD_LEDGER_RPS" description:"ledger requests per second" default:"20"`
	LedgerTimeout  time.Duration `long:"ledger-timeout" env:"WALLETD_LEDGER_TIMEOUT" description:"ledger request timeout" default:"30s"`

	PollInterval time.Duration `long:"poll-interval" env:"WALLETD_POLL_INTERVAL" description:"device enumeration interval" default:"1s"`
	RetryDelay   time.Duration `long:"retry-delay" env:"WALLETD_RETRY_DELAY" description:"delay between device initialization attempts" default:"3s"`
	MaxAttempts  int           `long:"max-attempts" env:"WALLETD_MAX_ATTEMPTS" description:"device initialization attempts" default:"60"`
	FeePerKb     int64         `long:"fee-per-kb" env:"WALLETD_FEE_PER_KB" description:"fee per started kilobyte in satoshi" default:"10000"`
	FirmwareList string        `long:"firmware-list" env:"WALLETD_FIRMWARE_LIST" description:"path or http url of the published firmware list json"`

	EmulatorMnemonic   string `long:"emulator-mnemonic" env:"WALLETD_EMULATOR_MNEMONIC" description:"seed of the software device"`
	EmulatorPin        string `long:"emulator-pin" env:"WALLETD_EMULATOR_PIN" description:"pin of the software device, answered automatically"`
	EmulatorPassphrase string `long:"emulator-passphrase" env:"WALLETD_EMULATOR_PASSPHRASE" description:"passphrase answered to passphrase requests"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	params, err := hdnode.ParamsForNetwork(config.Network)
	if err != nil {
		logger.Fatal("Unsupported network", zap.Error(err))
	}

	gateway, err := ledger.NewClient(ledger.Config{
		Endpoint:       config.LedgerEndpoint,
		RequestsPerSec: config.LedgerRPS,
		HTTPTimeout:    config.LedgerTimeout,
	}, metrics.NewGateway(params.Name), logger)
	if err != nil {
		logger.Fatal("Create ledger client", zap.Error(err))
	}

	emuOpts := []emulator.Option{emulator.WithPin(config.EmulatorPin)}
	if config.EmulatorMnemonic != "" {
		emuOpts = append(emuOpts, emulator.WithMnemonic(config.EmulatorMnemonic))
	}
	emu, err := emulator.New(params, logger, emuOpts...)
	if err != nil {
		logger.Fatal("Create software device", zap.Error(err))
	}

	store, err := storage.OpenBadger(config.DataDir, logger)
	if err != nil {
		logger.Fatal("Open device store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close device store", zap.Error(err))
		}
	}()

	deviceConfig := device.Config{
		Opener:         emu,
		RetryDelay:     config.RetryDelay,
		MaxAttempts:    config.MaxAttempts,
		Coin:           coinFor(params),
		AccountOptions: []wallet.Option{wallet.WithFeePerKb(btcutil.Amount(config.FeePerKb))},
		OnOutdatedFirmware: func(fw device.Firmware) {
			logger.Warn("Firmware update available", zap.String("version", fw.Version()), zap.Bool("required", fw.Required))
		},
	}
	switch {
	case strings.HasPrefix(config.FirmwareList, "http://"), strings.HasPrefix(config.FirmwareList, "https://"):
		deviceConfig.Firmware = device.FirmwareHTTP{ListURL: config.FirmwareList, Client: &http.Client{Timeout: config.LedgerTimeout}}
	case config.FirmwareList != "":
		deviceConfig.Firmware = device.FirmwareFile(config.FirmwareList)
	}

	walletMetrics := metrics.NewWallet(params.Name)
	deviceMetrics := metrics.NewDevice()
	devices, err := registry.New(registry.Config{
		Enumerator:     emu,
		Store:          store,
		Metrics:        deviceMetrics,
		Gateway:        gateway,
		AccountMetrics: walletMetrics,
		DeviceMetrics:  deviceMetrics,
		Logger:         logger,
		Device:         deviceConfig,
		PollInterval:   config.PollInterval,
	})
	if err != nil {
		logger.Fatal("Create device registry", zap.Error(err))
	}

	workers, workersCtx := errgroup.WithContext(ctx)
	workers.Go(func() error {
		defer stop()
		return devices.Run(workersCtx)
	})
	workers.Go(func() error {
		answerRequests(workersCtx, devices.Requests(), logger)
		return nil
	})

	health := transport.NewHealth(devices, logger)
	workers.Go(func() error {
		return health.Run(workersCtx)
	})

	grpcServer := transport.NewGRPCServer(logger)
	health.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	handler, err := transport.NewHTTPHandler(ctx, config.Addr)
	if err != nil {
		logger.Fatal("Create http handler", zap.Error(err))
	}
	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
		stop()
	}
	if err := workers.Wait(); err != nil {
		logger.Error("Background worker stopped", zap.Error(err))
	}
}

// answerRequests resolves device interaction requests without a user: PIN and passphrase come
// from the configuration, buttons are confirmed and recovery words are refused.
func answerRequests(ctx context.Context, requests <-chan device.Request, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-requests:
			log := logger.With(zap.String("device", req.DeviceID), zap.Stringer("kind", req.Kind), zap.String("message", req.Message))
			var err error
			switch req.Kind {
			case device.KindPin:
				err = req.Continuation.Resume(config.EmulatorPin)
			case device.KindPassphrase:
				err = req.Continuation.Resume(config.EmulatorPassphrase)
			case device.KindButton:
				err = req.Continuation.Resume("")
			default:
				log.Warn("Interaction not supported without a user, abandoning")
				err = req.Continuation.Abandon()
			}
			if err != nil {
				log.Error("Failed to answer device request", zap.Error(err))
				continue
			}
			log.Info("Device request answered")
		}
	}
}

func coinFor(params *chaincfg.Params) wallet.Coin {
	if params.Net == chaincfg.MainNetParams.Net {
		return wallet.Bitcoin
	}
	return wallet.Coin{Name: "Testnet", Shortcut: "TEST", AddressType: params.PubKeyHashAddrID}
}
