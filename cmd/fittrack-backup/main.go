// Package main exports all fittrack data into a backup file, optionally
// uploading it to google drive, or restores such a file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type options struct {
	importPath string
	outDir     string
	upload     bool
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	importPath := flag.String("import", "", "restore this backup file (warning: replaces all data)")
	outDir := flag.String("out", "", "directory to write the exported file to (default: backup_dir from config)")
	upload := flag.Bool("upload", false, "upload the exported file to google drive (FITTRACK_GDRIVE_CREDENTIALS)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	if err := run(context.Background(), cfg, options{
		importPath: *importPath,
		outDir:     *outDir,
		upload:     *upload,
	}); err != nil {
		log.Fatalf("backup: %s", err)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options) error {
	storage, err := internal.OpenStorage(ctx, internal.StorageParams{
		Config:           cfg,
		RedisPassword:    config.Env("FITTRACK_REDIS_PASS"),
		PostgresPassword: config.Env("FITTRACK_POSTGRES_PASS"),
	})
	if err != nil {
		return err
	}
	defer storage.Close()

	metricsManager := metrics.NewManager("fittrack", "backup", prometheus.NewRegistry())
	backupService := backup.NewService(storage.Accessor(metricsManager), metricsManager)

	if opts.importPath != "" {
		return restore(ctx, backupService, opts.importPath)
	}

	data, name, err := backupService.ExportJSON(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	dir := opts.outDir
	if dir == "" {
		dir = cfg.BackupDir
	}
	exists, err := pkg.PathExists(dir, true)
	if err != nil {
		return fmt.Errorf("check backup dir: %w", err)
	}
	if !exists {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create backup dir: %w", err)
		}
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	log.Infof("backup written to %s (%d bytes)", path, len(data))

	if !opts.upload {
		return nil
	}
	return uploadToDrive(ctx, cfg.DriveBackupFolder, name, data)
}

func restore(ctx context.Context, backupService *backup.Service, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}
	log.Warnf("!! restoring %s, all current data will be replaced", path)
	restored, err := backupService.Restore(ctx, data)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	log.Infof("restore done, %d records", restored)
	return nil
}

func uploadToDrive(ctx context.Context, folder, name string, data []byte) error {
	credentialsFile := config.Env("FITTRACK_GDRIVE_CREDENTIALS")
	if credentialsFile == "" {
		return errors.New("google drive credentials file not set, use FITTRACK_GDRIVE_CREDENTIALS")
	}
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return fmt.Errorf("unable to read credentials file: %w", err)
	}

	uploader, err := backup.NewDriveUploader(ctx, credentials, folder)
	if err != nil {
		return err
	}
	fileID, err := uploader.Upload(ctx, name, data)
	if err != nil {
		return err
	}
	log.Infof("backup uploaded to google drive folder %s: %s", folder, fileID)
	return nil
}
