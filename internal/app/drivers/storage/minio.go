package storage

import (
	"context"
	"fmt"
	"log"
	"proacolhe-service/internal/app/config"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioHealthCheckTimeout = 10 * time.Second

// NewMinio is only called when backups are enabled, so an unreachable
// server stops the process instead of failing the first snapshot.
func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize minio client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), minioHealthCheckTimeout)
	defer cancel()
	if _, err := client.ListBuckets(ctx); err != nil {
		log.Fatalf("Failed to reach minio at %s: %s", endpoint, err.Error())
	}

	log.Printf("Successfully connected to minio at %s", endpoint)
	return client
}
