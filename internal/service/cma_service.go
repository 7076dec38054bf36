package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"taxdesk/internal/cma"
	"taxdesk/internal/config"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// reportStateKey is where the CMA report grid lives in the KV store.
const reportStateKey = "cma_report_data"

// UpdateCellInput is the DTO for a single cell edit. Value arrives as the
// raw form string and is coerced server-side.
type UpdateCellInput struct {
	StatementID string `json:"statement_id" binding:"required"`
	RowIndex    int    `json:"row_index"`
	Field       string `json:"field" binding:"required"`
	Value       string `json:"value"`
}

// SnapshotOutput is the result of exporting a report snapshot.
type SnapshotOutput struct {
	Key         string `json:"key"`
	DownloadURL string `json:"download_url"`
}

// CMAService defines the CMA report contract.
type CMAService interface {
	GetReport(ctx context.Context) (*cma.Report, error)
	UpdateCell(ctx context.Context, input UpdateCellInput) (*cma.Report, error)
	ExecutiveSummary() cma.ExecutiveSummary
	ExportSnapshot(ctx context.Context) (*SnapshotOutput, error)
}

type cmaService struct {
	kv      port.KVStore
	storage port.ObjectStorage
	s3cfg   *config.S3Config
}

// NewCMAService creates a new CMAService implementation.
func NewCMAService(kv port.KVStore, storage port.ObjectStorage, s3cfg *config.S3Config) CMAService {
	return &cmaService{kv: kv, storage: storage, s3cfg: s3cfg}
}

// GetReport loads the persisted report. A missing key or a payload that no
// longer hydrates falls back to the seed template rather than failing.
func (s *cmaService) GetReport(ctx context.Context) (*cma.Report, error) {
	value, found, err := s.kv.Get(ctx, reportStateKey)
	if err != nil {
		return nil, err
	}
	if !found {
		report := cma.SeedReport()
		return &report, nil
	}

	report, err := cma.Hydrate([]byte(value))
	if err != nil {
		log.Printf("stored CMA report no longer hydrates, reseeding: %v", err)
		report = cma.SeedReport()
	}
	return &report, nil
}

func (s *cmaService) UpdateCell(ctx context.Context, input UpdateCellInput) (*cma.Report, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := cma.SetCell(*report, input.StatementID, input.RowIndex, input.Field, cma.Coerce(input.Value))
	if err != nil {
		return nil, err
	}

	data, err := cma.Serialize(&updated)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, reportStateKey, string(data)); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *cmaService) ExecutiveSummary() cma.ExecutiveSummary {
	return cma.StaticExecutiveSummary()
}

// ExportSnapshot uploads the current report JSON to object storage and
// returns a presigned download link.
func (s *cmaService) ExportSnapshot(ctx context.Context) (*SnapshotOutput, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}

	data, err := cma.Serialize(report)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("cma/report_%s.json", time.Now().UTC().Format("20060102_150405"))
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: "application/json",
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotUploadFailed, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
	if err != nil {
		return nil, err
	}

	return &SnapshotOutput{Key: key, DownloadURL: url}, nil
}
