package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"officex/internal/core/appctx"
	"officex/internal/core/id"
	"officex/pkg/logger"
)

// CompressionAlgo specifies the compression algorithm used for large
// change payloads.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditEntry represents a single audit log entry.
type AuditEntry struct {
	ID                id.ID           `db:"id"`
	EntityType        string          `db:"entity_type"`
	EntityID          id.ID           `db:"entity_id"`
	Action            string          `db:"action"`
	UserID            string          `db:"user_id"`
	Changes           json.RawMessage `db:"changes"`
	ChangesCompressed []byte          `db:"changes_compressed"`
	CompressionAlgo   CompressionAlgo `db:"compression_algo"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AuditStore records entity change events. Large change payloads are
// zstd-compressed before insert.
type AuditStore struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

// NewAuditStore creates a new audit store.
func NewAuditStore(txManager *TxManager) (*AuditStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditStore{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Record implements the domain Auditor contract: marshal, log and insert,
// swallowing failures. Audit must never fail the business operation.
func (s *AuditStore) Record(ctx context.Context, entity string, entityID id.ID, action string, changes any) {
	payload, err := json.Marshal(changes)
	if err != nil {
		logger.Warn(ctx, "audit payload marshal failed",
			"entity", entity,
			"entity_id", entityID,
			"error", err,
		)
		return
	}

	entry := AuditEntry{
		ID:         id.New(),
		EntityType: entity,
		EntityID:   entityID,
		Action:     action,
		UserID:     appctx.GetActorID(ctx),
		Changes:    payload,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.insert(ctx, entry); err != nil {
		logger.Warn(ctx, "audit insert failed",
			"entity", entity,
			"entity_id", entityID,
			"error", err,
		)
	}
}

func (s *AuditStore) insert(ctx context.Context, entry AuditEntry) error {
	entry.CompressionAlgo = CompressionNone
	if len(entry.Changes) > s.compressThreshold {
		entry.ChangesCompressed = s.encoder.EncodeAll(entry.Changes, nil)
		entry.Changes = nil
		entry.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO sys_audit (
			id, entity_type, entity_id, action, user_id,
			changes, changes_compressed, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	querier := s.txManager.GetQuerier(ctx)
	_, err := querier.Exec(ctx, sql,
		entry.ID, entry.EntityType, entry.EntityID, entry.Action, entry.UserID,
		entry.Changes, entry.ChangesCompressed, entry.CompressionAlgo, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Decompress restores a compressed change payload.
func (s *AuditStore) Decompress(entry AuditEntry) (json.RawMessage, error) {
	switch entry.CompressionAlgo {
	case CompressionZstd:
		raw, err := s.decoder.DecodeAll(entry.ChangesCompressed, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress audit changes: %w", err)
		}
		return raw, nil
	default:
		return entry.Changes, nil
	}
}
