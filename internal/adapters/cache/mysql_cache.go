package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/mikey/llm-comms-surveillance/internal/core"
	"go.uber.org/zap"
)

// MySQLCache is a MySQL implementation of the CacheRepository interface
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache creates a new MySQL cache
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS verdict_cache (
			content_digest VARCHAR(64) PRIMARY KEY,
			non_compliant BOOLEAN,
			category VARCHAR(255),
			reason TEXT,
			evidence_ids TEXT,
			last_seen TIMESTAMP,
			expires_at TIMESTAMP,
			INDEX idx_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	// Start background cleanup
	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached verdict for a content digest
func (c *MySQLCache) Get(ctx context.Context, digest string) (*core.CacheEntry, error) {
	var entry core.CacheEntry
	var evidenceIDs string

	err := c.db.QueryRowContext(ctx, `
		SELECT content_digest, non_compliant, category, reason, evidence_ids, last_seen, expires_at
		FROM verdict_cache
		WHERE content_digest = ? AND expires_at > NOW()
	`, digest).Scan(&entry.ContentDigest, &entry.IsNonCompliant, &entry.Category,
		&entry.Reason, &evidenceIDs, &entry.LastSeen, &entry.ExpiresAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	if err := json.Unmarshal([]byte(evidenceIDs), &entry.EvidenceLineIDs); err != nil {
		entry.EvidenceLineIDs = []int{}
	}

	return &entry, nil
}

// Set stores a cache entry
func (c *MySQLCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	evidenceIDs, err := json.Marshal(entry.EvidenceLineIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal evidence ids: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		REPLACE INTO verdict_cache
			(content_digest, non_compliant, category, reason, evidence_ids, last_seen, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ContentDigest, entry.IsNonCompliant, entry.Category, entry.Reason,
		string(evidenceIDs), entry.LastSeen, entry.ExpiresAt)

	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}
	return nil
}

// Delete removes a cache entry
func (c *MySQLCache) Delete(ctx context.Context, digest string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM verdict_cache
		WHERE content_digest = ?
	`, digest)

	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM verdict_cache
		WHERE expires_at <= NOW()
	`)

	if err != nil {
		return fmt.Errorf("failed to clean up expired entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		c.logger.Debug("Cleaned up expired cache entries", zap.Int64("expired_count", rowsAffected))
	}

	return nil
}

// startCleanupTask starts a background task to clean up expired entries
func (c *MySQLCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database connection
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
