package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quillback/scanledger/internal/common"
	"github.com/quillback/scanledger/internal/model"
)

// SaveReceipt persists a receipt and its line items. An empty ID is
// replaced with a new UUID; the stored ID is written back to the receipt.
func (s *SQLiteStore) SaveReceipt(ctx context.Context, receipt *model.Receipt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateReceipt(*receipt); err != nil {
		return err
	}

	if receipt.ID == "" {
		receipt.ID = uuid.NewString()
	}
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now()
	}

	tags, err := json.Marshal(receipt.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO receipts (id, store_name, date, total, category, raw_text, notes, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, receipt.ID, receipt.StoreName, receipt.Date, receipt.Total,
		string(receipt.Category), receipt.RawText, receipt.Notes, string(tags), receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO receipt_items (receipt_id, position, name, price, quantity)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare item statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, item := range receipt.Items {
		if _, err := stmt.ExecContext(ctx, receipt.ID, i, item.Name, item.Price, item.Quantity); err != nil {
			return fmt.Errorf("failed to insert item %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetReceipt returns the receipt with the given ID, or common.ErrNotFound.
func (s *SQLiteStore) GetReceipt(ctx context.Context, id string) (model.Receipt, error) {
	if err := validateContext(ctx); err != nil {
		return model.Receipt{}, err
	}
	if err := validateString(id, "id"); err != nil {
		return model.Receipt{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_name, date, total, category, raw_text, notes, tags, created_at
		FROM receipts
		WHERE id = ?
	`, id)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("failed to query receipt: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Receipt{}, fmt.Errorf("failed to query receipt: %w", err)
		}
		return model.Receipt{}, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}

	r, err := scanReceipt(rows)
	if err != nil {
		return model.Receipt{}, err
	}
	r.Items, err = s.listItems(ctx, r.ID)
	if err != nil {
		return model.Receipt{}, err
	}
	return r, nil
}

// ListReceipts returns all receipts dated within [start, end] inclusive,
// oldest first, with their line items attached.
func (s *SQLiteStore) ListReceipts(ctx context.Context, start, end time.Time) ([]model.Receipt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_name, date, total, category, raw_text, notes, tags, created_at
		FROM receipts
		WHERE date(date) >= date(?) AND date(date) <= date(?)
		ORDER BY date, created_at
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var receipts []model.Receipt
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	for i := range receipts {
		items, err := s.listItems(ctx, receipts[i].ID)
		if err != nil {
			return nil, err
		}
		receipts[i].Items = items
	}
	return receipts, nil
}

func scanReceipt(rows *sql.Rows) (model.Receipt, error) {
	var (
		r        model.Receipt
		category string
		rawText  sql.NullString
		notes    sql.NullString
		tags     sql.NullString
	)
	if err := rows.Scan(&r.ID, &r.StoreName, &r.Date, &r.Total, &category,
		&rawText, &notes, &tags, &r.CreatedAt); err != nil {
		return model.Receipt{}, fmt.Errorf("failed to scan receipt: %w", err)
	}
	r.Category = model.Category(category)
	r.RawText = rawText.String
	r.Notes = notes.String
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &r.Tags); err != nil {
			return model.Receipt{}, fmt.Errorf("failed to decode tags: %w", err)
		}
	}
	return r, nil
}

func (s *SQLiteStore) listItems(ctx context.Context, receiptID string) ([]model.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, price, quantity
		FROM receipt_items
		WHERE receipt_id = ?
		ORDER BY position
	`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []model.LineItem{}
	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}
