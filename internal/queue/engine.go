// Package queue provides the notification queue engine: it persists
// notification records in SQLite, decides which record is eligible to be
// presented next and notifies subscribed show listeners.
package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/flattr/adblockpluschrome/internal/notification"
	"github.com/flattr/adblockpluschrome/internal/settings"
)

var (
	// ErrNotificationNotFound indicates that a notification cannot be found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateNotification indicates that a record with the same id exists.
	ErrDuplicateNotification = errors.New("notification already exists")
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notifications (
	id          TEXT PRIMARY KEY,
	type        TEXT NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	message     TEXT NOT NULL DEFAULT '',
	links       TEXT NOT NULL DEFAULT '',
	url_filters TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	shown_at    TEXT NOT NULL DEFAULT '',
	answered_at TEXT NOT NULL DEFAULT '',
	approved    INTEGER NOT NULL DEFAULT 0
);
`

// listSeparator joins multi-valued columns.
const listSeparator = "\n"

// Record couples a notification with its localized texts for storage.
type Record struct {
	Notification notification.Notification
	Texts        notification.LocalizedTexts
	Shown        bool
}

// Engine is the SQLite-backed queue engine.
type Engine struct {
	db *sql.DB

	mu                sync.Mutex
	prefs             *settings.Settings
	showListeners     []func(n *notification.Notification)
	questionListeners []func(id string, approved bool)
}

// Open creates a queue engine backed by the database at dbPath. The
// settings decide which optional notification types are skipped.
func Open(dbPath string, prefs *settings.Settings) (*Engine, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("queue: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("queue: create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("queue: open db: %w", err)
	}
	e := &Engine{db: db, prefs: prefs}
	if err := e.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return e, nil
}

// Close closes the underlying database.
func (e *Engine) Close() error {
	if e == nil || e.db == nil {
		return nil
	}
	return e.db.Close()
}

func (e *Engine) init() error {
	if _, err := e.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("queue: set busy timeout: %w", err)
	}
	if _, err := e.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("queue: create schema: %w", err)
	}
	return nil
}

// Add persists a new notification record.
func (e *Engine) Add(n notification.Notification, texts notification.LocalizedTexts) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("queue: %w", err)
	}
	_, err := e.db.ExecContext(context.Background(), `
		INSERT INTO notifications (id, type, title, message, links, url_filters, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID,
		n.Type.String(),
		texts.Title,
		texts.Message,
		strings.Join(n.Links, listSeparator),
		strings.Join(n.URLFilters, listSeparator),
		utcNow(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("queue: %w: %s", ErrDuplicateNotification, n.ID)
		}
		return fmt.Errorf("queue: insert notification: %w", err)
	}
	return nil
}

// Get returns a stored record by id.
func (e *Engine) Get(id string) (Record, error) {
	row := e.db.QueryRowContext(context.Background(), `
		SELECT id, type, title, message, links, url_filters, shown_at
		FROM notifications WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("queue: %w: %s", ErrNotificationNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("queue: get notification: %w", err)
	}
	return rec, nil
}

// List returns all stored records in insertion order.
func (e *Engine) List() ([]Record, error) {
	rows, err := e.db.QueryContext(context.Background(), `
		SELECT id, type, title, message, links, url_filters, shown_at
		FROM notifications ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("queue: list notifications: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("queue: list notifications: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("queue: list notifications: %w", err)
	}
	return records, nil
}

// LocalizedTexts returns the stored texts for a record. Unknown records
// yield empty texts.
func (e *Engine) LocalizedTexts(n *notification.Notification) notification.LocalizedTexts {
	if n == nil {
		return notification.LocalizedTexts{}
	}
	rec, err := e.Get(n.ID)
	if err != nil {
		return notification.LocalizedTexts{}
	}
	return rec.Texts
}

// MarkAsShown records that the notification was presented.
func (e *Engine) MarkAsShown(id string) error {
	// Already-shown and unknown ids are left untouched, so marking is
	// idempotent.
	_, err := e.db.ExecContext(context.Background(), `
		UPDATE notifications SET shown_at = ? WHERE id = ? AND shown_at = ''`,
		utcNow(), id)
	if err != nil {
		return fmt.Errorf("queue: mark as shown: %w", err)
	}
	return nil
}

// AddShowListener subscribes a listener for records selected by ShowNext.
func (e *Engine) AddShowListener(listener func(n *notification.Notification)) {
	if listener == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.showListeners = append(e.showListeners, listener)
}

// AddQuestionListener subscribes a listener for question answers.
func (e *Engine) AddQuestionListener(listener func(id string, approved bool)) {
	if listener == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.questionListeners = append(e.questionListeners, listener)
}

// TriggerQuestionListeners persists a yes/no answer and forwards it to the
// subscribed question listeners.
func (e *Engine) TriggerQuestionListeners(id string, approved bool) error {
	approvedValue := 0
	if approved {
		approvedValue = 1
	}
	_, err := e.db.ExecContext(context.Background(), `
		UPDATE notifications SET answered_at = ?, approved = ? WHERE id = ?`,
		utcNow(), approvedValue, id)
	if err != nil {
		return fmt.Errorf("queue: record answer: %w", err)
	}

	e.mu.Lock()
	listeners := append([](func(id string, approved bool))(nil), e.questionListeners...)
	e.mu.Unlock()
	for _, listener := range listeners {
		listener(id, approved)
	}
	return nil
}

// ShowNext selects the next eligible record and hands it to every show
// listener. Records are eligible when they have not been shown, their type
// is not opted out and their URL filters (if any) match currentURL. No
// eligible record is a no-op.
func (e *Engine) ShowNext(currentURL string) error {
	records, err := e.List()
	if err != nil {
		return err
	}

	e.mu.Lock()
	prefs := e.prefs
	listeners := append([](func(n *notification.Notification))(nil), e.showListeners...)
	e.mu.Unlock()

	for i := range records {
		rec := &records[i]
		if rec.Shown {
			continue
		}
		if prefs != nil && !prefs.Notifications.Enabled {
			return nil
		}
		if prefs != nil && prefs.IsIgnored(rec.Notification.Type) {
			continue
		}
		if !matchesURLFilters(rec.Notification.URLFilters, currentURL) {
			continue
		}
		for _, listener := range listeners {
			listener(&rec.Notification)
		}
		return nil
	}
	return nil
}

// matchesURLFilters reports whether the current URL satisfies the record's
// filters. Records without filters match everywhere; records with filters
// require a URL.
func matchesURLFilters(filters []string, currentURL string) bool {
	if len(filters) == 0 {
		return true
	}
	if currentURL == "" {
		return false
	}
	for _, filter := range filters {
		if wildcardMatch(filter, currentURL) {
			return true
		}
	}
	return false
}

// wildcardMatch matches a filter where "*" spans any run of characters.
func wildcardMatch(filter, value string) bool {
	parts := strings.Split(filter, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	re, err := regexp.Compile("^" + strings.Join(parts, ".*") + "$")
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var (
		rec        Record
		typeValue  string
		links      string
		urlFilters string
		shownAt    string
	)
	err := s.Scan(
		&rec.Notification.ID,
		&typeValue,
		&rec.Texts.Title,
		&rec.Texts.Message,
		&links,
		&urlFilters,
		&shownAt,
	)
	if err != nil {
		return Record{}, err
	}
	rec.Notification.Type = notification.Type(typeValue)
	rec.Notification.Links = splitList(links)
	rec.Notification.URLFilters = splitList(urlFilters)
	rec.Shown = shownAt != ""
	return rec, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, listSeparator)
}

func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
