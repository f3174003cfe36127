// Package localstore is the client's durable fallback store: a handful of
// named key-value records in a local sqlite file, the desktop analogue of the
// browser's localStorage. Collections are stored whole as JSON under a fixed
// record name.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Fixed record names, carried over from the web frontend's storage keys.
const (
	RecordUsers   = "rtlite_users"
	RecordSession = "rtlite_auth_user"
	RecordNews    = "news_suggestions"
	RecordOrders  = "orders"
)

var (
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is the local-store user record. The password is kept in plaintext,
// matching the original localStorage fallback it replaces.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NewsSuggestion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID              string    `json:"id"`
	MovieName       string    `json:"movieName"`
	MoviePrice      float64   `json:"moviePrice"`
	Quantity        int       `json:"quantity"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	DeliveryAddress string    `json:"deliveryAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
	CreatedAt       time.Time `json:"created_at"`
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS records (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// readRecord unmarshals the named record into dest. A missing record leaves
// dest untouched and reports found=false: first use bootstraps from empty.
func (s *Store) readRecord(name string, dest any) (found bool, err error) {
	var value string
	row := s.db.QueryRow(`SELECT value FROM records WHERE name = ?`, name)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return false, fmt.Errorf("corrupt record %q: %w", name, err)
	}
	return true, nil
}

func (s *Store) writeRecord(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO records (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, string(data),
	)
	return err
}

func (s *Store) deleteRecord(name string) error {
	_, err := s.db.Exec(`DELETE FROM records WHERE name = ?`, name)
	return err
}

/*
* users
 */

func (s *Store) ListUsers() ([]User, error) {
	var users []User
	if _, err := s.readRecord(RecordUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AppendUser adds a user unless one with the same (case-normalized) email is
// already present, then persists the whole list.
func (s *Store) AppendUser(user User) error {
	users, err := s.ListUsers()
	if err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range users {
		if strings.EqualFold(existing.Email, email) {
			return ErrAlreadyExists
		}
	}
	user.Email = email
	users = append(users, user)
	return s.writeRecord(RecordUsers, users)
}

// FindUser matches email and plaintext password against the local user list.
func (s *Store) FindUser(email, password string) (*User, error) {
	users, err := s.ListUsers()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, ErrInvalidCredentials
}

/*
* session
 */

func (s *Store) Session() (*Session, error) {
	var session Session
	found, err := s.readRecord(RecordSession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (s *Store) SetSession(session Session) error {
	return s.writeRecord(RecordSession, session)
}

func (s *Store) ClearSession() error {
	return s.deleteRecord(RecordSession)
}

/*
* news suggestions and orders, append-only
 */

func (s *Store) ListNewsSuggestions() ([]NewsSuggestion, error) {
	var suggestions []NewsSuggestion
	if _, err := s.readRecord(RecordNews, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *Store) AppendNewsSuggestion(suggestion NewsSuggestion) error {
	suggestions, err := s.ListNewsSuggestions()
	if err != nil {
		return err
	}
	suggestion.ID = uuid.NewString()
	suggestion.CreatedAt = time.Now().UTC()
	suggestions = append(suggestions, suggestion)
	return s.writeRecord(RecordNews, suggestions)
}

func (s *Store) ListOrders() ([]Order, error) {
	var orders []Order
	if _, err := s.readRecord(RecordOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) AppendOrder(order Order) error {
	orders, err := s.ListOrders()
	if err != nil {
		return err
	}
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()
	orders = append(orders, order)
	return s.writeRecord(RecordOrders, orders)
}
