package property

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository journals listings added at runtime and each user's saved set, so a
// restarted server can rebuild its catalog. Seed listings are never stored.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a listing repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO listings
	(id, title, slug, location, price, currency, period, bedrooms, area, type, city, image, images_json, lat, lng, description)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectColumns = `id, title, slug, location, price, currency, period, bedrooms, area, type, city, image, images_json, lat, lng, description`

// RecordProperty stores a listing under its assigned ID.
func (r *Repository) RecordProperty(p Property) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("encoding images: %w", err)
	}

	if _, err := r.db.Exec(insertSQL,
		p.ID, p.Title, p.Slug, p.Location, p.Price, p.Currency, p.Period,
		p.Bedrooms, p.Area, string(p.Type), string(p.City), p.Image,
		string(images), p.Coords.Lat, p.Coords.Lng, p.Description,
	); err != nil {
		return fmt.Errorf("inserting listing %d: %w", p.ID, err)
	}

	return nil
}

// RecordSaved adds or removes a listing ID from owner's saved set.
func (r *Repository) RecordSaved(owner string, id int64, saved bool) error {
	if saved {
		if _, err := r.db.Exec("INSERT OR IGNORE INTO saved_listings (user_email, property_id) VALUES (?, ?)", owner, id); err != nil {
			return fmt.Errorf("saving listing %d for %s: %w", id, owner, err)
		}
		return nil
	}

	if _, err := r.db.Exec("DELETE FROM saved_listings WHERE user_email = ? AND property_id = ?", owner, id); err != nil {
		return fmt.Errorf("unsaving listing %d for %s: %w", id, owner, err)
	}
	return nil
}

// List returns journaled listings in the order they were added.
func (r *Repository) List() ([]Property, error) {
	query := fmt.Sprintf("SELECT %s FROM listings ORDER BY seq", selectColumns)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing journaled properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var props []Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		props = append(props, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return props, nil
}

// Saved returns every owner's saved listing IDs, each in the order they
// were saved.
func (r *Repository) Saved() (map[string][]int64, error) {
	rows, err := r.db.Query("SELECT user_email, property_id FROM saved_listings ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing saved ids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	saved := make(map[string][]int64)
	for rows.Next() {
		var owner string
		var id int64
		if err := rows.Scan(&owner, &id); err != nil {
			return nil, fmt.Errorf("scanning saved id: %w", err)
		}
		saved[owner] = append(saved[owner], id)
	}

	return saved, rows.Err()
}

// scanProperty scans a listing from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (Property, error) {
	var p Property
	var typ, city, images string

	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Location, &p.Price, &p.Currency,
		&p.Period, &p.Bedrooms, &p.Area, &typ, &city, &p.Image,
		&images, &p.Coords.Lat, &p.Coords.Lng, &p.Description,
	)
	if err != nil {
		return Property{}, err
	}

	p.Type = Type(typ)
	p.City = City(city)
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return Property{}, fmt.Errorf("decoding images for listing %d: %w", p.ID, err)
	}

	return p, nil
}
