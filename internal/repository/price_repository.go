package repository

import (
	"database/sql"
	"time"

	"krishiapi/internal/model"
)

type PriceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrice(s rowScanner) (model.Price, error) {
	var p model.Price
	err := s.Scan(&p.ID, &p.Commodity, &p.Market, &p.District, &p.State,
		&p.MinPrice, &p.MaxPrice, &p.ModalPrice, &p.ArrivalDate)
	return p, err
}

func collectPrices(rows *sql.Rows) ([]model.Price, error) {
	defer rows.Close()

	prices := []model.Price{}
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prices, nil
}

func collectStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

func (r *PriceRepository) ListPrices(q model.PriceQuery) ([]model.Price, error) {
	query, args := buildListQuery(q)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectPrices(rows)
}

func (r *PriceRepository) GetPriceByID(id int64) (*model.Price, error) {
	row := r.db.QueryRow(`
		SELECT `+priceColumns+`
		FROM `+model.PriceTable+`
		WHERE id = $1
	`, id)

	p, err := scanPrice(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PriceRepository) GetDistricts() ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT district FROM ` + model.PriceTable)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *PriceRepository) GetMarketsByDistrict(district string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT market FROM `+model.PriceTable+`
		WHERE district = $1
	`, district)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *PriceRepository) GetMarketPrices(market string, dates []time.Time) ([]model.Price, error) {
	query, args := buildMarketPricesQuery(market, dates)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectPrices(rows)
}

func (r *PriceRepository) GetLatestPrices(limit int) ([]model.Price, error) {
	query, args := buildLatestQuery(limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectPrices(rows)
}

func (r *PriceRepository) GetPriceTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM ` + model.PriceTable).Scan(&total)
	return total, err
}

// GetSample returns the first record plus a few distinct districts and
// markets. It returns nil when the table is empty.
func (r *PriceRepository) GetSample(n int) (*model.PriceSample, error) {
	row := r.db.QueryRow(`
		SELECT ` + priceColumns + `
		FROM ` + model.PriceTable + `
		ORDER BY id ASC
		LIMIT 1
	`)

	record, err := scanPrice(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT DISTINCT district FROM `+model.PriceTable+` LIMIT $1
	`, n)
	if err != nil {
		return nil, err
	}
	districts, err := collectStrings(rows)
	if err != nil {
		return nil, err
	}

	rows, err = r.db.Query(`
		SELECT DISTINCT market FROM `+model.PriceTable+` LIMIT $1
	`, n)
	if err != nil {
		return nil, err
	}
	markets, err := collectStrings(rows)
	if err != nil {
		return nil, err
	}

	return &model.PriceSample{
		Record:    record,
		Districts: districts,
		Markets:   markets,
	}, nil
}
