package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
	"github.com/projectkrs/krs/internal/domain/model"
	"github.com/projectkrs/krs/internal/domain/repository"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "pgx"
)

// Storage acts as repository facade backed by a SQL database.
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New opens the database addressed by uri and ensures the schema exists.
// PostgreSQL URIs are served through pgx; anything else is treated as a SQLite file.
func New(ctx context.Context, uri string, logger *slog.Logger) (*Storage, error) {
	driver, dsn := resolveDSN(uri)

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{db: db, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("database ready", slog.String("driver", driver))
	return storage, nil
}

func resolveDSN(uri string) (driver, dsn string) {
	if strings.HasPrefix(uri, "postgres://") || strings.HasPrefix(uri, "postgresql://") {
		return driverPostgres, uri
	}

	path := strings.TrimPrefix(uri, "sqlite://")
	path = strings.TrimPrefix(path, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return driverSQLite, path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Close releases database resources.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Orders exposes the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	for _, stmt := range schemaFor(s.db.DriverName()) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func schemaFor(driver string) []string {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	realType := "REAL"
	if driver == driverPostgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
		realType = "DOUBLE PRECISION"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS orders (
            ` + idColumn + `,
            order_code TEXT,
            items TEXT,
            total ` + realType + `,
            name TEXT,
            email TEXT,
            phone TEXT,
            address TEXT,
            city TEXT,
            pincode TEXT,
            timestamp TEXT,
            selfie_filename TEXT,
            ip_address TEXT,
            city_auto TEXT,
            region_auto TEXT,
            country_auto TEXT,
            lat ` + realType + `,
            lng ` + realType + `
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_code ON orders(order_code)`,
	}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

// --- OrderRepository implementation ---

const orderColumns = `id, order_code, items, total, name, email, phone, address, city, pincode,
                      timestamp, selfie_filename, ip_address, city_auto, region_auto, country_auto, lat, lng`

// orderRow mirrors the orders table. Columns written by other tools may be NULL.
type orderRow struct {
	ID             int64           `db:"id"`
	Code           sql.NullString  `db:"order_code"`
	Items          sql.NullString  `db:"items"`
	Total          sql.NullFloat64 `db:"total"`
	Name           sql.NullString  `db:"name"`
	Email          sql.NullString  `db:"email"`
	Phone          sql.NullString  `db:"phone"`
	Address        sql.NullString  `db:"address"`
	City           sql.NullString  `db:"city"`
	Pincode        sql.NullString  `db:"pincode"`
	Timestamp      sql.NullString  `db:"timestamp"`
	SelfieFilename *string         `db:"selfie_filename"`
	IPAddress      *string         `db:"ip_address"`
	CityAuto       *string         `db:"city_auto"`
	RegionAuto     *string         `db:"region_auto"`
	CountryAuto    *string         `db:"country_auto"`
	Lat            *float64        `db:"lat"`
	Lng            *float64        `db:"lng"`
}

func (r orderRow) toModel() model.Order {
	return model.Order{
		ID:    r.ID,
		Code:  r.Code.String,
		Items: r.Items.String,
		Total: r.Total.Float64,
		Customer: model.Customer{
			Name:    r.Name.String,
			Email:   r.Email.String,
			Phone:   r.Phone.String,
			Address: r.Address.String,
			City:    r.City.String,
			Pincode: r.Pincode.String,
		},
		Timestamp:      r.Timestamp.String,
		SelfieFilename: r.SelfieFilename,
		IPAddress:      r.IPAddress,
		Location: model.Location{
			City:    r.CityAuto,
			Region:  r.RegionAuto,
			Country: r.CountryAuto,
			Lat:     r.Lat,
			Lng:     r.Lng,
		},
	}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (int64, error) {
	query := r.storage.db.Rebind(`INSERT INTO orders (
            order_code, items, total,
            name, email, phone, address, city, pincode,
            timestamp, selfie_filename, ip_address,
            city_auto, region_auto, country_auto, lat, lng
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id`)

	c := order.Customer
	loc := order.Location
	var id int64
	err := r.storage.db.QueryRowxContext(ctx, query,
		order.Code, order.Items, order.Total,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.Pincode,
		order.Timestamp, order.SelfieFilename, order.IPAddress,
		loc.City, loc.Region, loc.Country, loc.Lat, loc.Lng,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	order.ID = id
	return id, nil
}

func (r *orderRepository) UpdateSelfie(ctx context.Context, code, filename string) error {
	query := r.storage.db.Rebind(`UPDATE orders SET selfie_filename = ? WHERE order_code = ?`)
	res, err := r.storage.db.ExecContext(ctx, query, filename, code)
	if err != nil {
		return fmt.Errorf("update selfie: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.storage.logger.Debug("selfie attached to unknown order", slog.String("order_code", code))
	}
	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var rows []orderRow
	if err := r.storage.db.SelectContext(ctx, &rows, `SELECT `+orderColumns+` FROM orders ORDER BY id DESC`); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	result := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

func (r *orderRepository) Find(ctx context.Context, identifier string) (*model.Order, error) {
	byCode := r.storage.db.Rebind(`SELECT ` + orderColumns + ` FROM orders WHERE order_code = ? ORDER BY id LIMIT 1`)
	order, err := r.findOne(ctx, byCode, identifier)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return order, err
	}

	id, convErr := strconv.ParseInt(identifier, 10, 64)
	if convErr != nil {
		return nil, domainErrors.ErrNotFound
	}
	byID := r.storage.db.Rebind(`SELECT ` + orderColumns + ` FROM orders WHERE id = ?`)
	return r.findOne(ctx, byID, id)
}

func (r *orderRepository) findOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	var row orderRow
	if err := r.storage.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	order := row.toModel()
	return &order, nil
}
