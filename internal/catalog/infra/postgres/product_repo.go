package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tanvirfarhan/krishibazar/internal/catalog/app"
	"github.com/tanvirfarhan/krishibazar/internal/catalog/domain"
)

// productRow is the persistence shape; the domain type stays free of ORM tags.
type productRow struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category    string          `gorm:"index"`
	District    string          `gorm:"index"`
	Seller      string          `gorm:"not null"`
	SellerID    int64
	Rating      int
	Stock       int             `gorm:"not null"`
	Image       string
	Organic     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productRow) TableName() string { return "products" }

type ProductRepo struct {
	db *gorm.DB
}

func Open(host string, port int, user, password, dbname string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Migrate() error {
	return r.db.AutoMigrate(&productRow{})
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	var row productRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return toDomain(row), nil
}

func (r *ProductRepo) List(ctx context.Context, f domain.Filter) ([]domain.Product, int, error) {
	q := r.db.WithContext(ctx).Model(&productRow{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []productRow
	err := q.Order("id").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, int(total), nil
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	row := productRow{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		District:    p.District,
		Seller:      p.Seller,
		SellerID:    p.SellerID,
		Rating:      p.Rating,
		Stock:       p.Stock,
		Image:       p.Image,
		Organic:     p.Organic,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Product{}, err
	}
	return toDomain(row), nil
}

func toDomain(row productRow) domain.Product {
	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Category:    row.Category,
		District:    row.District,
		Seller:      row.Seller,
		SellerID:    row.SellerID,
		Rating:      row.Rating,
		Stock:       row.Stock,
		Image:       row.Image,
		Organic:     row.Organic,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
