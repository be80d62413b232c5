package repository

import (
	"context"
	"fmt"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository/dao"
)

var ErrSaleNotFound = dao.ErrSaleNotFound

type SaleDAO interface {
	InsertSale(ctx context.Context, sale dao.Sale) (dao.Sale, error)
	InsertItem(ctx context.Context, item dao.SaleItem) (dao.SaleItem, error)
	FindByID(ctx context.Context, id string) (dao.Sale, error)
	FindWithCount(ctx context.Context, id string) (dao.SaleRow, error)
	FindAll(ctx context.Context) ([]dao.SaleRow, error)
	FindItemsBySaleID(ctx context.Context, saleID string) ([]dao.SaleItemRow, error)
	DailySummary(ctx context.Context) ([]dao.DailySummaryRow, error)
}

type SaleRepository struct {
	dao SaleDAO
}

func NewSaleRepository(dao SaleDAO) *SaleRepository {
	return &SaleRepository{
		dao: dao,
	}
}

func (r *SaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	created, err := r.dao.InsertSale(ctx, dao.Sale{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		CashierID:     sale.CashierID,
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		Status:        sale.Status,
	})
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.InsertSale -> %w", err)
	}

	return saleDaoToDomain(created), nil
}

func (r *SaleRepository) CreateItem(ctx context.Context, item domain.SaleItem) (domain.SaleItem, error) {
	created, err := r.dao.InsertItem(ctx, dao.SaleItem{
		ID:         item.ID,
		SaleID:     item.SaleID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
	})
	if err != nil {
		return domain.SaleItem{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	return saleItemDaoToDomain(created), nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (domain.Sale, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return saleDaoToDomain(found), nil
}

func (r *SaleRepository) FindWithCount(ctx context.Context, id string) (domain.Sale, error) {
	row, err := r.dao.FindWithCount(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.FindWithCount -> %w", err)
	}

	sale := saleDaoToDomain(row.Sale)
	sale.ItemCount = row.ItemCount

	return sale, nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	sales := make([]domain.Sale, len(rows))
	for i, row := range rows {
		sales[i] = saleDaoToDomain(row.Sale)
		sales[i].ItemCount = row.ItemCount
	}

	return sales, nil
}

func (r *SaleRepository) FindItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	rows, err := r.dao.FindItemsBySaleID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindItemsBySaleID -> %w", err)
	}

	items := make([]domain.SaleItem, len(rows))
	for i, row := range rows {
		items[i] = saleItemDaoToDomain(row.SaleItem)
		items[i].ProductName = row.ProductName
		items[i].ProductSKU = row.ProductSKU
	}

	return items, nil
}

func (r *SaleRepository) DailySummary(ctx context.Context) ([]domain.DailySummary, error) {
	rows, err := r.dao.DailySummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DailySummary -> %w", err)
	}

	summaries := make([]domain.DailySummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.DailySummary{
			Date:             row.Date,
			TransactionCount: row.TransactionCount,
			TotalSales:       row.TotalSales,
		}
	}

	return summaries, nil
}

func saleDaoToDomain(s dao.Sale) domain.Sale {
	return domain.Sale{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		CashierID:     s.CashierID,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
	}
}

func saleItemDaoToDomain(i dao.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		ID:         i.ID,
		SaleID:     i.SaleID,
		ProductID:  i.ProductID,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
	}
}
