package inventory

import (
	"time"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain"
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo: CRUD de productos y búsqueda por
// código de barras. El stock nunca se modifica aquí (solo vía movimientos).
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create valida y persiste un producto nuevo con stock 0.
// Devuelve ErrInvalidInput si faltan campos o los precios son negativos,
// ErrDuplicateBarcode si el código ya existe para este usuario.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if userID == "" || in.Name == "" || in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if !entity.IsSupportedCurrency(currency) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByUserAndBarcode(userID, in.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateBarcode
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:            entity.NewID("prod"),
		UserID:        userID,
		Name:          in.Name,
		Barcode:       in.Barcode,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Currency:      currency,
		CurrentStock:  0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes del request al producto del usuario.
// El stock actual no es actualizable por esta vía. Si cambia el código de
// barras se revalida la unicidad por usuario.
func (uc *ProductUseCase) Update(userID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByUserAndID(userID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Barcode != nil && *in.Barcode != product.Barcode {
		if *in.Barcode == "" {
			return nil, domain.ErrInvalidInput
		}
		other, err := uc.productRepo.GetByUserAndBarcode(userID, *in.Barcode)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicateBarcode
		}
		product.Barcode = *in.Barcode
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.Currency != nil {
		if !entity.IsSupportedCurrency(*in.Currency) {
			return nil, domain.ErrInvalidInput
		}
		product.Currency = *in.Currency
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto del usuario. Los movimientos asociados se
// conservan como historial huérfano (el libro nunca se borra).
func (uc *ProductUseCase) Delete(userID, productID string) error {
	product, err := uc.productRepo.GetByUserAndID(userID, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(userID, productID)
}

// GetByID obtiene un producto del usuario; nil si no existe o no es suyo.
func (uc *ProductUseCase) GetByID(userID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByUserAndID(userID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos del usuario.
func (uc *ProductUseCase) List(userID string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// FindByBarcode busca por código de barras y devuelve un resultado
// etiquetado: found=false no es un error, es la rama "ofrecer creación"
// del flujo de escaneo.
func (uc *ProductUseCase) FindByBarcode(userID, barcode string) (*dto.BarcodeLookupResponse, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByUserAndBarcode(userID, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return &dto.BarcodeLookupResponse{Found: false}, nil
	}
	return &dto.BarcodeLookupResponse{Found: true, Product: toProductResponse(product)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ProductID:     p.ID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		PurchasePrice: p.PurchasePrice.Round(2),
		SalePrice:     p.SalePrice.Round(2),
		Currency:      p.Currency,
		CurrentStock:  p.CurrentStock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
