package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errors.New("a venda deve ter pelo menos um item")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrInvalidPrice    = errors.New("preço unitário não pode ser negativo")
)

// Item representa uma linha de venda. O preço de custo (BuyPrice) é uma cópia
// congelada do produto no momento da venda e não acompanha alterações
// posteriores de preço.
type Item struct {
	ID          string  `json:"id"`
	SaleID      string  `json:"sale_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	BuyPrice    float64 `json:"buy_price"`
	Total       float64 `json:"total"`
	Profit      float64 `json:"profit"`
}

// Sale representa uma venda com seus itens
type Sale struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Total     float64   `json:"total"`
	Profit    float64   `json:"profit"`
	Notes     string    `json:"notes,omitempty"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// NewItem cria uma linha de venda calculando total e lucro a partir do preço
// de custo observado no produto
func NewItem(productID string, quantity int, unitPrice, buyPrice float64) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidPrice
	}

	return &Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		BuyPrice:  buyPrice,
		Total:     float64(quantity) * unitPrice,
		Profit:    (unitPrice - buyPrice) * float64(quantity),
	}, nil
}

// NewSale cria uma venda somando o total e o lucro dos itens
func NewSale(userID string, items []Item, notes string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	s := &Sale{
		ID:        uuid.New().String(),
		UserID:    userID,
		Notes:     notes,
		Items:     items,
		CreatedAt: time.Now(),
	}

	for i := range s.Items {
		s.Items[i].SaleID = s.ID
		s.Total += s.Items[i].Total
		s.Profit += s.Items[i].Profit
	}

	return s, nil
}
