package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("status de encomenda inválido")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrInvalidPrice    = errors.New("preço unitário não pode ser negativo")
	ErrEmptyImageURL   = errors.New("url da imagem não pode ser vazia")
)

// Status representa o estado de uma encomenda
type Status string

const (
	StatusPendente    Status = "PENDENTE"
	StatusEmAndamento Status = "EM_ANDAMENTO"
	StatusCompleta    Status = "COMPLETA"
	StatusConcluida   Status = "CONCLUIDA"
	StatusCancelada   Status = "CANCELADA"
)

// IsValidStatus verifica se o valor informado é um status conhecido
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusCompleta, StatusConcluida, StatusCancelada:
		return true
	}
	return false
}

// Item representa uma linha de encomenda vinculada a um produto
type Item struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Image representa uma imagem anexada à encomenda. Apenas a URL é
// armazenada; o upload do binário é feito por um serviço externo.
type Image struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	URL     string `json:"url"`
}

// Order representa uma encomenda. Os itens são opcionais: uma encomenda
// pode conter apenas a descrição livre do pedido do cliente.
type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	Status      Status    `json:"status"`
	Total       float64   `json:"total"`
	Notes       string    `json:"notes,omitempty"`
	ClientName  string    `json:"client_name,omitempty"`
	ClientPhone string    `json:"client_phone,omitempty"`
	Description string    `json:"description,omitempty"`
	Items       []Item    `json:"items"`
	Images      []Image   `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem cria uma linha de encomenda calculando o total
func NewItem(productID string, quantity int, unitPrice float64) (*Item, error) {
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
		Total:     float64(quantity) * unitPrice,
	}, nil
}

// NewImage cria uma imagem de encomenda a partir da URL retornada pelo
// serviço de armazenamento
func NewImage(url string) (*Image, error) {
	if url == "" {
		return nil, ErrEmptyImageURL
	}
	return &Image{
		ID:  uuid.New().String(),
		URL: url,
	}, nil
}

// NewOrder cria uma encomenda com status PENDENTE somando o total dos itens
func NewOrder(userID string, items []Item, images []Image, notes, clientName, clientPhone, description string) *Order {
	now := time.Now()
	o := &Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		Status:      StatusPendente,
		Notes:       notes,
		ClientName:  clientName,
		ClientPhone: clientPhone,
		Description: description,
		Items:       items,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		o.Total += o.Items[i].Total
	}
	for i := range o.Images {
		o.Images[i].OrderID = o.ID
	}

	return o
}

// CompletionTriggersStock indica se a transição para o novo status deve
// baixar o estoque dos itens. Apenas a entrada em CONCLUIDA a partir de
// qualquer outro status dispara a baixa; regravar uma encomenda já
// concluída não baixa o estoque de novo.
func (o *Order) CompletionTriggersStock(newStatus Status) bool {
	return newStatus == StatusConcluida && o.Status != StatusConcluida
}

// TransitionTo aplica a mudança de status. Transições entre quaisquer
// status são permitidas; a baixa de estoque é responsabilidade do
// repositório quando CompletionTriggersStock indicar.
func (o *Order) TransitionTo(newStatus Status) error {
	if !IsValidStatus(newStatus) {
		return ErrInvalidStatus
	}
	o.Status = newStatus
	o.UpdatedAt = time.Now()
	return nil
}
