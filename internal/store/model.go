package store

// Book is one title in the shop's inventory.
type Book struct {
	ID       string  `yaml:"id" json:"id"`
	Title    string  `yaml:"title" json:"title"`
	Author   string  `yaml:"author,omitempty" json:"author,omitempty"`
	Price    float64 `yaml:"price" json:"price"`
	Quantity int     `yaml:"quantity" json:"quantity"`
}

// Customer is a registered buyer with an embedded purchase history.
// Purchases are ordered oldest-first and only ever appended.
type Customer struct {
	ID        string     `yaml:"id" json:"id"`
	Username  string     `yaml:"username" json:"username"`
	Password  string     `yaml:"-" json:"-"`
	Name      string     `yaml:"name" json:"name"`
	Purchases []Purchase `yaml:"purchases,omitempty" json:"purchases,omitempty"`
}

// AddPurchase appends one record to the customer's history.
func (c *Customer) AddPurchase(p Purchase) {
	c.Purchases = append(c.Purchases, p)
}

// Purchase is one line of purchase history. BookTitle is a snapshot
// taken at purchase time and does not track later edits to the book.
type Purchase struct {
	ID         string  `yaml:"id" json:"id"`
	BookID     string  `yaml:"book_id" json:"book_id"`
	BookTitle  string  `yaml:"book_title" json:"book_title"`
	Quantity   int     `yaml:"quantity" json:"quantity"`
	TotalPrice float64 `yaml:"total_price" json:"total_price"`
	Date       string  `yaml:"date" json:"date"`
}

// NewPurchase builds a purchase record, requiring quantity and total
// price to be set together. Records decoded from legacy data files may
// bypass this and carry quantity 0; nothing in the app creates them.
func NewPurchase(id, bookID, bookTitle string, quantity int, totalPrice float64, date string) (Purchase, error) {
	if quantity < 1 {
		return Purchase{}, ErrInvalidQuantity
	}
	if totalPrice < 0 {
		return Purchase{}, ErrInvalidPrice
	}
	return Purchase{
		ID:         id,
		BookID:     bookID,
		BookTitle:  bookTitle,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Date:       date,
	}, nil
}

// UnitPrice is the per-copy price of the purchase. A record with
// quantity < 1 has no meaningful unit price and yields 0.
func (p Purchase) UnitPrice() float64 {
	if p.Quantity < 1 {
		return 0
	}
	return p.TotalPrice / float64(p.Quantity)
}

// Role tags an authenticated session user.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleCustomer Role = "customer"
)

// User is a transient authentication result. It is never persisted;
// the owner identity in particular has no backing customer record.
type User struct {
	Username string
	Role     Role
}
