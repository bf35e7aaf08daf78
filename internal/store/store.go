package store

import (
	"encoding/json"
	"os"
	"sort"

	"quickcart/internal/models"

	"github.com/rs/zerolog"
)

// document is the on-disk layout: three named collections, each a JSON
// object keyed by the entity's unique key.
type document struct {
	Users    map[string]models.Record `json:"users"`
	Products map[string]models.Record `json:"products"`
	Orders   map[string]models.Record `json:"orders"`
}

// Store holds the authoritative in-memory copy of the three collections and
// rewrites the whole backing document after every mutation. It is not safe
// for concurrent use; one interactive session owns it.
type Store struct {
	path   string
	logger zerolog.Logger

	users    map[string]*models.User
	products map[string]*models.Product
	orders   map[string]*models.Order

	// insertion order of the product and order collections
	productIDs []string
	orderIDs   []string
}

// Open creates a store backed by the document at path and loads it.
func Open(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path, logger: logger}
	s.Load()
	return s
}

// Load reads the backing document. A missing file, unreadable file, or
// malformed content all degrade to three empty collections; Load never
// surfaces an error.
func (s *Store) Load() {
	s.reset()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("Backing document unreadable, starting empty")
		}
		return
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Backing document malformed, starting empty")
		return
	}

	for _, key := range sortedKeys(doc.Users) {
		user, err := models.UserFromRecord(doc.Users[key])
		if err != nil {
			s.badRecord(err)
			return
		}
		s.users[key] = user
	}
	for _, key := range sortedKeys(doc.Products) {
		product, err := models.ProductFromRecord(doc.Products[key])
		if err != nil {
			s.badRecord(err)
			return
		}
		s.products[key] = product
		s.productIDs = append(s.productIDs, key)
	}
	for _, key := range sortedKeys(doc.Orders) {
		order, err := models.OrderFromRecord(doc.Orders[key])
		if err != nil {
			s.badRecord(err)
			return
		}
		s.orders[key] = order
		s.orderIDs = append(s.orderIDs, key)
	}
}

func (s *Store) badRecord(err error) {
	s.logger.Warn().Err(err).Str("path", s.path).Msg("Backing document holds a malformed record, starting empty")
	s.reset()
}

func (s *Store) reset() {
	s.users = make(map[string]*models.User)
	s.products = make(map[string]*models.Product)
	s.orders = make(map[string]*models.Order)
	s.productIDs = nil
	s.orderIDs = nil
}

// persist rewrites the whole document synchronously. Write failures are
// logged and swallowed; the in-memory collections stay authoritative for
// the rest of the session.
func (s *Store) persist() {
	doc := document{
		Users:    make(map[string]models.Record, len(s.users)),
		Products: make(map[string]models.Record, len(s.products)),
		Orders:   make(map[string]models.Record, len(s.orders)),
	}
	for key, user := range s.users {
		doc.Users[key] = user.ToRecord()
	}
	for key, product := range s.products {
		doc.Products[key] = product.ToRecord()
	}
	for key, order := range s.orders {
		doc.Orders[key] = order.ToRecord()
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("Serializing document failed, changes not persisted")
		return
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Writing document failed, changes kept in memory only")
	}
}

// PutUser upserts a user by username.
func (s *Store) PutUser(u *models.User) {
	s.users[u.Username] = u
	s.persist()
}

// GetUser returns the user or nil when absent.
func (s *Store) GetUser(username string) *models.User {
	return s.users[username]
}

// PutProduct upserts a product by id.
func (s *Store) PutProduct(p *models.Product) {
	if _, ok := s.products[p.ID]; !ok {
		s.productIDs = append(s.productIDs, p.ID)
	}
	s.products[p.ID] = p
	s.persist()
}

// GetProduct returns the product or nil when absent.
func (s *Store) GetProduct(id string) *models.Product {
	return s.products[id]
}

// ListProducts returns all products in insertion order.
func (s *Store) ListProducts() []*models.Product {
	out := make([]*models.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, s.products[id])
	}
	return out
}

// SetProductStock overwrites a product's stock level. A silent no-op for
// unknown ids: callers check existence first.
func (s *Store) SetProductStock(id string, stock int) {
	p, ok := s.products[id]
	if !ok {
		return
	}
	p.Stock = stock
	s.persist()
}

// PutOrder upserts an order by id.
func (s *Store) PutOrder(o *models.Order) {
	if _, ok := s.orders[o.ID]; !ok {
		s.orderIDs = append(s.orderIDs, o.ID)
	}
	s.orders[o.ID] = o
	s.persist()
}

// UpdateOrder persists changes to an existing order. Semantically the same
// upsert as PutOrder; kept separate for call-site clarity.
func (s *Store) UpdateOrder(o *models.Order) {
	s.PutOrder(o)
}

// GetOrder returns the order or nil when absent.
func (s *Store) GetOrder(id string) *models.Order {
	return s.orders[id]
}

// ListOrders returns all orders in insertion order.
func (s *Store) ListOrders() []*models.Order {
	out := make([]*models.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, s.orders[id])
	}
	return out
}

// ListOrdersBy returns the orders matching pred, by full scan in insertion
// order. There are no indexes; the collections are small.
func (s *Store) ListOrdersBy(pred func(*models.Order) bool) []*models.Order {
	var out []*models.Order
	for _, id := range s.orderIDs {
		if o := s.orders[id]; pred(o) {
			out = append(out, o)
		}
	}
	return out
}

func sortedKeys(m map[string]models.Record) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
