package brcode

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Builder pool for reuse
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{
			errors: make([]error, 0, 2),
		}
	},
}

// Builder assembles a Request step by step and builds its payload.
type Builder struct {
	req    Request
	opts   []Option
	errors []error
}

func NewBuilder(opts ...Option) *Builder {
	b := builderPool.Get().(*Builder)
	b.req = Request{}
	b.opts = append(b.opts[:0], opts...)
	b.errors = b.errors[:0]
	return b
}

// Release returns the builder to the pool
func (b *Builder) Release() {
	b.req = Request{}
	b.opts = b.opts[:0]
	b.errors = b.errors[:0]
	builderPool.Put(b)
}

func (b *Builder) Key(key string) *Builder {
	b.req.PixKey = key
	return b
}

// TypedKey sets the key and records an error when it does not have the
// shape expected for kind.
func (b *Builder) TypedKey(key string, kind KeyType) *Builder {
	if !ValidatePixKey(key, kind) {
		b.errors = append(b.errors, &ValidationError{
			Field:   "pix_key",
			Rule:    kind.String(),
			Message: "key does not match its declared type",
		})
	}
	return b.Key(key)
}

func (b *Builder) Merchant(name, city string) *Builder {
	b.req.MerchantName = name
	b.req.MerchantCity = city
	return b
}

func (b *Builder) Amount(amount decimal.Decimal) *Builder {
	b.req.Amount = amount
	return b
}

// AmountString parses amount as a decimal such as "10.50".
func (b *Builder) AmountString(amount string) *Builder {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		b.errors = append(b.errors, &FieldError{Tag: TagAmount, Err: ErrInvalidAmount})
		return b
	}
	return b.Amount(d)
}

func (b *Builder) TransactionID(txid string) *Builder {
	b.req.TransactionID = txid
	return b
}

func (b *Builder) Description(desc string) *Builder {
	b.req.Description = desc
	return b
}

// Request returns the request assembled so far.
func (b *Builder) Request() Request {
	return b.req
}

func (b *Builder) Build() (Payload, error) {
	if len(b.errors) > 0 {
		return Payload{}, b.errors[0]
	}
	return BuildPayload(b.req, b.opts...)
}

func (b *Builder) MustBuild() Payload {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
