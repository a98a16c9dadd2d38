// Package notapdf renders printable sales notes ("notas") for small-business
// back offices. A Note plus a merchant Theme is composed into a fixed-layout,
// Letter-sized PDF: branded header with a document info box, client panel,
// itemized table, totals box, and a flowing footer with social entries and a
// folio barcode. Canceled notes receive a diagonal stamp and a corner notice.
//
// Rendering is synchronous and stateless: each call owns its own drawing
// surface and produces a complete document for any structurally valid input.
// Malformed branding assets (colors, logos, icons) degrade to defined
// fallbacks instead of failing the render.
package notapdf

// Status is the lifecycle state of a sales note. The vocabulary is open
// ended: unknown values are carried through and echoed verbatim on the
// printed document. Only StatusCanceled changes rendering behavior.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCanceled  Status = "CANCELED"
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Canceled reports whether the note should carry the cancellation overlay.
func (s Status) Canceled() bool {
	return s == StatusCanceled
}

// Label returns the display text for the status row of the info box.
// Completed and pending notes get a human label; every other value,
// including unrecognized ones, is echoed as-is.
func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "Completada"
	case StatusPending:
		return "Pendiente"
	default:
		return string(s)
	}
}

// LineItem is a single sale line. Subtotal arrives pre-computed from the
// data layer and is the only per-line amount trusted for display math.
type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  float64 `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Note is the document payload for a single render call. It is consumed by
// value semantics: the renderer never mutates it and holds no reference to
// it after Render returns.
type Note struct {
	Folio string `json:"folio"`
	// Date is a pre-formatted display string; it is never parsed.
	Date string `json:"date"`

	ClientName    string `json:"clientName,omitempty"`
	ClientPhone   string `json:"clientPhone,omitempty"`
	ClientAddress string `json:"clientAddress,omitempty"`

	// Total is the stored aggregate. It is kept only as input plumbing: the
	// printed subtotal is always recomputed from Items so a stale aggregate
	// can never reach the page.
	Total   float64 `json:"total"`
	Advance float64 `json:"advance"`

	Status        Status `json:"status"`
	Delivered     bool   `json:"delivered"`
	PaymentMethod string `json:"paymentMethod,omitempty"`

	// Title overrides the caption of the info box. Empty means the standard
	// "Nota de venta" caption.
	Title string `json:"noteTitle,omitempty"`

	// HideDeliveryPayment suppresses the delivery and payment rows of the
	// info box. The zero value keeps both rows, matching the default.
	HideDeliveryPayment bool `json:"hideDeliveryPayment,omitempty"`

	Items []LineItem `json:"items"`
}

// DefaultTitle is the info box caption used when Note.Title is empty.
const DefaultTitle = "Nota de venta"

// WalkInClient is the client name printed when none was supplied.
const WalkInClient = "Venta mostrador"

// Subtotal is the sum of every line item's subtotal. The stored Total field
// is deliberately ignored.
func (n *Note) Subtotal() float64 {
	var sum float64
	for _, it := range n.Items {
		sum += it.Subtotal
	}
	return sum
}

// Remainder is the outstanding balance: recomputed subtotal minus advance.
// No clamping is applied; an overpaid note renders a negative remainder.
func (n *Note) Remainder() float64 {
	return n.Subtotal() - n.Advance
}

// DeliveryText is the value of the info box delivery row.
func (n *Note) DeliveryText() string {
	if n.Status.Canceled() {
		return "—"
	}
	if n.Delivered {
		return "Entregado"
	}
	return "Pendiente"
}

// PaymentText is the value of the info box payment row. A note with no
// collected advance shows no payment method.
func (n *Note) PaymentText() string {
	if n.Advance <= 0 {
		return "—"
	}
	if n.PaymentMethod == "" {
		return "—"
	}
	return n.PaymentMethod
}

// TitleText returns the info box caption, applying the default.
func (n *Note) TitleText() string {
	if n.Title == "" {
		return DefaultTitle
	}
	return n.Title
}
