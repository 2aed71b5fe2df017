package model

// TimestampLayout is the local-time format orders are stamped with.
const TimestampLayout = "2006-01-02 15:04:05"

// Customer holds the free-text contact details submitted with an order.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Pincode string
}

// Location is a best-effort geolocation guess. Every field is independently optional.
type Location struct {
	City    *string
	Region  *string
	Country *string
	Lat     *float64
	Lng     *float64
}

// Known reports whether at least one field was resolved.
func (l Location) Known() bool {
	return l.City != nil || l.Region != nil || l.Country != nil || l.Lat != nil || l.Lng != nil
}

// Order is a persisted customer submission.
type Order struct {
	ID             int64
	Code           string
	Items          string
	Total          float64
	Customer       Customer
	Timestamp      string
	SelfieFilename *string
	IPAddress      *string
	Location       Location
}

// OrderDraft carries the coerced form fields of a new submission.
type OrderDraft struct {
	Customer Customer
	Items    string
	Total    float64
}

// OrderReceipt is returned to the client once an order is stored.
type OrderReceipt struct {
	ID        int64
	Code      string
	Timestamp string
}
