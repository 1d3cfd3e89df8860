package gateway

//go:generate mockgen -destination=mocks/mock_vendor_gateway.go -package=mocks -source=vendor_gateway.go VendorGateway

import (
	"context"
	"errors"
	"time"
)

// ErrVendorDecode is returned when a vendor response could not be fetched or decoded
var ErrVendorDecode = errors.New("vendor response could not be decoded")

// VendorDoctor is a doctor as listed by the vendor API
type VendorDoctor struct {
	ID   int64
	Name string
}

// VendorSlot is an appointment window as listed by the vendor API
type VendorSlot struct {
	Start time.Time
	End   time.Time
}

// VendorGateway reads the doctor roster and slots of the vendor API.
// Every failure wraps ErrVendorDecode.
type VendorGateway interface {
	ListDoctors(ctx context.Context) ([]VendorDoctor, error)
	ListSlots(ctx context.Context, doctorID int64) ([]VendorSlot, error)
}
