package service

import (
	"context"
	"testing"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/store"
	"campus_transport/internal/testutil"
)

func busCount(t *testing.T, st store.Store) int64 {
	t.Helper()
	counts, err := st.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	return counts.Buses
}

func findBus(t *testing.T, st store.Store, busNumber string) store.BusListing {
	t.Helper()
	listings, err := st.ListBuses(context.Background())
	if err != nil {
		t.Fatalf("ListBuses() error = %v", err)
	}
	for _, b := range listings {
		if b.BusNumber == busNumber {
			return b
		}
	}
	t.Fatalf("bus %q not found", busNumber)
	return store.BusListing{}
}

func TestCreateBusDuplicateNumber(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()
	before := busCount(t, st)

	_, err := svc.Buses.Create(ctx, BusInput{BusNumber: "J9", Capacity: 50})
	if err != apperrors.ErrBusNumberExists {
		t.Fatalf("Create() error = %v, want ErrBusNumberExists", err)
	}
	if got := busCount(t, st); got != before {
		t.Errorf("bus count changed on duplicate create: %d -> %d", before, got)
	}
}

func TestCreateBusValidatesReferences(t *testing.T) {
	svc, _ := seededServices(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   BusInput
		wantErr error
	}{
		{"unknown route", BusInput{BusNumber: "X1", RouteID: testutil.UintPtr(9999), Capacity: 30}, apperrors.ErrRouteNotFound},
		{"unknown driver", BusInput{BusNumber: "X2", DriverID: testutil.UintPtr(9999), Capacity: 30}, apperrors.ErrDriverNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Buses.Create(ctx, tt.input); err != tt.wantErr {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Unassigned references are fine
	bus, err := svc.Buses.Create(ctx, BusInput{BusNumber: "X3", Capacity: 30})
	if err != nil {
		t.Fatalf("Create() with nil references error = %v", err)
	}
	if bus.RouteID != nil || bus.DriverID != nil {
		t.Error("nil references did not stay nil")
	}
}

// Deleting the route a bus references succeeds and leaves the bus with a
// dangling route id; the listing shows an empty route name, not an error.
func TestDeleteRouteLeavesBusDangling(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	sa3 := findBus(t, st, "SA3")
	if sa3.RouteName != "Miyapur Route" {
		t.Fatalf("SA3 route = %q, want Miyapur Route", sa3.RouteName)
	}

	if err := svc.Routes.Delete(ctx, *sa3.RouteID); err != nil {
		t.Fatalf("Routes.Delete() error = %v", err)
	}

	after := findBus(t, st, "SA3")
	if after.RouteID == nil {
		t.Error("route reference was cleared; expected it to dangle")
	}
	if after.RouteName != "" {
		t.Errorf("SA3 route name after delete = %q, want empty", after.RouteName)
	}
	if after.DriverName == "" {
		t.Error("driver name lost when only the route was deleted")
	}
}

// Deleting a driver a bus references leaves the bus dangling the same way.
func TestDeleteDriverLeavesBusDangling(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	j10 := findBus(t, st, "J10")
	if j10.DriverName != "Suresh Naik" {
		t.Fatalf("J10 driver = %q, want Suresh Naik", j10.DriverName)
	}

	if err := svc.Drivers.Delete(ctx, *j10.DriverID); err != nil {
		t.Fatalf("Drivers.Delete() error = %v", err)
	}

	after := findBus(t, st, "J10")
	if after.DriverName != "" {
		t.Errorf("J10 driver name after delete = %q, want empty", after.DriverName)
	}
}

func TestUpdateBus(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	n1 := findBus(t, st, "N1")
	updated, err := svc.Buses.Update(ctx, n1.ID, BusInput{
		BusNumber: "N1",
		RouteID:   nil, // unassign
		DriverID:  n1.DriverID,
		Capacity:  32,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Capacity != 32 || updated.RouteID != nil {
		t.Errorf("Update() = capacity %d routeID %v", updated.Capacity, updated.RouteID)
	}

	if _, err := svc.Buses.Update(ctx, 9999, BusInput{BusNumber: "Z9"}); err != apperrors.ErrBusNotFound {
		t.Errorf("Update() unknown id error = %v, want ErrBusNotFound", err)
	}
}

func TestListBusesOrderedByNumber(t *testing.T) {
	svc, _ := seededServices(t)

	listings, err := svc.Buses.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listings) != 5 {
		t.Fatalf("List() returned %d rows, want 5", len(listings))
	}
	for i := 1; i < len(listings); i++ {
		if listings[i-1].BusNumber > listings[i].BusNumber {
			t.Errorf("listing out of order: %q before %q", listings[i-1].BusNumber, listings[i].BusNumber)
		}
	}
}
