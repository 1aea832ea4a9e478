package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
)

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		err   bool
	}{
		{name: "formatted brazilian currency", input: "R$ 85.000,00", want: 8500000},
		{name: "plain decimal", input: "1234,56", want: 123456},
		{name: "bare digits", input: "5000", want: 5000},
		{name: "digits with spaces", input: " 1 000 ", want: 1000},
		{name: "empty", input: "", err: true},
		{name: "no digits at all", input: "R$ --,--", err: true},
		{name: "letters only", input: "abc", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriceCents(tt.input)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVehicleCreate_DefaultsAndImage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)
	store := seedStore(t, db, "Inventory Store")

	vehicle, err := svc.Create(ownerSession(store), &dto.VehicleRequest{
		Brand:    "Toyota",
		Model:    "Corolla",
		Year:     2023,
		Price:    "R$ 120.000,00",
		KM:       15000,
		ImageURL: "https://cdn.test/corolla.jpg",
	})
	require.NoError(t, err)

	assert.True(t, vehicle.IsAvailable)
	assert.Equal(t, int64(12000000), vehicle.PriceCents)
	assert.Equal(t, store.ID, vehicle.StoreID)
	require.Len(t, vehicle.Images, 1)
	assert.Equal(t, "https://cdn.test/corolla.jpg", vehicle.Images[0].URL)
}

func TestVehicleCreate_RequiresStore(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)

	_, err := svc.Create(adminSession(), &dto.VehicleRequest{
		Brand: "VW", Model: "Gol", Price: "30000",
	})
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestVehicleCreate_RejectsMalformedPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)
	store := seedStore(t, db, "Price Store")

	_, err := svc.Create(ownerSession(store), &dto.VehicleRequest{
		Brand: "VW", Model: "Polo", Price: "consultar",
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestVehicleUpdate_ReplacesImage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)
	store := seedStore(t, db, "Image Store")
	sess := ownerSession(store)

	vehicle, err := svc.Create(sess, &dto.VehicleRequest{
		Brand: "Chevrolet", Model: "Onix", Year: 2021, Price: "70000,00",
		ImageURL: "https://cdn.test/old.jpg",
	})
	require.NoError(t, err)

	updated, err := svc.Update(sess, vehicle.ID, &dto.VehicleRequest{
		Brand: "Chevrolet", Model: "Onix", Year: 2021, Price: "68000,00",
		ImageURL: "https://cdn.test/new.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6800000), updated.PriceCents)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, "https://cdn.test/new.jpg", updated.Images[0].URL)

	var count int64
	db.Model(&models.VehicleImage{}).Where("vehicle_id = ?", vehicle.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestVehicleUpdate_EmptyImageClearsAll(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)
	store := seedStore(t, db, "Clear Image Store")
	sess := ownerSession(store)

	vehicle, err := svc.Create(sess, &dto.VehicleRequest{
		Brand: "Renault", Model: "Kwid", Year: 2022, Price: "55000,00",
		ImageURL: "https://cdn.test/kwid.jpg",
	})
	require.NoError(t, err)

	updated, err := svc.Update(sess, vehicle.ID, &dto.VehicleRequest{
		Brand: "Renault", Model: "Kwid", Year: 2022, Price: "55000,00",
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Images)

	var count int64
	db.Model(&models.VehicleImage{}).Where("vehicle_id = ?", vehicle.ID).Count(&count)
	assert.Zero(t, count)
}

func TestVehicleUpdate_CrossTenantRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)
	mine := seedStore(t, db, "My Lot")
	theirs := seedStore(t, db, "Their Lot")

	vehicle, err := svc.Create(ownerSession(theirs), &dto.VehicleRequest{
		Brand: "Hyundai", Model: "HB20", Year: 2020, Price: "60000,00",
	})
	require.NoError(t, err)

	_, err = svc.Update(ownerSession(mine), vehicle.ID, &dto.VehicleRequest{
		Brand: "Hyundai", Model: "HB20", Year: 2020, Price: "1,00",
	})
	assert.ErrorIs(t, err, ErrNotStoreData)

	var stored models.Vehicle
	require.NoError(t, db.First(&stored, "id = ?", vehicle.ID).Error)
	assert.Equal(t, int64(6000000), stored.PriceCents)
}

func TestVehicleDelete_RemovesImages(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)
	store := seedStore(t, db, "Delete Store")
	sess := ownerSession(store)

	vehicle, err := svc.Create(sess, &dto.VehicleRequest{
		Brand: "Nissan", Model: "Kicks", Year: 2023, Price: "110000,00",
		ImageURL: "https://cdn.test/kicks.jpg",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(sess, vehicle.ID))

	var count int64
	db.Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.VehicleImage{}).Where("vehicle_id = ?", vehicle.ID).Count(&count)
	assert.Zero(t, count)
}

func TestVehicleList_ScopedToTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVehicleService(db)
	a := seedStore(t, db, "Lot A")
	b := seedStore(t, db, "Lot B")

	_, err := svc.Create(ownerSession(a), &dto.VehicleRequest{Brand: "A", Model: "1", Price: "10"})
	require.NoError(t, err)
	_, err = svc.Create(ownerSession(b), &dto.VehicleRequest{Brand: "B", Model: "1", Price: "10"})
	require.NoError(t, err)

	vehicles, err := svc.ListForStore(ownerSession(a))
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, a.ID, vehicles[0].StoreID)
}
