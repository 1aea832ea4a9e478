package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
)

func TestLeadCreate_Defaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	store := seedStore(t, db, "Lead Store")
	sess := ownerSession(store)

	lead, err := svc.Create(sess, &dto.CreateLeadRequest{
		CustomerName:  "Ana",
		CustomerPhone: "11988887777",
	})
	require.NoError(t, err)

	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Zero(t, lead.ValueCents)
	assert.Equal(t, store.ID, lead.StoreID)
}

func TestLeadCreate_ParsesValue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	store := seedStore(t, db, "Lead Value Store")

	lead, err := svc.Create(ownerSession(store), &dto.CreateLeadRequest{
		CustomerName:  "Bruno",
		CustomerPhone: "11977776666",
		Value:         "R$ 45,00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4500), lead.ValueCents)
}

func TestCreatePublic_UsesDefaultCostAndCheckinCode(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := NewLeadService(db, cfg)
	store := seedStore(t, db, "Public Store")

	resp, err := svc.CreatePublic(store.Slug, &dto.PublicLeadRequest{
		CustomerName:  "Visitante",
		CustomerPhone: "11966665555",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Len(t, resp.QRCode, 6)
	assert.Equal(t, strings.ToUpper(resp.QRCode), resp.QRCode)

	var lead models.Lead
	require.NoError(t, db.Where("store_id = ?", store.ID).First(&lead).Error)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, cfg.LeadDefaultCostCents, lead.ValueCents)
	assert.Equal(t, lead.CheckinCode(), resp.QRCode)
}

func TestCreatePublic_UnknownSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())

	_, err := svc.CreatePublic("ghost-store", &dto.PublicLeadRequest{
		CustomerName:  "Someone",
		CustomerPhone: "11955554444",
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestUpdateStatus_AllStatusesReachable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	store := seedStore(t, db, "Kanban Store")
	sess := ownerSession(store)

	lead, err := svc.Create(sess, &dto.CreateLeadRequest{
		CustomerName:  "Carla",
		CustomerPhone: "11944443333",
	})
	require.NoError(t, err)

	// No transition table: any status may follow any other, including
	// moving back out of CLOSED_SALE.
	order := []string{
		models.LeadStatusClosedSale,
		models.LeadStatusContacted,
		models.LeadStatusLost,
		models.LeadStatusScheduled,
		models.LeadStatusVisited,
		models.LeadStatusNew,
	}
	for _, status := range order {
		updated, err := svc.UpdateStatus(sess, lead.ID, status)
		require.NoError(t, err, "status %s", status)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	store := seedStore(t, db, "Status Store")
	sess := ownerSession(store)

	lead, err := svc.Create(sess, &dto.CreateLeadRequest{
		CustomerName:  "Davi",
		CustomerPhone: "11933332222",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(sess, lead.ID, "ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidLeadStatus)
}

func TestUpdateStatus_CrossTenantRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	mine := seedStore(t, db, "Mine")
	theirs := seedStore(t, db, "Theirs")

	lead, err := svc.Create(ownerSession(theirs), &dto.CreateLeadRequest{
		CustomerName:  "Elena",
		CustomerPhone: "11922221111",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ownerSession(mine), lead.ID, models.LeadStatusContacted)
	assert.ErrorIs(t, err, ErrNotStoreData)

	// The row must be untouched after the rejected attempt.
	var stored models.Lead
	require.NoError(t, db.First(&stored, "id = ?", lead.ID).Error)
	assert.Equal(t, models.LeadStatusNew, stored.Status)
}

func TestUpdateStatus_SuperAdminCrossesTenants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	store := seedStore(t, db, "Any Store")

	lead, err := svc.Create(ownerSession(store), &dto.CreateLeadRequest{
		CustomerName:  "Fábio",
		CustomerPhone: "11911110000",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(adminSession(), lead.ID, models.LeadStatusVisited)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusVisited, updated.Status)
}

func TestListForStore_ScopedToTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	a := seedStore(t, db, "Store A")
	b := seedStore(t, db, "Store B")

	_, err := svc.Create(ownerSession(a), &dto.CreateLeadRequest{CustomerName: "A1", CustomerPhone: "1"})
	require.NoError(t, err)
	_, err = svc.Create(ownerSession(b), &dto.CreateLeadRequest{CustomerName: "B1", CustomerPhone: "2"})
	require.NoError(t, err)
	_, err = svc.Create(ownerSession(b), &dto.CreateLeadRequest{CustomerName: "B2", CustomerPhone: "3"})
	require.NoError(t, err)

	leads, err := svc.ListForStore(ownerSession(b))
	require.NoError(t, err)
	assert.Len(t, leads, 2)
	for _, l := range leads {
		assert.Equal(t, b.ID, l.StoreID)
	}
}

func TestListAll_AttachesStoreNames(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeadService(db, testConfig())
	store := seedStore(t, db, "Named Store")

	_, err := svc.Create(ownerSession(store), &dto.CreateLeadRequest{CustomerName: "G", CustomerPhone: "9"})
	require.NoError(t, err)

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Named Store", all[0].StoreName)
}
